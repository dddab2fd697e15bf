package table

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// AutoDeps 自动取数的依赖模式
type AutoDeps string

const (
	// AutoDepsQuery 查询任意字段变化即重新取数
	AutoDepsQuery AutoDeps = "query"
	// AutoDepsReload 仅在首次和显式Reload时取数，忽略查询变化
	// （取数方返回全量数据、由本地查询引擎处理分页过滤时使用）
	AutoDepsReload AutoDeps = "reload"
)

// ListResult 取数结果，Total为当前视图的权威行数
type ListResult[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
}

// Fetcher 注入的取数函数，可由任意传输实现，不做重试
type Fetcher[T any] func(ctx context.Context, query Query) (ListResult[T], error)

// Signature 取数签名函数，相同签名的并发请求会合并为一次取数
type Signature func(query Query) string

// DefaultSignature 默认签名：page/pageSize/keyword的序列化
func DefaultSignature(query Query) string {
	return fmt.Sprintf("p=%d&ps=%d&kw=%s", query.Page, query.PageSize, query.Keyword)
}

// inflight 在途取数，后到的同签名请求等待同一结果
type inflight[T any] struct {
	done   chan struct{}
	result ListResult[T]
	err    error
}

// Orchestrator 取数编排器：包装注入的Fetcher，
// 按签名对并发请求去重（同一签名至多一个在途取数），
// 并通过独立于签名的刷新代数支持查询不变时的强制重新取数。
// 取数失败只记录进Err，不向调用方抛出，List保留上次成功值
type Orchestrator[T any] struct {
	fetcher   Fetcher[T]
	signature Signature
	autoDeps  AutoDeps

	mu        sync.Mutex
	inflights map[string]*inflight[T]

	// 刷新代数：参与依赖判断但不参与签名，Reload时递增
	refreshGen int64
	// 最近一次成功提交取数对应的 签名+代数，依赖判断的记忆键。
	// 取数在途时尚未提交，同依赖键的Ensure会走到在途合并而不是复用空状态
	lastKey string
	// 取数序号，用于丢弃过期结果（软取消）
	fetchSeq int64

	list    []T
	total   int64
	loading int
	err     error
}

// NewOrchestrator 创建取数编排器。
// signature为nil时使用默认签名（page/pageSize/keyword序列化）
func NewOrchestrator[T any](fetcher Fetcher[T], signature Signature, autoDeps AutoDeps) *Orchestrator[T] {
	if signature == nil {
		signature = DefaultSignature
	}
	if autoDeps == "" {
		autoDeps = AutoDepsQuery
	}
	return &Orchestrator[T]{
		fetcher:   fetcher,
		signature: signature,
		autoDeps:  autoDeps,
		inflights: make(map[string]*inflight[T]),
	}
}

// Fetch 按查询取数。同签名的在途请求合并等待同一结果；
// 结果总是返回给调用方，但只有最新一次取数会提交进编排器状态
func (o *Orchestrator[T]) Fetch(ctx context.Context, query Query) (ListResult[T], error) {
	return o.fetchWithKey(ctx, query, o.signature(query))
}

// Ensure 按依赖模式取数：依赖键未变化时复用已提交状态，不重新取数。
// query模式下查询变化触发取数，reload模式下仅刷新代数变化触发取数
func (o *Orchestrator[T]) Ensure(ctx context.Context, query Query) (ListResult[T], error) {
	key := o.signature(query)
	if o.autoDeps == AutoDepsReload {
		key = ""
	}

	o.mu.Lock()
	if o.lastKey == o.depKey(key) && o.err == nil {
		result := ListResult[T]{List: o.list, Total: o.total}
		o.mu.Unlock()
		return result, nil
	}
	o.mu.Unlock()

	if o.autoDeps == AutoDepsReload {
		return o.fetchWithKey(ctx, query, key)
	}
	return o.Fetch(ctx, query)
}

// fetchWithKey 以指定签名取数，reload模式下签名不含查询字段
func (o *Orchestrator[T]) fetchWithKey(ctx context.Context, query Query, key string) (ListResult[T], error) {
	o.mu.Lock()
	if call, ok := o.inflights[key]; ok {
		// 已有同签名取数在途，等待同一结果，不发起新请求
		o.mu.Unlock()
		select {
		case <-call.done:
			return call.result, call.err
		case <-ctx.Done():
			return ListResult[T]{}, ctx.Err()
		}
	}

	call := &inflight[T]{done: make(chan struct{})}
	o.inflights[key] = call
	o.fetchSeq++
	seq := o.fetchSeq
	o.loading++
	dep := o.depKey(key)
	o.mu.Unlock()

	result, err := o.fetcher(ctx, query)

	o.mu.Lock()
	// 取数已结束即移除在途记录，之后的同签名请求重新取数
	delete(o.inflights, key)
	o.loading--
	// 过期结果不提交，避免旧响应覆盖新状态；
	// 依赖记忆键在成功提交时才记录，在途期间不生效
	if seq == o.fetchSeq {
		if err != nil {
			o.err = err
		} else {
			o.err = nil
			o.list = result.List
			o.total = result.Total
			o.lastKey = dep
		}
	}
	o.mu.Unlock()

	call.result = result
	call.err = err
	close(call.done)

	return result, err
}

// Reload 强制重新取数：递增刷新代数使记忆键失效，
// 但代数不进入取数签名，发给Fetcher的参数不变
func (o *Orchestrator[T]) Reload(ctx context.Context, query Query) (ListResult[T], error) {
	o.mu.Lock()
	o.refreshGen++
	o.mu.Unlock()

	if o.autoDeps == AutoDepsReload {
		return o.fetchWithKey(ctx, query, "")
	}
	return o.Fetch(ctx, query)
}

// depKey 依赖键 = 签名 + 刷新代数，调用方须持有锁
func (o *Orchestrator[T]) depKey(signature string) string {
	return signature + "#" + strconv.FormatInt(o.refreshGen, 10)
}

// Snapshot 读取当前状态：列表、总数、是否加载中、最近错误
func (o *Orchestrator[T]) Snapshot() (list []T, total int64, loading bool, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.list, o.total, o.loading > 0, o.err
}

// ClearError 清除错误状态，列表保持不变
func (o *Orchestrator[T]) ClearError() {
	o.mu.Lock()
	o.err = nil
	o.mu.Unlock()
}
