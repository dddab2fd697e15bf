package table

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 同签名并发取数只调用一次Fetcher，双方拿到同一结果
func TestOrchestratorDedup(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	fetcher := func(ctx context.Context, q Query) (ListResult[string], error) {
		calls.Add(1)
		<-release
		return ListResult[string]{List: []string{"u1"}, Total: 1}, nil
	}

	o := NewOrchestrator(fetcher, func(q Query) string { return q.Keyword }, AutoDepsQuery)
	query := Query{Page: 1, PageSize: 10, Keyword: "u1"}

	var wg sync.WaitGroup
	results := make([]ListResult[string], 2)
	fetch := func(i int) {
		defer wg.Done()
		r, err := o.Fetch(context.Background(), query)
		require.NoError(t, err)
		results[i] = r
	}

	wg.Add(1)
	go fetch(0)
	// 第一个取数已在途且被挂起后，再发起同签名的第二个请求
	for calls.Load() == 0 {
		runtime.Gosched()
	}
	wg.Add(1)
	go fetch(1)
	time.Sleep(100 * time.Millisecond)

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, results[0], results[1])
}

// 在途记录随取数结束清除，下一次同签名请求重新取数
func TestOrchestratorInflightEviction(t *testing.T) {
	var calls atomic.Int32
	fetcher := func(ctx context.Context, q Query) (ListResult[string], error) {
		calls.Add(1)
		return ListResult[string]{List: []string{"a"}, Total: 1}, nil
	}

	o := NewOrchestrator(fetcher, nil, AutoDepsQuery)
	query := Query{Page: 1, PageSize: 10}

	_, err := o.Fetch(context.Background(), query)
	require.NoError(t, err)
	_, err = o.Fetch(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

// 首次取数在途时，同依赖键的并发Ensure等待同一结果，
// 而不是把尚未提交的空状态当作成功返回
func TestOrchestratorEnsureJoinsInflight(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	fetcher := func(ctx context.Context, q Query) (ListResult[string], error) {
		calls.Add(1)
		<-release
		return ListResult[string]{List: []string{"a", "b"}, Total: 2}, nil
	}

	o := NewOrchestrator(fetcher, nil, AutoDepsReload)
	query := Query{Page: 1, PageSize: 10}

	var wg sync.WaitGroup
	results := make([]ListResult[string], 2)
	ensure := func(i int) {
		defer wg.Done()
		r, err := o.Ensure(context.Background(), query)
		require.NoError(t, err)
		results[i] = r
	}

	wg.Add(1)
	go ensure(0)
	// 第一个取数已在途且被挂起后，再发起同依赖键的Ensure
	for calls.Load() == 0 {
		runtime.Gosched()
	}
	wg.Add(1)
	go ensure(1)
	time.Sleep(100 * time.Millisecond)

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int64(2), results[0].Total)
	assert.Equal(t, []string{"a", "b"}, results[0].List)
	assert.Equal(t, results[0], results[1])
}

// Ensure：依赖键未变化时复用已提交状态，查询变化时重新取数
func TestOrchestratorEnsure(t *testing.T) {
	var calls atomic.Int32
	fetcher := func(ctx context.Context, q Query) (ListResult[string], error) {
		calls.Add(1)
		return ListResult[string]{List: []string{"a"}, Total: 1}, nil
	}

	o := NewOrchestrator(fetcher, nil, AutoDepsQuery)
	query := Query{Page: 1, PageSize: 10}

	_, _ = o.Ensure(context.Background(), query)
	_, _ = o.Ensure(context.Background(), query)
	assert.Equal(t, int32(1), calls.Load())

	query.Page = 2
	_, _ = o.Ensure(context.Background(), query)
	assert.Equal(t, int32(2), calls.Load())
}

// reload模式：查询变化不触发取数，只有Reload触发
func TestOrchestratorAutoDepsReload(t *testing.T) {
	var calls atomic.Int32
	fetcher := func(ctx context.Context, q Query) (ListResult[string], error) {
		calls.Add(1)
		return ListResult[string]{List: []string{"a"}, Total: 1}, nil
	}

	o := NewOrchestrator(fetcher, nil, AutoDepsReload)
	query := Query{Page: 1, PageSize: 10}

	_, _ = o.Ensure(context.Background(), query)
	query.Page = 3
	query.Keyword = "x"
	_, _ = o.Ensure(context.Background(), query)
	assert.Equal(t, int32(1), calls.Load())

	_, _ = o.Reload(context.Background(), query)
	assert.Equal(t, int32(2), calls.Load())
}

// 刷新代数递增后，查询字节不变也会重新取数
func TestOrchestratorForcedRefresh(t *testing.T) {
	var calls atomic.Int32
	fetcher := func(ctx context.Context, q Query) (ListResult[string], error) {
		calls.Add(1)
		return ListResult[string]{List: []string{"a"}, Total: 1}, nil
	}

	o := NewOrchestrator(fetcher, nil, AutoDepsQuery)
	query := Query{Page: 1, PageSize: 10, Keyword: "same"}

	_, _ = o.Ensure(context.Background(), query)
	_, _ = o.Ensure(context.Background(), query)
	require.Equal(t, int32(1), calls.Load())

	_, _ = o.Reload(context.Background(), query)
	assert.Equal(t, int32(2), calls.Load())

	// Reload后Ensure复用新状态，不再取数
	_, _ = o.Ensure(context.Background(), query)
	assert.Equal(t, int32(2), calls.Load())
}

// 取数失败只记录进错误状态，列表保留上次成功值
func TestOrchestratorErrorKeepsList(t *testing.T) {
	var fail atomic.Bool
	fetcher := func(ctx context.Context, q Query) (ListResult[string], error) {
		if fail.Load() {
			return ListResult[string]{}, errors.New("boom")
		}
		return ListResult[string]{List: []string{"a", "b"}, Total: 2}, nil
	}

	o := NewOrchestrator(fetcher, nil, AutoDepsQuery)
	query := Query{Page: 1, PageSize: 10}

	_, err := o.Fetch(context.Background(), query)
	require.NoError(t, err)

	fail.Store(true)
	_, err = o.Fetch(context.Background(), query)
	require.Error(t, err)

	list, total, loading, snapErr := o.Snapshot()
	assert.Error(t, snapErr)
	assert.False(t, loading)
	assert.Equal(t, []string{"a", "b"}, list)
	assert.Equal(t, int64(2), total)

	o.ClearError()
	_, _, _, snapErr = o.Snapshot()
	assert.NoError(t, snapErr)
}
