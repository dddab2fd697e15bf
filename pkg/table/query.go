// Package table 提供通用表格数据引擎：本地查询组合（搜索/过滤/排序/分页）、
// 带去重的取数编排、列布局持久化、列宽拖拽与CSV导出。
package table

import (
	"math"
)

// 排序方向
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// PageSizeAll 禁用分页时使用的页大小（上游已分页，仅本地做搜索/过滤/排序）
const PageSizeAll = math.MaxInt

// Sorter 排序描述
type Sorter struct {
	Field string `json:"field"`
	Order string `json:"order"` // asc | desc
}

// Query 表格查询参数，page/pageSize恒为正数，
// filters中缺失或空值表示该字段无约束
type Query struct {
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Keyword  string         `json:"keyword"`
	Filters  map[string]any `json:"filters"`
	Sorter   *Sorter        `json:"sorter"`
}

// Normalize 返回规范化后的查询，非法的页码和页大小回退为默认值
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	return q
}

// clone 深拷贝查询，保证状态更新不共享filters
func (q Query) clone() Query {
	cloned := q
	if q.Filters != nil {
		cloned.Filters = make(map[string]any, len(q.Filters))
		for k, v := range q.Filters {
			cloned.Filters[k] = v
		}
	}
	if q.Sorter != nil {
		s := *q.Sorter
		cloned.Sorter = &s
	}
	return cloned
}

// State 表格会话内的查询状态，随UI操作更新，不做持久化。
// 所有更新都是对前值的纯合并，更新后产生新的查询值。
type State struct {
	initial Query
	current Query
}

// NewState 创建查询状态，initial为Reset的回退目标
func NewState(initial Query) *State {
	initial = initial.Normalize()
	return &State{
		initial: initial.clone(),
		current: initial.clone(),
	}
}

// Query 获取当前查询的副本
func (s *State) Query() Query {
	return s.current.clone()
}

// SetPage 设置页码，可选同时设置页大小。
// 非正或溢出的页码被拒绝，状态保持不变
func (s *State) SetPage(page int, pageSize ...int) {
	if page < 1 {
		return
	}
	next := s.current.clone()
	next.Page = page
	if len(pageSize) > 0 {
		if pageSize[0] < 1 {
			return
		}
		next.PageSize = pageSize[0]
	}
	s.current = next
}

// SetSorter 设置排序，nil表示清除排序
func (s *State) SetSorter(sorter *Sorter) {
	next := s.current.clone()
	if sorter == nil {
		next.Sorter = nil
	} else {
		v := *sorter
		next.Sorter = &v
	}
	s.current = next
}

// SetFilters 合并部分过滤条件，值为nil时删除该字段的约束
func (s *State) SetFilters(partial map[string]any) {
	next := s.current.clone()
	if next.Filters == nil {
		next.Filters = make(map[string]any, len(partial))
	}
	for k, v := range partial {
		if v == nil {
			delete(next.Filters, k)
			continue
		}
		next.Filters[k] = v
	}
	s.current = next
}

// SetKeyword 设置搜索关键字，空串表示清除
func (s *State) SetKeyword(keyword string) {
	next := s.current.clone()
	next.Keyword = keyword
	s.current = next
}

// Reset 重置为创建时的初始查询
func (s *State) Reset() {
	s.current = s.initial.clone()
}
