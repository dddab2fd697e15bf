package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSetPage(t *testing.T) {
	s := NewState(Query{Page: 1, PageSize: 10})

	s.SetPage(3)
	assert.Equal(t, 3, s.Query().Page)
	assert.Equal(t, 10, s.Query().PageSize)

	s.SetPage(2, 20)
	assert.Equal(t, 2, s.Query().Page)
	assert.Equal(t, 20, s.Query().PageSize)
}

// 非法页码被拒绝，状态保持不变
func TestStateSetPageRejectsInvalid(t *testing.T) {
	s := NewState(Query{Page: 2, PageSize: 10})

	s.SetPage(0)
	assert.Equal(t, 2, s.Query().Page)

	s.SetPage(-5)
	assert.Equal(t, 2, s.Query().Page)

	s.SetPage(3, 0)
	assert.Equal(t, 2, s.Query().Page)
	assert.Equal(t, 10, s.Query().PageSize)
}

func TestStateSetFiltersMerge(t *testing.T) {
	s := NewState(Query{Page: 1, PageSize: 10})

	s.SetFilters(map[string]any{"status": 1})
	s.SetFilters(map[string]any{"type": "lecture"})
	q := s.Query()
	assert.Equal(t, 1, q.Filters["status"])
	assert.Equal(t, "lecture", q.Filters["type"])

	// nil值删除该字段的约束
	s.SetFilters(map[string]any{"status": nil})
	_, ok := s.Query().Filters["status"]
	assert.False(t, ok)
}

func TestStateSetKeywordAndSorter(t *testing.T) {
	s := NewState(Query{Page: 1, PageSize: 10})

	s.SetKeyword("张三")
	assert.Equal(t, "张三", s.Query().Keyword)

	s.SetSorter(&Sorter{Field: "name", Order: OrderAsc})
	assert.Equal(t, "name", s.Query().Sorter.Field)

	s.SetSorter(nil)
	assert.Nil(t, s.Query().Sorter)
}

// Reset回到调用方提供的初始值，而不是空值
func TestStateReset(t *testing.T) {
	initial := Query{Page: 1, PageSize: 20, Filters: map[string]any{"status": 1}}
	s := NewState(initial)

	s.SetPage(5)
	s.SetKeyword("abc")
	s.SetFilters(map[string]any{"type": "x"})
	s.Reset()

	q := s.Query()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)
	assert.Equal(t, "", q.Keyword)
	assert.Equal(t, 1, q.Filters["status"])
	_, ok := q.Filters["type"]
	assert.False(t, ok)
}

// 查询副本不共享filters，外部修改不影响状态
func TestStateQueryIsolation(t *testing.T) {
	s := NewState(Query{Page: 1, PageSize: 10})
	s.SetFilters(map[string]any{"status": 1})

	q := s.Query()
	q.Filters["status"] = 2
	assert.Equal(t, 1, s.Query().Filters["status"])
}
