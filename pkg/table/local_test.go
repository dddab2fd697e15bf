package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type demoRow struct {
	Name   string `json:"name"`
	Status int    `json:"status"`
	Score  int    `json:"score"`
}

func demoOptions() Options[demoRow] {
	return Options[demoRow]{
		SearchTexts: func(row demoRow) []string {
			return []string{row.Name}
		},
		MatchFilters: func(row demoRow, filters map[string]any) bool {
			if status, ok := filters["status"]; ok && status != nil {
				if s, ok := status.(int); ok && row.Status != s {
					return false
				}
			}
			return true
		},
		SortValue: func(row demoRow, sorter Sorter) any {
			switch sorter.Field {
			case "name":
				return row.Name
			case "score":
				return row.Score
			}
			return nil
		},
	}
}

// 数据集：25行，其中12行名称含lec
func scenarioDataset() []demoRow {
	rows := make([]demoRow, 0, 25)
	for i := 0; i < 12; i++ {
		rows = append(rows, demoRow{Name: fmt.Sprintf("lec-%02d", 11-i), Status: i % 2, Score: i})
	}
	for i := 0; i < 13; i++ {
		rows = append(rows, demoRow{Name: fmt.Sprintf("act-%02d", i), Status: i % 2, Score: i + 100})
	}
	return rows
}

// 25行数据、页大小10、关键字命中12行、按名称升序：
// filtered为12行，第1页10行，第2页2行，名称非降
func TestApplyLocalQueryScenario(t *testing.T) {
	dataset := scenarioDataset()
	opts := demoOptions()

	page1 := ApplyLocalQuery(dataset, Query{
		Page: 1, PageSize: 10, Keyword: "lec",
		Sorter: &Sorter{Field: "name", Order: OrderAsc},
	}, opts)
	require.Equal(t, 12, len(page1.Filtered))
	require.Equal(t, 12, page1.Total)
	require.Equal(t, 10, len(page1.List))

	page2 := ApplyLocalQuery(dataset, Query{
		Page: 2, PageSize: 10, Keyword: "lec",
		Sorter: &Sorter{Field: "name", Order: OrderAsc},
	}, opts)
	require.Equal(t, 2, len(page2.List))
	require.Equal(t, 12, page2.Total)

	all := append(append([]demoRow{}, page1.List...), page2.List...)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Name, all[i].Name)
	}
}

// 关键字匹配大小写不敏感，首尾空白被去除
func TestApplyLocalQueryKeywordFolding(t *testing.T) {
	dataset := []demoRow{{Name: "Golang讲座"}, {Name: "其他活动"}}
	opts := demoOptions()

	result := ApplyLocalQuery(dataset, Query{Page: 1, PageSize: 10, Keyword: "  GOLANG "}, opts)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Golang讲座", result.List[0].Name)

	// 纯空白关键字等于无关键字
	result = ApplyLocalQuery(dataset, Query{Page: 1, PageSize: 10, Keyword: "   "}, opts)
	assert.Equal(t, 2, result.Total)
}

func TestApplyLocalQueryFilter(t *testing.T) {
	dataset := scenarioDataset()
	result := ApplyLocalQuery(dataset, Query{
		Page: 1, PageSize: PageSizeAll,
		Filters: map[string]any{"status": 1},
	}, demoOptions())

	for _, row := range result.List {
		assert.Equal(t, 1, row.Status)
	}
	assert.Equal(t, len(result.Filtered), result.Total)
}

// 稳定排序：排序键相同的行保持过滤后的相对顺序
func TestApplyLocalQuerySortStability(t *testing.T) {
	dataset := []demoRow{
		{Name: "a", Score: 1},
		{Name: "b", Score: 2},
		{Name: "c", Score: 1},
		{Name: "d", Score: 2},
		{Name: "e", Score: 1},
	}
	result := ApplyLocalQuery(dataset, Query{
		Page: 1, PageSize: PageSizeAll,
		Sorter: &Sorter{Field: "score", Order: OrderAsc},
	}, demoOptions())

	names := make([]string, 0, len(result.List))
	for _, row := range result.List {
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, names)
}

func TestApplyLocalQuerySortDesc(t *testing.T) {
	dataset := []demoRow{{Score: 1}, {Score: 3}, {Score: 2}}
	result := ApplyLocalQuery(dataset, Query{
		Page: 1, PageSize: PageSizeAll,
		Sorter: &Sorter{Field: "score", Order: OrderDesc},
	}, demoOptions())

	assert.Equal(t, 3, result.List[0].Score)
	assert.Equal(t, 1, result.List[2].Score)
}

// 无法识别的排序字段不报错，退化为不排序
func TestApplyLocalQueryUnknownSortField(t *testing.T) {
	dataset := []demoRow{{Name: "b"}, {Name: "a"}}
	result := ApplyLocalQuery(dataset, Query{
		Page: 1, PageSize: PageSizeAll,
		Sorter: &Sorter{Field: "nope", Order: OrderAsc},
	}, demoOptions())

	assert.Equal(t, "b", result.List[0].Name)
	assert.Equal(t, "a", result.List[1].Name)
}

// 页码超出匹配行数返回空列表，总数不变
func TestApplyLocalQueryPageBeyondEnd(t *testing.T) {
	dataset := scenarioDataset()
	result := ApplyLocalQuery(dataset, Query{Page: 99, PageSize: 10}, demoOptions())

	assert.Empty(t, result.List)
	assert.Equal(t, 25, result.Total)
}

// PageSizeAll禁用分页，整个匹配集作为一页返回
func TestApplyLocalQueryPageSizeAll(t *testing.T) {
	dataset := scenarioDataset()
	result := ApplyLocalQuery(dataset, Query{Page: 1, PageSize: PageSizeAll}, demoOptions())

	assert.Equal(t, 25, len(result.List))
}

// 纯函数：不修改数据集，相同输入产出相同结果
func TestApplyLocalQueryPurity(t *testing.T) {
	dataset := scenarioDataset()
	snapshot := append([]demoRow{}, dataset...)
	query := Query{
		Page: 1, PageSize: 10, Keyword: "lec",
		Filters: map[string]any{"status": 0},
		Sorter:  &Sorter{Field: "name", Order: OrderDesc},
	}

	first := ApplyLocalQuery(dataset, query, demoOptions())
	second := ApplyLocalQuery(dataset, query, demoOptions())

	assert.Equal(t, snapshot, dataset)
	assert.Equal(t, first, second)
}

// 属性：任意数据集和查询下 total == len(filtered)，
// 且 list 总是 filtered 的连续切片
func TestApplyLocalQueryTotalProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 60).Draw(t, "n")
		dataset := make([]demoRow, n)
		for i := range dataset {
			dataset[i] = demoRow{
				Name:   rapid.SampledFrom([]string{"lec-a", "lec-b", "act-a", "act-b"}).Draw(t, "name"),
				Status: rapid.IntRange(0, 2).Draw(t, "status"),
				Score:  rapid.IntRange(0, 9).Draw(t, "score"),
			}
		}

		query := Query{
			Page:     rapid.IntRange(1, 5).Draw(t, "page"),
			PageSize: rapid.IntRange(1, 20).Draw(t, "pageSize"),
			Keyword:  rapid.SampledFrom([]string{"", "lec", "act", "zzz"}).Draw(t, "keyword"),
		}
		if rapid.Bool().Draw(t, "withSorter") {
			query.Sorter = &Sorter{
				Field: rapid.SampledFrom([]string{"name", "score"}).Draw(t, "field"),
				Order: rapid.SampledFrom([]string{OrderAsc, OrderDesc}).Draw(t, "order"),
			}
		}

		result := ApplyLocalQuery(dataset, query, demoOptions())

		if result.Total != len(result.Filtered) {
			t.Fatalf("total应等于filtered长度: total=%d filtered=%d", result.Total, len(result.Filtered))
		}
		if len(result.List) > query.PageSize {
			t.Fatalf("单页行数超过页大小: %d > %d", len(result.List), query.PageSize)
		}
		start := (query.Page - 1) * query.PageSize
		if start < len(result.Filtered) {
			expect := result.Filtered[start:min(start+query.PageSize, len(result.Filtered))]
			if len(expect) != len(result.List) {
				t.Fatalf("list应为filtered的对应分页切片")
			}
		} else if len(result.List) != 0 {
			t.Fatalf("页码越界时list应为空")
		}
	})
}
