package table

import (
	"fmt"
	"sort"
	"strings"
)

// Options 按业务域注入的本地查询策略，不使用继承，只按调用传参。
// 三个函数均可为nil，nil表示对应阶段直接放行：
//   - SearchTexts 返回参与关键字匹配的文本列表
//   - MatchFilters 判断行是否满足过滤条件，空过滤值应视为放行
//   - SortValue 返回排序键，数字按数值比较，其余按字符串比较，
//     无法识别的字段返回nil即可，不会导致报错
type Options[T any] struct {
	SearchTexts  func(row T) []string
	MatchFilters func(row T, filters map[string]any) bool
	SortValue    func(row T, sorter Sorter) any
}

// LocalResult 本地查询结果。
// Filtered为搜索+过滤+排序后、分页前的全部匹配行，是Total和导出的数据基础
type LocalResult[T any] struct {
	List     []T `json:"list"`
	Filtered []T `json:"-"`
	Total    int `json:"total"`
}

// ApplyLocalQuery 对内存数据集按 搜索→过滤→排序→分页 的固定顺序做本地组合查询。
// 纯函数：不修改dataset，相同输入产出相同结果；
// 排序是稳定排序，等值行保持过滤后的相对顺序；
// 页码超出匹配行数时返回空列表而非错误
func ApplyLocalQuery[T any](dataset []T, query Query, opts Options[T]) LocalResult[T] {
	query = query.Normalize()

	// 搜索
	matched := make([]T, 0, len(dataset))
	keyword := strings.ToLower(strings.TrimSpace(query.Keyword))
	for _, row := range dataset {
		if keyword != "" && opts.SearchTexts != nil {
			if !matchKeyword(opts.SearchTexts(row), keyword) {
				continue
			}
		}
		// 过滤
		if len(query.Filters) > 0 && opts.MatchFilters != nil {
			if !opts.MatchFilters(row, query.Filters) {
				continue
			}
		}
		matched = append(matched, row)
	}

	// 排序
	if query.Sorter != nil && opts.SortValue != nil {
		sorter := *query.Sorter
		desc := sorter.Order == OrderDesc
		sort.SliceStable(matched, func(i, j int) bool {
			less := compareSortValues(opts.SortValue(matched[i], sorter), opts.SortValue(matched[j], sorter))
			if desc {
				return less > 0
			}
			return less < 0
		})
	}

	// 分页
	list := paginate(matched, query.Page, query.PageSize)

	return LocalResult[T]{
		List:     list,
		Filtered: matched,
		Total:    len(matched),
	}
}

// matchKeyword 任一文本包含关键字即命中，大小写不敏感
func matchKeyword(texts []string, keyword string) bool {
	for _, text := range texts {
		if strings.Contains(strings.ToLower(text), keyword) {
			return true
		}
	}
	return false
}

// compareSortValues 比较两个排序键，返回-1/0/1。
// 两边都是数字时按数值比较，否则按字符串比较；nil视为相等的最小值
func compareSortValues(a, b any) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as := toSortString(a)
	bs := toSortString(b)
	return strings.Compare(as, bs)
}

// toFloat 数字类型统一转float64
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// toSortString 非数字排序键转字符串，nil转为空串
func toSortString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// paginate 切片分页，越界时返回空页
func paginate[T any](rows []T, page, pageSize int) []T {
	if pageSize == PageSizeAll {
		out := make([]T, len(rows))
		copy(out, rows)
		return out
	}

	// (page-1)*pageSize 防溢出
	start := page - 1
	if start > len(rows)/pageSize {
		return []T{}
	}
	start *= pageSize
	end := start + pageSize
	if start >= len(rows) {
		return []T{}
	}
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]T, end-start)
	copy(out, rows[start:end])
	return out
}
