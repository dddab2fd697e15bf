package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"huodong/admin/common/utils"
)

// ErrExportBusy 已有导出在进行中，本次调用不做任何事
var ErrExportBusy = errors.New("导出进行中")

// utf8BOM Excel识别UTF-8编码需要的BOM前缀
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportFile 导出产物：文件名与CSV内容
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Accessor 按列key从行中取值，返回nil输出空单元格
type Accessor[T any] func(row T, key string) any

// Exporter 表格导出引擎。
// 输入为分页前的全部匹配行与可见有序列，输出CSV：
// RFC4180引号转义(encoding/csv)，UTF-8带BOM，表头取列标题，
// 文件名为 <base>_<yyyyMMddHHmmss>.csv。
// exporting忙标志保证重复触发时后到的调用直接返回ErrExportBusy
type Exporter[T any] struct {
	exporting atomic.Bool
}

// NewExporter 创建导出引擎
func NewExporter[T any]() *Exporter[T] {
	return &Exporter[T]{}
}

// Exporting 是否有导出在进行中
func (e *Exporter[T]) Exporting() bool {
	return e.exporting.Load()
}

// Export 导出CSV。rows应为分页前的Filtered集合，columns为可见有序列；
// accessor为nil时按JSON字段名直接读取（列key须与json tag一致）
func (e *Exporter[T]) Export(base string, columns []ColumnPreset, rows []T, accessor Accessor[T]) (*ExportFile, error) {
	if !e.exporting.CompareAndSwap(false, true) {
		return nil, ErrExportBusy
	}
	defer e.exporting.Store(false)

	if len(columns) == 0 {
		return nil, errors.New("没有可导出的列")
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	// 表头
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Title
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	// 数据行
	record := make([]string, len(columns))
	for _, row := range rows {
		values, err := rowValues(row, columns, accessor)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			record[i] = cellString(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("%s_%s.csv", base, time.Now().Format("20060102150405")),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// rowValues 取一行中各可见列的值，默认按JSON字段名读取
func rowValues[T any](row T, columns []ColumnPreset, accessor Accessor[T]) ([]any, error) {
	values := make([]any, len(columns))
	if accessor != nil {
		for i, col := range columns {
			values[i] = accessor(row, col.Key)
		}
		return values, nil
	}

	fields, err := utils.ToMap(row)
	if err != nil {
		return nil, err
	}
	for i, col := range columns {
		values[i] = fields[col.Key]
	}
	return values, nil
}

// cellString 单元格取值转字符串，非基本类型序列化为JSON
func cellString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(value)
	default:
		s, err := utils.ToJSON(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return s
	}
}
