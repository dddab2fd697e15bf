package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportRow struct {
	Name   string   `json:"name"`
	Status int      `json:"status"`
	Tags   []string `json:"tags"`
}

func exportColumns() []ColumnPreset {
	return []ColumnPreset{
		{Key: "name", Title: "名称"},
		{Key: "status", Title: "状态"},
	}
}

func TestExportCSV(t *testing.T) {
	e := NewExporter[exportRow]()
	rows := []exportRow{
		{Name: "Go讲座", Status: 1},
		{Name: "年度, \"总结\"", Status: 0},
	}

	file, err := e.Export("activities", exportColumns(), rows, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(file.Filename, "activities_"))
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	// UTF-8 BOM前缀
	require.True(t, len(file.Data) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, file.Data[:3])

	body := string(file.Data[3:])
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "名称,状态", lines[0])
	assert.Equal(t, "Go讲座,1", lines[1])
	// RFC4180：内嵌逗号和引号的字段整体加引号，引号翻倍
	assert.Equal(t, `"年度, ""总结""",0`, lines[2])
}

// 默认取值器按JSON字段名读取，非基本类型序列化为JSON字符串
func TestExportNonPrimitiveValues(t *testing.T) {
	e := NewExporter[exportRow]()
	columns := append(exportColumns(), ColumnPreset{Key: "tags", Title: "标签"})
	rows := []exportRow{{Name: "a", Status: 1, Tags: []string{"x", "y"}}}

	file, err := e.Export("demo", columns, rows, nil)
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), `"[""x"",""y""]"`)
}

// 自定义取值器优先于默认字段读取
func TestExportCustomAccessor(t *testing.T) {
	e := NewExporter[exportRow]()
	rows := []exportRow{{Name: "a", Status: 1}}

	file, err := e.Export("demo", exportColumns(), rows, func(row exportRow, key string) any {
		if key == "status" {
			if row.Status == 1 {
				return "启用"
			}
			return "禁用"
		}
		return row.Name
	})
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), "启用")
}

// 导出进行中时重复触发直接返回ErrExportBusy
func TestExportBusy(t *testing.T) {
	e := NewExporter[exportRow]()
	e.exporting.Store(true)

	file, err := e.Export("demo", exportColumns(), nil, nil)
	assert.Nil(t, file)
	assert.ErrorIs(t, err, ErrExportBusy)

	// 忙标志释放后可以再次导出
	e.exporting.Store(false)
	_, err = e.Export("demo", exportColumns(), nil, nil)
	assert.NoError(t, err)
}

func TestExportNoColumns(t *testing.T) {
	e := NewExporter[exportRow]()
	_, err := e.Export("demo", nil, nil, nil)
	assert.Error(t, err)
	// 失败后忙标志已释放
	assert.False(t, e.Exporting())
}
