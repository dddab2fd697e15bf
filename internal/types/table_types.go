package types

import (
	"huodong/admin/pkg/table"
)

// TableLayoutResponse 表格布局响应，列已按持久化偏好合并
type TableLayoutResponse struct {
	TableKey string               `json:"tableKey"`
	Columns  []table.ColumnPreset `json:"columns"`
}

// SetColumnWidthRequest 设置列宽请求
type SetColumnWidthRequest struct {
	TableKey string `json:"tableKey" validate:"required"`
	Key      string `json:"key" validate:"required"`
	Width    int    `json:"width" validate:"required"`
}

// SetVisibleColumnsRequest 设置可见列请求，未列出的列隐藏
type SetVisibleColumnsRequest struct {
	TableKey string   `json:"tableKey" validate:"required"`
	Keys     []string `json:"keys"`
}

// SetColumnOrderRequest 设置列顺序请求
type SetColumnOrderRequest struct {
	TableKey string   `json:"tableKey" validate:"required"`
	Keys     []string `json:"keys"`
}

// ResetLayoutRequest 重置布局请求
type ResetLayoutRequest struct {
	TableKey string `json:"tableKey" validate:"required"`
}
