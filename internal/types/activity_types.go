package types

import (
	"huodong/admin/common/types"
	"huodong/admin/pkg/table"
)

// ActivityInfo 活动信息
type ActivityInfo struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Type        int8           `json:"type"`
	Speaker     string         `json:"speaker"`
	Location    string         `json:"location"`
	StartAt     types.DateTime `json:"startAt"`
	EndAt       types.DateTime `json:"endAt"`
	Capacity    int            `json:"capacity"`
	Registered  int            `json:"registered"` // 有效报名数（待审批+已通过）
	Status      int8           `json:"status"`
	Description string         `json:"description"`
	CreatedBy   uint           `json:"createdBy"`
	CreatedAt   types.DateTime `json:"createdAt"`
	UpdatedAt   types.DateTime `json:"updatedAt"`
}

// CreateActivityRequest 创建活动请求
type CreateActivityRequest struct {
	Title       string         `json:"title" validate:"required"`
	Type        int8           `json:"type" validate:"required"`
	Speaker     string         `json:"speaker"`
	Location    string         `json:"location"`
	StartAt     types.DateTime `json:"startAt"`
	EndAt       types.DateTime `json:"endAt"`
	Capacity    int            `json:"capacity"`
	Description string         `json:"description"`
}

// UpdateActivityRequest 更新活动请求
type UpdateActivityRequest struct {
	ID          uint           `json:"id" validate:"required"`
	Title       string         `json:"title"`
	Type        int8           `json:"type"`
	Speaker     string         `json:"speaker"`
	Location    string         `json:"location"`
	StartAt     types.DateTime `json:"startAt"`
	EndAt       types.DateTime `json:"endAt"`
	Capacity    int            `json:"capacity"`
	Description string         `json:"description"`
}

// ListActivitiesRequest 活动列表请求。
// Refresh为true时跳过请求合并，强制重新拉取
type ListActivitiesRequest struct {
	Page      int    `json:"page" query:"page"`
	PageSize  int    `json:"pageSize" query:"pageSize"`
	Keyword   string `json:"keyword" query:"keyword"`
	Type      *int8  `json:"type" query:"type"`
	Status    *int8  `json:"status" query:"status"`
	SortField string `json:"sortField" query:"sortField"`
	SortOrder string `json:"sortOrder" query:"sortOrder"`
	Refresh   bool   `json:"refresh" query:"refresh"`
}

// ToQuery 转换为表格查询参数
func (r *ListActivitiesRequest) ToQuery() table.Query {
	q := table.Query{
		Page:     r.Page,
		PageSize: r.PageSize,
		Keyword:  r.Keyword,
	}
	filters := map[string]any{}
	if r.Type != nil {
		filters["type"] = *r.Type
	}
	if r.Status != nil {
		filters["status"] = *r.Status
	}
	if len(filters) > 0 {
		q.Filters = filters
	}
	if r.SortField != "" {
		q.Sorter = &table.Sorter{Field: r.SortField, Order: r.SortOrder}
	}
	return q.Normalize()
}
