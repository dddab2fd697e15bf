package types

import (
	"huodong/admin/common/types"
	"huodong/admin/pkg/table"
)

// RegistrationInfo 报名信息
type RegistrationInfo struct {
	ID            uint            `json:"id"`
	ActivityID    uint            `json:"activityId"`
	ActivityTitle string          `json:"activityTitle"`
	UserID        uint            `json:"userId"`
	Username      string          `json:"username"`
	Nickname      string          `json:"nickname"`
	Phone         string          `json:"phone"`
	Status        int8            `json:"status"`
	Reason        string          `json:"reason"`
	ApprovedBy    uint            `json:"approvedBy"`
	ApprovedAt    *types.DateTime `json:"approvedAt"`
	Remark        string          `json:"remark"`
	CreatedAt     types.DateTime  `json:"createdAt"`
}

// CreateRegistrationRequest 创建报名请求（管理员代报名）
type CreateRegistrationRequest struct {
	ActivityID uint   `json:"activityId" validate:"required"`
	UserID     uint   `json:"userId" validate:"required"`
	Remark     string `json:"remark"`
}

// ListRegistrationsRequest 报名列表请求。
// ActivityID限定查询范围；Refresh为true时跳过请求合并，强制重新拉取
type ListRegistrationsRequest struct {
	ActivityID uint   `json:"activityId" query:"activityId" validate:"required"`
	Page       int    `json:"page" query:"page"`
	PageSize   int    `json:"pageSize" query:"pageSize"`
	Keyword    string `json:"keyword" query:"keyword"`
	Status     *int8  `json:"status" query:"status"`
	SortField  string `json:"sortField" query:"sortField"`
	SortOrder  string `json:"sortOrder" query:"sortOrder"`
	Refresh    bool   `json:"refresh" query:"refresh"`
}

// ToQuery 转换为表格查询参数，活动ID并入过滤条件
func (r *ListRegistrationsRequest) ToQuery() table.Query {
	q := table.Query{
		Page:     r.Page,
		PageSize: r.PageSize,
		Keyword:  r.Keyword,
		Filters:  map[string]any{"activityId": r.ActivityID},
	}
	if r.Status != nil {
		q.Filters["status"] = *r.Status
	}
	if r.SortField != "" {
		q.Sorter = &table.Sorter{Field: r.SortField, Order: r.SortOrder}
	}
	return q.Normalize()
}

// ReviewRegistrationRequest 审批报名请求，支持批量
type ReviewRegistrationRequest struct {
	IDs    []uint `json:"ids" validate:"required"`
	Reason string `json:"reason"`
}
