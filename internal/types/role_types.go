package types

import (
	"huodong/admin/common/types"
)

// RoleRef 角色引用
type RoleRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// RoleInfo 角色信息
type RoleInfo struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Code        string         `json:"code"`
	Sort        int            `json:"sort"`
	Status      int8           `json:"status"`
	Remark      string         `json:"remark"`
	ResourceIDs []uint         `json:"resourceIds"`
	CreatedAt   types.DateTime `json:"createdAt"`
	UpdatedAt   types.DateTime `json:"updatedAt"`
}

// CreateRoleRequest 创建角色请求
type CreateRoleRequest struct {
	Name   string `json:"name" validate:"required"`
	Code   string `json:"code" validate:"required"`
	Sort   int    `json:"sort"`
	Remark string `json:"remark"`
}

// UpdateRoleRequest 更新角色请求
type UpdateRoleRequest struct {
	ID     uint   `json:"id" validate:"required"`
	Name   string `json:"name"`
	Sort   int    `json:"sort"`
	Status int8   `json:"status"`
	Remark string `json:"remark"`
}

// ListRolesRequest 角色列表请求
type ListRolesRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Keyword  string `json:"keyword"`
	Status   *int8  `json:"status"`
}

// AssignResourcesRequest 分配资源请求
type AssignResourcesRequest struct {
	RoleID      uint   `json:"roleId" validate:"required"`
	ResourceIDs []uint `json:"resourceIds"`
}
