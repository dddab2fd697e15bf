package types

import (
	"huodong/admin/common/types"
)

// DeptInfo 部门信息
type DeptInfo struct {
	ID        uint           `json:"id"`
	ParentID  uint           `json:"parentId"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Leader    string         `json:"leader"`
	Phone     string         `json:"phone"`
	Sort      int            `json:"sort"`
	Status    int8           `json:"status"`
	CreatedAt types.DateTime `json:"createdAt"`
	UpdatedAt types.DateTime `json:"updatedAt"`
}

// DeptTreeInfo 部门树节点
type DeptTreeInfo struct {
	DeptInfo
	Children []DeptTreeInfo `json:"children,omitempty"`
}

// CreateDeptRequest 创建部门请求
type CreateDeptRequest struct {
	ParentID uint   `json:"parentId"`
	Name     string `json:"name" validate:"required"`
	Leader   string `json:"leader"`
	Phone    string `json:"phone"`
	Sort     int    `json:"sort"`
}

// UpdateDeptRequest 更新部门请求
type UpdateDeptRequest struct {
	ID       uint   `json:"id" validate:"required"`
	ParentID uint   `json:"parentId"`
	Name     string `json:"name"`
	Leader   string `json:"leader"`
	Phone    string `json:"phone"`
	Sort     int    `json:"sort"`
	Status   int8   `json:"status"`
}
