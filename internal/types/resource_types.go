package types

import (
	"huodong/admin/common/types"
)

// ResourceInfo 资源信息
type ResourceInfo struct {
	ID        uint           `json:"id"`
	ParentID  uint           `json:"parentId"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Type      int8           `json:"type"`
	Path      string         `json:"path"`
	Component string         `json:"component"`
	Icon      string         `json:"icon"`
	Sort      int            `json:"sort"`
	IsHidden  bool           `json:"isHidden"`
	Status    int8           `json:"status"`
	CreatedAt types.DateTime `json:"createdAt"`
	UpdatedAt types.DateTime `json:"updatedAt"`
}

// ResourceTreeInfo 资源树节点
type ResourceTreeInfo struct {
	ResourceInfo
	Children []ResourceTreeInfo `json:"children,omitempty"`
}

// CreateResourceRequest 创建资源请求
type CreateResourceRequest struct {
	ParentID  uint   `json:"parentId"`
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code"`
	Type      int8   `json:"type" validate:"required"`
	Path      string `json:"path"`
	Component string `json:"component"`
	Icon      string `json:"icon"`
	Sort      int    `json:"sort"`
	IsHidden  bool   `json:"isHidden"`
}

// UpdateResourceRequest 更新资源请求
type UpdateResourceRequest struct {
	ID        uint   `json:"id" validate:"required"`
	ParentID  uint   `json:"parentId"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Type      int8   `json:"type"`
	Path      string `json:"path"`
	Component string `json:"component"`
	Icon      string `json:"icon"`
	Sort      int    `json:"sort"`
	IsHidden  bool   `json:"isHidden"`
	Status    int8   `json:"status"`
}
