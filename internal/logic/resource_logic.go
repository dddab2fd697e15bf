package logic

import (
	"errors"

	"huodong/admin/internal/model"
	"huodong/admin/internal/svc"
	"huodong/admin/internal/types"

	"gorm.io/gorm"
)

// ResourceLogic 资源逻辑
type ResourceLogic struct {
	db *gorm.DB
}

// NewResourceLogic 创建资源逻辑
func NewResourceLogic(db *gorm.DB) *ResourceLogic {
	return &ResourceLogic{db: db}
}

// ResourceTree 全量资源树，资源管理页用
func (l *ResourceLogic) ResourceTree() ([]types.ResourceTreeInfo, error) {
	var resources []*model.Resource
	if err := l.db.Order("sort, id").Find(&resources).Error; err != nil {
		return nil, err
	}
	return types.BuildResourceTree(resources, 0), nil
}

// UserMenus 当前用户可见的菜单树（目录+菜单，不含按钮）
func (l *ResourceLogic) UserMenus(userID uint) ([]types.ResourceTreeInfo, error) {
	roles, err := svc.Ctx.Permission.GetUserRoleCodes(userID)
	if err != nil {
		return nil, err
	}

	db := l.db.Where("type IN ? AND status = 1", []int8{model.ResourceTypeDir, model.ResourceTypeMenu})
	isAdmin := false
	for _, r := range roles {
		if r == "admin" {
			isAdmin = true
			break
		}
	}
	if !isAdmin {
		ids, err := l.userResourceIDs(userID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []types.ResourceTreeInfo{}, nil
		}
		db = db.Where("id IN ?", ids)
	}

	var resources []*model.Resource
	if err := db.Order("sort, id").Find(&resources).Error; err != nil {
		return nil, err
	}
	return types.BuildResourceTree(resources, 0), nil
}

// UserPermissions 当前用户的权限标识列表，前端按钮级控制用
func (l *ResourceLogic) UserPermissions(userID uint) ([]string, error) {
	roles, err := svc.Ctx.Permission.GetUserRoleCodes(userID)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if r == "admin" {
			return []string{"*"}, nil
		}
	}
	return svc.Ctx.Permission.GetUserPermissions(userID)
}

// CreateResource 创建资源
func (l *ResourceLogic) CreateResource(req *types.CreateResourceRequest) (*types.ResourceInfo, error) {
	if req.ParentID > 0 {
		var count int64
		l.db.Model(&model.Resource{}).Where("id = ?", req.ParentID).Count(&count)
		if count == 0 {
			return nil, errors.New("上级资源不存在")
		}
	}

	resource := &model.Resource{
		ParentID:  req.ParentID,
		Name:      req.Name,
		Code:      req.Code,
		Type:      req.Type,
		Path:      req.Path,
		Component: req.Component,
		Icon:      req.Icon,
		Sort:      req.Sort,
		IsHidden:  req.IsHidden,
		Status:    1,
	}
	if err := l.db.Create(resource).Error; err != nil {
		return nil, err
	}
	return types.ToResourceInfo(resource), nil
}

// UpdateResource 更新资源
func (l *ResourceLogic) UpdateResource(req *types.UpdateResourceRequest) error {
	var resource model.Resource
	if err := l.db.First(&resource, req.ID).Error; err != nil {
		return errors.New("资源不存在")
	}
	if req.ParentID == req.ID {
		return errors.New("上级资源不能是自身")
	}

	return l.db.Model(&resource).Updates(map[string]any{
		"parent_id": req.ParentID,
		"name":      req.Name,
		"code":      req.Code,
		"type":      req.Type,
		"path":      req.Path,
		"component": req.Component,
		"icon":      req.Icon,
		"sort":      req.Sort,
		"is_hidden": req.IsHidden,
		"status":    req.Status,
	}).Error
}

// DeleteResource 删除资源
func (l *ResourceLogic) DeleteResource(id uint) error {
	var count int64
	l.db.Model(&model.Resource{}).Where("parent_id = ?", id).Count(&count)
	if count > 0 {
		return errors.New("存在下级资源，不能删除")
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resource_id = ?", id).Delete(&model.RoleResource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Resource{}, id).Error
	})
}

// userResourceIDs 用户通过角色关联到的资源ID
func (l *ResourceLogic) userResourceIDs(userID uint) ([]uint, error) {
	var roleIDs []uint
	if err := l.db.Model(&model.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error; err != nil {
		return nil, err
	}
	if len(roleIDs) == 0 {
		return nil, nil
	}
	var resourceIDs []uint
	err := l.db.Model(&model.RoleResource{}).
		Where("role_id IN ?", roleIDs).
		Pluck("resource_id", &resourceIDs).Error
	return resourceIDs, err
}
