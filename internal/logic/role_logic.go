package logic

import (
	"errors"

	"huodong/admin/internal/model"
	"huodong/admin/internal/types"

	"gorm.io/gorm"
)

// RoleLogic 角色逻辑
type RoleLogic struct {
	db *gorm.DB
}

// NewRoleLogic 创建角色逻辑
func NewRoleLogic(db *gorm.DB) *RoleLogic {
	return &RoleLogic{db: db}
}

// ListRoles 角色列表
func (l *RoleLogic) ListRoles(req *types.ListRolesRequest) ([]*types.RoleInfo, int64, error) {
	db := l.db.Model(&model.Role{})
	if req.Keyword != "" {
		kw := "%" + req.Keyword + "%"
		db = db.Where("name LIKE ? OR code LIKE ?", kw, kw)
	}
	if req.Status != nil {
		db = db.Where("status = ?", *req.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	var roles []*model.Role
	if err := db.Order("sort, id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&roles).Error; err != nil {
		return nil, 0, err
	}

	infos := types.ToRoleInfoList(roles)
	for _, info := range infos {
		var resourceIDs []uint
		l.db.Model(&model.RoleResource{}).
			Where("role_id = ?", info.ID).
			Pluck("resource_id", &resourceIDs)
		info.ResourceIDs = resourceIDs
	}
	return infos, total, nil
}

// AllRoles 全部启用角色，下拉选择用
func (l *RoleLogic) AllRoles() ([]*types.RoleInfo, error) {
	var roles []*model.Role
	if err := l.db.Where("status = 1").Order("sort, id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return types.ToRoleInfoList(roles), nil
}

// CreateRole 创建角色
func (l *RoleLogic) CreateRole(req *types.CreateRoleRequest) (*types.RoleInfo, error) {
	var count int64
	l.db.Model(&model.Role{}).Where("code = ?", req.Code).Count(&count)
	if count > 0 {
		return nil, errors.New("角色编码已存在")
	}

	role := &model.Role{
		Name:   req.Name,
		Code:   req.Code,
		Sort:   req.Sort,
		Status: 1,
		Remark: req.Remark,
	}
	if err := l.db.Create(role).Error; err != nil {
		return nil, err
	}
	return types.ToRoleInfo(role), nil
}

// UpdateRole 更新角色，角色编码创建后不可修改
func (l *RoleLogic) UpdateRole(req *types.UpdateRoleRequest) error {
	var role model.Role
	if err := l.db.First(&role, req.ID).Error; err != nil {
		return errors.New("角色不存在")
	}
	if role.Code == "admin" && req.Status == 0 {
		return errors.New("超级管理员角色不能禁用")
	}

	return l.db.Model(&role).Updates(map[string]any{
		"name":   req.Name,
		"sort":   req.Sort,
		"status": req.Status,
		"remark": req.Remark,
	}).Error
}

// DeleteRole 删除角色
func (l *RoleLogic) DeleteRole(id uint) error {
	var role model.Role
	if err := l.db.First(&role, id).Error; err != nil {
		return errors.New("角色不存在")
	}
	if role.Code == "admin" {
		return errors.New("超级管理员角色不能删除")
	}

	var count int64
	l.db.Model(&model.UserRole{}).Where("role_id = ?", id).Count(&count)
	if count > 0 {
		return errors.New("角色已分配给用户，不能删除")
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&model.RoleResource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&role).Error
	})
}

// AssignResources 分配角色资源
func (l *RoleLogic) AssignResources(req *types.AssignResourcesRequest) error {
	var role model.Role
	if err := l.db.First(&role, req.RoleID).Error; err != nil {
		return errors.New("角色不存在")
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", req.RoleID).Delete(&model.RoleResource{}).Error; err != nil {
			return err
		}
		if len(req.ResourceIDs) == 0 {
			return nil
		}
		relations := make([]model.RoleResource, 0, len(req.ResourceIDs))
		for _, rid := range req.ResourceIDs {
			relations = append(relations, model.RoleResource{RoleID: req.RoleID, ResourceID: rid})
		}
		return tx.Create(&relations).Error
	})
}
