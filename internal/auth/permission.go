package auth

import (
	"huodong/admin/common/utils"
	"huodong/admin/internal/model"

	"gorm.io/gorm"
)

// PermissionService 权限服务
type PermissionService struct {
	db *gorm.DB
}

// NewPermissionService 创建权限服务
func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// GetUserRoleCodes 获取用户角色编码列表
func (s *PermissionService) GetUserRoleCodes(userID uint) ([]string, error) {
	var roleIDs []uint
	if err := s.db.Model(&model.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error; err != nil {
		return nil, err
	}
	if len(roleIDs) == 0 {
		return []string{}, nil
	}

	var codes []string
	err := s.db.Model(&model.Role{}).
		Where("id IN ? AND status = 1", roleIDs).
		Pluck("code", &codes).Error
	return codes, err
}

// GetUserPermissions 获取用户权限标识列表
func (s *PermissionService) GetUserPermissions(userID uint) ([]string, error) {
	var roleIDs []uint
	if err := s.db.Model(&model.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error; err != nil {
		return nil, err
	}
	if len(roleIDs) == 0 {
		return []string{}, nil
	}

	var resourceIDs []uint
	if err := s.db.Model(&model.RoleResource{}).
		Where("role_id IN ?", roleIDs).
		Pluck("resource_id", &resourceIDs).Error; err != nil {
		return nil, err
	}
	if len(resourceIDs) == 0 {
		return []string{}, nil
	}

	var permissions []string
	err := s.db.Model(&model.Resource{}).
		Where("id IN ? AND code != '' AND status = 1", resourceIDs).
		Pluck("code", &permissions).Error
	if err != nil {
		return nil, err
	}
	return utils.SliceUnique(permissions), nil
}

// HasAnyRole 判断用户是否拥有任一角色
func (s *PermissionService) HasAnyRole(userID uint, roles ...string) (bool, error) {
	owned, err := s.GetUserRoleCodes(userID)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if utils.SliceContains(owned, r) {
			return true, nil
		}
	}
	return false, nil
}

// HasAnyPermission 判断用户是否拥有任一权限。
// admin角色拥有所有权限
func (s *PermissionService) HasAnyPermission(userID uint, permissions ...string) (bool, error) {
	roles, err := s.GetUserRoleCodes(userID)
	if err != nil {
		return false, err
	}
	if utils.SliceContains(roles, "admin") {
		return true, nil
	}

	owned, err := s.GetUserPermissions(userID)
	if err != nil {
		return false, err
	}
	for _, p := range permissions {
		if utils.SliceContains(owned, p) {
			return true, nil
		}
	}
	return false, nil
}
