package logic

import (
	"errors"

	"huodong/admin/internal/model"
	"huodong/admin/internal/types"

	"gorm.io/gorm"
)

// DeptLogic 部门逻辑
type DeptLogic struct {
	db *gorm.DB
}

// NewDeptLogic 创建部门逻辑
func NewDeptLogic(db *gorm.DB) *DeptLogic {
	return &DeptLogic{db: db}
}

// DeptTree 部门树
func (l *DeptLogic) DeptTree() ([]types.DeptTreeInfo, error) {
	var depts []*model.Dept
	if err := l.db.Order("sort, id").Find(&depts).Error; err != nil {
		return nil, err
	}
	return types.BuildDeptTree(depts, 0), nil
}

// CreateDept 创建部门
func (l *DeptLogic) CreateDept(req *types.CreateDeptRequest) (*types.DeptInfo, error) {
	if req.ParentID > 0 {
		var count int64
		l.db.Model(&model.Dept{}).Where("id = ?", req.ParentID).Count(&count)
		if count == 0 {
			return nil, errors.New("上级部门不存在")
		}
	}

	dept := &model.Dept{
		ParentID: req.ParentID,
		Name:     req.Name,
		Leader:   req.Leader,
		Phone:    req.Phone,
		Sort:     req.Sort,
		Status:   1,
	}
	if err := l.db.Create(dept).Error; err != nil {
		return nil, err
	}
	return types.ToDeptInfo(dept), nil
}

// UpdateDept 更新部门
func (l *DeptLogic) UpdateDept(req *types.UpdateDeptRequest) error {
	var dept model.Dept
	if err := l.db.First(&dept, req.ID).Error; err != nil {
		return errors.New("部门不存在")
	}
	if req.ParentID == req.ID {
		return errors.New("上级部门不能是自身")
	}

	return l.db.Model(&dept).Updates(map[string]any{
		"parent_id": req.ParentID,
		"name":      req.Name,
		"leader":    req.Leader,
		"phone":     req.Phone,
		"sort":      req.Sort,
		"status":    req.Status,
	}).Error
}

// DeleteDept 删除部门
func (l *DeptLogic) DeleteDept(id uint) error {
	var count int64
	l.db.Model(&model.Dept{}).Where("parent_id = ?", id).Count(&count)
	if count > 0 {
		return errors.New("存在下级部门，不能删除")
	}
	l.db.Model(&model.User{}).Where("dept_id = ?", id).Count(&count)
	if count > 0 {
		return errors.New("部门下存在用户，不能删除")
	}
	return l.db.Delete(&model.Dept{}, id).Error
}
