package logic

import (
	"huodong/admin/internal/model"
	"huodong/admin/internal/types"

	"gorm.io/gorm"
)

// LogLogic 日志逻辑
type LogLogic struct {
	db *gorm.DB
}

// NewLogLogic 创建日志逻辑
func NewLogLogic(db *gorm.DB) *LogLogic {
	return &LogLogic{db: db}
}

// ListLoginLogs 登录日志列表
func (l *LogLogic) ListLoginLogs(req *types.ListLoginLogsRequest) ([]*model.LoginLog, int64, error) {
	db := l.db.Model(&model.LoginLog{})
	if req.Username != "" {
		db = db.Where("username LIKE ?", "%"+req.Username+"%")
	}
	if req.Status != nil {
		db = db.Where("status = ?", *req.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	var logs []*model.LoginLog
	if err := db.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// ListOperationLogs 操作日志列表
func (l *LogLogic) ListOperationLogs(req *types.ListOperationLogsRequest) ([]*model.OperationLog, int64, error) {
	db := l.db.Model(&model.OperationLog{})
	if req.Username != "" {
		db = db.Where("username LIKE ?", "%"+req.Username+"%")
	}
	if req.Module != "" {
		db = db.Where("module = ?", req.Module)
	}
	if req.Status != nil {
		db = db.Where("status = ?", *req.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	var logs []*model.OperationLog
	if err := db.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
