package store

import (
	"context"
	"errors"

	"huodong/admin/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLayoutStorage 基于数据库的表格布局存储，一个bizKey对应一行
type GormLayoutStorage struct {
	db *gorm.DB
}

// NewGormLayoutStorage 创建数据库布局存储
func NewGormLayoutStorage(db *gorm.DB) *GormLayoutStorage {
	return &GormLayoutStorage{db: db}
}

// Get 读取布局数据，无记录时返回nil
func (s *GormLayoutStorage) Get(ctx context.Context, bizKey string) ([]byte, error) {
	var layout model.TableLayout
	err := s.db.WithContext(ctx).
		Where("biz_key = ?", bizKey).
		First(&layout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(layout.Data), nil
}

// Set 写入布局数据，已存在则整体覆盖
func (s *GormLayoutStorage) Set(ctx context.Context, bizKey string, data []byte) error {
	layout := model.TableLayout{
		BizKey: bizKey,
		Data:   string(data),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "biz_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&layout).Error
}

// Del 删除布局数据
func (s *GormLayoutStorage) Del(ctx context.Context, bizKey string) error {
	return s.db.WithContext(ctx).
		Where("biz_key = ?", bizKey).
		Unscoped().
		Delete(&model.TableLayout{}).Error
}
