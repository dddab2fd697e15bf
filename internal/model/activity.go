package model

import (
	"huodong/admin/common/types"
)

// 活动类型
const (
	ActivityTypeLecture  = 1 // 讲座
	ActivityTypeActivity = 2 // 活动
)

// 活动状态
const (
	ActivityStatusDraft     = 0 // 草稿
	ActivityStatusPublished = 1 // 已发布
	ActivityStatusClosed    = 2 // 已关闭
)

// Activity 活动/讲座模型
type Activity struct {
	BaseModel
	Title       string         `gorm:"size:200;not null" json:"title"`
	Type        int8           `gorm:"default:1;index" json:"type"`
	Speaker     string         `gorm:"size:50" json:"speaker"`
	Location    string         `gorm:"size:200" json:"location"`
	StartAt     types.DateTime `json:"startAt"`
	EndAt       types.DateTime `json:"endAt"`
	Capacity    int            `gorm:"default:0" json:"capacity"` // 0表示不限人数
	Status      int8           `gorm:"default:0;index" json:"status"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedBy   uint           `json:"createdBy"`
}

// TableName 表名
func (Activity) TableName() string {
	return "biz_activity"
}
