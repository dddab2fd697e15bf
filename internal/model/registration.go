package model

import (
	"huodong/admin/common/types"
)

// 报名状态
const (
	RegistrationStatusPending   = 0 // 待审批
	RegistrationStatusApproved  = 1 // 已通过
	RegistrationStatusRejected  = 2 // 已驳回
	RegistrationStatusCancelled = 3 // 已取消
)

// Registration 报名记录模型
type Registration struct {
	BaseModel
	ActivityID uint            `gorm:"index;not null" json:"activityId"`
	UserID     uint            `gorm:"index;not null" json:"userId"`
	Username   string          `gorm:"size:50" json:"username"`
	Nickname   string          `gorm:"size:50" json:"nickname"`
	Phone      string          `gorm:"size:20" json:"phone"`
	Status     int8            `gorm:"default:0;index" json:"status"`
	Reason     string          `gorm:"size:500" json:"reason"` // 审批意见
	ApprovedBy uint            `json:"approvedBy"`
	ApprovedAt *types.DateTime `json:"approvedAt"`
	Remark     string          `gorm:"size:500" json:"remark"`
}

// TableName 表名
func (Registration) TableName() string {
	return "biz_registration"
}
