package model

// Dept 部门模型
type Dept struct {
	BaseModel
	ParentID uint   `gorm:"default:0" json:"parentId"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Code     string `gorm:"size:50" json:"code"`
	Leader   string `gorm:"size:50" json:"leader"`
	Phone    string `gorm:"size:20" json:"phone"`
	Sort     int    `gorm:"default:0" json:"sort"`
	Status   int8   `gorm:"default:1" json:"status"` // 0:禁用 1:启用
}

// TableName 表名
func (Dept) TableName() string {
	return "sys_dept"
}
