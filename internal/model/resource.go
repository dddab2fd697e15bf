package model

// 资源类型
const (
	ResourceTypeDir    = 1 // 目录
	ResourceTypeMenu   = 2 // 菜单
	ResourceTypeButton = 3 // 按钮
)

// Resource 资源模型：菜单、目录与按钮权限
type Resource struct {
	BaseModel
	ParentID  uint   `gorm:"default:0" json:"parentId"`
	Name      string `gorm:"size:50;not null" json:"name"`
	Code      string `gorm:"size:100" json:"code"` // 权限标识，如 system:user:add
	Type      int8   `gorm:"default:1" json:"type"`
	Path      string `gorm:"size:255" json:"path"`
	Component string `gorm:"size:255" json:"component"`
	Icon      string `gorm:"size:100" json:"icon"`
	Sort      int    `gorm:"default:0" json:"sort"`
	IsHidden  bool   `gorm:"default:false" json:"isHidden"`
	Status    int8   `gorm:"default:1" json:"status"` // 0:禁用 1:启用
}

// TableName 表名
func (Resource) TableName() string {
	return "sys_resource"
}
