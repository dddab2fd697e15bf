package model

// TableLayout 表格列布局持久化，按bizKey一行存一份JSON。
// bizKey由前端为每个逻辑表格唯一指定，重复会互相覆盖
type TableLayout struct {
	BaseModel
	BizKey string `gorm:"size:100;uniqueIndex;not null" json:"bizKey"`
	Data   string `gorm:"type:text" json:"data"`
}

// TableName 表名
func (TableLayout) TableName() string {
	return "sys_table_layout"
}
