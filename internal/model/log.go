package model

// LoginLog 登录日志
type LoginLog struct {
	BaseModel
	UserID    uint   `gorm:"index" json:"userId"`
	Username  string `gorm:"size:50" json:"username"`
	IP        string `gorm:"size:50" json:"ip"`
	UserAgent string `gorm:"size:500" json:"userAgent"`
	Status    int8   `json:"status"` // 0:失败 1:成功
	Message   string `gorm:"size:200" json:"message"`
	LoginType string `gorm:"size:20" json:"loginType"` // password, register
}

// TableName 表名
func (LoginLog) TableName() string {
	return "sys_login_log"
}

// OperationLog 操作日志
type OperationLog struct {
	BaseModel
	TraceID   string `gorm:"size:50" json:"traceId"`
	UserID    uint   `gorm:"index" json:"userId"`
	Username  string `gorm:"size:50" json:"username"`
	Module    string `gorm:"size:50" json:"module"`
	Action    string `gorm:"size:50" json:"action"`
	Method    string `gorm:"size:10" json:"method"`
	Path      string `gorm:"size:255" json:"path"`
	IP        string `gorm:"size:50" json:"ip"`
	Params    string `gorm:"type:text" json:"params"`
	Status    int8   `json:"status"` // 0:失败 1:成功
	Duration  int64  `json:"duration"`
	ErrorMsg  string `gorm:"size:500" json:"errorMsg"`
	UserAgent string `gorm:"size:500" json:"userAgent"`
}

// TableName 表名
func (OperationLog) TableName() string {
	return "sys_operation_log"
}
