package types

// ListLoginLogsRequest 登录日志列表请求
type ListLoginLogsRequest struct {
	Page     int    `json:"page" query:"page"`
	PageSize int    `json:"pageSize" query:"pageSize"`
	Username string `json:"username" query:"username"`
	Status   *int8  `json:"status" query:"status"`
}

// ListOperationLogsRequest 操作日志列表请求
type ListOperationLogsRequest struct {
	Page     int    `json:"page" query:"page"`
	PageSize int    `json:"pageSize" query:"pageSize"`
	Username string `json:"username" query:"username"`
	Module   string `json:"module" query:"module"`
	Status   *int8  `json:"status" query:"status"`
}
