package handler

import (
	"huodong/admin/common/response"
	"huodong/admin/internal/logic"
	"huodong/admin/internal/types"

	"github.com/gofiber/fiber/v2"
)

// LogHandler 日志处理器
type LogHandler struct {
	logLogic *logic.LogLogic
}

// NewLogHandler 创建日志处理器
func NewLogHandler(logLogic *logic.LogLogic) *LogHandler {
	return &LogHandler{logLogic: logLogic}
}

// LoginLogs 登录日志列表
func (h *LogHandler) LoginLogs(c *fiber.Ctx) error {
	var req types.ListLoginLogsRequest
	if err := c.QueryParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	logs, total, err := h.logLogic.ListLoginLogs(&req)
	if err != nil {
		return response.Error(c, "获取失败")
	}
	return response.Page(c, logs, total, req.Page, req.PageSize)
}

// OperationLogs 操作日志列表
func (h *LogHandler) OperationLogs(c *fiber.Ctx) error {
	var req types.ListOperationLogsRequest
	if err := c.QueryParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	logs, total, err := h.logLogic.ListOperationLogs(&req)
	if err != nil {
		return response.Error(c, "获取失败")
	}
	return response.Page(c, logs, total, req.Page, req.PageSize)
}
