package handler

import (
	"errors"
	"strconv"

	"huodong/admin/common/response"
	"huodong/admin/internal/logic"
	"huodong/admin/internal/middleware"
	"huodong/admin/internal/types"
	"huodong/admin/pkg/table"

	"github.com/gofiber/fiber/v2"
)

// RegistrationHandler 报名处理器
type RegistrationHandler struct {
	registrationLogic *logic.RegistrationLogic
}

// NewRegistrationHandler 创建报名处理器
func NewRegistrationHandler(registrationLogic *logic.RegistrationLogic) *RegistrationHandler {
	return &RegistrationHandler{registrationLogic: registrationLogic}
}

// List 报名列表
func (h *RegistrationHandler) List(c *fiber.Ctx) error {
	var req types.ListRegistrationsRequest
	if err := c.QueryParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.ActivityID == 0 {
		return response.Error(c, "请指定活动")
	}

	list, total, err := h.registrationLogic.ListRegistrations(c.UserContext(), &req)
	if err != nil {
		return response.Error(c, err.Error())
	}
	query := req.ToQuery()
	return response.Page(c, list, total, query.Page, query.PageSize)
}

// Create 管理员代报名
func (h *RegistrationHandler) Create(c *fiber.Ctx) error {
	var req types.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.ActivityID == 0 || req.UserID == 0 {
		return response.Error(c, "活动和用户不能为空")
	}

	reg, err := h.registrationLogic.CreateRegistration(&req)
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, reg)
}

// Approve 批量通过
func (h *RegistrationHandler) Approve(c *fiber.Ctx) error {
	var req types.ReviewRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	if err := h.registrationLogic.Approve(&req, middleware.GetCurrentUserID(c)); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}

// Reject 批量驳回
func (h *RegistrationHandler) Reject(c *fiber.Ctx) error {
	var req types.ReviewRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	if err := h.registrationLogic.Reject(&req, middleware.GetCurrentUserID(c)); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}

// Cancel 取消报名
func (h *RegistrationHandler) Cancel(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "参数错误")
	}

	if err := h.registrationLogic.CancelRegistration(uint(id)); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}

// Export 导出报名列表CSV
func (h *RegistrationHandler) Export(c *fiber.Ctx) error {
	var req types.ListRegistrationsRequest
	if err := c.QueryParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.ActivityID == 0 {
		return response.Error(c, "请指定活动")
	}

	file, err := h.registrationLogic.ExportRegistrations(c.UserContext(), middleware.GetCurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, table.ErrExportBusy) {
			return response.Error(c, "导出进行中，请稍后再试")
		}
		return response.Error(c, err.Error())
	}
	return sendExportFile(c, file)
}
