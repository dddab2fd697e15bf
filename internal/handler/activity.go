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

// ActivityHandler 活动处理器
type ActivityHandler struct {
	activityLogic *logic.ActivityLogic
}

// NewActivityHandler 创建活动处理器
func NewActivityHandler(activityLogic *logic.ActivityLogic) *ActivityHandler {
	return &ActivityHandler{activityLogic: activityLogic}
}

// List 活动列表
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var req types.ListActivitiesRequest
	if err := c.QueryParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	list, total, err := h.activityLogic.ListActivities(c.UserContext(), &req)
	if err != nil {
		return response.Error(c, "获取失败")
	}
	query := req.ToQuery()
	return response.Page(c, list, total, query.Page, query.PageSize)
}

// Get 活动详情
func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "参数错误")
	}

	activity, err := h.activityLogic.GetActivity(uint(id))
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, activity)
}

// Create 创建活动
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var req types.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.Title == "" {
		return response.Error(c, "活动标题不能为空")
	}

	activity, err := h.activityLogic.CreateActivity(&req, middleware.GetCurrentUserID(c))
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, activity)
}

// Update 更新活动
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	var req types.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.ID == 0 {
		return response.Error(c, "活动ID不能为空")
	}

	if err := h.activityLogic.UpdateActivity(&req); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}

// Publish 发布活动
func (h *ActivityHandler) Publish(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "参数错误")
	}

	if err := h.activityLogic.PublishActivity(uint(id)); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}

// Close 关闭活动
func (h *ActivityHandler) Close(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "参数错误")
	}

	if err := h.activityLogic.CloseActivity(uint(id)); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}

// Delete 删除活动
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "参数错误")
	}

	if err := h.activityLogic.DeleteActivity(uint(id)); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}

// Export 导出活动列表CSV
func (h *ActivityHandler) Export(c *fiber.Ctx) error {
	var req types.ListActivitiesRequest
	if err := c.QueryParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	file, err := h.activityLogic.ExportActivities(c.UserContext(), middleware.GetCurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, table.ErrExportBusy) {
			return response.Error(c, "导出进行中，请稍后再试")
		}
		return response.Error(c, err.Error())
	}
	return sendExportFile(c, file)
}
