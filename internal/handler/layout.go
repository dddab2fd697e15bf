package handler

import (
	"huodong/admin/common/response"
	"huodong/admin/internal/logic"
	"huodong/admin/internal/middleware"
	"huodong/admin/internal/types"

	"github.com/gofiber/fiber/v2"
)

// LayoutHandler 表格布局处理器
type LayoutHandler struct {
	layoutLogic *logic.LayoutLogic
}

// NewLayoutHandler 创建表格布局处理器
func NewLayoutHandler(layoutLogic *logic.LayoutLogic) *LayoutHandler {
	return &LayoutHandler{layoutLogic: layoutLogic}
}

// Get 获取合并后的有效布局
func (h *LayoutHandler) Get(c *fiber.Ctx) error {
	tableKey := c.Params("tableKey")
	if tableKey == "" {
		return response.Error(c, "表格标识不能为空")
	}

	layout, err := h.layoutLogic.GetLayout(c.UserContext(), middleware.GetCurrentUserID(c), tableKey)
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, layout)
}

// SetWidth 设置列宽
func (h *LayoutHandler) SetWidth(c *fiber.Ctx) error {
	var req types.SetColumnWidthRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.TableKey == "" || req.Key == "" {
		return response.Error(c, "参数不完整")
	}

	layout, err := h.layoutLogic.SetColumnWidth(c.UserContext(), middleware.GetCurrentUserID(c), &req)
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, layout)
}

// SetVisible 设置可见列
func (h *LayoutHandler) SetVisible(c *fiber.Ctx) error {
	var req types.SetVisibleColumnsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.TableKey == "" {
		return response.Error(c, "表格标识不能为空")
	}

	layout, err := h.layoutLogic.SetVisibleColumns(c.UserContext(), middleware.GetCurrentUserID(c), &req)
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, layout)
}

// SetOrder 设置列顺序
func (h *LayoutHandler) SetOrder(c *fiber.Ctx) error {
	var req types.SetColumnOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.TableKey == "" {
		return response.Error(c, "表格标识不能为空")
	}

	layout, err := h.layoutLogic.SetColumnOrder(c.UserContext(), middleware.GetCurrentUserID(c), &req)
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, layout)
}

// Reset 重置为默认布局
func (h *LayoutHandler) Reset(c *fiber.Ctx) error {
	var req types.ResetLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.TableKey == "" {
		return response.Error(c, "表格标识不能为空")
	}

	layout, err := h.layoutLogic.ResetLayout(c.UserContext(), middleware.GetCurrentUserID(c), &req)
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, layout)
}
