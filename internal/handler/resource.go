package handler

import (
	"strconv"

	"huodong/admin/common/response"
	"huodong/admin/internal/logic"
	"huodong/admin/internal/types"

	"github.com/gofiber/fiber/v2"
)

// ResourceHandler 资源处理器
type ResourceHandler struct {
	resourceLogic *logic.ResourceLogic
}

// NewResourceHandler 创建资源处理器
func NewResourceHandler(resourceLogic *logic.ResourceLogic) *ResourceHandler {
	return &ResourceHandler{resourceLogic: resourceLogic}
}

// Tree 资源树
func (h *ResourceHandler) Tree(c *fiber.Ctx) error {
	tree, err := h.resourceLogic.ResourceTree()
	if err != nil {
		return response.Error(c, "获取失败")
	}
	return response.Success(c, tree)
}

// Create 创建资源
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var req types.CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.Name == "" {
		return response.Error(c, "资源名称不能为空")
	}

	resource, err := h.resourceLogic.CreateResource(&req)
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, resource)
}

// Update 更新资源
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	var req types.UpdateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.ID == 0 {
		return response.Error(c, "资源ID不能为空")
	}

	if err := h.resourceLogic.UpdateResource(&req); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}

// Delete 删除资源
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.Error(c, "参数错误")
	}

	if err := h.resourceLogic.DeleteResource(uint(id)); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}
