package handler

import (
	"huodong/admin/common/response"
	"huodong/admin/internal/logic"
	"huodong/admin/internal/middleware"
	"huodong/admin/internal/types"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	userLogic     *logic.UserLogic
	resourceLogic *logic.ResourceLogic
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(userLogic *logic.UserLogic, resourceLogic *logic.ResourceLogic) *AuthHandler {
	return &AuthHandler{userLogic: userLogic, resourceLogic: resourceLogic}
}

// Login 登录
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}
	if req.Username == "" || req.Password == "" {
		return response.Error(c, "用户名和密码不能为空")
	}

	result, err := h.userLogic.Login(&req, c.IP())
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, result)
}

// Register 注册
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	result, err := h.userLogic.Register(&req, c.IP())
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, result)
}

// Logout 登出
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if token != "" {
		h.userLogic.Logout(token)
	}
	return response.Success(c, nil)
}

// UserInfo 当前登录用户信息
func (h *AuthHandler) UserInfo(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	info, err := h.userLogic.GetUserInfo(userID)
	if err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, info)
}

// Menus 当前用户可见菜单树
func (h *AuthHandler) Menus(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	menus, err := h.resourceLogic.UserMenus(userID)
	if err != nil {
		return response.Error(c, "获取菜单失败")
	}
	return response.Success(c, menus)
}

// Permissions 当前用户权限标识列表
func (h *AuthHandler) Permissions(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	permissions, err := h.resourceLogic.UserPermissions(userID)
	if err != nil {
		return response.Error(c, "获取权限失败")
	}
	return response.Success(c, permissions)
}

// ChangePassword 修改当前用户密码
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req types.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "参数解析失败")
	}

	userID := middleware.GetCurrentUserID(c)
	if err := h.userLogic.ChangePassword(userID, &req); err != nil {
		return response.Error(c, err.Error())
	}
	return response.Success(c, nil)
}
