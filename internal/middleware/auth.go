package middleware

import (
	"strconv"
	"strings"

	"huodong/admin/common/response"
	"huodong/admin/internal/auth"
	"huodong/admin/internal/ctxutil"
	"huodong/admin/internal/svc"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware 认证中间件
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := getToken(c)
		if token == "" {
			return response.Unauthorized(c, "请先登录")
		}

		if !auth.IsLogin(token) {
			return response.Unauthorized(c, "登录已过期，请重新登录")
		}

		userID, err := auth.GetLoginUserID(token)
		if err != nil {
			return response.Unauthorized(c, "获取用户信息失败")
		}

		c.Locals("userId", userID)
		c.Locals("token", token)
		c.SetUserContext(ctxutil.WithUserID(c.UserContext(), userID))

		return c.Next()
	}
}

// PermissionMiddleware 权限验证中间件，任一权限满足即放行
func PermissionMiddleware(permissions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetCurrentUserID(c)
		if userID == 0 {
			return response.Unauthorized(c, "请先登录")
		}

		hasPermission, err := svc.Ctx.Permission.HasAnyPermission(userID, permissions...)
		if err != nil {
			return response.ServerError(c, "权限验证失败")
		}
		if !hasPermission {
			return response.Forbidden(c, "没有操作权限")
		}

		return c.Next()
	}
}

// RoleMiddleware 角色验证中间件，任一角色满足即放行
func RoleMiddleware(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetCurrentUserID(c)
		if userID == 0 {
			return response.Unauthorized(c, "请先登录")
		}

		hasRole, err := svc.Ctx.Permission.HasAnyRole(userID, roles...)
		if err != nil {
			return response.ServerError(c, "角色验证失败")
		}
		if !hasRole {
			return response.Forbidden(c, "没有操作权限")
		}

		return c.Next()
	}
}

// getToken 从请求中获取Token
func getToken(c *fiber.Ctx) string {
	token := c.Get("satoken")
	if token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimPrefix(authHeader, "Bearer ")
		}
		return authHeader
	}

	token = c.Query("satoken")
	if token != "" {
		return token
	}

	return c.Cookies("satoken")
}

// GetCurrentUserID 获取当前用户ID
func GetCurrentUserID(c *fiber.Ctx) uint {
	switch v := c.Locals("userId").(type) {
	case uint:
		return v
	case int:
		return uint(v)
	case int64:
		return uint(v)
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}
		return uint(id)
	default:
		return 0
	}
}
