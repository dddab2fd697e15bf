package types

import (
	"huodong/admin/common/types"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Nickname        string `json:"nickname"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string    `json:"token"`
	UserInfo *UserInfo `json:"userInfo"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID          uint            `json:"id"`
	Username    string          `json:"username"`
	Nickname    string          `json:"nickname"`
	Avatar      string          `json:"avatar"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Gender      int8            `json:"gender"`
	Status      int8            `json:"status"`
	DeptID      uint            `json:"deptId"`
	DeptName    string          `json:"deptName"`
	LastLoginAt *types.DateTime `json:"lastLoginAt"`
	LastLoginIP string          `json:"lastLoginIp"`
	Remark      string          `json:"remark"`
	Roles       []RoleRef       `json:"roles"`
	CreatedAt   types.DateTime  `json:"createdAt"`
	UpdatedAt   types.DateTime  `json:"updatedAt"`
}

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Gender   int8   `json:"gender"`
	DeptID   uint   `json:"deptId"`
	RoleIDs  []uint `json:"roleIds"`
	Remark   string `json:"remark"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	ID       uint   `json:"id" validate:"required"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Gender   int8   `json:"gender"`
	DeptID   uint   `json:"deptId"`
	Status   int8   `json:"status"`
	RoleIDs  []uint `json:"roleIds"`
	Remark   string `json:"remark"`
}

// ListUsersRequest 用户列表请求
type ListUsersRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Keyword  string `json:"keyword"`
	Status   *int8  `json:"status"`
	DeptID   uint   `json:"deptId"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	ID       uint   `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}
