package logic

import (
	"errors"
	"time"

	commontypes "huodong/admin/common/types"
	"huodong/admin/common/utils"
	"huodong/admin/internal/auth"
	"huodong/admin/internal/model"
	"huodong/admin/internal/types"

	"gorm.io/gorm"
)

// UserLogic 用户逻辑
type UserLogic struct {
	db *gorm.DB
}

// NewUserLogic 创建用户逻辑
func NewUserLogic(db *gorm.DB) *UserLogic {
	return &UserLogic{db: db}
}

// Register 用户注册
func (l *UserLogic) Register(req *types.RegisterRequest, ip string) (*types.LoginResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errors.New("两次密码输入不一致")
	}
	if len(req.Username) < 4 || len(req.Username) > 20 {
		return nil, errors.New("用户名长度应为4-20个字符")
	}
	if len(req.Password) < 6 || len(req.Password) > 20 {
		return nil, errors.New("密码长度应为6-20个字符")
	}

	var count int64
	l.db.Model(&model.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		return nil, errors.New("用户名已存在")
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}

	user := &model.User{
		Username: req.Username,
		Password: utils.MD5(req.Password),
		Nickname: nickname,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   1,
	}
	if err := l.db.Create(user).Error; err != nil {
		return nil, errors.New("注册失败，请稍后重试")
	}

	token, err := auth.Login(user.ID)
	if err != nil {
		return nil, errors.New("注册成功，但自动登录失败")
	}

	l.touchLogin(user, ip)
	l.recordLoginLog(user.ID, req.Username, ip, 1, "注册并登录成功", "register")

	return &types.LoginResponse{
		Token:    token,
		UserInfo: types.ToUserInfo(user),
	}, nil
}

// Login 用户登录
func (l *UserLogic) Login(req *types.LoginRequest, ip string) (*types.LoginResponse, error) {
	var user model.User
	if err := l.db.Preload("Roles").Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.recordLoginLog(0, req.Username, ip, 0, "用户名或密码错误", "password")
			return nil, errors.New("用户名或密码错误")
		}
		return nil, err
	}

	if utils.MD5(req.Password) != user.Password {
		l.recordLoginLog(user.ID, req.Username, ip, 0, "用户名或密码错误", "password")
		return nil, errors.New("用户名或密码错误")
	}
	if user.Status != 1 {
		l.recordLoginLog(user.ID, req.Username, ip, 0, "用户已被禁用", "password")
		return nil, errors.New("用户已被禁用")
	}
	if auth.IsDisable(user.ID) {
		l.recordLoginLog(user.ID, req.Username, ip, 0, "账号已被封禁", "password")
		return nil, errors.New("账号已被封禁")
	}

	token, err := auth.Login(user.ID)
	if err != nil {
		l.recordLoginLog(user.ID, req.Username, ip, 0, "登录失败", "password")
		return nil, errors.New("登录失败，请稍后重试")
	}

	l.touchLogin(&user, ip)
	l.recordLoginLog(user.ID, req.Username, ip, 1, "登录成功", "password")

	return &types.LoginResponse{
		Token:    token,
		UserInfo: types.ToUserInfo(&user),
	}, nil
}

// Logout 用户登出
func (l *UserLogic) Logout(token string) error {
	return auth.LogoutByToken(token)
}

// GetUserInfo 获取用户信息（含角色）
func (l *UserLogic) GetUserInfo(id uint) (*types.UserInfo, error) {
	var user model.User
	if err := l.db.Preload("Roles").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户不存在")
		}
		return nil, err
	}

	info := types.ToUserInfo(&user)
	if user.DeptID > 0 {
		var dept model.Dept
		if err := l.db.First(&dept, user.DeptID).Error; err == nil {
			info.DeptName = dept.Name
		}
	}
	return info, nil
}

// ListUsers 用户列表
func (l *UserLogic) ListUsers(req *types.ListUsersRequest) ([]*types.UserInfo, int64, error) {
	db := l.db.Model(&model.User{})
	if req.Keyword != "" {
		kw := "%" + req.Keyword + "%"
		db = db.Where("username LIKE ? OR nickname LIKE ? OR phone LIKE ?", kw, kw, kw)
	}
	if req.Status != nil {
		db = db.Where("status = ?", *req.Status)
	}
	if req.DeptID > 0 {
		db = db.Where("dept_id = ?", req.DeptID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)
	var users []*model.User
	if err := db.Preload("Roles").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return types.ToUserInfoList(users), total, nil
}

// CreateUser 创建用户
func (l *UserLogic) CreateUser(req *types.CreateUserRequest) (*types.UserInfo, error) {
	var count int64
	l.db.Model(&model.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		return nil, errors.New("用户名已存在")
	}

	user := &model.User{
		Username: req.Username,
		Password: utils.MD5(req.Password),
		Nickname: req.Nickname,
		Email:    req.Email,
		Phone:    req.Phone,
		Gender:   req.Gender,
		DeptID:   req.DeptID,
		Status:   1,
		Remark:   req.Remark,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return replaceUserRoles(tx, user.ID, req.RoleIDs)
	})
	if err != nil {
		return nil, err
	}
	return types.ToUserInfo(user), nil
}

// UpdateUser 更新用户
func (l *UserLogic) UpdateUser(req *types.UpdateUserRequest) error {
	var user model.User
	if err := l.db.First(&user, req.ID).Error; err != nil {
		return errors.New("用户不存在")
	}

	updates := map[string]any{
		"nickname": req.Nickname,
		"avatar":   req.Avatar,
		"email":    req.Email,
		"phone":    req.Phone,
		"gender":   req.Gender,
		"dept_id":  req.DeptID,
		"status":   req.Status,
		"remark":   req.Remark,
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		if req.RoleIDs != nil {
			return replaceUserRoles(tx, user.ID, req.RoleIDs)
		}
		return nil
	})
}

// DeleteUser 删除用户
func (l *UserLogic) DeleteUser(id uint, operatorID uint) error {
	if id == operatorID {
		return errors.New("不能删除当前登录用户")
	}
	if err := l.db.Delete(&model.User{}, id).Error; err != nil {
		return err
	}
	// 使已登录会话失效
	auth.Logout(id)
	return nil
}

// ResetPassword 重置密码
func (l *UserLogic) ResetPassword(req *types.ResetPasswordRequest) error {
	if len(req.Password) < 6 || len(req.Password) > 20 {
		return errors.New("密码长度应为6-20个字符")
	}
	return l.db.Model(&model.User{}).
		Where("id = ?", req.ID).
		Update("password", utils.MD5(req.Password)).Error
}

// ChangePassword 修改密码
func (l *UserLogic) ChangePassword(id uint, req *types.ChangePasswordRequest) error {
	var user model.User
	if err := l.db.First(&user, id).Error; err != nil {
		return errors.New("用户不存在")
	}
	if utils.MD5(req.OldPassword) != user.Password {
		return errors.New("原密码错误")
	}
	if len(req.NewPassword) < 6 || len(req.NewPassword) > 20 {
		return errors.New("密码长度应为6-20个字符")
	}
	return l.db.Model(&user).Update("password", utils.MD5(req.NewPassword)).Error
}

// touchLogin 更新最后登录时间和IP
func (l *UserLogic) touchLogin(user *model.User, ip string) {
	now := commontypes.NewDateTime(time.Now())
	l.db.Model(user).Updates(map[string]any{
		"last_login_at": now,
		"last_login_ip": ip,
	})
}

// recordLoginLog 异步记录登录日志
func (l *UserLogic) recordLoginLog(userID uint, username, ip string, status int8, message, loginType string) {
	log := &model.LoginLog{
		UserID:    userID,
		Username:  username,
		IP:        ip,
		Status:    status,
		Message:   message,
		LoginType: loginType,
	}
	utils.SafeGoWithName("record-login-log", func() {
		l.db.Create(log)
	})
}

// replaceUserRoles 重建用户角色关联
func replaceUserRoles(tx *gorm.DB, userID uint, roleIDs []uint) error {
	if err := tx.Where("user_id = ?", userID).Delete(&model.UserRole{}).Error; err != nil {
		return err
	}
	if len(roleIDs) == 0 {
		return nil
	}
	relations := make([]model.UserRole, 0, len(roleIDs))
	for _, rid := range roleIDs {
		relations = append(relations, model.UserRole{UserID: userID, RoleID: rid})
	}
	return tx.Create(&relations).Error
}

// normalizePage 页码参数兜底
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 10
	}
	return page, pageSize
}
