package auth

import (
	"fmt"
	"strconv"
	"time"

	"huodong/admin/common/logger"
	"huodong/admin/internal/config"

	"github.com/click33/sa-token-go/core"
	"github.com/click33/sa-token-go/storage/memory"
	satokenRedis "github.com/click33/sa-token-go/storage/redis"
	"github.com/click33/sa-token-go/stputil"
	"go.uber.org/zap"
)

var manager *core.Manager

// InitSaToken 初始化SaToken。
// Redis配置有效时使用Redis存储（重启后token仍有效），否则降级内存存储
func InitSaToken(cfg *config.Config) error {
	var storage core.Storage
	var err error

	if cfg.Redis.Host != "" && cfg.Redis.Port > 0 {
		var redisURL string
		if cfg.Redis.Password != "" {
			redisURL = fmt.Sprintf("redis://:%s@%s:%d/%d", cfg.Redis.Password, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		} else {
			redisURL = fmt.Sprintf("redis://%s:%d/%d", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		}
		storage, err = satokenRedis.NewStorage(redisURL)
		if err != nil {
			logger.Warn("SaToken Redis存储初始化失败，降级使用内存存储", zap.Error(err))
			storage = memory.NewStorage()
		}
	} else {
		storage = memory.NewStorage()
		logger.Warn("SaToken使用内存存储，服务重启后token会丢失")
	}

	manager = core.NewBuilder().
		Storage(storage).
		TokenName(cfg.SaToken.TokenName).
		Timeout(cfg.SaToken.Timeout).
		ActiveTimeout(cfg.SaToken.ActiveTimeout).
		IsConcurrent(cfg.SaToken.IsConcurrent).
		IsShare(cfg.SaToken.IsShare).
		MaxLoginCount(cfg.SaToken.MaxLoginCount).
		IsLog(cfg.SaToken.IsLog).
		Build()

	stputil.SetManager(manager)
	return nil
}

// Login 登录，返回token
func Login(loginId any) (string, error) {
	return stputil.Login(loginId)
}

// Logout 登出
func Logout(loginId any) error {
	return stputil.Logout(loginId)
}

// LogoutByToken 根据Token登出
func LogoutByToken(tokenValue string) error {
	return stputil.LogoutByToken(tokenValue)
}

// IsLogin 判断Token是否处于登录状态
func IsLogin(tokenValue string) bool {
	return stputil.IsLogin(tokenValue)
}

// GetLoginId 根据Token获取登录ID
func GetLoginId(tokenValue string) (string, error) {
	return stputil.GetLoginID(tokenValue)
}

// GetLoginUserID 根据Token获取登录用户ID
func GetLoginUserID(tokenValue string) (uint, error) {
	loginId, err := stputil.GetLoginID(tokenValue)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(loginId, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Kickout 将用户踢下线
func Kickout(loginId any) error {
	return stputil.Kickout(loginId)
}

// Disable 封禁用户
func Disable(loginId any, seconds int64) error {
	return stputil.Disable(loginId, time.Duration(seconds)*time.Second)
}

// IsDisable 判断用户是否被封禁
func IsDisable(loginId any) bool {
	return stputil.IsDisable(loginId)
}

// Untie 解除封禁
func Untie(loginId any) error {
	return stputil.Untie(loginId)
}
