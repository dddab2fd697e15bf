package middleware

import (
	"time"

	"huodong/admin/common/utils"
	"huodong/admin/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperationLogMiddleware 操作日志中间件，挂在写操作路由上
func OperationLogMiddleware(db *gorm.DB, module, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		body := string(c.Body())

		err := c.Next()

		status := int8(1)
		errorMsg := ""
		if err != nil {
			status = 0
			errorMsg = err.Error()
		}

		log := &model.OperationLog{
			TraceID:   uuid.NewString(),
			UserID:    GetCurrentUserID(c),
			Module:    module,
			Action:    action,
			Method:    c.Method(),
			Path:      c.Path(),
			IP:        c.IP(),
			UserAgent: c.Get("User-Agent"),
			Params:    body,
			Status:    status,
			Duration:  time.Since(startTime).Milliseconds(),
			ErrorMsg:  errorMsg,
		}
		// 用户名在异步落库时回查，不占请求路径
		utils.SafeGoWithName("record-operation-log", func() {
			if log.UserID > 0 {
				var operator model.User
				if err := db.Select("username").First(&operator, log.UserID).Error; err == nil {
					log.Username = operator.Username
				}
			}
			db.Create(log)
		})

		return err
	}
}
