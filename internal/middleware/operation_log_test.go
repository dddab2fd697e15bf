package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"huodong/admin/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newLogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.OperationLog{}))
	return db
}

// 操作日志异步落库时回查并记录操作人用户名
func TestOperationLogRecordsUsername(t *testing.T) {
	db := newLogTestDB(t)

	user := &model.User{Username: "alice", Password: "x", Nickname: "小艾", Status: 1}
	require.NoError(t, db.Create(user).Error)

	app := fiber.New()
	app.Post("/demo",
		func(c *fiber.Ctx) error {
			c.Locals("userId", user.ID)
			return c.Next()
		},
		OperationLogMiddleware(db, "demo", "create"),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/demo", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// 日志异步写入，轮询等待落库
	var log model.OperationLog
	require.Eventually(t, func() bool {
		return db.First(&log).Error == nil
	}, 3*time.Second, 20*time.Millisecond)

	assert.Equal(t, user.ID, log.UserID)
	assert.Equal(t, "alice", log.Username)
	assert.Equal(t, "demo", log.Module)
	assert.Equal(t, "create", log.Action)
	assert.EqualValues(t, 1, log.Status)
}
