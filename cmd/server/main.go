package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"huodong/admin/common/database"
	"huodong/admin/common/logger"
	"huodong/admin/common/redis"
	"huodong/admin/internal/auth"
	"huodong/admin/internal/config"
	"huodong/admin/internal/model"
	"huodong/admin/internal/router"
	"huodong/admin/internal/svc"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("config/config.yml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger.Init(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	})
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer database.Close()

	// 初始化Redis，未配置时跳过
	if cfg.Redis.Host != "" {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("初始化Redis失败", zap.Error(err))
		} else {
			defer redis.Close()
		}
	}

	// 自动迁移数据库表
	db := database.GetDB()
	if err := db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Resource{},
		&model.Dept{},
		&model.Activity{},
		&model.Registration{},
		&model.TableLayout{},
		&model.LoginLog{},
		&model.OperationLog{},
		&model.UserRole{},
		&model.RoleResource{},
	); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 初始化默认数据
	initDefaultData(db)

	// 初始化SaToken
	if err := auth.InitSaToken(cfg); err != nil {
		logger.Fatal("初始化SaToken失败", zap.Error(err))
	}

	// 初始化服务上下文
	svc.Init(cfg, db)

	// 创建Fiber应用
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	// 设置路由
	router.Setup(app, db)

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("服务器启动", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")
	if err := app.Shutdown(); err != nil {
		logger.Error("服务器关闭失败", zap.Error(err))
	}
	logger.Info("服务器已关闭")
}
