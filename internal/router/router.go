package router

import (
	commonMiddleware "huodong/admin/common/middleware"
	"huodong/admin/internal/handler"
	"huodong/admin/internal/logic"
	"huodong/admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup 设置路由
func Setup(app *fiber.App, db *gorm.DB) {
	// 权限中间件和操作日志简写
	perm := func(code string) fiber.Handler { return middleware.PermissionMiddleware(code) }
	oplog := func(module, action string) fiber.Handler { return middleware.OperationLogMiddleware(db, module, action) }

	// 全局中间件
	app.Use(commonMiddleware.CORS(), commonMiddleware.RequestID(), commonMiddleware.Logger(), commonMiddleware.Recover())

	userLogic := logic.NewUserLogic(db)
	resourceLogic := logic.NewResourceLogic(db)
	authHandler := handler.NewAuthHandler(userLogic, resourceLogic)
	userHandler := handler.NewUserHandler(userLogic)
	roleHandler := handler.NewRoleHandler(logic.NewRoleLogic(db))
	deptHandler := handler.NewDeptHandler(logic.NewDeptLogic(db))
	resourceHandler := handler.NewResourceHandler(resourceLogic)
	activityHandler := handler.NewActivityHandler(logic.NewActivityLogic(db))
	registrationHandler := handler.NewRegistrationHandler(logic.NewRegistrationLogic(db))
	layoutHandler := handler.NewLayoutHandler(logic.NewLayoutLogic())
	logHandler := handler.NewLogHandler(logic.NewLogLogic(db))

	api := app.Group("/api")

	// ========== 公开路由 ==========
	pub := api.Group("/auth")
	pub.Post("/login", authHandler.Login)
	pub.Post("/register", authHandler.Register)

	// ========== 需要认证的路由 ==========
	authed := api.Group("", middleware.AuthMiddleware())

	// 认证相关
	ag := authed.Group("/auth")
	ag.Post("/logout", authHandler.Logout)
	ag.Get("/user-info", authHandler.UserInfo)
	ag.Post("/change-password", authHandler.ChangePassword)

	// 用户菜单和权限码
	authed.Get("/menus", authHandler.Menus)
	authed.Get("/permissions", authHandler.Permissions)

	// ========== 系统管理 ==========
	sys := authed.Group("/system")

	// 用户管理
	u := sys.Group("/users")
	u.Post("/list", userHandler.List)
	u.Get("/:id", userHandler.Get)
	u.Post("", perm("system:user:add"), oplog("user", "create"), userHandler.Create)
	u.Put("", perm("system:user:edit"), oplog("user", "update"), userHandler.Update)
	u.Delete("/:id", perm("system:user:delete"), oplog("user", "delete"), userHandler.Delete)
	u.Post("/reset-password", perm("system:user:resetPwd"), oplog("user", "resetPassword"), userHandler.ResetPassword)

	// 角色管理
	r := sys.Group("/roles")
	r.Post("/list", roleHandler.List)
	r.Get("/all", roleHandler.All)
	r.Post("", perm("system:role:add"), oplog("role", "create"), roleHandler.Create)
	r.Put("", perm("system:role:edit"), oplog("role", "update"), roleHandler.Update)
	r.Delete("/:id", perm("system:role:delete"), oplog("role", "delete"), roleHandler.Delete)
	r.Post("/assign-resources", perm("system:role:assign"), oplog("role", "assignResources"), roleHandler.AssignResources)

	// 资源/菜单管理
	res := sys.Group("/resources")
	res.Get("/tree", resourceHandler.Tree)
	res.Post("", perm("system:resource:add"), oplog("resource", "create"), resourceHandler.Create)
	res.Put("", perm("system:resource:edit"), oplog("resource", "update"), resourceHandler.Update)
	res.Delete("/:id", perm("system:resource:delete"), oplog("resource", "delete"), resourceHandler.Delete)

	// 部门管理
	d := sys.Group("/depts")
	d.Get("/tree", deptHandler.Tree)
	d.Post("", perm("system:dept:add"), oplog("dept", "create"), deptHandler.Create)
	d.Put("", perm("system:dept:edit"), oplog("dept", "update"), deptHandler.Update)
	d.Delete("/:id", perm("system:dept:delete"), oplog("dept", "delete"), deptHandler.Delete)

	// 日志查询
	logs := sys.Group("/logs")
	logs.Get("/login", perm("system:log:view"), logHandler.LoginLogs)
	logs.Get("/operation", perm("system:log:view"), logHandler.OperationLogs)

	// ========== 活动管理 ==========
	act := authed.Group("/activities")
	act.Get("", activityHandler.List)
	act.Get("/export", perm("activity:export"), activityHandler.Export)
	act.Get("/:id", activityHandler.Get)
	act.Post("", perm("activity:add"), oplog("activity", "create"), activityHandler.Create)
	act.Put("", perm("activity:edit"), oplog("activity", "update"), activityHandler.Update)
	act.Post("/:id/publish", perm("activity:publish"), oplog("activity", "publish"), activityHandler.Publish)
	act.Post("/:id/close", perm("activity:publish"), oplog("activity", "close"), activityHandler.Close)
	act.Delete("/:id", perm("activity:delete"), oplog("activity", "delete"), activityHandler.Delete)

	// ========== 报名管理 ==========
	reg := authed.Group("/registrations")
	reg.Get("", registrationHandler.List)
	reg.Get("/export", perm("registration:export"), registrationHandler.Export)
	reg.Post("", perm("registration:add"), oplog("registration", "create"), registrationHandler.Create)
	reg.Post("/approve", perm("registration:review"), oplog("registration", "approve"), registrationHandler.Approve)
	reg.Post("/reject", perm("registration:review"), oplog("registration", "reject"), registrationHandler.Reject)
	reg.Post("/:id/cancel", perm("registration:cancel"), oplog("registration", "cancel"), registrationHandler.Cancel)

	// ========== 表格布局 ==========
	layout := authed.Group("/table/layout")
	layout.Get("/:tableKey", layoutHandler.Get)
	layout.Post("/width", layoutHandler.SetWidth)
	layout.Post("/visible", layoutHandler.SetVisible)
	layout.Post("/order", layoutHandler.SetOrder)
	layout.Post("/reset", layoutHandler.Reset)
}
