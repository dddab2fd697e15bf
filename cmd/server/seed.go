package main

import (
	"huodong/admin/common/logger"
	"huodong/admin/internal/model"

	"gorm.io/gorm"
)

// initDefaultData 初始化默认数据，已有用户时跳过
func initDefaultData(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		return
	}

	logger.Info("初始化默认数据...")

	// 默认部门
	dept := &model.Dept{
		Name:   "总公司",
		Code:   "HQ",
		Status: 1,
	}
	db.Create(dept)

	// 默认角色
	adminRole := &model.Role{
		Name:   "超级管理员",
		Code:   "admin",
		Status: 1,
		Remark: "拥有所有权限",
	}
	db.Create(adminRole)

	operatorRole := &model.Role{
		Name:   "活动运营",
		Code:   "operator",
		Sort:   1,
		Status: 1,
		Remark: "活动与报名管理",
	}
	db.Create(operatorRole)

	// 默认用户
	adminUser := &model.User{
		Username: "admin",
		Password: "e10adc3949ba59abbe56e057f20f883e", // 123456 的 MD5
		Nickname: "管理员",
		Status:   1,
		DeptID:   dept.ID,
	}
	db.Create(adminUser)

	db.Create(&model.UserRole{
		UserID: adminUser.ID,
		RoleID: adminRole.ID,
	})

	// 默认菜单与按钮权限
	createDefaultResources(db, operatorRole.ID)

	logger.Info("默认数据初始化完成")
}

// createDefaultResources 创建默认菜单树，并把活动相关权限授予运营角色
func createDefaultResources(db *gorm.DB, operatorRoleID uint) {
	// 系统管理目录
	sysDir := &model.Resource{
		Name: "系统管理", Type: model.ResourceTypeDir,
		Path: "/system", Icon: "ant-design:setting-outlined", Sort: 90, Status: 1,
	}
	db.Create(sysDir)

	sysMenus := []*model.Resource{
		{ParentID: sysDir.ID, Name: "用户管理", Type: model.ResourceTypeMenu, Path: "/system/users", Component: "system/user/index", Sort: 1, Status: 1},
		{ParentID: sysDir.ID, Name: "角色管理", Type: model.ResourceTypeMenu, Path: "/system/roles", Component: "system/role/index", Sort: 2, Status: 1},
		{ParentID: sysDir.ID, Name: "资源管理", Type: model.ResourceTypeMenu, Path: "/system/resources", Component: "system/resource/index", Sort: 3, Status: 1},
		{ParentID: sysDir.ID, Name: "部门管理", Type: model.ResourceTypeMenu, Path: "/system/depts", Component: "system/dept/index", Sort: 4, Status: 1},
		{ParentID: sysDir.ID, Name: "日志查询", Type: model.ResourceTypeMenu, Code: "system:log:view", Path: "/system/logs", Component: "system/log/index", Sort: 5, Status: 1},
	}
	db.Create(&sysMenus)

	userMenu, roleMenu := sysMenus[0], sysMenus[1]
	resourceMenu, deptMenu := sysMenus[2], sysMenus[3]
	sysButtons := []*model.Resource{
		{ParentID: userMenu.ID, Name: "新增用户", Type: model.ResourceTypeButton, Code: "system:user:add", Status: 1},
		{ParentID: userMenu.ID, Name: "编辑用户", Type: model.ResourceTypeButton, Code: "system:user:edit", Status: 1},
		{ParentID: userMenu.ID, Name: "删除用户", Type: model.ResourceTypeButton, Code: "system:user:delete", Status: 1},
		{ParentID: userMenu.ID, Name: "重置密码", Type: model.ResourceTypeButton, Code: "system:user:resetPwd", Status: 1},
		{ParentID: roleMenu.ID, Name: "新增角色", Type: model.ResourceTypeButton, Code: "system:role:add", Status: 1},
		{ParentID: roleMenu.ID, Name: "编辑角色", Type: model.ResourceTypeButton, Code: "system:role:edit", Status: 1},
		{ParentID: roleMenu.ID, Name: "删除角色", Type: model.ResourceTypeButton, Code: "system:role:delete", Status: 1},
		{ParentID: roleMenu.ID, Name: "分配权限", Type: model.ResourceTypeButton, Code: "system:role:assign", Status: 1},
		{ParentID: resourceMenu.ID, Name: "新增资源", Type: model.ResourceTypeButton, Code: "system:resource:add", Status: 1},
		{ParentID: resourceMenu.ID, Name: "编辑资源", Type: model.ResourceTypeButton, Code: "system:resource:edit", Status: 1},
		{ParentID: resourceMenu.ID, Name: "删除资源", Type: model.ResourceTypeButton, Code: "system:resource:delete", Status: 1},
		{ParentID: deptMenu.ID, Name: "新增部门", Type: model.ResourceTypeButton, Code: "system:dept:add", Status: 1},
		{ParentID: deptMenu.ID, Name: "编辑部门", Type: model.ResourceTypeButton, Code: "system:dept:edit", Status: 1},
		{ParentID: deptMenu.ID, Name: "删除部门", Type: model.ResourceTypeButton, Code: "system:dept:delete", Status: 1},
	}
	db.Create(&sysButtons)

	// 活动管理目录
	actDir := &model.Resource{
		Name: "活动管理", Type: model.ResourceTypeDir,
		Path: "/huodong", Icon: "ant-design:calendar-outlined", Sort: 1, Status: 1,
	}
	db.Create(actDir)

	actMenu := &model.Resource{
		ParentID: actDir.ID, Name: "活动列表", Type: model.ResourceTypeMenu,
		Path: "/huodong/activities", Component: "huodong/activity/index", Sort: 1, Status: 1,
	}
	db.Create(actMenu)

	regMenu := &model.Resource{
		ParentID: actDir.ID, Name: "报名管理", Type: model.ResourceTypeMenu,
		Path: "/huodong/registrations", Component: "huodong/registration/index", Sort: 2, Status: 1,
	}
	db.Create(regMenu)

	actButtons := []*model.Resource{
		{ParentID: actMenu.ID, Name: "新增活动", Type: model.ResourceTypeButton, Code: "activity:add", Status: 1},
		{ParentID: actMenu.ID, Name: "编辑活动", Type: model.ResourceTypeButton, Code: "activity:edit", Status: 1},
		{ParentID: actMenu.ID, Name: "删除活动", Type: model.ResourceTypeButton, Code: "activity:delete", Status: 1},
		{ParentID: actMenu.ID, Name: "发布/关闭", Type: model.ResourceTypeButton, Code: "activity:publish", Status: 1},
		{ParentID: actMenu.ID, Name: "导出活动", Type: model.ResourceTypeButton, Code: "activity:export", Status: 1},
		{ParentID: regMenu.ID, Name: "代报名", Type: model.ResourceTypeButton, Code: "registration:add", Status: 1},
		{ParentID: regMenu.ID, Name: "审批报名", Type: model.ResourceTypeButton, Code: "registration:review", Status: 1},
		{ParentID: regMenu.ID, Name: "取消报名", Type: model.ResourceTypeButton, Code: "registration:cancel", Status: 1},
		{ParentID: regMenu.ID, Name: "导出报名", Type: model.ResourceTypeButton, Code: "registration:export", Status: 1},
	}
	db.Create(&actButtons)

	// 运营角色授予活动目录下全部资源
	relations := []model.RoleResource{
		{RoleID: operatorRoleID, ResourceID: actDir.ID},
		{RoleID: operatorRoleID, ResourceID: actMenu.ID},
		{RoleID: operatorRoleID, ResourceID: regMenu.ID},
	}
	for _, btn := range actButtons {
		relations = append(relations, model.RoleResource{RoleID: operatorRoleID, ResourceID: btn.ID})
	}
	db.Create(&relations)
}
