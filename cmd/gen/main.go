package main

import (
	"fmt"

	"huodong/admin/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// 用于从数据库生成模型代码
// 使用方法: go run cmd/gen/main.go

func main() {
	cfg, err := config.LoadConfig("config/config.yml")
	if err != nil {
		panic(fmt.Errorf("加载配置文件失败: %w", err))
	}

	dbCfg := cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		dbCfg.Username,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Database,
		dbCfg.Charset,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Errorf("连接数据库失败: %w", err))
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/query",
		ModelPkgPath:      "./internal/model/gen",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	g.ApplyBasic(
		g.GenerateModel("sys_user"),
		g.GenerateModel("sys_role"),
		g.GenerateModel("sys_resource"),
		g.GenerateModel("sys_dept"),
		g.GenerateModel("sys_user_role"),
		g.GenerateModel("sys_role_resource"),
		g.GenerateModel("sys_table_layout"),
		g.GenerateModel("sys_login_log"),
		g.GenerateModel("sys_operation_log"),
		g.GenerateModel("biz_activity"),
		g.GenerateModel("biz_registration"),
	)

	g.Execute()

	fmt.Println("代码生成完成!")
}
