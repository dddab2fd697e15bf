package svc

import (
	"context"
	"sync"

	"huodong/admin/common/redis"
	"huodong/admin/internal/auth"
	"huodong/admin/internal/config"
	"huodong/admin/internal/model"
	"huodong/admin/internal/store"
	"huodong/admin/internal/types"
	"huodong/admin/pkg/table"

	"gorm.io/gorm"
)

// ServiceContext 全局服务上下文
type ServiceContext struct {
	Config     *config.Config
	DB         *gorm.DB
	Permission *auth.PermissionService

	// LayoutStorage 表格列布局的持久化存储，按配置选择db/redis/memory
	LayoutStorage table.Storage

	// ActivitySource 活动列表取数编排器：全量拉取+请求合并，
	// 搜索过滤排序分页由本地查询引擎完成
	ActivitySource *table.Orchestrator[*types.ActivityInfo]
	// ActivityExport 活动导出引擎，同一时间只允许一次导出
	ActivityExport *table.Exporter[*types.ActivityInfo]

	// RegistrationExport 报名导出引擎
	RegistrationExport *table.Exporter[*types.RegistrationInfo]

	// 报名取数编排器按活动维度隔离，懒创建
	regMu      sync.Mutex
	regSources map[uint]*table.Orchestrator[*types.RegistrationInfo]
}

var Ctx *ServiceContext

// Init 初始化服务上下文
func Init(cfg *config.Config, db *gorm.DB) {
	Ctx = &ServiceContext{
		Config:             cfg,
		DB:                 db,
		Permission:         auth.NewPermissionService(db),
		LayoutStorage:      newLayoutStorage(cfg, db),
		ActivitySource:     table.NewOrchestrator(newActivityFetcher(db), nil, table.AutoDepsReload),
		ActivityExport:     table.NewExporter[*types.ActivityInfo](),
		RegistrationExport: table.NewExporter[*types.RegistrationInfo](),
		regSources:         make(map[uint]*table.Orchestrator[*types.RegistrationInfo]),
	}
}

// newLayoutStorage 按配置创建布局存储，默认落数据库
func newLayoutStorage(cfg *config.Config, db *gorm.DB) table.Storage {
	switch cfg.Table.LayoutStorage {
	case "redis":
		return store.NewRedisLayoutStorage(redis.GetClient())
	case "memory":
		return table.NewMemoryStorage()
	default:
		return store.NewGormLayoutStorage(db)
	}
}

// RegistrationSource 获取指定活动的报名取数编排器，同一活动共享一个实例
func (s *ServiceContext) RegistrationSource(activityID uint) *table.Orchestrator[*types.RegistrationInfo] {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	if src, ok := s.regSources[activityID]; ok {
		return src
	}
	src := table.NewOrchestrator(newRegistrationFetcher(s.DB, activityID), nil, table.AutoDepsReload)
	s.regSources[activityID] = src
	return src
}

// newActivityFetcher 活动全量取数：一次载入全部活动并补充有效报名数
func newActivityFetcher(db *gorm.DB) table.Fetcher[*types.ActivityInfo] {
	return func(ctx context.Context, _ table.Query) (table.ListResult[*types.ActivityInfo], error) {
		var activities []*model.Activity
		if err := db.WithContext(ctx).
			Order("id DESC").
			Find(&activities).Error; err != nil {
			return table.ListResult[*types.ActivityInfo]{}, err
		}

		// 有效报名数 = 待审批 + 已通过
		type regCount struct {
			ActivityID uint
			Count      int
		}
		var counts []regCount
		if err := db.WithContext(ctx).
			Model(&model.Registration{}).
			Select("activity_id", "COUNT(*) AS count").
			Where("status IN ?", []int8{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
			Group("activity_id").
			Scan(&counts).Error; err != nil {
			return table.ListResult[*types.ActivityInfo]{}, err
		}
		countByActivity := make(map[uint]int, len(counts))
		for _, c := range counts {
			countByActivity[c.ActivityID] = c.Count
		}

		infos := types.ToActivityInfoList(activities)
		for _, info := range infos {
			info.Registered = countByActivity[info.ID]
		}
		return table.ListResult[*types.ActivityInfo]{
			List:  infos,
			Total: int64(len(infos)),
		}, nil
	}
}

// newRegistrationFetcher 报名全量取数：一次载入指定活动的全部报名并补充活动标题
func newRegistrationFetcher(db *gorm.DB, activityID uint) table.Fetcher[*types.RegistrationInfo] {
	return func(ctx context.Context, _ table.Query) (table.ListResult[*types.RegistrationInfo], error) {
		var activity model.Activity
		if err := db.WithContext(ctx).
			First(&activity, activityID).Error; err != nil {
			return table.ListResult[*types.RegistrationInfo]{}, err
		}

		var regs []*model.Registration
		if err := db.WithContext(ctx).
			Where("activity_id = ?", activityID).
			Order("id DESC").
			Find(&regs).Error; err != nil {
			return table.ListResult[*types.RegistrationInfo]{}, err
		}

		infos := types.ToRegistrationInfoList(regs)
		for _, info := range infos {
			info.ActivityTitle = activity.Title
		}
		return table.ListResult[*types.RegistrationInfo]{
			List:  infos,
			Total: int64(len(infos)),
		}, nil
	}
}
