package logic

import (
	"context"
	"errors"

	"huodong/admin/common/utils"
	"huodong/admin/internal/model"
	"huodong/admin/internal/svc"
	"huodong/admin/internal/types"
	"huodong/admin/pkg/table"

	"gorm.io/gorm"
)

// ActivityLogic 活动逻辑。
// 列表走取数编排器（全量拉取+请求合并），搜索过滤排序分页在本地完成
type ActivityLogic struct {
	db *gorm.DB
}

// NewActivityLogic 创建活动逻辑
func NewActivityLogic(db *gorm.DB) *ActivityLogic {
	return &ActivityLogic{db: db}
}

// activityOptions 活动列表的本地查询策略
func activityOptions() table.Options[*types.ActivityInfo] {
	return table.Options[*types.ActivityInfo]{
		SearchTexts: func(row *types.ActivityInfo) []string {
			return []string{row.Title, row.Speaker, row.Location}
		},
		MatchFilters: func(row *types.ActivityInfo, filters map[string]any) bool {
			if v, ok := filterInt(filters, "type"); ok && int64(row.Type) != v {
				return false
			}
			if v, ok := filterInt(filters, "status"); ok && int64(row.Status) != v {
				return false
			}
			return true
		},
		SortValue: func(row *types.ActivityInfo, sorter table.Sorter) any {
			switch sorter.Field {
			case "id":
				return row.ID
			case "title":
				return row.Title
			case "speaker":
				return row.Speaker
			case "location":
				return row.Location
			case "startAt":
				return row.StartAt.String()
			case "endAt":
				return row.EndAt.String()
			case "capacity":
				return row.Capacity
			case "registered":
				return row.Registered
			case "status":
				return row.Status
			case "type":
				return row.Type
			case "createdAt":
				return row.CreatedAt.String()
			}
			return nil
		},
	}
}

// ListActivities 活动列表
func (l *ActivityLogic) ListActivities(ctx context.Context, req *types.ListActivitiesRequest) ([]*types.ActivityInfo, int64, error) {
	query := req.ToQuery()

	var result table.ListResult[*types.ActivityInfo]
	var err error
	if req.Refresh {
		result, err = svc.Ctx.ActivitySource.Reload(ctx, query)
	} else {
		result, err = svc.Ctx.ActivitySource.Ensure(ctx, query)
	}
	if err != nil {
		return nil, 0, err
	}

	local := table.ApplyLocalQuery(result.List, query, activityOptions())
	return local.List, int64(local.Total), nil
}

// GetActivity 活动详情
func (l *ActivityLogic) GetActivity(id uint) (*types.ActivityInfo, error) {
	var activity model.Activity
	if err := l.db.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("活动不存在")
		}
		return nil, err
	}

	info := types.ToActivityInfo(&activity)
	var count int64
	l.db.Model(&model.Registration{}).
		Where("activity_id = ? AND status IN ?", id,
			[]int8{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
		Count(&count)
	info.Registered = int(count)
	return info, nil
}

// CreateActivity 创建活动，初始为草稿状态
func (l *ActivityLogic) CreateActivity(req *types.CreateActivityRequest, operatorID uint) (*types.ActivityInfo, error) {
	if req.Type != model.ActivityTypeLecture && req.Type != model.ActivityTypeActivity {
		return nil, errors.New("活动类型无效")
	}
	if !req.EndAt.IsZero() && !req.StartAt.IsZero() && req.EndAt.Time().Before(req.StartAt.Time()) {
		return nil, errors.New("结束时间不能早于开始时间")
	}
	if req.Capacity < 0 {
		return nil, errors.New("人数上限不能为负数")
	}

	activity := &model.Activity{
		Title:       req.Title,
		Type:        req.Type,
		Speaker:     req.Speaker,
		Location:    req.Location,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		Capacity:    req.Capacity,
		Status:      model.ActivityStatusDraft,
		Description: req.Description,
		CreatedBy:   operatorID,
	}
	if err := l.db.Create(activity).Error; err != nil {
		return nil, err
	}

	refreshActivityCache()
	return types.ToActivityInfo(activity), nil
}

// UpdateActivity 更新活动，已关闭的活动不能修改
func (l *ActivityLogic) UpdateActivity(req *types.UpdateActivityRequest) error {
	var activity model.Activity
	if err := l.db.First(&activity, req.ID).Error; err != nil {
		return errors.New("活动不存在")
	}
	if activity.Status == model.ActivityStatusClosed {
		return errors.New("活动已关闭，不能修改")
	}
	if !req.EndAt.IsZero() && !req.StartAt.IsZero() && req.EndAt.Time().Before(req.StartAt.Time()) {
		return errors.New("结束时间不能早于开始时间")
	}

	err := l.db.Model(&activity).Updates(map[string]any{
		"title":       req.Title,
		"type":        req.Type,
		"speaker":     req.Speaker,
		"location":    req.Location,
		"start_at":    req.StartAt,
		"end_at":      req.EndAt,
		"capacity":    req.Capacity,
		"description": req.Description,
	}).Error
	if err != nil {
		return err
	}

	refreshActivityCache()
	return nil
}

// PublishActivity 发布活动，仅草稿可发布
func (l *ActivityLogic) PublishActivity(id uint) error {
	return l.changeStatus(id, model.ActivityStatusDraft, model.ActivityStatusPublished, "仅草稿状态的活动可以发布")
}

// CloseActivity 关闭活动，仅已发布可关闭
func (l *ActivityLogic) CloseActivity(id uint) error {
	return l.changeStatus(id, model.ActivityStatusPublished, model.ActivityStatusClosed, "仅已发布的活动可以关闭")
}

// changeStatus 活动状态流转
func (l *ActivityLogic) changeStatus(id uint, from, to int8, message string) error {
	var activity model.Activity
	if err := l.db.First(&activity, id).Error; err != nil {
		return errors.New("活动不存在")
	}
	if activity.Status != from {
		return errors.New(message)
	}
	if err := l.db.Model(&activity).Update("status", to).Error; err != nil {
		return err
	}

	refreshActivityCache()
	return nil
}

// DeleteActivity 删除活动，存在有效报名时不能删除
func (l *ActivityLogic) DeleteActivity(id uint) error {
	var count int64
	l.db.Model(&model.Registration{}).
		Where("activity_id = ? AND status IN ?", id,
			[]int8{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
		Count(&count)
	if count > 0 {
		return errors.New("活动存在有效报名，不能删除")
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&model.Registration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Activity{}, id).Error
	})
	if err != nil {
		return err
	}

	refreshActivityCache()
	return nil
}

// ExportActivities 导出活动列表CSV：当前过滤结果的全部行 × 当前可见列
func (l *ActivityLogic) ExportActivities(ctx context.Context, userID uint, req *types.ListActivitiesRequest) (*table.ExportFile, error) {
	query := req.ToQuery()
	query.Page = 1
	query.PageSize = table.PageSizeAll

	result, err := svc.Ctx.ActivitySource.Ensure(ctx, query)
	if err != nil {
		return nil, err
	}
	local := table.ApplyLocalQuery(result.List, query, activityOptions())

	columns, err := visibleColumns(ctx, userID, TableKeyActivityList)
	if err != nil {
		return nil, err
	}
	return svc.Ctx.ActivityExport.Export("活动列表", columns, local.Filtered, activityCell)
}

// activityCell 活动导出取值，枚举列转为中文标签
func activityCell(row *types.ActivityInfo, key string) any {
	switch key {
	case "type":
		if row.Type == model.ActivityTypeLecture {
			return "讲座"
		}
		return "活动"
	case "status":
		switch row.Status {
		case model.ActivityStatusDraft:
			return "草稿"
		case model.ActivityStatusPublished:
			return "已发布"
		default:
			return "已关闭"
		}
	case "startAt":
		return row.StartAt.String()
	case "endAt":
		return row.EndAt.String()
	case "createdAt":
		return row.CreatedAt.String()
	default:
		fields, err := utils.ToMap(row)
		if err != nil {
			return nil
		}
		return fields[key]
	}
}

// refreshActivityCache 活动数据变更后台刷新取数缓存
func refreshActivityCache() {
	utils.SafeGoWithName("refresh-activity-cache", func() {
		svc.Ctx.ActivitySource.Reload(context.Background(), table.Query{}.Normalize())
	})
}

// filterInt 从过滤条件取整数值，缺失或空值表示无约束
func filterInt(filters map[string]any, key string) (int64, bool) {
	v, ok := filters[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
