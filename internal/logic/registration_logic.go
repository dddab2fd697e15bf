package logic

import (
	"context"
	"errors"
	"time"

	commontypes "huodong/admin/common/types"
	"huodong/admin/common/utils"
	"huodong/admin/internal/model"
	"huodong/admin/internal/svc"
	"huodong/admin/internal/types"
	"huodong/admin/pkg/table"

	"gorm.io/gorm"
)

// RegistrationLogic 报名逻辑。
// 列表按活动维度走取数编排器，搜索过滤排序分页在本地完成
type RegistrationLogic struct {
	db *gorm.DB
}

// NewRegistrationLogic 创建报名逻辑
func NewRegistrationLogic(db *gorm.DB) *RegistrationLogic {
	return &RegistrationLogic{db: db}
}

// registrationOptions 报名列表的本地查询策略
func registrationOptions() table.Options[*types.RegistrationInfo] {
	return table.Options[*types.RegistrationInfo]{
		SearchTexts: func(row *types.RegistrationInfo) []string {
			return []string{row.Username, row.Nickname, row.Phone}
		},
		MatchFilters: func(row *types.RegistrationInfo, filters map[string]any) bool {
			// activityId已由取数源限定，这里只处理状态过滤
			if v, ok := filterInt(filters, "status"); ok && int64(row.Status) != v {
				return false
			}
			return true
		},
		SortValue: func(row *types.RegistrationInfo, sorter table.Sorter) any {
			switch sorter.Field {
			case "id":
				return row.ID
			case "username":
				return row.Username
			case "nickname":
				return row.Nickname
			case "status":
				return row.Status
			case "createdAt":
				return row.CreatedAt.String()
			}
			return nil
		},
	}
}

// ListRegistrations 报名列表
func (l *RegistrationLogic) ListRegistrations(ctx context.Context, req *types.ListRegistrationsRequest) ([]*types.RegistrationInfo, int64, error) {
	if req.ActivityID == 0 {
		return nil, 0, errors.New("请指定活动")
	}
	query := req.ToQuery()
	source := svc.Ctx.RegistrationSource(req.ActivityID)

	var result table.ListResult[*types.RegistrationInfo]
	var err error
	if req.Refresh {
		result, err = source.Reload(ctx, query)
	} else {
		result, err = source.Ensure(ctx, query)
	}
	if err != nil {
		return nil, 0, err
	}

	local := table.ApplyLocalQuery(result.List, query, registrationOptions())
	return local.List, int64(local.Total), nil
}

// CreateRegistration 管理员代报名
func (l *RegistrationLogic) CreateRegistration(req *types.CreateRegistrationRequest) (*types.RegistrationInfo, error) {
	var activity model.Activity
	if err := l.db.First(&activity, req.ActivityID).Error; err != nil {
		return nil, errors.New("活动不存在")
	}
	if activity.Status != model.ActivityStatusPublished {
		return nil, errors.New("仅已发布的活动可以报名")
	}

	var user model.User
	if err := l.db.First(&user, req.UserID).Error; err != nil {
		return nil, errors.New("用户不存在")
	}

	var count int64
	l.db.Model(&model.Registration{}).
		Where("activity_id = ? AND user_id = ? AND status IN ?", req.ActivityID, req.UserID,
			[]int8{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
		Count(&count)
	if count > 0 {
		return nil, errors.New("该用户已报名此活动")
	}

	if activity.Capacity > 0 {
		l.db.Model(&model.Registration{}).
			Where("activity_id = ? AND status IN ?", req.ActivityID,
				[]int8{model.RegistrationStatusPending, model.RegistrationStatusApproved}).
			Count(&count)
		if count >= int64(activity.Capacity) {
			return nil, errors.New("活动报名人数已满")
		}
	}

	// 冗余用户快照，用户信息后续变更不影响已有报名
	reg := &model.Registration{
		ActivityID: req.ActivityID,
		UserID:     req.UserID,
		Username:   user.Username,
		Nickname:   user.Nickname,
		Phone:      user.Phone,
		Status:     model.RegistrationStatusPending,
		Remark:     req.Remark,
	}
	if err := l.db.Create(reg).Error; err != nil {
		return nil, err
	}

	refreshRegistrationCache(req.ActivityID)
	info := types.ToRegistrationInfo(reg)
	info.ActivityTitle = activity.Title
	return info, nil
}

// Approve 批量通过报名，仅待审批状态可操作
func (l *RegistrationLogic) Approve(req *types.ReviewRegistrationRequest, operatorID uint) error {
	return l.review(req, operatorID, model.RegistrationStatusApproved)
}

// Reject 批量驳回报名，仅待审批状态可操作
func (l *RegistrationLogic) Reject(req *types.ReviewRegistrationRequest, operatorID uint) error {
	return l.review(req, operatorID, model.RegistrationStatusRejected)
}

// review 审批落库，同一批报名须属于同一活动
func (l *RegistrationLogic) review(req *types.ReviewRegistrationRequest, operatorID uint, to int8) error {
	if len(req.IDs) == 0 {
		return errors.New("请选择报名记录")
	}

	var regs []*model.Registration
	if err := l.db.Where("id IN ?", req.IDs).Find(&regs).Error; err != nil {
		return err
	}
	if len(regs) != len(req.IDs) {
		return errors.New("部分报名记录不存在")
	}

	activityID := regs[0].ActivityID
	for _, reg := range regs {
		if reg.ActivityID != activityID {
			return errors.New("不能跨活动批量审批")
		}
		if reg.Status != model.RegistrationStatusPending {
			return errors.New("仅待审批的报名可以审批")
		}
	}

	// 通过时校验容量：已通过数 + 本批数 不超过上限
	if to == model.RegistrationStatusApproved {
		var activity model.Activity
		if err := l.db.First(&activity, activityID).Error; err != nil {
			return errors.New("活动不存在")
		}
		if activity.Capacity > 0 {
			var approved int64
			l.db.Model(&model.Registration{}).
				Where("activity_id = ? AND status = ?", activityID, model.RegistrationStatusApproved).
				Count(&approved)
			if approved+int64(len(regs)) > int64(activity.Capacity) {
				return errors.New("超出活动人数上限，不能全部通过")
			}
		}
	}

	now := commontypes.NewDateTime(time.Now())
	err := l.db.Model(&model.Registration{}).
		Where("id IN ?", req.IDs).
		Updates(map[string]any{
			"status":      to,
			"reason":      req.Reason,
			"approved_by": operatorID,
			"approved_at": now,
		}).Error
	if err != nil {
		return err
	}

	refreshRegistrationCache(activityID)
	return nil
}

// CancelRegistration 取消报名，已驳回或已取消的不能再取消
func (l *RegistrationLogic) CancelRegistration(id uint) error {
	var reg model.Registration
	if err := l.db.First(&reg, id).Error; err != nil {
		return errors.New("报名记录不存在")
	}
	if reg.Status != model.RegistrationStatusPending && reg.Status != model.RegistrationStatusApproved {
		return errors.New("该报名不能取消")
	}

	if err := l.db.Model(&reg).Update("status", model.RegistrationStatusCancelled).Error; err != nil {
		return err
	}

	refreshRegistrationCache(reg.ActivityID)
	return nil
}

// ExportRegistrations 导出报名列表CSV：当前过滤结果的全部行 × 当前可见列
func (l *RegistrationLogic) ExportRegistrations(ctx context.Context, userID uint, req *types.ListRegistrationsRequest) (*table.ExportFile, error) {
	if req.ActivityID == 0 {
		return nil, errors.New("请指定活动")
	}
	query := req.ToQuery()
	query.Page = 1
	query.PageSize = table.PageSizeAll

	result, err := svc.Ctx.RegistrationSource(req.ActivityID).Ensure(ctx, query)
	if err != nil {
		return nil, err
	}
	local := table.ApplyLocalQuery(result.List, query, registrationOptions())

	columns, err := visibleColumns(ctx, userID, TableKeyRegistrationList)
	if err != nil {
		return nil, err
	}
	return svc.Ctx.RegistrationExport.Export("报名列表", columns, local.Filtered, registrationCell)
}

// registrationCell 报名导出取值，状态列转为中文标签
func registrationCell(row *types.RegistrationInfo, key string) any {
	switch key {
	case "status":
		switch row.Status {
		case model.RegistrationStatusPending:
			return "待审批"
		case model.RegistrationStatusApproved:
			return "已通过"
		case model.RegistrationStatusRejected:
			return "已驳回"
		default:
			return "已取消"
		}
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

// refreshRegistrationCache 报名数据变更后台刷新相关取数缓存。
// 报名数影响活动列表的报名人数列，活动缓存一并刷新
func refreshRegistrationCache(activityID uint) {
	utils.SafeGoWithName("refresh-registration-cache", func() {
		ctx := context.Background()
		svc.Ctx.RegistrationSource(activityID).Reload(ctx, table.Query{}.Normalize())
		svc.Ctx.ActivitySource.Reload(ctx, table.Query{}.Normalize())
	})
}
