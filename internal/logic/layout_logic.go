package logic

import (
	"context"
	"errors"
	"fmt"

	"huodong/admin/internal/svc"
	"huodong/admin/internal/types"
	"huodong/admin/pkg/table"
)

// 表格键，前端每个逻辑表格对应一个
const (
	TableKeyActivityList     = "activity:list"
	TableKeyRegistrationList = "registration:list"
)

// layoutPresets 各表格的默认列预设，列key与行数据的json字段一致
var layoutPresets = map[string][]table.ColumnPreset{
	TableKeyActivityList: {
		{Key: "id", Title: "ID", Width: 80},
		{Key: "title", Title: "标题", Width: 240},
		{Key: "type", Title: "类型", Width: 100},
		{Key: "speaker", Title: "主讲人", Width: 120},
		{Key: "location", Title: "地点", Width: 180},
		{Key: "startAt", Title: "开始时间", Width: 170},
		{Key: "endAt", Title: "结束时间", Width: 170, Hidden: true},
		{Key: "capacity", Title: "人数上限", Width: 100},
		{Key: "registered", Title: "报名人数", Width: 100},
		{Key: "status", Title: "状态", Width: 100},
		{Key: "createdAt", Title: "创建时间", Width: 170, Hidden: true},
	},
	TableKeyRegistrationList: {
		{Key: "id", Title: "ID", Width: 80},
		{Key: "activityTitle", Title: "活动", Width: 240},
		{Key: "username", Title: "用户名", Width: 120},
		{Key: "nickname", Title: "昵称", Width: 120},
		{Key: "phone", Title: "手机号", Width: 140},
		{Key: "status", Title: "状态", Width: 100},
		{Key: "reason", Title: "审批意见", Width: 200, Hidden: true},
		{Key: "remark", Title: "备注", Width: 200, Hidden: true},
		{Key: "createdAt", Title: "报名时间", Width: 170},
	},
}

// LayoutLogic 表格布局逻辑，布局按用户隔离存储
type LayoutLogic struct{}

// NewLayoutLogic 创建表格布局逻辑
func NewLayoutLogic() *LayoutLogic {
	return &LayoutLogic{}
}

// prefStore 获取某用户某表格的布局偏好
func (l *LayoutLogic) prefStore(userID uint, tableKey string) (*table.PreferenceStore, error) {
	presets, ok := layoutPresets[tableKey]
	if !ok {
		return nil, errors.New("未知的表格")
	}
	bizKey := fmt.Sprintf("%s:u%d", tableKey, userID)
	return table.NewPreferenceStore(svc.Ctx.LayoutStorage, bizKey, presets), nil
}

// GetLayout 获取合并后的有效布局
func (l *LayoutLogic) GetLayout(ctx context.Context, userID uint, tableKey string) (*types.TableLayoutResponse, error) {
	store, err := l.prefStore(userID, tableKey)
	if err != nil {
		return nil, err
	}
	return &types.TableLayoutResponse{
		TableKey: tableKey,
		Columns:  store.Effective(ctx),
	}, nil
}

// SetColumnWidth 设置列宽并返回最新布局
func (l *LayoutLogic) SetColumnWidth(ctx context.Context, userID uint, req *types.SetColumnWidthRequest) (*types.TableLayoutResponse, error) {
	store, err := l.prefStore(userID, req.TableKey)
	if err != nil {
		return nil, err
	}
	store.SetWidth(ctx, req.Key, req.Width)
	return l.GetLayout(ctx, userID, req.TableKey)
}

// SetVisibleColumns 设置可见列并返回最新布局
func (l *LayoutLogic) SetVisibleColumns(ctx context.Context, userID uint, req *types.SetVisibleColumnsRequest) (*types.TableLayoutResponse, error) {
	store, err := l.prefStore(userID, req.TableKey)
	if err != nil {
		return nil, err
	}
	store.SetVisibleKeys(ctx, req.Keys)
	return l.GetLayout(ctx, userID, req.TableKey)
}

// SetColumnOrder 设置列顺序并返回最新布局
func (l *LayoutLogic) SetColumnOrder(ctx context.Context, userID uint, req *types.SetColumnOrderRequest) (*types.TableLayoutResponse, error) {
	store, err := l.prefStore(userID, req.TableKey)
	if err != nil {
		return nil, err
	}
	store.SetOrderedKeys(ctx, req.Keys)
	return l.GetLayout(ctx, userID, req.TableKey)
}

// ResetLayout 重置为默认布局并返回
func (l *LayoutLogic) ResetLayout(ctx context.Context, userID uint, req *types.ResetLayoutRequest) (*types.TableLayoutResponse, error) {
	store, err := l.prefStore(userID, req.TableKey)
	if err != nil {
		return nil, err
	}
	store.ResetToDefault(ctx)
	return l.GetLayout(ctx, userID, req.TableKey)
}

// visibleColumns 某用户某表格当前可见的有序列，导出表头用
func visibleColumns(ctx context.Context, userID uint, tableKey string) ([]table.ColumnPreset, error) {
	store, err := NewLayoutLogic().prefStore(userID, tableKey)
	if err != nil {
		return nil, err
	}
	return store.Visible(ctx), nil
}
