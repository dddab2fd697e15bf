package table

import (
	"context"
	"time"

	"huodong/admin/common/logger"
	"huodong/admin/common/utils"

	"go.uber.org/zap"
)

// MinColWidth 列宽下限(px)
const MinColWidth = 80

// LayoutVersion 当前布局结构版本，写入时记录。
// 读取时任意版本乐观合并，版本号不用于丢弃持久化数据
const LayoutVersion = 1

// ColumnPreset 列预设：默认布局与导出表头的来源，按数组顺序排列
type ColumnPreset struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Width  int    `json:"width,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

// ColumnOverride 单列的持久化覆盖，nil表示沿用预设默认值
type ColumnOverride struct {
	Key    string `json:"key"`
	Width  *int   `json:"width,omitempty"`
	Hidden *bool  `json:"hidden,omitempty"`
}

// PersistedColumnState 持久化的布局状态，按bizKey存储。
// Order是SetOrderedKeys写入的显式列顺序，为空表示沿用预设顺序；
// Columns只承载宽度/可见性覆盖，顺序不参与布局
type PersistedColumnState struct {
	Version   int              `json:"version"`
	UpdatedAt int64            `json:"updatedAt"` // epoch毫秒
	Order     []string         `json:"order,omitempty"`
	Columns   []ColumnOverride `json:"columns"`
}

// Storage 布局持久化的键值存储抽象，按bizKey读写删
type Storage interface {
	Get(ctx context.Context, bizKey string) ([]byte, error)
	Set(ctx context.Context, bizKey string, data []byte) error
	Del(ctx context.Context, bizKey string) error
}

// PreferenceStore 列布局偏好：持久化覆盖与调用方预设列表的合并视图。
// 每次变更立即写回（无单独保存步骤）；读写失败均回退到预设默认值，
// 布局持久化是便利功能，不构成正确性要求。
// bizKey须全局唯一，重复的bizKey会互相覆盖布局，由调用方保证
type PreferenceStore struct {
	storage Storage
	bizKey  string
	presets []ColumnPreset
}

// NewPreferenceStore 创建列布局偏好
func NewPreferenceStore(storage Storage, bizKey string, presets []ColumnPreset) *PreferenceStore {
	cloned := make([]ColumnPreset, len(presets))
	copy(cloned, presets)
	return &PreferenceStore{
		storage: storage,
		bizKey:  bizKey,
		presets: cloned,
	}
}

// BizKey 布局的业务键
func (p *PreferenceStore) BizKey() string {
	return p.bizKey
}

// Presets 默认预设列表的副本
func (p *PreferenceStore) Presets() []ColumnPreset {
	out := make([]ColumnPreset, len(p.presets))
	copy(out, p.presets)
	return out
}

// load 读取持久化状态与原始JSON字段。
// 存储损坏或读取失败视为无持久化状态，不报错
func (p *PreferenceStore) load(ctx context.Context) (PersistedColumnState, map[string]any) {
	empty := PersistedColumnState{Version: LayoutVersion}
	data, err := p.storage.Get(ctx, p.bizKey)
	if err != nil || len(data) == 0 {
		return empty, nil
	}

	var state PersistedColumnState
	if err := utils.Unmarshal(data, &state); err != nil {
		logger.Warn("表格布局数据损坏，回退默认布局", zap.String("bizKey", p.bizKey), zap.Error(err))
		return empty, nil
	}

	// 保留未识别的顶层字段，写回时透传，容忍结构前向演进
	var raw map[string]any
	if err := utils.Unmarshal(data, &raw); err != nil {
		raw = nil
	}
	return state, raw
}

// save 合并未识别字段后整体写回，写失败仅记录日志
func (p *PreferenceStore) save(ctx context.Context, state PersistedColumnState, raw map[string]any) {
	state.Version = LayoutVersion
	state.UpdatedAt = time.Now().UnixMilli()

	known, err := utils.ToMap(state)
	if err != nil {
		logger.Warn("表格布局序列化失败", zap.String("bizKey", p.bizKey), zap.Error(err))
		return
	}
	for k, v := range raw {
		if _, ok := known[k]; !ok {
			known[k] = v
		}
	}

	data, err := utils.Marshal(known)
	if err != nil {
		logger.Warn("表格布局序列化失败", zap.String("bizKey", p.bizKey), zap.Error(err))
		return
	}
	if err := p.storage.Set(ctx, p.bizKey, data); err != nil {
		logger.Warn("表格布局保存失败", zap.String("bizKey", p.bizKey), zap.Error(err))
	}
}

// Effective 合并后的有效布局：持久化覆盖叠加在预设上，
// 顺序取显式持久化顺序，未设置时按预设顺序。
// 指向已删除预设列的覆盖项和顺序项被静默丢弃
func (p *PreferenceStore) Effective(ctx context.Context) []ColumnPreset {
	state, _ := p.load(ctx)
	return mergeColumns(p.presets, state.Columns, state.Order)
}

// Visible 有效布局中未隐藏的列，导出表头的来源
func (p *PreferenceStore) Visible(ctx context.Context) []ColumnPreset {
	merged := p.Effective(ctx)
	visible := make([]ColumnPreset, 0, len(merged))
	for _, col := range merged {
		if !col.Hidden {
			visible = append(visible, col)
		}
	}
	return visible
}

// SetWidth 设置列宽并立即持久化，宽度下限MinColWidth
func (p *PreferenceStore) SetWidth(ctx context.Context, key string, width int) {
	if !p.hasPreset(key) {
		return
	}
	if width < MinColWidth {
		width = MinColWidth
	}

	state, raw := p.load(ctx)
	override := findOverride(&state, key)
	override.Width = &width
	p.save(ctx, state, raw)
}

// SetVisibleKeys 设置可见列集合并立即持久化，未列出的列隐藏
func (p *PreferenceStore) SetVisibleKeys(ctx context.Context, keys []string) {
	visible := make(map[string]bool, len(keys))
	for _, k := range keys {
		visible[k] = true
	}

	state, raw := p.load(ctx)
	for _, preset := range p.presets {
		hidden := !visible[preset.Key]
		override := findOverride(&state, preset.Key)
		override.Hidden = &hidden
	}
	p.save(ctx, state, raw)
}

// SetOrderedKeys 设置列顺序并立即持久化，未列出的列按预设顺序排在末尾。
// 顺序是独立于宽度/可见性覆盖的状态，只有这里会改动它
func (p *PreferenceStore) SetOrderedKeys(ctx context.Context, keys []string) {
	state, raw := p.load(ctx)

	order := make([]string, 0, len(p.presets))
	for _, key := range keys {
		if p.hasPreset(key) {
			order = append(order, key)
		}
	}
	for _, preset := range p.presets {
		if !utils.SliceContains(order, preset.Key) {
			order = append(order, preset.Key)
		}
	}

	state.Order = order
	p.save(ctx, state, raw)
}

// ResetToDefault 清除持久化覆盖，整体回退到预设默认
func (p *PreferenceStore) ResetToDefault(ctx context.Context) {
	if err := p.storage.Del(ctx, p.bizKey); err != nil {
		logger.Warn("表格布局重置失败", zap.String("bizKey", p.bizKey), zap.Error(err))
	}
}

// hasPreset 判断key是否仍在预设列表中
func (p *PreferenceStore) hasPreset(key string) bool {
	for _, preset := range p.presets {
		if preset.Key == key {
			return true
		}
	}
	return false
}

// findOverride 查找或新建某列的覆盖项
func findOverride(state *PersistedColumnState, key string) *ColumnOverride {
	for i := range state.Columns {
		if state.Columns[i].Key == key {
			return &state.Columns[i]
		}
	}
	state.Columns = append(state.Columns, ColumnOverride{Key: key})
	return &state.Columns[len(state.Columns)-1]
}

// mergeColumns 预设与覆盖合并：顺序由显式order决定（空则按预设顺序），
// 宽度/可见性覆盖按key叠加，未知key的覆盖和顺序项直接跳过
func mergeColumns(presets []ColumnPreset, overrides []ColumnOverride, order []string) []ColumnPreset {
	byKey := make(map[string]ColumnPreset, len(presets))
	for _, preset := range presets {
		byKey[preset.Key] = preset
	}
	overrideByKey := make(map[string]ColumnOverride, len(overrides))
	for _, override := range overrides {
		overrideByKey[override.Key] = override
	}

	merged := make([]ColumnPreset, 0, len(presets))
	seen := make(map[string]bool, len(presets))
	appendKey := func(key string) {
		preset, ok := byKey[key]
		if !ok || seen[key] {
			// 预设中已删除的列，静默丢弃
			return
		}
		if override, ok := overrideByKey[key]; ok {
			if override.Width != nil {
				preset.Width = *override.Width
			}
			if override.Hidden != nil {
				preset.Hidden = *override.Hidden
			}
		}
		merged = append(merged, preset)
		seen[key] = true
	}

	for _, key := range order {
		appendKey(key)
	}
	for _, preset := range presets {
		appendKey(preset.Key)
	}
	return merged
}
