package table

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoPresets() []ColumnPreset {
	return []ColumnPreset{
		{Key: "name", Title: "名称", Width: 200},
		{Key: "status", Title: "状态", Width: 100},
		{Key: "createdAt", Title: "创建时间", Width: 160, Hidden: true},
	}
}

func TestPreferenceStoreDefaults(t *testing.T) {
	store := NewPreferenceStore(NewMemoryStorage(), "demo.table", demoPresets())

	cols := store.Effective(context.Background())
	require.Len(t, cols, 3)
	assert.Equal(t, 200, cols[0].Width)
	assert.True(t, cols[2].Hidden)

	visible := store.Visible(context.Background())
	assert.Len(t, visible, 2)
}

// 列宽写入后，同一bizKey的新实例读到持久化宽度
func TestPreferenceStoreWidthRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()

	store := NewPreferenceStore(storage, "demo.table", demoPresets())
	store.SetWidth(ctx, "name", 180)

	fresh := NewPreferenceStore(storage, "demo.table", demoPresets())
	cols := fresh.Effective(ctx)
	assert.Equal(t, 180, cols[0].Width)
	// 未覆盖的列保持预设默认
	assert.Equal(t, 100, cols[1].Width)
}

// 列宽下限：低于下限的写入被钳制
func TestPreferenceStoreWidthFloor(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore(NewMemoryStorage(), "demo.table", demoPresets())

	store.SetWidth(ctx, "name", 10)
	assert.Equal(t, MinColWidth, store.Effective(ctx)[0].Width)
}

func TestPreferenceStoreVisibleKeys(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore(NewMemoryStorage(), "demo.table", demoPresets())

	store.SetVisibleKeys(ctx, []string{"status", "createdAt"})

	visible := store.Visible(ctx)
	require.Len(t, visible, 2)
	assert.Equal(t, "status", visible[0].Key)
	assert.Equal(t, "createdAt", visible[1].Key)
}

func TestPreferenceStoreOrderedKeys(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore(NewMemoryStorage(), "demo.table", demoPresets())

	store.SetOrderedKeys(ctx, []string{"status", "name"})

	cols := store.Effective(ctx)
	require.Len(t, cols, 3)
	assert.Equal(t, "status", cols[0].Key)
	assert.Equal(t, "name", cols[1].Key)
	// 未列出的列按预设顺序排在末尾
	assert.Equal(t, "createdAt", cols[2].Key)
}

// 设置列宽只改宽度，不改变列顺序
func TestPreferenceStoreWidthKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore(NewMemoryStorage(), "demo.table", demoPresets())

	store.SetWidth(ctx, "status", 300)

	cols := store.Effective(ctx)
	require.Len(t, cols, 3)
	assert.Equal(t, "name", cols[0].Key)
	assert.Equal(t, "status", cols[1].Key)
	assert.Equal(t, "createdAt", cols[2].Key)
	assert.Equal(t, 300, cols[1].Width)
}

// 显式顺序设置后，后续宽度和可见性写入不影响顺序
func TestPreferenceStoreOrderSurvivesOverrides(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore(NewMemoryStorage(), "demo.table", demoPresets())

	store.SetOrderedKeys(ctx, []string{"createdAt", "name"})
	store.SetWidth(ctx, "status", 240)
	store.SetVisibleKeys(ctx, []string{"name", "status"})

	cols := store.Effective(ctx)
	require.Len(t, cols, 3)
	assert.Equal(t, "createdAt", cols[0].Key)
	assert.Equal(t, "name", cols[1].Key)
	assert.Equal(t, "status", cols[2].Key)
	assert.Equal(t, 240, cols[2].Width)
	assert.False(t, cols[2].Hidden)
	assert.True(t, cols[0].Hidden)
}

// 持久化状态引用已从预设删除的列：静默丢弃，其余覆盖保留
func TestPreferenceStoreDropsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	old := NewPreferenceStore(storage, "demo.table", append(demoPresets(), ColumnPreset{Key: "legacy", Title: "旧列"}))
	old.SetWidth(ctx, "legacy", 300)
	old.SetWidth(ctx, "name", 240)

	// 预设演进后legacy列不复存在
	store := NewPreferenceStore(storage, "demo.table", demoPresets())
	cols := store.Effective(ctx)
	require.Len(t, cols, 3)
	for _, col := range cols {
		assert.NotEqual(t, "legacy", col.Key)
	}
	assert.Equal(t, 240, cols[0].Width)
}

// 存储数据损坏视为无持久化状态，回退预设默认
func TestPreferenceStoreCorruptData(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, "demo.table", []byte("{not json")))

	store := NewPreferenceStore(storage, "demo.table", demoPresets())
	cols := store.Effective(ctx)
	require.Len(t, cols, 3)
	assert.Equal(t, 200, cols[0].Width)
}

func TestPreferenceStoreResetToDefault(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewPreferenceStore(storage, "demo.table", demoPresets())

	store.SetWidth(ctx, "name", 400)
	store.ResetToDefault(ctx)

	data, err := storage.Get(ctx, "demo.table")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 200, store.Effective(ctx)[0].Width)
}

// 存储中未识别的顶层字段在写回时透传，容忍结构前向演进
func TestPreferenceStoreKeepsUnknownFields(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	seed := []byte(`{"version":1,"updatedAt":1,"columns":[],"pinned":["name"]}`)
	require.NoError(t, storage.Set(ctx, "demo.table", seed))

	store := NewPreferenceStore(storage, "demo.table", demoPresets())
	store.SetWidth(ctx, "name", 150)

	data, err := storage.Get(ctx, "demo.table")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pinned"`)
	assert.Contains(t, string(data), `"name"`)
}

// 读取失败的存储等同于空存储，变更仍按默认基线写回
type failingStorage struct {
	data map[string][]byte
}

func (f *failingStorage) Get(ctx context.Context, bizKey string) ([]byte, error) {
	return nil, errors.New("storage down")
}

func (f *failingStorage) Set(ctx context.Context, bizKey string, data []byte) error {
	if f.data == nil {
		f.data = make(map[string][]byte)
	}
	f.data[bizKey] = data
	return nil
}

func (f *failingStorage) Del(ctx context.Context, bizKey string) error {
	return errors.New("storage down")
}

func TestPreferenceStoreFailOpen(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore(&failingStorage{}, "demo.table", demoPresets())

	cols := store.Effective(ctx)
	require.Len(t, cols, 3)
	assert.Equal(t, 200, cols[0].Width)

	// 写失败不会panic，也不影响后续读取
	store.SetWidth(ctx, "name", 500)
	store.ResetToDefault(ctx)
}
