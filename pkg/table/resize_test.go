package table

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResizeFixture() (*ResizeController, *PreferenceStore, *MemoryStorage) {
	storage := NewMemoryStorage()
	store := NewPreferenceStore(storage, "demo.table", demoPresets())
	return NewResizeController(store), store, storage
}

func TestResizeDragCommit(t *testing.T) {
	ctx := context.Background()
	ctrl, store, _ := newResizeFixture()

	require.True(t, ctrl.PointerDown(ctx, "name", PointerEvent{PointerID: 1, ClientX: 100}))
	assert.True(t, ctrl.Active())

	// 拖拽中只更新浮层，不写存储
	width := ctrl.PointerMove(PointerEvent{PointerID: 1, ClientX: 150})
	assert.Equal(t, 250, width)
	overlay, ok := ctrl.OverlayWidth("name")
	require.True(t, ok)
	assert.Equal(t, 250, overlay)
	assert.Equal(t, 200, store.Effective(ctx)[0].Width)

	// 松开时一次性提交
	final := ctrl.PointerUp(ctx, PointerEvent{PointerID: 1, ClientX: 160})
	assert.Equal(t, 260, final)
	assert.Equal(t, 260, store.Effective(ctx)[0].Width)
	assert.False(t, ctrl.Active())
	_, ok = ctrl.OverlayWidth("name")
	assert.False(t, ok)
}

// 向左拖出负宽度也不会低于下限
func TestResizeDragFloor(t *testing.T) {
	ctx := context.Background()
	ctrl, store, _ := newResizeFixture()

	require.True(t, ctrl.PointerDown(ctx, "status", PointerEvent{PointerID: 1, ClientX: 500}))

	width := ctrl.PointerMove(PointerEvent{PointerID: 1, ClientX: -2000})
	assert.Equal(t, MinColWidth, width)

	final := ctrl.PointerUp(ctx, PointerEvent{PointerID: 1, ClientX: -2000})
	assert.Equal(t, MinColWidth, final)
	assert.Equal(t, MinColWidth, store.Effective(ctx)[1].Width)
}

// 同一时刻只允许一个活动拖拽
func TestResizeSingleActiveDrag(t *testing.T) {
	ctx := context.Background()
	ctrl, _, _ := newResizeFixture()

	require.True(t, ctrl.PointerDown(ctx, "name", PointerEvent{PointerID: 1, ClientX: 0}))
	assert.False(t, ctrl.PointerDown(ctx, "status", PointerEvent{PointerID: 2, ClientX: 0}))
}

// 未捕获的指针事件被忽略
func TestResizeIgnoresForeignPointer(t *testing.T) {
	ctx := context.Background()
	ctrl, store, _ := newResizeFixture()

	require.True(t, ctrl.PointerDown(ctx, "name", PointerEvent{PointerID: 1, ClientX: 100}))

	assert.Equal(t, 0, ctrl.PointerMove(PointerEvent{PointerID: 9, ClientX: 400}))
	assert.Equal(t, 0, ctrl.PointerUp(ctx, PointerEvent{PointerID: 9, ClientX: 400}))
	// 原拖拽仍然有效
	assert.True(t, ctrl.Active())
	assert.Equal(t, 200, store.Effective(ctx)[0].Width)
}

// 起始宽度优先取持久化覆盖
func TestResizeStartsFromPersistedWidth(t *testing.T) {
	ctx := context.Background()
	ctrl, store, _ := newResizeFixture()
	store.SetWidth(ctx, "name", 300)

	require.True(t, ctrl.PointerDown(ctx, "name", PointerEvent{PointerID: 1, ClientX: 0}))
	width := ctrl.PointerMove(PointerEvent{PointerID: 1, ClientX: 20})
	assert.Equal(t, 320, width)
}

func TestResizeCancel(t *testing.T) {
	ctx := context.Background()
	ctrl, store, _ := newResizeFixture()

	require.True(t, ctrl.PointerDown(ctx, "name", PointerEvent{PointerID: 1, ClientX: 0}))
	ctrl.PointerMove(PointerEvent{PointerID: 1, ClientX: 100})
	ctrl.Cancel()

	assert.False(t, ctrl.Active())
	assert.Equal(t, 200, store.Effective(ctx)[0].Width)
}

// 未知列无法开始拖拽
func TestResizeUnknownColumn(t *testing.T) {
	ctx := context.Background()
	ctrl, _, _ := newResizeFixture()
	assert.False(t, ctrl.PointerDown(ctx, "nope", PointerEvent{PointerID: 1, ClientX: 0}))
}
