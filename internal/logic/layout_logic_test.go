package logic

import (
	"context"
	"testing"

	"huodong/admin/internal/svc"
	"huodong/admin/internal/types"
	"huodong/admin/pkg/table"

	"github.com/stretchr/testify/require"
)

// setupLayoutCtx 用内存存储初始化服务上下文
func setupLayoutCtx(t *testing.T) {
	t.Helper()
	prev := svc.Ctx
	svc.Ctx = &svc.ServiceContext{LayoutStorage: table.NewMemoryStorage()}
	t.Cleanup(func() { svc.Ctx = prev })
}

func TestLayoutDefaultMatchesPresets(t *testing.T) {
	setupLayoutCtx(t)
	ctx := context.Background()

	layout, err := NewLayoutLogic().GetLayout(ctx, 1, TableKeyActivityList)
	require.NoError(t, err)
	require.Equal(t, TableKeyActivityList, layout.TableKey)
	require.Equal(t, layoutPresets[TableKeyActivityList], layout.Columns)
}

func TestLayoutUnknownTableKey(t *testing.T) {
	setupLayoutCtx(t)

	_, err := NewLayoutLogic().GetLayout(context.Background(), 1, "nope:list")
	require.Error(t, err)
}

func TestLayoutSetWidthPersists(t *testing.T) {
	setupLayoutCtx(t)
	ctx := context.Background()
	l := NewLayoutLogic()

	layout, err := l.SetColumnWidth(ctx, 1, &types.SetColumnWidthRequest{
		TableKey: TableKeyActivityList,
		Key:      "title",
		Width:    320,
	})
	require.NoError(t, err)

	var found bool
	for _, col := range layout.Columns {
		if col.Key == "title" {
			require.Equal(t, 320, col.Width)
			found = true
		}
	}
	require.True(t, found)

	// 重新读取仍保留
	layout, err = l.GetLayout(ctx, 1, TableKeyActivityList)
	require.NoError(t, err)
	for _, col := range layout.Columns {
		if col.Key == "title" {
			require.Equal(t, 320, col.Width)
		}
	}
}

func TestLayoutWidthFloor(t *testing.T) {
	setupLayoutCtx(t)

	layout, err := NewLayoutLogic().SetColumnWidth(context.Background(), 1, &types.SetColumnWidthRequest{
		TableKey: TableKeyActivityList,
		Key:      "id",
		Width:    10,
	})
	require.NoError(t, err)
	for _, col := range layout.Columns {
		if col.Key == "id" {
			require.Equal(t, table.MinColWidth, col.Width)
		}
	}
}

func TestLayoutVisibleAndOrder(t *testing.T) {
	setupLayoutCtx(t)
	ctx := context.Background()
	l := NewLayoutLogic()

	layout, err := l.SetVisibleColumns(ctx, 1, &types.SetVisibleColumnsRequest{
		TableKey: TableKeyRegistrationList,
		Keys:     []string{"username", "status"},
	})
	require.NoError(t, err)

	visible := 0
	for _, col := range layout.Columns {
		if !col.Hidden {
			visible++
		}
	}
	require.Equal(t, 2, visible)

	layout, err = l.SetColumnOrder(ctx, 1, &types.SetColumnOrderRequest{
		TableKey: TableKeyRegistrationList,
		Keys:     []string{"status", "username"},
	})
	require.NoError(t, err)
	require.Equal(t, "status", layout.Columns[0].Key)
	require.Equal(t, "username", layout.Columns[1].Key)
}

func TestLayoutResetRestoresDefaults(t *testing.T) {
	setupLayoutCtx(t)
	ctx := context.Background()
	l := NewLayoutLogic()

	_, err := l.SetColumnWidth(ctx, 1, &types.SetColumnWidthRequest{
		TableKey: TableKeyActivityList,
		Key:      "title",
		Width:    500,
	})
	require.NoError(t, err)

	layout, err := l.ResetLayout(ctx, 1, &types.ResetLayoutRequest{TableKey: TableKeyActivityList})
	require.NoError(t, err)
	require.Equal(t, layoutPresets[TableKeyActivityList], layout.Columns)
}

func TestLayoutIsolatedPerUser(t *testing.T) {
	setupLayoutCtx(t)
	ctx := context.Background()
	l := NewLayoutLogic()

	_, err := l.SetColumnWidth(ctx, 1, &types.SetColumnWidthRequest{
		TableKey: TableKeyActivityList,
		Key:      "title",
		Width:    400,
	})
	require.NoError(t, err)

	layout, err := l.GetLayout(ctx, 2, TableKeyActivityList)
	require.NoError(t, err)
	require.Equal(t, layoutPresets[TableKeyActivityList], layout.Columns)
}
