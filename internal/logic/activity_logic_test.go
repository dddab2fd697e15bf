package logic

import (
	"testing"
	"time"

	commontypes "huodong/admin/common/types"
	"huodong/admin/internal/model"
	"huodong/admin/internal/types"
	"huodong/admin/pkg/table"

	"github.com/stretchr/testify/require"
)

func activityDataset() []*types.ActivityInfo {
	at := func(day int) commontypes.DateTime {
		return commontypes.NewDateTime(time.Date(2025, 9, day, 14, 0, 0, 0, time.Local))
	}
	return []*types.ActivityInfo{
		{ID: 1, Title: "Go工程实践讲座", Type: model.ActivityTypeLecture, Speaker: "张教授", Location: "报告厅A", StartAt: at(1), Capacity: 100, Registered: 80, Status: model.ActivityStatusPublished},
		{ID: 2, Title: "校园马拉松", Type: model.ActivityTypeActivity, Speaker: "", Location: "操场", StartAt: at(5), Capacity: 0, Registered: 230, Status: model.ActivityStatusPublished},
		{ID: 3, Title: "数据库内核讲座", Type: model.ActivityTypeLecture, Speaker: "李博士", Location: "报告厅B", StartAt: at(3), Capacity: 60, Registered: 60, Status: model.ActivityStatusClosed},
		{ID: 4, Title: "迎新晚会", Type: model.ActivityTypeActivity, Speaker: "", Location: "大礼堂", StartAt: at(10), Capacity: 500, Registered: 12, Status: model.ActivityStatusDraft},
	}
}

func TestActivityLocalQueryKeyword(t *testing.T) {
	result := table.ApplyLocalQuery(activityDataset(), table.Query{
		Page: 1, PageSize: 10, Keyword: "讲座",
	}, activityOptions())

	require.Equal(t, 2, result.Total)
	for _, row := range result.List {
		require.Contains(t, row.Title, "讲座")
	}
}

func TestActivityLocalQueryFilters(t *testing.T) {
	lecture := int8(model.ActivityTypeLecture)
	published := int8(model.ActivityStatusPublished)
	req := &types.ListActivitiesRequest{Page: 1, PageSize: 10, Type: &lecture, Status: &published}

	result := table.ApplyLocalQuery(activityDataset(), req.ToQuery(), activityOptions())
	require.Equal(t, 1, result.Total)
	require.Equal(t, uint(1), result.List[0].ID)
}

func TestActivityLocalQuerySortByRegistered(t *testing.T) {
	req := &types.ListActivitiesRequest{Page: 1, PageSize: 10, SortField: "registered", SortOrder: table.OrderDesc}

	result := table.ApplyLocalQuery(activityDataset(), req.ToQuery(), activityOptions())
	require.Equal(t, 4, result.Total)
	require.Equal(t, []uint{2, 1, 3, 4}, []uint{
		result.List[0].ID, result.List[1].ID, result.List[2].ID, result.List[3].ID,
	})
}

func TestActivityLocalQuerySortByStartAt(t *testing.T) {
	req := &types.ListActivitiesRequest{Page: 1, PageSize: 10, SortField: "startAt", SortOrder: table.OrderAsc}

	result := table.ApplyLocalQuery(activityDataset(), req.ToQuery(), activityOptions())
	require.Equal(t, uint(1), result.List[0].ID)
	require.Equal(t, uint(4), result.List[3].ID)
}

func TestActivityCellLabels(t *testing.T) {
	row := activityDataset()[0]
	require.Equal(t, "讲座", activityCell(row, "type"))
	require.Equal(t, "已发布", activityCell(row, "status"))
	require.Equal(t, row.StartAt.String(), activityCell(row, "startAt"))
	require.Equal(t, "Go工程实践讲座", activityCell(row, "title"))
}

func TestRegistrationLocalQuery(t *testing.T) {
	rows := []*types.RegistrationInfo{
		{ID: 1, Username: "alice", Nickname: "小艾", Status: model.RegistrationStatusPending},
		{ID: 2, Username: "bob", Nickname: "阿波", Status: model.RegistrationStatusApproved},
		{ID: 3, Username: "carol", Nickname: "卡罗", Status: model.RegistrationStatusPending},
	}

	pending := int8(model.RegistrationStatusPending)
	req := &types.ListRegistrationsRequest{ActivityID: 7, Page: 1, PageSize: 10, Status: &pending}

	result := table.ApplyLocalQuery(rows, req.ToQuery(), registrationOptions())
	require.Equal(t, 2, result.Total)

	// activityId过滤键由取数源限定，不影响本地匹配
	for _, row := range result.List {
		require.EqualValues(t, model.RegistrationStatusPending, row.Status)
	}
}

func TestRegistrationCellLabels(t *testing.T) {
	row := &types.RegistrationInfo{Status: model.RegistrationStatusRejected, Username: "alice"}
	require.Equal(t, "已驳回", registrationCell(row, "status"))
	require.Equal(t, "alice", registrationCell(row, "username"))
}

func TestFilterInt(t *testing.T) {
	filters := map[string]any{
		"a": int8(1),
		"b": float64(2),
		"c": nil,
		"d": "x",
	}

	v, ok := filterInt(filters, "a")
	require.True(t, ok)
	require.EqualValues(t, 1, v)

	v, ok = filterInt(filters, "b")
	require.True(t, ok)
	require.EqualValues(t, 2, v)

	_, ok = filterInt(filters, "c")
	require.False(t, ok)

	_, ok = filterInt(filters, "d")
	require.False(t, ok)

	_, ok = filterInt(filters, "missing")
	require.False(t, ok)
}
