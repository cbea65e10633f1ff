package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
)

func TestActivityServiceRecordAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(repository.NewActivityLogRepository(db))

	svc.Record(ActionCreateOption, "Created dropdown option: status / Active",
		map[string]interface{}{"option_id": int64(1)}, "alice", "127.0.0.1")
	svc.Record(ActionUpdateSettings, "Updated system settings: site_title", nil, "", "127.0.0.1")

	entries, total, err := svc.List(&dto.RangeQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, entries, 2)

	// 未提供操作者时归为system
	var settingsEntry *model.ActivityLog
	for _, e := range entries {
		if e.Action == ActionUpdateSettings {
			settingsEntry = e
		}
	}
	require.NotNil(t, settingsEntry)
	assert.Equal(t, "system", settingsEntry.UserID)
}

func TestActivityServicePurge(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewActivityLogRepository(db)
	svc := NewActivityService(repo)

	old := &model.ActivityLog{Action: ActionCreateUser, UserID: "alice"}
	require.NoError(t, repo.Create(old))
	// 回拨到保留期之外
	require.NoError(t, db.Model(old).Update("timestamp", time.Now().AddDate(0, 0, -120)).Error)

	svc.Record(ActionCreateUser, "Created user: bob (viewer)", nil, "alice", "")

	deleted, err := svc.PurgeOlderThan(90)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, total, err := svc.List(&dto.RangeQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
