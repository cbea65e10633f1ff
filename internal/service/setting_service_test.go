package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmo-dashboard/internal/repository"
)

func TestSettingServiceUpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	keys, err := svc.UpdateAll(map[string]interface{}{
		"site_title":  "PMO Dashboard",
		"max_results": 500,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"max_results", "site_title"}, keys)

	settings, err := svc.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "PMO Dashboard", settings["site_title"])
	// 非字符串取值统一转为字符串存储
	assert.Equal(t, "500", settings["max_results"])

	// 同键覆盖写入
	_, err = svc.UpdateAll(map[string]interface{}{"site_title": "PMO 看板"})
	require.NoError(t, err)

	settings, err = svc.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "PMO 看板", settings["site_title"])
	assert.Len(t, settings, 2)
}

func TestSettingServiceUpdateEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	keys, err := svc.UpdateAll(nil)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
