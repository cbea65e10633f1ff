package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
)

// newTestDB 每个测试用例独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Project{},
		&model.SimpleProject{},
		&model.DropdownOption{},
		&model.User{},
		&model.Comment{},
		&model.ActivityLog{},
		&model.SystemSetting{},
	))

	return db
}

func seedProject(t *testing.T, db *gorm.DB, p *model.Project) *model.Project {
	t.Helper()
	require.NoError(t, repository.NewProjectRepository(db).Create(p))
	return p
}
