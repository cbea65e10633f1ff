package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
	pkgErrors "pmo-dashboard/pkg/errors"
)

func newOptionService(t *testing.T) (OptionService, repository.ProjectRepository) {
	t.Helper()
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	return NewOptionService(repository.NewOptionRepository(db), projectRepo), projectRepo
}

func TestOptionServiceCreateDuplicate(t *testing.T) {
	svc, _ := newOptionService(t)

	_, err := svc.Create(&dto.OptionRequest{Type: "status", Value: "Active"})
	require.NoError(t, err)

	// 同type同value冲突
	_, err = svc.Create(&dto.OptionRequest{Type: "status", Value: "Active"})
	assert.Equal(t, pkgErrors.ErrRecordExists, err)

	// 不同type下同value允许
	_, err = svc.Create(&dto.OptionRequest{Type: "status2", Value: "Active"})
	assert.NoError(t, err)
}

func TestOptionServiceUpdateDuplicate(t *testing.T) {
	svc, _ := newOptionService(t)

	_, err := svc.Create(&dto.OptionRequest{Type: "priority", Value: "High"})
	require.NoError(t, err)
	opt, err := svc.Create(&dto.OptionRequest{Type: "priority", Value: "Low"})
	require.NoError(t, err)

	// 改成已存在的组合被拒绝
	_, err = svc.Update(opt.ID, &dto.OptionRequest{Type: "priority", Value: "High"})
	assert.Equal(t, pkgErrors.ErrRecordExists, err)

	// 保持自身组合不算冲突
	updated, err := svc.Update(opt.ID, &dto.OptionRequest{Type: "priority", Value: "Low", Description: "backlog"})
	require.NoError(t, err)
	assert.Equal(t, "backlog", updated.Description)
}

func TestOptionServiceDeleteInUse(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	svc := NewOptionService(repository.NewOptionRepository(db), projectRepo)

	opt, err := svc.Create(&dto.OptionRequest{Type: "status", Value: "Active"})
	require.NoError(t, err)
	unused, err := svc.Create(&dto.OptionRequest{Type: "status", Value: "Archived"})
	require.NoError(t, err)

	require.NoError(t, projectRepo.Create(&model.Project{
		ProjectName: "Apollo",
		Status:      "Active",
	}))

	// 被项目引用的取值拒绝删除
	err = svc.Delete(opt.ID)
	assert.Equal(t, pkgErrors.ErrOptionInUse, err)

	// 未引用的可以删除
	require.NoError(t, svc.Delete(unused.ID))

	options, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, options, 1)
}

func TestOptionServiceDeleteNotFound(t *testing.T) {
	svc, _ := newOptionService(t)
	err := svc.Delete(12345)
	assert.Equal(t, pkgErrors.ErrRecordNotFound, err)
}
