package service

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
	pkgErrors "pmo-dashboard/pkg/errors"
)

func newProjectService(t *testing.T) (ProjectService, CommentService) {
	t.Helper()
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	return NewProjectService(projectRepo, commentRepo), NewCommentService(commentRepo, projectRepo)
}

func TestProjectServiceCRUD(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(&dto.ProjectRequest{
		CustomerName:   "Acme Corp",
		ProjectName:    "Apollo",
		AccountManager: "Alice",
		Status:         "Active",
		Priority:       "High",
		EndMonth:       "Dec'26",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", got.ProjectName)
	assert.Equal(t, "Acme Corp", got.CustomerName)

	updated, err := svc.Update(created.ID, &dto.ProjectRequest{
		CustomerName: "Acme Corp",
		ProjectName:  "Apollo",
		Status:       "On Hold",
	})
	require.NoError(t, err)
	assert.Equal(t, "On Hold", updated.Status)
	// 未提交的字段被清空, 更新是整体替换
	assert.Empty(t, updated.AccountManager)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	assert.Equal(t, pkgErrors.ErrRecordNotFound, err)

	// 重复删除返回404
	err = svc.Delete(created.ID)
	assert.Equal(t, pkgErrors.ErrRecordNotFound, err)
}

func TestProjectServiceListFilters(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	svc := NewProjectService(projectRepo, repository.NewCommentRepository(db))

	seedProject(t, db, &model.Project{ProjectName: "Apollo", CustomerName: "Acme Corp", Status: "Active", Priority: "High"})
	seedProject(t, db, &model.Project{ProjectName: "Borealis", CustomerName: "Globex", Status: "Active", Priority: "Low"})
	seedProject(t, db, &model.Project{ProjectName: "Cassini", CustomerName: "ACME Ltd", Status: "Done", Priority: "High"})

	// 子串匹配不区分大小写
	projects, total, err := svc.List(&dto.ProjectListQuery{CustomerName: "acme"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, projects, 2)

	// 等值过滤与子串过滤可组合
	projects, total, err = svc.List(&dto.ProjectListQuery{CustomerName: "acme", Status: "Active"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, projects, 1)
	assert.Equal(t, "Apollo", projects[0].ProjectName)

	// 分页
	projects, total, err = svc.List(&dto.ProjectListQuery{RangeQuery: dto.RangeQuery{Limit: 2}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, projects, 2)
}

func TestProjectServiceFilterValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(repository.NewProjectRepository(db), repository.NewCommentRepository(db))

	seedProject(t, db, &model.Project{ProjectName: "Apollo", Status: "Active", Priority: "High", AccountManager: "Alice"})
	seedProject(t, db, &model.Project{ProjectName: "Borealis", Status: "Done", Priority: "High"})
	seedProject(t, db, &model.Project{ProjectName: "Cassini", Status: "Active"})

	values, err := svc.FilterValues()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Active", "Done"}, values.Statuses)
	// 去重且不含空值
	assert.Equal(t, []string{"High"}, values.Priorities)
	assert.Equal(t, []string{"Alice"}, values.AccountManagers)
	assert.Empty(t, values.EndMonths)
}

func TestProjectServiceExportCSV(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	svc := NewProjectService(projectRepo, commentRepo)
	commentSvc := NewCommentService(commentRepo, projectRepo)

	p := seedProject(t, db, &model.Project{
		ProjectName:  "Apollo",
		CustomerName: `Acme, "The" Corp`,
		Status:       "Active",
	})
	seedProject(t, db, &model.Project{ProjectName: "Borealis"})

	_, err := commentSvc.Create(p.ID, &dto.CommentRequest{CommentText: "kickoff done", AddedBy: "alice"})
	require.NoError(t, err)

	data, err := svc.ExportCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // 表头 + 2行

	assert.Equal(t, csvHeader, records[0])

	var apollo []string
	for _, rec := range records[1:] {
		if rec[1] == "Apollo" {
			apollo = rec
		}
	}
	require.NotNil(t, apollo)
	// 含逗号和引号的字段经转义后原样还原
	assert.Equal(t, `Acme, "The" Corp`, apollo[0])
	assert.Equal(t, "1", apollo[10])
	assert.NotEmpty(t, apollo[9])
}
