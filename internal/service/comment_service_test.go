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

func newCommentService(t *testing.T) (CommentService, *model.Project) {
	t.Helper()
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	project := seedProject(t, db, &model.Project{
		ProjectName:  "Alpha",
		CustomerName: "Acme Corp",
	})
	return NewCommentService(commentRepo, projectRepo), project
}

func TestCommentServiceCreateMissingProject(t *testing.T) {
	svc, _ := newCommentService(t)

	_, err := svc.Create(999, &dto.CommentRequest{CommentText: "kickoff scheduled", AddedBy: "alice"})
	assert.Equal(t, pkgErrors.ErrRecordNotFound, err)
}

func TestCommentServiceCreateAndList(t *testing.T) {
	svc, project := newCommentService(t)

	created, err := svc.Create(project.ID, &dto.CommentRequest{CommentText: "kickoff scheduled", AddedBy: "alice"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// 响应带冗余的项目信息和定宽时间
	assert.Equal(t, "Alpha", created.ProjectName)
	assert.Equal(t, "Acme Corp", created.CustomerName)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`, created.FormattedTime)

	comments, err := svc.ListByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "kickoff scheduled", comments[0].CommentText)
	assert.Equal(t, "Alpha", comments[0].ProjectName)
}

func TestCommentServiceListMissingProject(t *testing.T) {
	svc, _ := newCommentService(t)

	_, err := svc.ListByProject(999)
	assert.Equal(t, pkgErrors.ErrRecordNotFound, err)
}

func TestCommentServiceUpdateAndDelete(t *testing.T) {
	svc, project := newCommentService(t)

	created, err := svc.Create(project.ID, &dto.CommentRequest{CommentText: "draft", AddedBy: "alice"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &dto.CommentRequest{CommentText: "final note", AddedBy: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "final note", updated.CommentText)
	assert.Equal(t, "bob", updated.AddedBy)
	// 所属项目不变
	assert.Equal(t, project.ID, updated.ProjectID)

	require.NoError(t, svc.Delete(created.ID))
	err = svc.Delete(created.ID)
	assert.Equal(t, pkgErrors.ErrRecordNotFound, err)
}

func TestCommentServiceHistoryAndStats(t *testing.T) {
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	svc := NewCommentService(repository.NewCommentRepository(db), projectRepo)

	p1 := seedProject(t, db, &model.Project{ProjectName: "Alpha", CustomerName: "Acme"})
	p2 := seedProject(t, db, &model.Project{ProjectName: "Beta", CustomerName: "Globex"})

	for i := 0; i < 3; i++ {
		_, err := svc.Create(p1.ID, &dto.CommentRequest{CommentText: "note", AddedBy: "alice"})
		require.NoError(t, err)
	}
	_, err := svc.Create(p2.ID, &dto.CommentRequest{CommentText: "other", AddedBy: "bob"})
	require.NoError(t, err)

	// 全局历史
	history, total, err := svc.History(&dto.CommentHistoryQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, history, 4)

	// 按项目过滤
	history, total, err = svc.History(&dto.CommentHistoryQuery{ProjectID: p2.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, history, 1)
	assert.Equal(t, "Beta", history[0].ProjectName)

	// 分页
	history, total, err = svc.History(&dto.CommentHistoryQuery{RangeQuery: dto.RangeQuery{Limit: 2, Offset: 2}})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, history, 2)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalComments)
	assert.EqualValues(t, 2, stats.ProjectsWithComments)
	assert.EqualValues(t, 4, stats.RecentComments)
}
