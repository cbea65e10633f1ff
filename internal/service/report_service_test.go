package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
)

func newReportService(t *testing.T) (ReportService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewReportService(
		repository.NewProjectRepository(db),
		repository.NewSimpleProjectRepository(db),
	), db
}

func seedReportProjects(t *testing.T, db *gorm.DB) {
	t.Helper()
	projects := []*model.Project{
		{ProjectName: "P1", Status: "Active", Status2: "In Development", Priority: "High", EndMonth: "Jan'26", AccountManager: "Alice"},
		{ProjectName: "P2", Status: "Active", Status2: "Done", Priority: "Low", EndMonth: "Jan'26", AccountManager: "Alice"},
		{ProjectName: "P3", Status: "On Hold", Status2: "In Development", Priority: "High", EndMonth: "Feb'26", AccountManager: "Bob"},
		{ProjectName: "P4", Status: "Active", Status2: "Done", Priority: "Medium", EndMonth: "Feb'26"},
	}
	for _, p := range projects {
		seedProject(t, db, p)
	}
}

func TestReportServiceSummary(t *testing.T) {
	svc, db := newReportService(t)
	seedReportProjects(t, db)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.EqualValues(t, 4, summary.TotalProjects)
	assert.EqualValues(t, 3, summary.ActiveProjects)
	assert.EqualValues(t, 2, summary.DelayedProjects)
	assert.EqualValues(t, 2, summary.CompletedProjects)
	assert.EqualValues(t, 2, summary.HighPriorityProjects)
	require.NotNil(t, summary.LastUpdated)

	// snake_case副本与顶层一致
	assert.Equal(t, summary.TotalProjects, summary.Summary.TotalProjects)
	assert.Equal(t, summary.ActiveProjects, summary.Summary.ActiveProjects)
	assert.Equal(t, summary.DelayedProjects, summary.Summary.InDevelopmentProjects)
}

func TestReportServiceSummaryEmpty(t *testing.T) {
	svc, _ := newReportService(t)

	summary, err := svc.Summary()
	require.NoError(t, err)
	assert.EqualValues(t, 0, summary.TotalProjects)
	assert.Nil(t, summary.LastUpdated)
}

func TestReportServiceStatusDistribution(t *testing.T) {
	svc, db := newReportService(t)
	seedReportProjects(t, db)

	distribution, err := svc.StatusDistribution()
	require.NoError(t, err)

	var statusTotal int
	var pctSum float64
	for _, b := range distribution.Status {
		statusTotal += b.Count
		pctSum += b.Percentage
	}
	assert.Equal(t, 4, statusTotal)
	assert.InDelta(t, 100.0, pctSum, 0.2)

	for _, b := range distribution.Status {
		if b.Status == "Active" {
			assert.Equal(t, 3, b.Count)
			assert.InDelta(t, 75.0, b.Percentage, 0.01)
		}
	}

	var status2Total int
	for _, b := range distribution.Status2 {
		status2Total += b.Count
	}
	assert.Equal(t, 4, status2Total)
}

func TestReportServiceMonthlyAndEndMonth(t *testing.T) {
	svc, db := newReportService(t)
	seedReportProjects(t, db)

	monthly, err := svc.MonthlyDistribution()
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	// 按end_month字典序
	assert.Equal(t, "Feb'26", monthly[0].EndMonth)
	assert.Equal(t, 2, monthly[0].ProjectCount)
	assert.Equal(t, "Jan'26", monthly[1].EndMonth)
	assert.Equal(t, 2, monthly[1].ActiveCount)

	byMonth, err := svc.ByEndMonth()
	require.NoError(t, err)
	require.Len(t, byMonth, 2)

	var total int
	for _, m := range byMonth {
		total += m.TotalProjects
	}
	assert.Equal(t, 4, total)

	for _, m := range byMonth {
		if m.EndMonth == "Feb'26" {
			assert.Equal(t, 1, m.HighPriorityProjects)
			assert.Equal(t, 1, m.CompletedProjects)
		}
	}
}

func TestReportServiceAccountManagers(t *testing.T) {
	svc, db := newReportService(t)
	seedReportProjects(t, db)

	stats, err := svc.AccountManagers()
	require.NoError(t, err)
	// 未填写经理的项目不计入
	require.Len(t, stats, 2)

	// 按总数倒序
	assert.Equal(t, "Alice", stats[0].AccountManager)
	assert.Equal(t, 2, stats[0].TotalProjects)
	assert.Equal(t, 2, stats[0].ActiveProjects)
	assert.Equal(t, "Bob", stats[1].AccountManager)
	assert.Equal(t, 1, stats[1].HighPriorityProjects)
}

func TestReportServiceRecentActivity(t *testing.T) {
	svc, db := newReportService(t)
	seedReportProjects(t, db)

	recent, err := svc.RecentActivity(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// 默认返回10条以内
	recent, err = svc.RecentActivity(0)
	require.NoError(t, err)
	assert.Len(t, recent, 4)
}

func TestReportServiceSimpleSummary(t *testing.T) {
	svc, db := newReportService(t)

	simpleRepo := repository.NewSimpleProjectRepository(db)
	for _, p := range []*model.SimpleProject{
		{Project: "S1", Status: "Active"},
		{Project: "S2", Status: "Active"},
		{Project: "S3", Status: "Delayed"},
		{Project: "S4", Status: "Completed"},
		{Project: "S5", Status: "Planned"},
	} {
		require.NoError(t, simpleRepo.Create(p))
	}

	summary, err := svc.SimpleSummary()
	require.NoError(t, err)
	assert.EqualValues(t, 5, summary.TotalProjects)
	assert.EqualValues(t, 2, summary.ActiveProjects)
	assert.EqualValues(t, 1, summary.DelayedProjects)
	assert.EqualValues(t, 1, summary.CompletedProjects)
}

func TestCurrentMonthKey(t *testing.T) {
	ts := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep'26", currentMonthKey(ts))
}
