package service

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
)

type ReportService interface {
	Summary() (*dto.SummaryResponse, error)
	MonthlyDistribution() ([]*dto.MonthlyDistribution, error)
	StatusDistribution() (*dto.StatusDistribution, error)
	RecentActivity(limit int) ([]*dto.RecentProject, error)
	AccountManagers() ([]*dto.AccountManagerStats, error)
	PriorityDistribution() ([]*dto.PriorityCount, error)
	PhaseDistribution() ([]*dto.PhaseCount, error)
	ByEndMonth() ([]*dto.EndMonthStats, error)
	SimpleSummary() (*dto.SimpleSummary, error)
}

type reportService struct {
	projectRepo repository.ProjectRepository
	simpleRepo  repository.SimpleProjectRepository
}

func NewReportService(
	projectRepo repository.ProjectRepository,
	simpleRepo repository.SimpleProjectRepository,
) ReportService {
	return &reportService{
		projectRepo: projectRepo,
		simpleRepo:  simpleRepo,
	}
}

func (s *reportService) Summary() (*dto.SummaryResponse, error) {
	total, err := s.projectRepo.Count()
	if err != nil {
		return nil, err
	}
	active, err := s.projectRepo.CountWhere("status", "Active")
	if err != nil {
		return nil, err
	}
	inDev, err := s.projectRepo.CountWhere("status2", "In Development")
	if err != nil {
		return nil, err
	}
	completed, err := s.projectRepo.CountWhere("status2", "Done")
	if err != nil {
		return nil, err
	}
	highPriority, err := s.projectRepo.CountWhere("priority", "High")
	if err != nil {
		return nil, err
	}
	thisMonth, err := s.projectRepo.CountWhere("end_month", currentMonthKey(time.Now()))
	if err != nil {
		return nil, err
	}
	lastUpdated, err := s.projectRepo.LatestUpdatedAt()
	if err != nil {
		return nil, err
	}

	return &dto.SummaryResponse{
		TotalProjects:        total,
		ActiveProjects:       active,
		DelayedProjects:      inDev,
		CompletedProjects:    completed,
		HighPriorityProjects: highPriority,
		ThisMonthProjects:    thisMonth,
		LastUpdated:          lastUpdated,
		Summary: dto.SummaryBreakout{
			TotalProjects:         total,
			ActiveProjects:        active,
			HighPriorityProjects:  highPriority,
			InDevelopmentProjects: inDev,
			CompletedProjects:     completed,
		},
	}, nil
}

// MonthlyDistribution 按结束月份分组, 未填写的归入空字符串组
func (s *reportService) MonthlyDistribution() ([]*dto.MonthlyDistribution, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, err
	}

	groups := lo.GroupBy(projects, func(p *model.Project) string {
		return p.EndMonth
	})

	distribution := make([]*dto.MonthlyDistribution, 0, len(groups))
	for month, items := range groups {
		entry := &dto.MonthlyDistribution{EndMonth: month}
		for _, p := range items {
			entry.ProjectCount++
			if p.Status == "Active" {
				entry.ActiveCount++
			}
			if p.Status2 == "In Development" {
				entry.DevelopmentCount++
			}
		}
		distribution = append(distribution, entry)
	}

	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].EndMonth < distribution[j].EndMonth
	})
	return distribution, nil
}

func (s *reportService) StatusDistribution() (*dto.StatusDistribution, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, err
	}
	total := len(projects)

	statusCounts := countByField(projects, func(p *model.Project) string { return p.Status })
	status2Counts := countByField(projects, func(p *model.Project) string { return p.Status2 })

	result := &dto.StatusDistribution{
		Status:  make([]dto.StatusCount, 0, len(statusCounts)),
		Status2: make([]dto.Status2Count, 0, len(status2Counts)),
	}
	for _, b := range statusCounts {
		result.Status = append(result.Status, dto.StatusCount{
			Status:     b.value,
			Count:      b.count,
			Percentage: percentage(b.count, total),
		})
	}
	for _, b := range status2Counts {
		result.Status2 = append(result.Status2, dto.Status2Count{
			Status2:    b.value,
			Count:      b.count,
			Percentage: percentage(b.count, total),
		})
	}
	return result, nil
}

func (s *reportService) RecentActivity(limit int) ([]*dto.RecentProject, error) {
	if limit <= 0 {
		limit = 10
	}

	projects, err := s.projectRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}

	recent := make([]*dto.RecentProject, 0, len(projects))
	for _, p := range projects {
		recent = append(recent, &dto.RecentProject{
			ID:           p.ID,
			ProjectName:  p.ProjectName,
			CustomerName: p.CustomerName,
			Status:       p.Status,
			Status2:      p.Status2,
			UpdatedAt:    p.UpdatedAt,
			PMOComments:  p.PMOComments,
		})
	}
	return recent, nil
}

// AccountManagers 客户经理维度统计, 未填写经理的项目不计入, 按项目总数倒序
func (s *reportService) AccountManagers() ([]*dto.AccountManagerStats, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, err
	}

	groups := lo.GroupBy(projects, func(p *model.Project) string {
		return p.AccountManager
	})
	delete(groups, "")

	stats := make([]*dto.AccountManagerStats, 0, len(groups))
	for manager, items := range groups {
		entry := &dto.AccountManagerStats{AccountManager: manager}
		for _, p := range items {
			entry.TotalProjects++
			if p.Status == "Active" {
				entry.ActiveProjects++
			}
			if p.Priority == "High" {
				entry.HighPriorityProjects++
			}
			if p.Status2 == "In Development" {
				entry.InDevelopmentProjects++
			}
		}
		stats = append(stats, entry)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalProjects != stats[j].TotalProjects {
			return stats[i].TotalProjects > stats[j].TotalProjects
		}
		return stats[i].AccountManager < stats[j].AccountManager
	})
	return stats, nil
}

func (s *reportService) PriorityDistribution() ([]*dto.PriorityCount, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, err
	}
	total := len(projects)

	buckets := countByField(projects, func(p *model.Project) string { return p.Priority })
	result := make([]*dto.PriorityCount, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, &dto.PriorityCount{
			Priority:   b.value,
			Count:      b.count,
			Percentage: percentage(b.count, total),
		})
	}
	return result, nil
}

func (s *reportService) PhaseDistribution() ([]*dto.PhaseCount, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, err
	}
	total := len(projects)

	buckets := countByField(projects, func(p *model.Project) string { return p.CurrentPhase })
	result := make([]*dto.PhaseCount, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, &dto.PhaseCount{
			CurrentPhase: b.value,
			Count:        b.count,
			Percentage:   percentage(b.count, total),
		})
	}
	return result, nil
}

func (s *reportService) ByEndMonth() ([]*dto.EndMonthStats, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, err
	}

	groups := lo.GroupBy(projects, func(p *model.Project) string {
		return p.EndMonth
	})

	stats := make([]*dto.EndMonthStats, 0, len(groups))
	for month, items := range groups {
		entry := &dto.EndMonthStats{EndMonth: month}
		for _, p := range items {
			entry.TotalProjects++
			if p.Status == "Active" {
				entry.ActiveProjects++
			}
			if p.Priority == "High" {
				entry.HighPriorityProjects++
			}
			if p.Status2 == "In Development" {
				entry.InDevelopmentProjects++
			}
			if p.Status2 == "Done" {
				entry.CompletedProjects++
			}
		}
		stats = append(stats, entry)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].EndMonth < stats[j].EndMonth
	})
	return stats, nil
}

func (s *reportService) SimpleSummary() (*dto.SimpleSummary, error) {
	total, err := s.simpleRepo.Count()
	if err != nil {
		return nil, err
	}
	active, err := s.simpleRepo.CountWhere("status", "Active")
	if err != nil {
		return nil, err
	}
	delayed, err := s.simpleRepo.CountWhere("status", "Delayed")
	if err != nil {
		return nil, err
	}
	completed, err := s.simpleRepo.CountWhere("status", "Completed")
	if err != nil {
		return nil, err
	}

	return &dto.SimpleSummary{
		TotalProjects:     total,
		ActiveProjects:    active,
		DelayedProjects:   delayed,
		CompletedProjects: completed,
	}, nil
}

type fieldBucket struct {
	value string
	count int
}

// countByField 按字段取值分桶计数, 空值跳过, 桶按取值排序
func countByField(projects []*model.Project, key func(*model.Project) string) []fieldBucket {
	counts := make(map[string]int)
	for _, p := range projects {
		v := key(p)
		if v == "" {
			continue
		}
		counts[v]++
	}

	buckets := make([]fieldBucket, 0, len(counts))
	for v, c := range counts {
		buckets = append(buckets, fieldBucket{value: v, count: c})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].value < buckets[j].value
	})
	return buckets
}

// percentage 占比, 四舍五入到0.1
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*1000/float64(total)) / 10
}

// currentMonthKey 当前月份的end_month编码, 形如 Sep'26
func currentMonthKey(t time.Time) string {
	return t.Format("Jan") + "'" + t.Format("06")
}
