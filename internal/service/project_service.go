package service

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/samber/lo"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
	pkgErrors "pmo-dashboard/pkg/errors"
)

// csvHeader 项目导出的列顺序, 与前端表格一致
var csvHeader = []string{
	"Customer", "Project", "Account Manager", "Status", "Current Phase",
	"Priority", "End Month", "Current Status", "PMO Comments",
	"Latest Comment Time", "Comments Count", "Created", "Updated",
}

type ProjectService interface {
	Create(req *dto.ProjectRequest) (*model.Project, error)
	Get(id int64) (*model.Project, error)
	List(query *dto.ProjectListQuery) ([]*model.Project, int64, error)
	Update(id int64, req *dto.ProjectRequest) (*model.Project, error)
	Delete(id int64) error
	FilterValues() (*dto.ProjectFilterValues, error)
	ExportCSV() ([]byte, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	commentRepo repository.CommentRepository
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	commentRepo repository.CommentRepository,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		commentRepo: commentRepo,
	}
}

func (s *projectService) Create(req *dto.ProjectRequest) (*model.Project, error) {
	project := &model.Project{}
	applyProjectRequest(project, req)

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Get(id int64) (*model.Project, error) {
	return s.projectRepo.FindByID(id)
}

func (s *projectService) List(query *dto.ProjectListQuery) ([]*model.Project, int64, error) {
	return s.projectRepo.List(query)
}

func (s *projectService) Update(id int64, req *dto.ProjectRequest) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	applyProjectRequest(project, req)
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(id int64) error {
	// 先确认存在, 删除不存在的记录返回404而非静默成功
	if _, err := s.projectRepo.FindByID(id); err != nil {
		return err
	}
	return s.projectRepo.Delete(id)
}

// FilterValues 列表过滤器的候选值, 各字段去重后的非空取值
func (s *projectService) FilterValues() (*dto.ProjectFilterValues, error) {
	values := &dto.ProjectFilterValues{}

	columns := []struct {
		name string
		dst  *[]string
	}{
		{"status", &values.Statuses},
		{"status2", &values.Status2s},
		{"priority", &values.Priorities},
		{"end_month", &values.EndMonths},
		{"account_manager", &values.AccountManagers},
	}

	for _, col := range columns {
		v, err := s.projectRepo.DistinctValues(col.name)
		if err != nil {
			return nil, err
		}
		*col.dst = v
	}

	return values, nil
}

// ExportCSV 导出全部项目, 附带每个项目的备注数和最近备注时间
func (s *projectService) ExportCSV() ([]byte, error) {
	projects, err := s.projectRepo.ListAll()
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListAll()
	if err != nil {
		return nil, err
	}
	byProject := lo.GroupBy(comments, func(c *model.Comment) int64 {
		return c.ProjectID
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "导出CSV失败", err)
	}

	for _, p := range projects {
		projectComments := byProject[p.ID]

		latestComment := ""
		if len(projectComments) > 0 {
			// ListAll按added_at倒序, 首条即最新
			latestComment = formatTimestamp(projectComments[0].AddedAt)
		}

		record := []string{
			p.CustomerName,
			p.ProjectName,
			p.AccountManager,
			p.Status,
			p.CurrentPhase,
			p.Priority,
			p.EndMonth,
			p.Status2,
			p.PMOComments,
			latestComment,
			strconv.Itoa(len(projectComments)),
			formatTimestamp(p.CreatedAt),
			formatTimestamp(p.UpdatedAt),
		}
		if err := w.Write(record); err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "导出CSV失败", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "导出CSV失败", err)
	}

	return buf.Bytes(), nil
}

func applyProjectRequest(project *model.Project, req *dto.ProjectRequest) {
	project.CustomerName = req.CustomerName
	project.ProjectName = req.ProjectName
	project.AccountManager = req.AccountManager
	project.Status = req.Status
	project.CurrentPhase = req.CurrentPhase
	project.Priority = req.Priority
	project.EndMonth = req.EndMonth
	project.Status2 = req.Status2
	project.PMOComments = req.PMOComments
}

// formatTimestamp 展示用定宽时间, 分钟精度
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
