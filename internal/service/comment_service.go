package service

import (
	"time"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
)

type CommentService interface {
	Create(projectID int64, req *dto.CommentRequest) (*dto.CommentResponse, error)
	ListByProject(projectID int64) ([]*dto.CommentResponse, error)
	History(query *dto.CommentHistoryQuery) ([]*dto.CommentResponse, int64, error)
	Update(id int64, req *dto.CommentRequest) (*dto.CommentResponse, error)
	Delete(id int64) error
	Stats() (*dto.CommentStats, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	projectRepo repository.ProjectRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	projectRepo repository.ProjectRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		projectRepo: projectRepo,
	}
}

// Create 为项目追加备注, 项目不存在返回404
func (s *commentService) Create(projectID int64, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ProjectID:   projectID,
		CommentText: req.CommentText,
		AddedBy:     req.AddedBy,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	comment.Project = project
	return toCommentResponse(comment), nil
}

func (s *commentService) ListByProject(projectID int64) ([]*dto.CommentResponse, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	return toCommentResponses(comments), nil
}

func (s *commentService) History(query *dto.CommentHistoryQuery) ([]*dto.CommentResponse, int64, error) {
	comments, total, err := s.commentRepo.ListHistory(query.ProjectID, query.GetLimit(50), query.GetOffset())
	if err != nil {
		return nil, 0, err
	}
	return toCommentResponses(comments), total, nil
}

// Update 只允许修改备注内容和作者, project_id创建后不可变更
func (s *commentService) Update(id int64, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	comment.CommentText = req.CommentText
	comment.AddedBy = req.AddedBy
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

func (s *commentService) Delete(id int64) error {
	if _, err := s.commentRepo.FindByID(id); err != nil {
		return err
	}
	return s.commentRepo.Delete(id)
}

func (s *commentService) Stats() (*dto.CommentStats, error) {
	total, err := s.commentRepo.Count()
	if err != nil {
		return nil, err
	}
	projects, err := s.commentRepo.CountDistinctProjects()
	if err != nil {
		return nil, err
	}
	recent, err := s.commentRepo.CountSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	return &dto.CommentStats{
		TotalComments:        total,
		ProjectsWithComments: projects,
		RecentComments:       recent,
	}, nil
}

func toCommentResponse(comment *model.Comment) *dto.CommentResponse {
	resp := &dto.CommentResponse{
		ID:            comment.ID,
		ProjectID:     comment.ProjectID,
		CommentText:   comment.CommentText,
		AddedBy:       comment.AddedBy,
		AddedAt:       comment.AddedAt,
		FormattedTime: formatTimestamp(comment.AddedAt),
	}
	if comment.Project != nil {
		resp.ProjectName = comment.Project.ProjectName
		resp.CustomerName = comment.Project.CustomerName
	}
	return resp
}

func toCommentResponses(comments []*model.Comment) []*dto.CommentResponse {
	resp := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}
	return resp
}
