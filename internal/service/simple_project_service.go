package service

import (
	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
)

type SimpleProjectService interface {
	Create(req *dto.SimpleProjectRequest) (*model.SimpleProject, error)
	Get(id int64) (*model.SimpleProject, error)
	List(query *dto.SimpleProjectListQuery) ([]*model.SimpleProject, int64, error)
	Update(id int64, req *dto.SimpleProjectRequest) (*model.SimpleProject, error)
	Delete(id int64) error
	FilterValues() (*dto.SimpleProjectFilterValues, error)
}

type simpleProjectService struct {
	simpleRepo repository.SimpleProjectRepository
}

func NewSimpleProjectService(simpleRepo repository.SimpleProjectRepository) SimpleProjectService {
	return &simpleProjectService{simpleRepo: simpleRepo}
}

func (s *simpleProjectService) Create(req *dto.SimpleProjectRequest) (*model.SimpleProject, error) {
	project := &model.SimpleProject{}
	applySimpleProjectRequest(project, req)

	if err := s.simpleRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *simpleProjectService) Get(id int64) (*model.SimpleProject, error) {
	return s.simpleRepo.FindByID(id)
}

func (s *simpleProjectService) List(query *dto.SimpleProjectListQuery) ([]*model.SimpleProject, int64, error) {
	return s.simpleRepo.List(query)
}

func (s *simpleProjectService) Update(id int64, req *dto.SimpleProjectRequest) (*model.SimpleProject, error) {
	project, err := s.simpleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	applySimpleProjectRequest(project, req)
	if err := s.simpleRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *simpleProjectService) Delete(id int64) error {
	if _, err := s.simpleRepo.FindByID(id); err != nil {
		return err
	}
	return s.simpleRepo.Delete(id)
}

func (s *simpleProjectService) FilterValues() (*dto.SimpleProjectFilterValues, error) {
	statuses, err := s.simpleRepo.DistinctValues("status")
	if err != nil {
		return nil, err
	}
	months, err := s.simpleRepo.DistinctValues("month")
	if err != nil {
		return nil, err
	}

	return &dto.SimpleProjectFilterValues{
		Statuses: statuses,
		Months:   months,
	}, nil
}

func applySimpleProjectRequest(project *model.SimpleProject, req *dto.SimpleProjectRequest) {
	project.Project = req.Project
	project.Month = req.Month
	project.Status = req.Status
	project.Comments = req.Comments
}
