package service

import (
	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/repository"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type OptionService interface {
	Create(req *dto.OptionRequest) (*model.DropdownOption, error)
	List() ([]*model.DropdownOption, error)
	Update(id int64, req *dto.OptionRequest) (*model.DropdownOption, error)
	Delete(id int64) error
}

type optionService struct {
	optionRepo  repository.OptionRepository
	projectRepo repository.ProjectRepository
}

func NewOptionService(
	optionRepo repository.OptionRepository,
	projectRepo repository.ProjectRepository,
) OptionService {
	return &optionService{
		optionRepo:  optionRepo,
		projectRepo: projectRepo,
	}
}

func (s *optionService) Create(req *dto.OptionRequest) (*model.DropdownOption, error) {
	// 预检查给出友好错误, 并发竞争由唯一索引兜底
	exists, err := s.optionRepo.ExistsDuplicate(model.OptionType(req.Type), req.Value, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgErrors.ErrRecordExists
	}

	option := &model.DropdownOption{
		Type:        model.OptionType(req.Type),
		Value:       req.Value,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		option.IsActive = *req.IsActive
	}

	if err := s.optionRepo.Create(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *optionService) List() ([]*model.DropdownOption, error) {
	return s.optionRepo.List()
}

func (s *optionService) Update(id int64, req *dto.OptionRequest) (*model.DropdownOption, error) {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	exists, err := s.optionRepo.ExistsDuplicate(model.OptionType(req.Type), req.Value, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgErrors.ErrRecordExists
	}

	option.Type = model.OptionType(req.Type)
	option.Value = req.Value
	option.Description = req.Description
	if req.IsActive != nil {
		option.IsActive = *req.IsActive
	}

	if err := s.optionRepo.Update(option); err != nil {
		return nil, err
	}
	return option, nil
}

// Delete 删除前检查取值是否仍被项目引用, 引用中的选项拒绝删除
func (s *optionService) Delete(id int64) error {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		return err
	}

	inUse, err := s.projectRepo.UsesValue(option.Value)
	if err != nil {
		return err
	}
	if inUse {
		return pkgErrors.ErrOptionInUse
	}

	return s.optionRepo.Delete(id)
}
