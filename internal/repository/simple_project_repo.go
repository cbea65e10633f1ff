package repository

import (
	"gorm.io/gorm"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type SimpleProjectRepository interface {
	Create(project *model.SimpleProject) error
	FindByID(id int64) (*model.SimpleProject, error)
	List(query *dto.SimpleProjectListQuery) ([]*model.SimpleProject, int64, error)
	Update(project *model.SimpleProject) error
	Delete(id int64) error
	DistinctValues(column string) ([]string, error)
	CountWhere(column, value string) (int64, error)
	Count() (int64, error)
}

type simpleProjectRepository struct {
	db *gorm.DB
}

func NewSimpleProjectRepository(db *gorm.DB) SimpleProjectRepository {
	return &simpleProjectRepository{db: db}
}

func (r *simpleProjectRepository) Create(project *model.SimpleProject) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建简化项目失败", err)
	}
	return nil
}

func (r *simpleProjectRepository) FindByID(id int64) (*model.SimpleProject, error) {
	var project model.SimpleProject
	err := r.db.First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询简化项目失败", err)
	}
	return &project, nil
}

func (r *simpleProjectRepository) List(query *dto.SimpleProjectListQuery) ([]*model.SimpleProject, int64, error) {
	var projects []*model.SimpleProject
	var total int64

	q := r.db.Model(&model.SimpleProject{})

	if query.Project != "" {
		q = q.Where("LOWER(project) LIKE ?", likePattern(query.Project))
	}
	if query.Month != "" {
		q = q.Where("month = ?", query.Month)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计简化项目数量失败", err)
	}

	err := q.Order("updated_at DESC").
		Offset(query.GetOffset()).
		Limit(query.GetLimit(1000)).
		Find(&projects).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询简化项目列表失败", err)
	}

	return projects, total, nil
}

func (r *simpleProjectRepository) Update(project *model.SimpleProject) error {
	if err := r.db.Save(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新简化项目失败", err)
	}
	return nil
}

func (r *simpleProjectRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.SimpleProject{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "删除简化项目失败", err)
	}
	return nil
}

func (r *simpleProjectRepository) DistinctValues(column string) ([]string, error) {
	var values []string
	err := r.db.Model(&model.SimpleProject{}).
		Distinct(column).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询过滤值失败", err)
	}
	return values, nil
}

func (r *simpleProjectRepository) CountWhere(column, value string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SimpleProject{}).Where(column+" = ?", value).Count(&count).Error
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计简化项目数量失败", err)
	}
	return count, nil
}

func (r *simpleProjectRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.SimpleProject{}).Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计简化项目数量失败", err)
	}
	return count, nil
}
