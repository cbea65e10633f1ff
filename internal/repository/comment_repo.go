package repository

import (
	"time"

	"gorm.io/gorm"

	"pmo-dashboard/internal/model"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(id int64) (*model.Comment, error)
	ListByProject(projectID int64) ([]*model.Comment, error)
	ListAll() ([]*model.Comment, error)
	ListHistory(projectID int64, limit, offset int) ([]*model.Comment, int64, error)
	Update(comment *model.Comment) error
	Delete(id int64) error
	Count() (int64, error)
	CountDistinctProjects() (int64, error)
	CountSince(t time.Time) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建备注失败", err)
	}
	return nil
}

func (r *commentRepository) FindByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("Project").First(&comment, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询备注失败", err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByProject(projectID int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Preload("Project").
		Where("project_id = ?", projectID).
		Order("added_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询备注列表失败", err)
	}
	return comments, nil
}

func (r *commentRepository) ListAll() ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Order("added_at DESC").Find(&comments).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询备注列表失败", err)
	}
	return comments, nil
}

// ListHistory 全局备注历史, projectID>0时按项目过滤
func (r *commentRepository) ListHistory(projectID int64, limit, offset int) ([]*model.Comment, int64, error) {
	q := r.db.Model(&model.Comment{})
	if projectID > 0 {
		q = q.Where("project_id = ?", projectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计备注数量失败", err)
	}

	var comments []*model.Comment
	err := q.Preload("Project").
		Order("added_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询备注历史失败", err)
	}

	return comments, total, nil
}

func (r *commentRepository) Update(comment *model.Comment) error {
	if err := r.db.Save(comment).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新备注失败", err)
	}
	return nil
}

func (r *commentRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Comment{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "删除备注失败", err)
	}
	return nil
}

func (r *commentRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Comment{}).Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计备注数量失败", err)
	}
	return count, nil
}

func (r *commentRepository) CountDistinctProjects() (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Distinct("project_id").Count(&count).Error
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计有备注的项目数失败", err)
	}
	return count, nil
}

func (r *commentRepository) CountSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("added_at >= ?", t).Count(&count).Error
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计近期备注数失败", err)
	}
	return count, nil
}
