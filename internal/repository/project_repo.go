package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	pkgErrors "pmo-dashboard/pkg/errors"
)

// projectUsageColumns 下拉选项"使用中"检查涉及的项目字段
var projectUsageColumns = []string{"account_manager", "status", "priority", "current_phase", "end_month"}

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id int64) (*model.Project, error)
	List(query *dto.ProjectListQuery) ([]*model.Project, int64, error)
	ListAll() ([]*model.Project, error)
	Update(project *model.Project) error
	Delete(id int64) error
	DistinctValues(column string) ([]string, error)
	CountWhere(column, value string) (int64, error)
	Count() (int64, error)
	UsesValue(value string) (bool, error)
	LatestUpdatedAt() (*time.Time, error)
	ListRecent(limit int) ([]*model.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建项目失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int64) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询项目失败", err)
	}
	return &project, nil
}

func (r *projectRepository) List(query *dto.ProjectListQuery) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var total int64

	q := r.db.Model(&model.Project{})

	// 子串匹配, 不区分大小写
	if query.CustomerName != "" {
		q = q.Where("LOWER(customer_name) LIKE ?", likePattern(query.CustomerName))
	}
	if query.ProjectName != "" {
		q = q.Where("LOWER(project_name) LIKE ?", likePattern(query.ProjectName))
	}
	if query.AccountManager != "" {
		q = q.Where("LOWER(account_manager) LIKE ?", likePattern(query.AccountManager))
	}

	// 等值过滤
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.Status2 != "" {
		q = q.Where("status2 = ?", query.Status2)
	}
	if query.Priority != "" {
		q = q.Where("priority = ?", query.Priority)
	}
	if query.EndMonth != "" {
		q = q.Where("end_month = ?", query.EndMonth)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计项目数量失败", err)
	}

	err := q.Order("updated_at DESC").
		Offset(query.GetOffset()).
		Limit(query.GetLimit(1000)).
		Find(&projects).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询项目列表失败", err)
	}

	return projects, total, nil
}

func (r *projectRepository) ListAll() ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.Find(&projects).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询项目列表失败", err)
	}
	return projects, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新项目失败", err)
	}
	return nil
}

func (r *projectRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Project{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "删除项目失败", err)
	}
	return nil
}

// DistinctValues 指定列去重后的非空取值, 仅接受内部固定列名
func (r *projectRepository) DistinctValues(column string) ([]string, error) {
	var values []string
	err := r.db.Model(&model.Project{}).
		Distinct(column).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询过滤值失败", err)
	}
	return values, nil
}

func (r *projectRepository) CountWhere(column, value string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Project{}).Where(column+" = ?", value).Count(&count).Error
	if err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计项目数量失败", err)
	}
	return count, nil
}

func (r *projectRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Project{}).Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计项目数量失败", err)
	}
	return count, nil
}

// UsesValue 判断某取值是否被任一项目的五个下拉字段引用 (OR等值匹配)
func (r *projectRepository) UsesValue(value string) (bool, error) {
	q := r.db.Model(&model.Project{})
	var conds []string
	var args []interface{}
	for _, col := range projectUsageColumns {
		conds = append(conds, col+" = ?")
		args = append(args, value)
	}

	var count int64
	err := q.Where(strings.Join(conds, " OR "), args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "检查选项使用情况失败", err)
	}
	return count > 0, nil
}

func (r *projectRepository) LatestUpdatedAt() (*time.Time, error) {
	var project model.Project
	err := r.db.Order("updated_at DESC").First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询最近更新时间失败", err)
	}
	return &project.UpdatedAt, nil
}

func (r *projectRepository) ListRecent(limit int) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Order("updated_at DESC").Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询最近更新项目失败", err)
	}
	return projects, nil
}

// likePattern 构造不区分大小写的LIKE模式
func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
