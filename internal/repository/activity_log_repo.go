package repository

import (
	"time"

	"gorm.io/gorm"

	"pmo-dashboard/internal/model"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type ActivityLogRepository interface {
	Create(entry *model.ActivityLog) error
	List(limit, offset int) ([]*model.ActivityLog, int64, error)
	DeleteOlderThan(t time.Time) (int64, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(entry *model.ActivityLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "写入审计日志失败", err)
	}
	return nil
}

func (r *activityLogRepository) List(limit, offset int) ([]*model.ActivityLog, int64, error) {
	var total int64
	if err := r.db.Model(&model.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "统计审计日志失败", err)
	}

	var entries []*model.ActivityLog
	err := r.db.Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询审计日志失败", err)
	}

	return entries, total, nil
}

// DeleteOlderThan 清理过期审计日志, 返回删除行数
func (r *activityLogRepository) DeleteOlderThan(t time.Time) (int64, error) {
	result := r.db.Where("timestamp < ?", t).Delete(&model.ActivityLog{})
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeInternalError, "清理审计日志失败", result.Error)
	}
	return result.RowsAffected, nil
}
