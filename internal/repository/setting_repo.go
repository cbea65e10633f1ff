package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pmo-dashboard/internal/model"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type SettingRepository interface {
	ListAll() ([]*model.SystemSetting, error)
	Upsert(settings []*model.SystemSetting) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) ListAll() ([]*model.SystemSetting, error) {
	var settings []*model.SystemSetting
	if err := r.db.Order("setting_key ASC").Find(&settings).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询系统设置失败", err)
	}
	return settings, nil
}

// Upsert 按 setting_key 冲突更新, 批量写入
func (r *settingRepository) Upsert(settings []*model.SystemSetting) error {
	if len(settings) == 0 {
		return nil
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&settings).Error
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "保存系统设置失败", err)
	}
	return nil
}
