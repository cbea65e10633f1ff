package repository

import (
	"errors"

	"gorm.io/gorm"

	"pmo-dashboard/internal/model"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type OptionRepository interface {
	Create(option *model.DropdownOption) error
	FindByID(id int64) (*model.DropdownOption, error)
	List() ([]*model.DropdownOption, error)
	ExistsDuplicate(optionType model.OptionType, value string, excludeID int64) (bool, error)
	Update(option *model.DropdownOption) error
	Delete(id int64) error
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) Create(option *model.DropdownOption) error {
	if err := r.db.Create(option).Error; err != nil {
		// 唯一索引冲突是并发创建时的最终权威
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgErrors.ErrRecordExists
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建下拉选项失败", err)
	}
	return nil
}

func (r *optionRepository) FindByID(id int64) (*model.DropdownOption, error) {
	var option model.DropdownOption
	err := r.db.First(&option, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询下拉选项失败", err)
	}
	return &option, nil
}

func (r *optionRepository) List() ([]*model.DropdownOption, error) {
	var options []*model.DropdownOption
	err := r.db.Order("type ASC").Order("value ASC").Find(&options).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询下拉选项列表失败", err)
	}
	return options, nil
}

// ExistsDuplicate 检查(type, value)组合是否已存在, excludeID>0时排除自身
func (r *optionRepository) ExistsDuplicate(optionType model.OptionType, value string, excludeID int64) (bool, error) {
	q := r.db.Model(&model.DropdownOption{}).
		Where("type = ? AND value = ?", optionType, value)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "检查重复选项失败", err)
	}
	return count > 0, nil
}

func (r *optionRepository) Update(option *model.DropdownOption) error {
	if err := r.db.Save(option).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgErrors.ErrRecordExists
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新下拉选项失败", err)
	}
	return nil
}

func (r *optionRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.DropdownOption{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "删除下拉选项失败", err)
	}
	return nil
}
