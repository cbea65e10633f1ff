package repository

import (
	"errors"

	"gorm.io/gorm"

	"pmo-dashboard/internal/model"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	List() ([]*model.User, error)
	Update(user *model.User) error
	ExistsUsernameOrEmail(username, email string, excludeID int64) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgErrors.ErrRecordExists
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建用户失败", err)
	}
	return nil
}

func (r *userRepository) FindByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) List() ([]*model.User, error) {
	var users []*model.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户列表失败", err)
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgErrors.ErrRecordExists
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新用户失败", err)
	}
	return nil
}

// ExistsUsernameOrEmail 用户名或邮箱占用检查, excludeID>0时排除自身
func (r *userRepository) ExistsUsernameOrEmail(username, email string, excludeID int64) (bool, error) {
	q := r.db.Model(&model.User{}).
		Where("username = ? OR email = ?", username, email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeInternalError, "检查用户占用失败", err)
	}
	return count > 0, nil
}
