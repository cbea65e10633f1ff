package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/pkg/crypto"
	"pmo-dashboard/internal/repository"
	pkgErrors "pmo-dashboard/pkg/errors"
)

func TestUserServiceCreate(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := NewUserService(userRepo)

	user, err := svc.Create(&dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     model.RoleManager,
	})
	require.NoError(t, err)
	assert.True(t, user.IsActive)

	// 落库的是bcrypt哈希, 不是明文
	stored, err := userRepo.FindByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.True(t, crypto.CheckPassword("s3cret-pass", stored.PasswordHash))
}

func TestUserServiceCreateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Create(&dto.CreateUserRequest{
		Username: "alice", Email: "alice@example.com", Password: "s3cret-pass", Role: model.RoleAdmin,
	})
	require.NoError(t, err)

	// 用户名占用
	_, err = svc.Create(&dto.CreateUserRequest{
		Username: "alice", Email: "other@example.com", Password: "s3cret-pass", Role: model.RoleViewer,
	})
	require.Error(t, err)
	appErr, ok := err.(*pkgErrors.AppError)
	require.True(t, ok)
	assert.Equal(t, pkgErrors.CodeConflict, appErr.Code)

	// 邮箱占用
	_, err = svc.Create(&dto.CreateUserRequest{
		Username: "bob", Email: "alice@example.com", Password: "s3cret-pass", Role: model.RoleViewer,
	})
	require.Error(t, err)
	appErr, ok = err.(*pkgErrors.AppError)
	require.True(t, ok)
	assert.Equal(t, pkgErrors.CodeConflict, appErr.Code)
}

func TestUserServiceUpdatePasswordOptional(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := NewUserService(userRepo)

	created, err := svc.Create(&dto.CreateUserRequest{
		Username: "alice", Email: "alice@example.com", Password: "s3cret-pass", Role: model.RoleManager,
	})
	require.NoError(t, err)

	// 不带密码的更新保留原口令
	_, err = svc.Update(created.ID, &dto.UpdateUserRequest{
		Username: "alice", Email: "alice@corp.example.com", Role: model.RoleAdmin,
	})
	require.NoError(t, err)

	stored, err := userRepo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@corp.example.com", stored.Email)
	assert.Equal(t, model.RoleAdmin, stored.Role)
	assert.True(t, crypto.CheckPassword("s3cret-pass", stored.PasswordHash))

	// 带密码的更新重新哈希
	_, err = svc.Update(created.ID, &dto.UpdateUserRequest{
		Username: "alice", Email: "alice@corp.example.com", Role: model.RoleAdmin, Password: "new-pass-123",
	})
	require.NoError(t, err)

	stored, err = userRepo.FindByUsername("alice")
	require.NoError(t, err)
	assert.False(t, crypto.CheckPassword("s3cret-pass", stored.PasswordHash))
	assert.True(t, crypto.CheckPassword("new-pass-123", stored.PasswordHash))
}

func TestUserServiceToggleStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	created, err := svc.Create(&dto.CreateUserRequest{
		Username: "alice", Email: "alice@example.com", Password: "s3cret-pass", Role: model.RoleViewer,
	})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	toggled, err := svc.ToggleStatus(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleStatus(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = svc.ToggleStatus(999)
	assert.Equal(t, pkgErrors.ErrRecordNotFound, err)
}
