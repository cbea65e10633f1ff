package service

import (
	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/pkg/crypto"
	"pmo-dashboard/internal/repository"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type UserService interface {
	Create(req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List() ([]*dto.UserResponse, error)
	Update(id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	ToggleStatus(id int64) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.ExistsUsernameOrEmail(req.Username, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgErrors.New(pkgErrors.CodeConflict, "Username or email already exists")
	}

	// 只存哈希, 明文密码不落库不写日志
	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码哈希失败", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) List() ([]*dto.UserResponse, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return resp, nil
}

func (s *userService) Update(id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsUsernameOrEmail(req.Username, req.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgErrors.New(pkgErrors.CodeConflict, "Username or email already exists")
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Role = req.Role

	// 密码可选, 只在提供时重新哈希
	if req.Password != "" {
		hash, err := crypto.HashPassword(req.Password)
		if err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码哈希失败", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ToggleStatus 启用/禁用翻转
func (s *userService) ToggleStatus(id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
