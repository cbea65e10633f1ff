package service

import (
	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/pkg/crypto"
	"pmo-dashboard/internal/pkg/jwt"
	"pmo-dashboard/internal/repository"
	pkgErrors "pmo-dashboard/pkg/errors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyToken(token string) (*dto.UserInfo, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login 数据库口令认证, 唯一凭据路径
// 用户不存在/已禁用/密码错误统一返回同一错误, 不向调用方泄露差异
func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if err == pkgErrors.ErrRecordNotFound {
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "生成Token失败", err)
	}

	return &dto.LoginResponse{
		Role:  user.Role,
		Token: token,
		User: &dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

func (s *authService) VerifyToken(token string) (*dto.UserInfo, error) {
	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return &dto.UserInfo{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
