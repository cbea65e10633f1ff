package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pmo-dashboard/internal/pkg/config"
	pkgErrors "pmo-dashboard/pkg/errors"
)

var cfg config.JWTConfig

// Init 注入JWT配置, 启动时调用一次
func Init(c *config.JWTConfig) {
	cfg = *c
}

// UserClaims 用户Claims
type UserClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // admin / manager / viewer
	jwt.RegisteredClaims
}

// GenerateToken 生成访问Token
func GenerateToken(userID int64, username, role string) (string, error) {
	claims := UserClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.AccessTokenExpire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken 解析Token
func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeUnauthorized, "Invalid token", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, pkgErrors.ErrInvalidToken
}

// ValidateToken 验证Token有效性
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, pkgErrors.ErrTokenExpired
	}

	return claims, nil
}
