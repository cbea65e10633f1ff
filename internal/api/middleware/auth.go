package middleware

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/pkg/jwt"
	"pmo-dashboard/pkg/responses"
)

const (
	// ContextUserKey 认证后的用户信息在gin context中的键
	ContextUserKey = "user"

	headerAuthorization = "Authorization"
	headerBearerPrefix  = "Bearer "

	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	sessionRoleKey     = "role"
)

// AuthMiddleware 认证中间件
// 优先JWT Bearer Token(API调用方), 其次Cookie会话(浏览器), 两者都没有返回401
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(headerAuthorization)
		if authHeader != "" {
			if !strings.HasPrefix(authHeader, headerBearerPrefix) {
				responses.ErrorWithCode(c, 401, "Invalid Authorization header format")
				c.Abort()
				return
			}

			token := strings.TrimPrefix(authHeader, headerBearerPrefix)
			claims, err := jwt.ValidateToken(token)
			if err != nil {
				responses.Error(c, err)
				c.Abort()
				return
			}

			c.Set(ContextUserKey, &dto.UserInfo{
				ID:       claims.UserID,
				Username: claims.Username,
				Role:     claims.Role,
			})
			c.Next()
			return
		}

		// Cookie会话回退
		session := sessions.Default(c)
		userID, ok := session.Get(sessionUserIDKey).(int64)
		if !ok {
			responses.ErrorWithCode(c, 401, "Authentication required")
			c.Abort()
			return
		}

		username, _ := session.Get(sessionUsernameKey).(string)
		role, _ := session.Get(sessionRoleKey).(string)
		c.Set(ContextUserKey, &dto.UserInfo{
			ID:       userID,
			Username: username,
			Role:     role,
		})
		c.Next()
	}
}

// RequireRole 角色检查中间件, 需在AuthMiddleware之后使用
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			responses.ErrorWithCode(c, 401, "Authentication required")
			c.Abort()
			return
		}

		if !lo.Contains(roles, user.Role) {
			responses.ErrorWithCode(c, 403, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 取出当前认证用户, 未认证返回nil
func CurrentUser(c *gin.Context) *dto.UserInfo {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*dto.UserInfo)
	if !ok {
		return nil
	}
	return user
}

// SaveSession 登录成功后写入Cookie会话
func SaveSession(c *gin.Context, user *dto.UserInfo) error {
	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	session.Set(sessionRoleKey, user.Role)
	return session.Save()
}

// ClearSession 登出时清空Cookie会话
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	return session.Save()
}
