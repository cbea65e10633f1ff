package handler

import (
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/api/middleware"
	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/pkg/logger"
	"pmo-dashboard/internal/service"
	pkgErrors "pmo-dashboard/pkg/errors"
	"pmo-dashboard/pkg/responses"
	"pmo-dashboard/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login 登录
// @Summary 登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} responses.Response{data=dto.LoginResponse}
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	// 浏览器调用方同时写入Cookie会话
	if err := middleware.SaveSession(c, resp.User); err != nil {
		logger.Error("写入会话失败", zap.Error(err))
		responses.Error(c, pkgErrors.Wrap(pkgErrors.CodeInternalError, "写入会话失败", err))
		return
	}

	responses.SuccessWithMessage(c, "Login successful", resp)
}

// Logout 登出
// @Summary 登出
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.Response
// @Router /api/auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		logger.Warn("清理会话失败", zap.Error(err))
	}
	responses.SuccessWithMessage(c, "Logout successful", nil)
}

// Me 当前用户信息
// @Summary 当前用户信息
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.Response{data=dto.UserInfo}
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		responses.Error(c, pkgErrors.ErrUnauthorized)
		return
	}
	responses.Success(c, user)
}
