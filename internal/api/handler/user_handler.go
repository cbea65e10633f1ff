package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/service"
	"pmo-dashboard/pkg/responses"
	"pmo-dashboard/pkg/utils"
)

type UserHandler struct {
	userService     service.UserService
	activityService service.ActivityService
}

func NewUserHandler(
	userService service.UserService,
	activityService service.ActivityService,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		activityService: activityService,
	}
}

// List 获取用户列表
// @Summary 获取用户列表
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.UserResponse}
// @Router /api/admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, users)
}

// Create 创建用户
// @Summary 创建用户
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "创建用户请求"
// @Success 201 {object} responses.Response{data=dto.UserResponse}
// @Router /api/admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	// 审计日志只记录用户名和角色, 不记录凭据
	h.activityService.Record(service.ActionCreateUser,
		fmt.Sprintf("Created user: %s (%s)", user.Username, user.Role),
		map[string]interface{}{"user_id": user.ID, "username": user.Username, "role": user.Role},
		actorID(c), c.ClientIP())

	responses.Created(c, "User created successfully", user)
}

// Update 更新用户
// @Summary 更新用户
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param request body dto.UpdateUserRequest true "更新用户请求"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/admin/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	user, err := h.userService.Update(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	h.activityService.Record(service.ActionUpdateUser,
		fmt.Sprintf("Updated user: %s (%s)", user.Username, user.Role),
		map[string]interface{}{"user_id": user.ID, "username": user.Username, "role": user.Role},
		actorID(c), c.ClientIP())

	responses.SuccessWithMessage(c, "User updated successfully", user)
}

// ToggleStatus 启用/禁用用户
// @Summary 启用/禁用用户
// @Tags Admin
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} responses.Response{data=dto.UserResponse}
// @Router /api/admin/users/{id}/toggle-status [put]
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	user, err := h.userService.ToggleStatus(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	h.activityService.Record(service.ActionToggleUser,
		fmt.Sprintf("Toggled user status: %s -> active=%t", user.Username, user.IsActive),
		map[string]interface{}{"user_id": user.ID, "is_active": user.IsActive},
		actorID(c), c.ClientIP())

	responses.SuccessWithMessage(c, "User status updated successfully", user)
}
