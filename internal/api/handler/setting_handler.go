package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/service"
	pkgErrors "pmo-dashboard/pkg/errors"
	"pmo-dashboard/pkg/responses"
)

type SettingHandler struct {
	settingService  service.SettingService
	activityService service.ActivityService
}

func NewSettingHandler(
	settingService service.SettingService,
	activityService service.ActivityService,
) *SettingHandler {
	return &SettingHandler{
		settingService:  settingService,
		activityService: activityService,
	}
}

// Get 获取系统设置
// @Summary 获取系统设置
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.Response{data=map[string]string}
// @Router /api/admin/settings [get]
func (h *SettingHandler) Get(c *gin.Context) {
	settings, err := h.settingService.GetAll()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, settings)
}

// Update 更新系统设置
// @Summary 更新系统设置
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "键值对"
// @Success 200 {object} responses.Response
// @Router /api/admin/settings [put]
func (h *SettingHandler) Update(c *gin.Context) {
	var settings map[string]interface{}
	if err := c.ShouldBindJSON(&settings); err != nil {
		responses.Error(c, pkgErrors.NewValidation("Validation failed", []pkgErrors.FieldError{
			{Field: "body", Reason: "must be a JSON object"},
		}))
		return
	}

	keys, err := h.settingService.UpdateAll(settings)
	if err != nil {
		responses.Error(c, err)
		return
	}

	if len(keys) == 0 {
		responses.SuccessWithMessage(c, "No settings provided", nil)
		return
	}

	h.activityService.Record(service.ActionUpdateSettings,
		"Updated system settings: "+strings.Join(keys, ", "),
		map[string]interface{}{"keys": keys},
		actorID(c), c.ClientIP())

	responses.SuccessWithMessage(c, "System settings updated successfully", nil)
}
