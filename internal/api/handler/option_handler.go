package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/api/middleware"
	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/service"
	"pmo-dashboard/pkg/responses"
	"pmo-dashboard/pkg/utils"
)

type OptionHandler struct {
	optionService   service.OptionService
	activityService service.ActivityService
}

func NewOptionHandler(
	optionService service.OptionService,
	activityService service.ActivityService,
) *OptionHandler {
	return &OptionHandler{
		optionService:   optionService,
		activityService: activityService,
	}
}

// actorID 审计日志的操作者标识
func actorID(c *gin.Context) string {
	if user := middleware.CurrentUser(c); user != nil {
		return user.Username
	}
	return "system"
}

// List 获取全部下拉选项
// @Summary 获取全部下拉选项
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.Response{data=[]model.DropdownOption}
// @Router /api/admin/dropdown-options [get]
func (h *OptionHandler) List(c *gin.Context) {
	options, err := h.optionService.List()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, options)
}

// Create 创建下拉选项
// @Summary 创建下拉选项
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.OptionRequest true "创建请求"
// @Success 201 {object} responses.Response{data=model.DropdownOption}
// @Router /api/admin/dropdown-options [post]
func (h *OptionHandler) Create(c *gin.Context) {
	var req dto.OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	option, err := h.optionService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	h.activityService.Record(service.ActionCreateOption,
		fmt.Sprintf("Created dropdown option: %s / %s", option.Type, option.Value),
		map[string]interface{}{"option_id": option.ID, "type": option.Type, "value": option.Value},
		actorID(c), c.ClientIP())

	responses.Created(c, "Dropdown option created successfully", option)
}

// Update 更新下拉选项
// @Summary 更新下拉选项
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "选项ID"
// @Param request body dto.OptionRequest true "更新请求"
// @Success 200 {object} responses.Response{data=model.DropdownOption}
// @Router /api/admin/dropdown-options/{id} [put]
func (h *OptionHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	var req dto.OptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	option, err := h.optionService.Update(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	h.activityService.Record(service.ActionUpdateOption,
		fmt.Sprintf("Updated dropdown option: %s / %s", option.Type, option.Value),
		map[string]interface{}{"option_id": option.ID, "type": option.Type, "value": option.Value},
		actorID(c), c.ClientIP())

	responses.SuccessWithMessage(c, "Dropdown option updated successfully", option)
}

// Delete 删除下拉选项
// @Summary 删除下拉选项
// @Tags Admin
// @Produce json
// @Param id path int true "选项ID"
// @Success 200 {object} responses.Response
// @Router /api/admin/dropdown-options/{id} [delete]
func (h *OptionHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	if err := h.optionService.Delete(param.ID); err != nil {
		responses.Error(c, err)
		return
	}

	h.activityService.Record(service.ActionDeleteOption,
		fmt.Sprintf("Deleted dropdown option %d", param.ID),
		map[string]interface{}{"option_id": param.ID},
		actorID(c), c.ClientIP())

	responses.SuccessWithMessage(c, "Dropdown option deleted successfully", nil)
}
