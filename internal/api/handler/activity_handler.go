package handler

import (
	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/service"
	"pmo-dashboard/pkg/responses"
	"pmo-dashboard/pkg/utils"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List 获取审计日志
// @Summary 获取审计日志
// @Tags Admin
// @Produce json
// @Param limit query int false "每页数量"
// @Param offset query int false "偏移量"
// @Success 200 {object} responses.Response{data=[]model.ActivityLog}
// @Router /api/admin/activity-log [get]
func (h *ActivityHandler) List(c *gin.Context) {
	var query dto.RangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	entries, total, err := h.activityService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Page(c, entries, responses.NewPagination(total, query.GetLimit(100), query.GetOffset(), len(entries)))
}
