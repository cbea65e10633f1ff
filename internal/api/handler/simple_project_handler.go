package handler

import (
	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/service"
	"pmo-dashboard/pkg/responses"
	"pmo-dashboard/pkg/utils"
)

type SimpleProjectHandler struct {
	simpleService service.SimpleProjectService
}

func NewSimpleProjectHandler(simpleService service.SimpleProjectService) *SimpleProjectHandler {
	return &SimpleProjectHandler{simpleService: simpleService}
}

// List 获取简化项目列表
// @Summary 获取简化项目列表
// @Tags SimpleProject
// @Produce json
// @Param limit query int false "每页数量"
// @Param offset query int false "偏移量"
// @Param project query string false "项目名(子串匹配)"
// @Param month query string false "月份"
// @Param status query string false "状态"
// @Success 200 {object} responses.Response{data=[]model.SimpleProject}
// @Router /api/simple-projects [get]
func (h *SimpleProjectHandler) List(c *gin.Context) {
	var query dto.SimpleProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	projects, total, err := h.simpleService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Page(c, projects, responses.NewPagination(total, query.GetLimit(1000), query.GetOffset(), len(projects)))
}

// Get 获取简化项目详情
// @Summary 获取简化项目详情
// @Tags SimpleProject
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} responses.Response{data=model.SimpleProject}
// @Router /api/simple-projects/{id} [get]
func (h *SimpleProjectHandler) Get(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	project, err := h.simpleService.Get(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, project)
}

// Create 创建简化项目
// @Summary 创建简化项目
// @Tags SimpleProject
// @Accept json
// @Produce json
// @Param request body dto.SimpleProjectRequest true "创建请求"
// @Success 201 {object} responses.Response{data=model.SimpleProject}
// @Router /api/simple-projects [post]
func (h *SimpleProjectHandler) Create(c *gin.Context) {
	var req dto.SimpleProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	project, err := h.simpleService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, "Simple project created successfully", project)
}

// Update 更新简化项目
// @Summary 更新简化项目
// @Tags SimpleProject
// @Accept json
// @Produce json
// @Param id path int true "项目ID"
// @Param request body dto.SimpleProjectRequest true "更新请求"
// @Success 200 {object} responses.Response{data=model.SimpleProject}
// @Router /api/simple-projects/{id} [put]
func (h *SimpleProjectHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	var req dto.SimpleProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	project, err := h.simpleService.Update(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "Simple project updated successfully", project)
}

// Delete 删除简化项目
// @Summary 删除简化项目
// @Tags SimpleProject
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} responses.Response
// @Router /api/simple-projects/{id} [delete]
func (h *SimpleProjectHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	if err := h.simpleService.Delete(param.ID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "Simple project deleted successfully", nil)
}

// FilterValues 获取过滤器候选值
// @Summary 获取简化项目过滤器候选值
// @Tags SimpleProject
// @Produce json
// @Success 200 {object} responses.Response{data=dto.SimpleProjectFilterValues}
// @Router /api/simple-projects/filters/values [get]
func (h *SimpleProjectHandler) FilterValues(c *gin.Context) {
	values, err := h.simpleService.FilterValues()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, values)
}
