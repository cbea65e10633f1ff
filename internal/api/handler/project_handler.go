package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/service"
	"pmo-dashboard/pkg/responses"
	"pmo-dashboard/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List 获取项目列表
// @Summary 获取项目列表
// @Tags Project
// @Produce json
// @Param limit query int false "每页数量"
// @Param offset query int false "偏移量"
// @Param customer_name query string false "客户名(子串匹配)"
// @Param project_name query string false "项目名(子串匹配)"
// @Param account_manager query string false "客户经理(子串匹配)"
// @Param status query string false "状态"
// @Param status2 query string false "当前状态"
// @Param priority query string false "优先级"
// @Param end_month query string false "结束月份"
// @Success 200 {object} responses.Response{data=[]model.Project}
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var query dto.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	projects, total, err := h.projectService.List(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Page(c, projects, responses.NewPagination(total, query.GetLimit(1000), query.GetOffset(), len(projects)))
}

// Get 获取项目详情
// @Summary 获取项目详情
// @Tags Project
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} responses.Response{data=model.Project}
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	project, err := h.projectService.Get(param.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, project)
}

// Create 创建项目
// @Summary 创建项目
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.ProjectRequest true "创建项目请求"
// @Success 201 {object} responses.Response{data=model.Project}
// @Router /api/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, "Project created successfully", project)
}

// Update 更新项目
// @Summary 更新项目
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "项目ID"
// @Param request body dto.ProjectRequest true "更新项目请求"
// @Success 200 {object} responses.Response{data=model.Project}
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	project, err := h.projectService.Update(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "Project updated successfully", project)
}

// Delete 删除项目
// @Summary 删除项目
// @Tags Project
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} responses.Response
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	if err := h.projectService.Delete(param.ID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "Project deleted successfully", nil)
}

// FilterValues 获取过滤器候选值
// @Summary 获取过滤器候选值
// @Tags Project
// @Produce json
// @Success 200 {object} responses.Response{data=dto.ProjectFilterValues}
// @Router /api/projects/filters/values [get]
func (h *ProjectHandler) FilterValues(c *gin.Context) {
	values, err := h.projectService.FilterValues()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, values)
}

// Export 导出项目CSV
// @Summary 导出项目CSV
// @Tags Project
// @Produce text/csv
// @Success 200 {string} string "CSV内容"
// @Router /api/projects/export [get]
func (h *ProjectHandler) Export(c *gin.Context) {
	data, err := h.projectService.ExportCSV()
	if err != nil {
		responses.Error(c, err)
		return
	}

	filename := fmt.Sprintf("projects_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
