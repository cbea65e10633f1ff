package handler

import (
	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/service"
	"pmo-dashboard/pkg/responses"
	"pmo-dashboard/pkg/utils"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary 项目总览统计
// @Summary 项目总览统计
// @Tags Report
// @Produce json
// @Success 200 {object} responses.Response{data=dto.SummaryResponse}
// @Router /api/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, summary)
}

// MonthlyDistribution 按结束月份的项目分布
// @Summary 按结束月份的项目分布
// @Tags Report
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.MonthlyDistribution}
// @Router /api/reports/monthly-distribution [get]
func (h *ReportHandler) MonthlyDistribution(c *gin.Context) {
	distribution, err := h.reportService.MonthlyDistribution()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, distribution)
}

// StatusDistribution 状态分布
// @Summary 状态分布
// @Tags Report
// @Produce json
// @Success 200 {object} responses.Response{data=dto.StatusDistribution}
// @Router /api/reports/status-distribution [get]
func (h *ReportHandler) StatusDistribution(c *gin.Context) {
	distribution, err := h.reportService.StatusDistribution()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, distribution)
}

// RecentActivity 最近更新的项目
// @Summary 最近更新的项目
// @Tags Report
// @Produce json
// @Param limit query int false "数量上限" default(10)
// @Success 200 {object} responses.Response{data=[]dto.RecentProject}
// @Router /api/reports/recent-activity [get]
func (h *ReportHandler) RecentActivity(c *gin.Context) {
	var query dto.RecentActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	recent, err := h.reportService.RecentActivity(query.Limit)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, recent)
}

// AccountManagers 客户经理维度统计
// @Summary 客户经理维度统计
// @Tags Report
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.AccountManagerStats}
// @Router /api/reports/account-managers [get]
func (h *ReportHandler) AccountManagers(c *gin.Context) {
	stats, err := h.reportService.AccountManagers()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, stats)
}

// PriorityDistribution 优先级分布
// @Summary 优先级分布
// @Tags Report
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.PriorityCount}
// @Router /api/reports/priority-distribution [get]
func (h *ReportHandler) PriorityDistribution(c *gin.Context) {
	distribution, err := h.reportService.PriorityDistribution()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, distribution)
}

// PhaseDistribution 阶段分布
// @Summary 阶段分布
// @Tags Report
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.PhaseCount}
// @Router /api/reports/phase-distribution [get]
func (h *ReportHandler) PhaseDistribution(c *gin.Context) {
	distribution, err := h.reportService.PhaseDistribution()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, distribution)
}

// ByEndMonth 结束月份维度统计
// @Summary 结束月份维度统计
// @Tags Report
// @Produce json
// @Success 200 {object} responses.Response{data=[]dto.EndMonthStats}
// @Router /api/reports/by-end-month [get]
func (h *ReportHandler) ByEndMonth(c *gin.Context) {
	stats, err := h.reportService.ByEndMonth()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, stats)
}

// SimpleSummary 简化项目总览
// @Summary 简化项目总览
// @Tags Report
// @Produce json
// @Success 200 {object} responses.Response{data=dto.SimpleSummary}
// @Router /api/reports/simple-summary [get]
func (h *ReportHandler) SimpleSummary(c *gin.Context) {
	summary, err := h.reportService.SimpleSummary()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, summary)
}
