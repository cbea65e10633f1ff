package handler

import (
	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/service"
	"pmo-dashboard/pkg/responses"
	"pmo-dashboard/pkg/utils"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// projectIDParam 备注路由的项目ID路径参数
type projectIDParam struct {
	ProjectID int64 `uri:"projectId" binding:"required,min=1"`
}

// ListByProject 获取项目的全部备注
// @Summary 获取项目的全部备注
// @Tags Comment
// @Produce json
// @Param projectId path int true "项目ID"
// @Success 200 {object} responses.Response{data=[]dto.CommentResponse}
// @Router /api/comments/project/{projectId} [get]
func (h *CommentHandler) ListByProject(c *gin.Context) {
	var param projectIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	comments, err := h.commentService.ListByProject(param.ProjectID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, comments)
}

// Create 为项目追加备注
// @Summary 为项目追加备注
// @Tags Comment
// @Accept json
// @Produce json
// @Param projectId path int true "项目ID"
// @Param request body dto.CommentRequest true "备注内容"
// @Success 201 {object} responses.Response{data=dto.CommentResponse}
// @Router /api/comments/project/{projectId} [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var param projectIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	comment, err := h.commentService.Create(param.ProjectID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Created(c, "Comment added successfully", comment)
}

// History 全局备注历史
// @Summary 全局备注历史
// @Tags Comment
// @Produce json
// @Param limit query int false "每页数量"
// @Param offset query int false "偏移量"
// @Param project_id query int false "按项目过滤"
// @Success 200 {object} responses.Response{data=[]dto.CommentResponse}
// @Router /api/comments/history [get]
func (h *CommentHandler) History(c *gin.Context) {
	var query dto.CommentHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	comments, total, err := h.commentService.History(&query)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Page(c, comments, responses.NewPagination(total, query.GetLimit(50), query.GetOffset(), len(comments)))
}

// Update 更新备注
// @Summary 更新备注
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path int true "备注ID"
// @Param request body dto.CommentRequest true "备注内容"
// @Success 200 {object} responses.Response{data=dto.CommentResponse}
// @Router /api/comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	comment, err := h.commentService.Update(param.ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "Comment updated successfully", comment)
}

// Delete 删除备注
// @Summary 删除备注
// @Tags Comment
// @Produce json
// @Param id path int true "备注ID"
// @Success 200 {object} responses.Response
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		responses.Error(c, utils.NewBindingError(err))
		return
	}

	if err := h.commentService.Delete(param.ID); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "Comment deleted successfully", nil)
}

// Stats 备注统计
// @Summary 备注统计
// @Tags Comment
// @Produce json
// @Success 200 {object} responses.Response{data=dto.CommentStats}
// @Router /api/comments/stats [get]
func (h *CommentHandler) Stats(c *gin.Context) {
	stats, err := h.commentService.Stats()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, stats)
}
