package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "pmo-dashboard/pkg/errors"
)

// Response 统一响应结构
type Response struct {
	Success    bool                   `json:"success"`
	Data       interface{}            `json:"data,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Details    []pkgErrors.FieldError `json:"details,omitempty"` // 校验错误的字段明细
	Pagination *Pagination            `json:"pagination,omitempty"`
}

// Pagination 分页信息
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

// NewPagination 构造分页信息, returned为本页实际返回的行数
func NewPagination(total int64, limit, offset, returned int) *Pagination {
	return &Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+returned) < total,
	}
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Page 分页成功响应
func Page(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// Error 错误响应, AppError的Code作为HTTP状态返回
// 5xx错误不向调用方透出内部细节, 仅返回通用消息
func Error(c *gin.Context, err error) {
	if appErr, ok := err.(*pkgErrors.AppError); ok {
		message := appErr.Message
		if appErr.Code >= http.StatusInternalServerError {
			message = pkgErrors.ErrInternalError.Message
		}
		c.JSON(appErr.Code, Response{
			Success: false,
			Error:   message,
			Details: appErr.Fields,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   pkgErrors.ErrInternalError.Message,
	})
}

// ErrorWithCode 自定义错误响应
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Error:   message,
	})
}
