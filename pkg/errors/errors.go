package errors

import "fmt"

// HTTP状态码即错误码, 响应时直接作为HTTP status返回
const (
	CodeSuccess       = 200
	CodeCreated       = 201
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeConflict      = 409
	CodeRateLimited   = 429
	CodeInternalError = 500
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// AppError 应用错误
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"` // 校验错误携带的字段明细
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is/As链
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidation 创建带字段明细的校验错误
func NewValidation(message string, fields []FieldError) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
		Fields:  fields,
	}
}

// 预定义错误
var (
	ErrBadRequest    = New(CodeBadRequest, "Invalid request")
	ErrUnauthorized  = New(CodeUnauthorized, "Authentication required")
	ErrForbidden     = New(CodeForbidden, "Insufficient permissions")
	ErrNotFound      = New(CodeNotFound, "Resource not found")
	ErrConflict      = New(CodeConflict, "Resource conflict")
	ErrRateLimited   = New(CodeRateLimited, "Too many requests")
	ErrInternalError = New(CodeInternalError, "Internal server error")
	ErrDatabaseError = New(CodeInternalError, "Database error")

	// 具体业务错误
	// 登录失败统一返回同一错误, 不区分用户不存在/已禁用/密码错误
	ErrInvalidCredentials = New(CodeUnauthorized, "Invalid credentials")
	ErrInvalidToken       = New(CodeUnauthorized, "Invalid token")
	ErrTokenExpired       = New(CodeUnauthorized, "Token expired")
	ErrRecordNotFound     = New(CodeNotFound, "Record not found")
	ErrRecordExists       = New(CodeConflict, "Record already exists")
	ErrOptionInUse        = New(CodeConflict, "Cannot delete option that is currently in use by projects")
)
