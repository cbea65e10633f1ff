package utils

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	pkgErrors "pmo-dashboard/pkg/errors"
)

// NewBindingError 将gin绑定错误转换为携带全部字段明细的校验错误
// 每个违反约束的字段都出现在明细里, 而不是只报告第一个
func NewBindingError(err error) *pkgErrors.AppError {
	return pkgErrors.NewValidation("Validation failed", CollectFieldErrors(err))
}

// CollectFieldErrors 收集绑定/校验错误的字段明细
func CollectFieldErrors(err error) []pkgErrors.FieldError {
	if err == nil {
		return nil
	}

	// validator的校验错误, 逐字段收集
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fields := make([]pkgErrors.FieldError, 0, len(validationErrors))
		for _, e := range validationErrors {
			fields = append(fields, pkgErrors.FieldError{
				Field:  e.Field(),
				Reason: formatFieldError(e),
			})
		}
		return fields
	}

	// JSON类型错误
	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return []pkgErrors.FieldError{{
			Field:  jsonErr.Field,
			Reason: fmt.Sprintf("should be %s", jsonErr.Type.String()),
		}}
	}

	// JSON语法错误
	if _, ok := err.(*json.SyntaxError); ok {
		return []pkgErrors.FieldError{{Field: "body", Reason: "invalid JSON format"}}
	}

	return []pkgErrors.FieldError{{Field: "body", Reason: err.Error()}}
}

// formatFieldError 格式化单个字段的校验错误原因
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "email":
		return "must be a valid email address"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "numeric":
		return "must be numeric"
	case "alphanum":
		return "must be alphanumeric"
	default:
		return fmt.Sprintf("failed validation on '%s'", e.Tag())
	}
}
