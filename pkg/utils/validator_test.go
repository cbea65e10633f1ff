package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "pmo-dashboard/pkg/errors"
)

type sampleRequest struct {
	Name  string `json:"name" binding:"required,max=10"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin manager viewer"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	return c.ShouldBindJSON(&req)
}

func TestNewBindingErrorCollectsAllFields(t *testing.T) {
	err := bindSample(t, `{"name":"", "email":"not-an-email", "role":"superuser"}`)
	require.Error(t, err)

	appErr := NewBindingError(err)
	assert.Equal(t, pkgErrors.CodeBadRequest, appErr.Code)
	assert.Equal(t, "Validation failed", appErr.Message)

	// 每个违反约束的字段都在明细里, 不是只报告第一个
	require.Len(t, appErr.Fields, 3)

	byField := make(map[string]string, len(appErr.Fields))
	for _, f := range appErr.Fields {
		byField[f.Field] = f.Reason
	}
	assert.Equal(t, "is required", byField["Name"])
	assert.Equal(t, "must be a valid email address", byField["Email"])
	assert.Contains(t, byField["Role"], "must be one of")
}

func TestNewBindingErrorInvalidJSON(t *testing.T) {
	err := bindSample(t, `{not json`)
	require.Error(t, err)

	appErr := NewBindingError(err)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "body", appErr.Fields[0].Field)
	assert.Equal(t, "invalid JSON format", appErr.Fields[0].Reason)
}

func TestNewBindingErrorTypeMismatch(t *testing.T) {
	err := bindSample(t, `{"name":123, "email":"a@b.com", "role":"admin"}`)
	require.Error(t, err)

	appErr := NewBindingError(err)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "name", appErr.Fields[0].Field)
	assert.Contains(t, appErr.Fields[0].Reason, "should be string")
}
