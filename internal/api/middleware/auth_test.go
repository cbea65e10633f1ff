package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmo-dashboard/internal/dto"
	"pmo-dashboard/internal/model"
	"pmo-dashboard/internal/pkg/config"
	"pmo-dashboard/internal/pkg/jwt"
	"pmo-dashboard/pkg/responses"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwt.Init(&config.JWTConfig{Secret: "test-secret", AccessTokenExpire: 3600})

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("session-secret"))))

	r.POST("/session", func(c *gin.Context) {
		_ = SaveSession(c, &dto.UserInfo{ID: 7, Username: "carol", Role: model.RoleViewer})
		responses.Success(c, nil)
	})

	authed := r.Group("", AuthMiddleware())
	authed.GET("/whoami", func(c *gin.Context) {
		responses.Success(c, CurrentUser(c))
	})
	authed.GET("/admin-only", RequireRole(model.RoleAdmin), func(c *gin.Context) {
		responses.Success(c, nil)
	})
	return r
}

func TestAuthMiddlewareBearer(t *testing.T) {
	r := newAuthTestRouter()

	token, err := jwt.GenerateToken(1, "alice", model.RoleAdmin)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	r := newAuthTestRouter()

	// 无凭据
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bearer前缀缺失
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 伪造Token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareSessionFallback(t *testing.T) {
	r := newAuthTestRouter()

	// 先种会话Cookie
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/session", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"carol"`)
}

func TestRequireRole(t *testing.T) {
	r := newAuthTestRouter()

	adminToken, err := jwt.GenerateToken(1, "alice", model.RoleAdmin)
	require.NoError(t, err)
	viewerToken, err := jwt.GenerateToken(2, "bob", model.RoleViewer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// 角色不足返回403而非401
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
