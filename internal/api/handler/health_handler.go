package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pmo-dashboard/internal/pkg/database"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check 健康检查
// @Summary 健康检查
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := "OK"
	if err := database.Ping(); err != nil {
		status = "DB_DISCONNECTED"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
