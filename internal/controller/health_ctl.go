package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== HealthController 健康检查 ====================

type HealthController struct {
	startedAt time.Time
	version   string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{startedAt: time.Now(), version: version}
}

// Health 存活检查
// GET /api/health
func (ctrl *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "ok",
		"uptime":    time.Since(ctrl.startedAt).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   ctrl.version,
	})
}

// Root 服务入口，列出可用端点
// GET /
func (ctrl *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Dobby Cafe API",
		"endpoints": gin.H{
			"health":  "/api/health",
			"auth":    "/api/auth",
			"menu":    "/api/menu",
			"catalog": "/api/catalog",
		},
	})
}
