package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger 可探活的依赖
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	DB           Pinger
	AIConfigured bool
}

func NewHealthController(db Pinger, aiConfigured bool) *HealthController {
	return &HealthController{DB: db, AIConfigured: aiConfigured}
}

// @Summary 服务横幅
// @Tags 系统
// @Produce json
// @Success 200 {object} object "message, timestamp"
// @Router / [get]
func (c *HealthController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":   "AI Study Buddy API is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary 健康检查
// @Description 数据库不可用时仍返回 200，database 字段为 failed
// @Tags 系统
// @Produce json
// @Success 200 {object} object "status, database, openai"
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	dbStatus := "ok"
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()
	if c.DB == nil || c.DB.Ping(pingCtx) != nil {
		dbStatus = "failed"
	}

	openai := "not configured"
	if c.AIConfigured {
		openai = "configured"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbStatus,
		"openai":   openai,
	})
}
