package app

import (
	"study_buddy_backend/docs"
	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/middleware"
	"study_buddy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", c.health.Index)
	router.GET("/health", c.health.HealthCheck)

	auth := middleware.AuthMiddleware(cfg.JWT.Secret)

	// 1. 认证
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", c.auth.Register)
		authGroup.POST("/login", c.auth.Login)
		authGroup.GET("/me", auth, c.auth.Me)
	}

	// 2. AI 生成，无需登录
	ai := router.Group("/api/ai")
	{
		ai.POST("/explain", c.study.Explain)
		ai.POST("/study-notes", c.study.StudyNotes)
		ai.POST("/flashcards", c.study.Flashcards)
		ai.POST("/generate-quiz", c.study.GenerateQuiz)
	}

	// 3. 学习统计（需要授权）
	analytics := router.Group("/api/analytics")
	analytics.Use(auth)
	{
		analytics.POST("/track", c.analytics.Track)
		analytics.GET("/stats", c.analytics.Stats)
	}
}
