package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/controller"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/service"
	"study_buddy_backend/pkg/database"
	"study_buddy_backend/pkg/logger"
	"study_buddy_backend/pkg/monitoring"
	"study_buddy_backend/pkg/security"
	"study_buddy_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const poweredBy = "OpenAI"

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user      *repository.UserRepository
	analytics repository.AnalyticsStore
}

type services struct {
	auth      *service.AuthService
	analytics *service.AnalyticsService
	study     *service.StudyService
}

type controllers struct {
	auth      *controller.AuthController
	analytics *controller.AnalyticsController
	study     *controller.StudyController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		analytics: repository.NewMemoryAnalyticsStore(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, completer service.Completer) *services {
	return &services{
		auth:      service.NewAuthService(repos.user, cfg),
		analytics: service.NewAnalyticsService(repos.analytics, cfg.Analytics.Location()),
		study:     service.NewStudyService(completer),
	}
}

func (a *App) initControllers(s *services, repos *repositories, cfg *config.Config) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		analytics: controller.NewAnalyticsController(s.analytics),
		study:     controller.NewStudyController(s.study, poweredBy),
		health:    controller.NewHealthController(repos.user, cfg.AI.Configured()),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(security.CORS(cfg.AllowedOrigins()))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware(cfg.Tracing.ServiceName))
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 用现成的数据库和文本生成服务组装路由，不做任何外部初始化
func New(cfg *config.Config, db *gorm.DB, completer service.Completer) *App {
	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, completer)
	controllers := app.initControllers(services, repos, cfg)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if cfg.Server.Mode != gin.ReleaseMode && cfg.Server.Mode != gin.TestMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Database.AutoMigrate || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// 只做迁移时不需要路由、追踪和 AI 客户端
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp, err = tracing.InitTracer(context.Background(), cfg.Tracing)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	ai := service.NewAIService(cfg.AI)
	if !ai.Configured() {
		logger.Log.Warn("OPENAI_API_KEY is not set, AI endpoints will fail")
	}

	app := New(cfg, db, ai)
	app.tracerProvider = tp
	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
