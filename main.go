// @title AI Study Buddy API
// @version 1.0
// @description AI 学习助手后端服务。

// @host localhost:3001
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"study_buddy_backend/internal/app"
	"study_buddy_backend/internal/config"
	"study_buddy_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使关闭了 auto_migrate）")
	configDir := flag.String("config", "configs", "config.yaml 所在目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer func() { _ = logger.Log.Sync() }()

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		logger.Log.Info("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
