package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zenflow/internal/config"
	"github.com/zenflow/internal/db"
	"github.com/zenflow/internal/energy"
	"github.com/zenflow/internal/handler"
	"github.com/zenflow/internal/logging"
	"github.com/zenflow/internal/metrics"
	"github.com/zenflow/internal/router"
)

func main() {
	cfg := config.Load()

	logger := logging.Setup(logging.Options{
		Service: "zenflow",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
	})

	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := db.EnsureUser(cfg.BootstrapUserName, cfg.BootstrapUserPassword); err != nil {
		log.Fatalf("failed to bootstrap user: %v", err)
	}

	phases, err := energy.LoadPhasesFile(cfg.PhasesFile)
	if err != nil {
		log.Fatalf("failed to load phases: %v", err)
	}

	api := handler.NewAPI(db.DB, handler.Options{
		Phases:   phases,
		Location: cfg.Location(),
		Metrics:  metrics.New(),
		Logger:   logger,
		LoginRate: handler.RateLimit{
			RequestsPerMinute: cfg.LoginRatePerMinute,
			Burst:             cfg.LoginRateBurst,
		},
	})

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret)
	log.Printf("zenflow listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
