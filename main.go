package main

import (
	"fmt"
	"log"

	"github.com/scattter/FundDig/internal/config"
	"github.com/scattter/FundDig/internal/database"
	"github.com/scattter/FundDig/internal/logger"
	"github.com/scattter/FundDig/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// setup structured logging
	appLog, err := logger.Init(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		appLog.Fatalf("init database: %v", err)
	}

	// schema is auto-managed only outside production
	if cfg.Server.Mode != "release" {
		if err := database.AutoMigrate(db); err != nil {
			appLog.Fatalf("migrate database: %v", err)
		}
	}

	// setup router
	r := router.SetupRouter(cfg, db, appLog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	appLog.Infof("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		appLog.Fatalf("run server: %v", err)
	}
}
