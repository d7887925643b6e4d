package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/scattter/FundDig/internal/config"
	"github.com/scattter/FundDig/internal/fundinfo"
	"github.com/scattter/FundDig/internal/handler"
	"github.com/scattter/FundDig/internal/middleware"
	"github.com/scattter/FundDig/internal/service"
	"github.com/scattter/FundDig/internal/store"
)

// SetupRouter wires stores, services and handlers onto a Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery(), middleware.CORS())

	plans := store.NewPlanStore(db)
	funds := store.NewFundStore(db)
	infoClient := fundinfo.New(cfg.FundInfo.BaseURL, time.Duration(cfg.FundInfo.TimeoutSeconds)*time.Second)

	planSvc := service.NewPlanService(plans, funds)
	fundSvc := service.NewFundService(plans, funds, infoClient)

	planHandler := handler.NewPlanHandler(planSvc)
	r.POST("/plans", planHandler.CreatePlan)
	r.GET("/plans", planHandler.ListPlans)
	r.GET("/plans/:id", planHandler.GetPlan)
	r.PUT("/plans/:id", planHandler.UpdatePlan)
	r.DELETE("/plans/:id", planHandler.DeletePlan)

	fundHandler := handler.NewFundHandler(fundSvc)
	r.GET("/plans/:id/funds", fundHandler.ListFunds)
	r.POST("/plans/:id/funds", fundHandler.CreateFund)
	r.GET("/funds/:code/info", fundHandler.GetFundInfo)

	healthHandler := handler.NewHealthHandler(db)
	r.GET("/health", healthHandler.Health)

	return r
}
