package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"go-segmentation/internal/api"
	"go-segmentation/internal/api/handler"
	"go-segmentation/internal/config"
	"go-segmentation/internal/segmentation"
	"go-segmentation/internal/store"
	"go-segmentation/pkg/router"
	"go-segmentation/pkg/utils"
)

// @title Customer Segmentation API
// @version 1.0
// @description Demo e-commerce customer segmentation service: CSV uploads, simulated segmentation jobs, results and chart data.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// .env is optional; env vars win either way
	godotenv.Load()

	cfg := config.Load()

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}
	if err := utils.NewUploadManager(cfg.UploadDir).EnsureDir(); err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	runner := segmentation.NewRunner(segmentation.NewScheduler(), time.Now().UnixNano())
	h := handler.New(cfg, runner)

	r := router.New()
	api.RegisterRoutes(r, h)

	r.Start(":" + cfg.Port)
}
