package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"channel_uploads/internal/api"
	"channel_uploads/internal/service"
	"channel_uploads/internal/youtube"
	"channel_uploads/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 依序讀取 .env、config.yaml 與環境變數
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.YouTube.APIKey == "" {
		log.Println("YOUTUBE_API_KEY is not set, requests will fail until it is configured")
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	// 初始化 YouTube 客戶端與 services
	client := youtube.NewClient(cfg.YouTube, nil)
	services := service.NewServices(client)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	log.Printf("Listening on http://localhost:%s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Address()); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
