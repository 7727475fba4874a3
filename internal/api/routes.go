package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"channel_uploads/internal/api/handlers"
	"channel_uploads/internal/middleware"
	"channel_uploads/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	videoHandler := handlers.NewVideoHandler(services.VideoService)

	// ResponseTime 必須在 CORS 之前，預檢請求會在 CORS 中結束
	r.Use(middleware.ResponseTime(), middleware.CORS())

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
		})
	})

	// 基本的健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// 結尾斜線由 gin 的 RedirectTrailingSlash 導回同一路由
	r.GET("/get/:id", videoHandler.GetUploads)
}
