package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"channel_uploads/internal/service"
)

// VideoHandler 處理頻道影片相關的請求
type VideoHandler struct {
	videoService *service.VideoService
}

// NewVideoHandler 創建一個新的 VideoHandler 實例
func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// GetUploads 回傳頻道最新上傳的影片
func (h *VideoHandler) GetUploads(c *gin.Context) {
	videos, err := h.videoService.ListUploads(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNoVideos) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, videos)
}
