package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"channel_uploads/internal/models"
	"channel_uploads/internal/youtube"
)

var ErrNoVideos = errors.New("No videos found")

// PlaylistFetcher 取得播放清單項目
type PlaylistFetcher interface {
	PlaylistItems(ctx context.Context, playlistID string) (*youtube.PlaylistItemsResponse, error)
}

type VideoService struct {
	fetcher PlaylistFetcher
}

func NewVideoService(fetcher PlaylistFetcher) *VideoService {
	return &VideoService{fetcher: fetcher}
}

// UploadsPlaylistID 將頻道 ID 轉成上傳影片播放清單 ID，只替換第一個 UC
func UploadsPlaylistID(channelID string) string {
	return strings.Replace(channelID, "UC", "UU", 1)
}

// ListUploads 回傳頻道最新上傳的影片，順序與上游相同
func (s *VideoService) ListUploads(ctx context.Context, channelID string) ([]models.Video, error) {
	playlistID := UploadsPlaylistID(channelID)
	log.Printf("Fetching videos for playlist %s", playlistID)

	data, err := s.fetcher.PlaylistItems(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	if data.Items == nil {
		return nil, ErrNoVideos
	}

	videos := make([]models.Video, 0, len(data.Items))
	for _, item := range data.Items {
		videos = append(videos, models.Video{
			VideoID: item.Snippet.ResourceID.VideoID,
			Title:   item.Snippet.Title,
		})
	}

	return videos, nil
}
