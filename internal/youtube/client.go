package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"channel_uploads/pkg/config"
)

var ErrMissingAPIKey = errors.New("YOUTUBE_API_KEY is not set")

// StatusError 表示上游回傳非 2xx 狀態
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "Error: " + e.Status
}

// Client 呼叫 YouTube Data API v3
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	httpClient *http.Client
}

// NewClient 依設定建立 Client，httpClient 為 nil 時使用 http.DefaultClient
func NewClient(cfg config.YouTubeConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		maxResults: cfg.MaxResults,
		httpClient: httpClient,
	}
}

// PlaylistItems 取得播放清單最前面的 maxResults 筆項目
func (c *Client) PlaylistItems(ctx context.Context, playlistID string) (*PlaylistItemsResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("playlistId", playlistID)
	query.Set("key", c.apiKey)
	query.Set("maxResults", strconv.Itoa(c.maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/playlistItems?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error 會帶出完整網址，其中含有 API key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var data PlaylistItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &data, nil
}
