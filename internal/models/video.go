package models

// Video 是回傳給前端的精簡影片資訊
type Video struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
}
