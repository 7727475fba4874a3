// Package api 設置 gin 路由。
//
// 對外只有 /get/:id 一條業務路由，依頻道 ID 回傳最新上傳的影片清單；
// 另外保留 /health 健康檢查與統一的 404 回應。
package api
