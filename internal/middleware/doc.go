// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前包含跨來源資源共享（CORS）設定，以及記錄每個請求處理時間的中間件。
package middleware
