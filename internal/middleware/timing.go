package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const ResponseTimeHeader = "X-Response-Time"

// timedWriter 在標頭送出前寫入處理時間
type timedWriter struct {
	gin.ResponseWriter
	start time.Time
	done  bool
}

func (w *timedWriter) stamp() {
	if w.done || w.ResponseWriter.Written() {
		return
	}
	w.done = true
	elapsed := time.Since(w.start).Milliseconds()
	w.Header().Set(ResponseTimeHeader, strconv.FormatInt(elapsed, 10)+"ms")
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) WriteHeaderNow() {
	w.stamp()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *timedWriter) Write(data []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(data)
}

func (w *timedWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// ResponseTime 在每個回應加上 X-Response-Time 標頭，單位為毫秒
func ResponseTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &timedWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Next()
	}
}
