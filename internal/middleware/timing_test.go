package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestResponseTimeHeader(t *testing.T) {
	r := gin.New()
	r.Use(ResponseTime())
	r.GET("/json", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/raw", func(c *gin.Context) { c.Writer.Write([]byte("raw")) })

	for _, path := range []string{"/json", "/raw"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Regexp(t, `^\d+ms$`, w.Header().Get(ResponseTimeHeader), path)
	}
}

func TestResponseTimeHeaderOnAbort(t *testing.T) {
	r := gin.New()
	r.Use(ResponseTime())
	r.GET("/abort", func(c *gin.Context) { c.AbortWithStatus(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/abort", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Regexp(t, `^\d+ms$`, w.Header().Get(ResponseTimeHeader))
}
