package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-manager-api/internal/application/ports"
)

type cachingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cachingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ListCache serves GET list responses from the cache when a fresh copy
// exists and records successful responses on a miss. Cache keys carry the raw
// query string, invalidation happens kind-wide through ports.ListCache.Bump.
func ListCache(cache ports.ListCache, kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.URL.RawQuery

		if body, ok := cache.GetPage(c.Request.Context(), kind, key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &cachingWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if w.Status() == http.StatusOK {
			cache.SetPage(c.Request.Context(), kind, key, w.buf.Bytes())
		}
	}
}
