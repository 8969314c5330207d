package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-site/internal/cache"
)

const cacheOpTimeout = 500 * time.Millisecond

// captureWriter copies the response body while forwarding it to the client.
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func cacheKey(prefix string, c *gin.Context) string {
	key := prefix + ":" + c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		key += "?" + q
	}
	return key
}

// ResponseCache serves successful GET responses from store for ttl.
// A nil store disables caching. Store failures never fail the request.
func ResponseCache(store cache.Store, prefix string, ttl time.Duration, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(prefix, c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), cacheOpTimeout)
		body, hit, err := store.Get(ctx, key)
		cancel()
		if err != nil {
			logger.Warn("cache get failed", "key", key, "error", err)
		}
		if hit {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")
		c.Next()

		if cw.Status() != http.StatusOK || cw.buf.Len() == 0 {
			return
		}

		ctx, cancel = context.WithTimeout(context.WithoutCancel(c.Request.Context()), cacheOpTimeout)
		defer cancel()
		if err := store.Set(ctx, key, cw.buf.Bytes(), ttl); err != nil {
			logger.Warn("cache set failed", "key", key, "error", err)
		}
	}
}

// InvalidateCache drops every cached response under prefix after a
// successful mutation.
func InvalidateCache(store cache.Store, prefix string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if store == nil || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), cacheOpTimeout)
		defer cancel()
		if err := store.DeletePrefix(ctx, prefix+":"); err != nil {
			logger.Warn("cache invalidation failed", "prefix", prefix, "error", err)
		}
	}
}
