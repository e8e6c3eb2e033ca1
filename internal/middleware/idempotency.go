package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cabadmin/internal/redis"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

// cachedResponse stores the response for idempotent requests.
type cachedResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
	Headers    http.Header     `json:"headers"`
}

// responseWriter wraps gin.ResponseWriter to capture the response.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a mutating request repeats its
// Idempotency-Key. Keys are scoped to the signed-in session, so it must run after SessionAuth.
func IdempotencyMiddleware(store redis.ResponseCacheInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		scope := c.ClientIP()
		if sess := SessionFrom(c); sess != nil {
			scope = sess.ID
		}
		cacheKey := scope + ":" + key
		ctx := c.Request.Context()

		data, err := store.GetResponse(ctx, cacheKey)
		if err != nil {
			// Store error - proceed without idempotency.
			logrus.WithError(err).Debug("idempotency lookup failed")
			c.Next()
			return
		}

		if data != nil {
			var cached cachedResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				for k, v := range cached.Headers {
					for _, val := range v {
						c.Header(k, val)
					}
				}
				c.Header("Idempotent-Replay", "true")
				c.Data(cached.StatusCode, "application/json", cached.Body)
				c.Abort()
				return
			}
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		if cacheable(c.Writer.Status()) {
			response, err := json.Marshal(cachedResponse{
				StatusCode: status,
				Body:       w.body.Bytes(),
				Headers:    extractResponseHeaders(c),
			})
			if err == nil {
				_ = store.SetResponse(ctx, cacheKey, response, idempotencyTTL)
			}
		}
	}
}

// cacheable reports whether a response with status may be replayed. Conflicts and
// missing confirmations depend on state that changes, so a retry must run again.
func cacheable(status int) bool {
	switch status {
	case http.StatusConflict, http.StatusPreconditionRequired:
		return false
	}
	return status >= 200 && status < 500
}

// extractResponseHeaders extracts headers to cache.
func extractResponseHeaders(c *gin.Context) http.Header {
	headers := make(http.Header)
	// Only cache Content-Type header.
	if ct := c.Writer.Header().Get("Content-Type"); ct != "" {
		headers.Set("Content-Type", ct)
	}
	return headers
}
