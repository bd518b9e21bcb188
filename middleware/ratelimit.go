package middleware

import (
	"sync"
	"time"

	"resto-go-pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit caps requests per client IP per minute.
func RateLimit(rpm int) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		windows = make(map[string]*rateWindow)
	)

	return func(c *gin.Context) {
		now := time.Now()
		ip := c.ClientIP()

		mu.Lock()
		w, ok := windows[ip]
		if !ok || now.After(w.resetAt) {
			w = &rateWindow{resetAt: now.Add(time.Minute)}
			windows[ip] = w
		}
		w.count++
		over := w.count > rpm

		// opportunistic cleanup of stale windows
		if len(windows) > 10000 {
			for k, v := range windows {
				if now.After(v.resetAt) {
					delete(windows, k)
				}
			}
		}
		mu.Unlock()

		if over {
			response.Abort(c, response.TOO_MANY_REQUESTS, "too many requests, slow down")
			return
		}

		c.Next()
	}
}
