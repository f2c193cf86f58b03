package middleware

import (
	"strconv"
	"time"

	"brief-engine/internal/logger"
	"brief-engine/internal/store"
	"brief-engine/utils"

	"github.com/gin-gonic/gin"
)

// RateLimit enforces a fixed-window per-caller quota for one endpoint.
// The key combines client IP and route so endpoints meter independently.
// Store errors fail open: shedding load matters less than blocking
// everyone when the backing store is down.
func RateLimit(counter store.Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + utils.GetClientIP(c.Request) + ":" + c.FullPath()

		decision, err := counter.Take(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("rate limit store error, failing open", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.Reset.Unix(), 10))

		if !decision.Allowed {
			utils.RespondWithRateLimited(c,
				"Rate limit exceeded. Please try again in a minute.",
				gin.H{
					"retry_after": int(time.Until(decision.Reset).Seconds()),
					"limit":       limit,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}
