package routes

import (
	"net/http"

	"brief-engine/internal/ai"
	"brief-engine/internal/config"
	"brief-engine/internal/fallback"
	"brief-engine/internal/logger"
	"brief-engine/internal/prompt"
	"brief-engine/internal/store"
	"brief-engine/middleware"
	"brief-engine/models"

	"github.com/gin-gonic/gin"
)

// SetupEmailRoutes registers outreach email generation. Apart from rate
// limiting, this endpoint never returns an error status: any provider or
// input trouble degrades to the deterministic email template.
func SetupEmailRoutes(router *gin.Engine, cfg *config.Config, gen *ai.Client, counter store.Counter) {
	api := router.Group("/api")

	api.POST("/generate-email",
		middleware.RateLimit(counter, cfg.EmailRateLimit, cfg.RateLimitWindow),
		func(c *gin.Context) {
			requestID := middleware.GetRequestID(c)

			var req models.GenerateEmailRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				logger.Warn("unreadable email request body, using template with empty fields",
					"error", err, "request_id", requestID)
			}

			if gen == nil {
				c.JSON(http.StatusOK, models.GenerateEmailResponse{Email: fallback.Email(req)})
				return
			}

			text, err := gen.GenerateText(c.Request.Context(), prompt.EmailSystem(), prompt.EmailUser(req))
			if err != nil {
				logger.Error("email provider call failed", "error", err, "request_id", requestID)
				c.JSON(http.StatusOK, models.GenerateEmailResponse{Email: fallback.Email(req)})
				return
			}

			c.JSON(http.StatusOK, models.GenerateEmailResponse{Email: text})
		})
}
