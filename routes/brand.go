package routes

import (
	"net/http"

	"brief-engine/internal/ai"
	"brief-engine/internal/config"
	"brief-engine/internal/fallback"
	"brief-engine/internal/logger"
	"brief-engine/internal/parse"
	"brief-engine/internal/prompt"
	"brief-engine/internal/store"
	"brief-engine/middleware"
	"brief-engine/models"
	"brief-engine/utils"

	"github.com/gin-gonic/gin"
)

// SetupBrandRoutes registers brand synthesis. gen may be nil when no
// provider credential is configured; every request then takes the
// deterministic fallback path.
func SetupBrandRoutes(router *gin.Engine, cfg *config.Config, gen *ai.Client, counter store.Counter) {
	api := router.Group("/api")

	api.POST("/synthesize-brand",
		middleware.RateLimit(counter, cfg.BrandRateLimit, cfg.RateLimitWindow),
		func(c *gin.Context) {
			var req models.SynthesizeBrandRequest
			if err := c.ShouldBindJSON(&req); err != nil || req.Answers == nil {
				utils.RespondWithBadRequest(c, "Missing brand answers in request body", nil)
				return
			}
			answers := *req.Answers

			fileKeywords := req.FileKeywords
			if len(fileKeywords) == 0 && len(answers.FileNames) > 0 {
				fileKeywords = utils.MapFilenamesToKeywords(answers.FileNames)
			}

			if gen == nil {
				logger.Warn("no provider credential configured, using fallback synthesis",
					"endpoint", "synthesize-brand", "request_id", middleware.GetRequestID(c))
				c.JSON(http.StatusOK, fallback.BrandSummary(answers, fileKeywords))
				return
			}

			text, err := gen.GenerateText(c.Request.Context(), prompt.BrandSynthesis(answers, fileKeywords))
			if err != nil {
				logger.Error("brand synthesis provider call failed",
					"error", err, "request_id", middleware.GetRequestID(c))
				c.JSON(http.StatusOK, fallback.BrandSummary(answers, fileKeywords))
				return
			}

			summary, err := parse.BrandSummary(text)
			if err != nil {
				logger.Error("failed to parse brand synthesis response",
					"error", err, "response", text, "request_id", middleware.GetRequestID(c))
				c.JSON(http.StatusOK, fallback.BrandSummary(answers, fileKeywords))
				return
			}

			// The provider never sees these verbatim fields; re-attach
			// them from the request
			summary.BrandName = optional(answers.BrandName)
			summary.BrandWebsite = optional(answers.BrandWebsite)
			if summary.FileKeywords == nil {
				summary.FileKeywords = fileKeywords
			}

			c.JSON(http.StatusOK, summary)
		})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
