package routes

import (
	"net/http"
	"strings"

	"brief-engine/internal/config"
	"brief-engine/internal/logger"
	"brief-engine/internal/moodboard"
	"brief-engine/internal/store"
	"brief-engine/middleware"
	"brief-engine/utils"

	"github.com/gin-gonic/gin"
)

// SetupMoodboardRoutes registers the moodboard image search proxy.
func SetupMoodboardRoutes(router *gin.Engine, cfg *config.Config, svc *moodboard.Service, counter store.Counter) {
	api := router.Group("/api")

	api.GET("/moodboard",
		middleware.RateLimit(counter, cfg.MoodboardRateLimit, cfg.RateLimitWindow),
		func(c *gin.Context) {
			keywordsParam := c.Query("keywords")
			if keywordsParam == "" {
				utils.RespondWithBadRequest(c, "Missing keywords parameter", nil)
				return
			}

			seed := c.DefaultQuery("seed", "0")

			keywords := make([]string, 0)
			for _, k := range strings.Split(keywordsParam, ",") {
				if k = strings.TrimSpace(k); k != "" {
					keywords = append(keywords, k)
				}
			}

			images, err := svc.Search(c.Request.Context(), keywords, seed)
			if err != nil {
				logger.Error("moodboard search failed", "error", err,
					"request_id", middleware.GetRequestID(c))
				utils.RespondWithInternalError(c, "Failed to fetch moodboard", gin.H{"error": err.Error()})
				return
			}

			c.JSON(http.StatusOK, images)
		})
}
