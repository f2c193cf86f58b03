package routes

import (
	"net/http"
	"strings"

	"brief-engine/internal/ai"
	"brief-engine/internal/config"
	"brief-engine/internal/directory"
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

// SetupReportRoutes registers campaign report generation.
func SetupReportRoutes(router *gin.Engine, cfg *config.Config, gen *ai.Client, counter store.Counter) {
	api := router.Group("/api")

	api.POST("/generate-report",
		middleware.RateLimit(counter, cfg.ReportRateLimit, cfg.RateLimitWindow),
		func(c *gin.Context) {
			var req models.GenerateReportRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				utils.RespondWithBadRequest(c, "Invalid request body", gin.H{"error": err.Error()})
				return
			}

			var missing []string
			if strings.TrimSpace(req.BrandEssence) == "" {
				missing = append(missing, "brandEssence")
			}
			if len(req.Keywords) == 0 {
				missing = append(missing, "keywords")
			}
			if strings.TrimSpace(req.Audience) == "" {
				missing = append(missing, "audience")
			}
			if len(missing) > 0 {
				utils.RespondWithBadRequest(c,
					"Missing required fields: "+strings.Join(missing, ", "),
					gin.H{"missing": missing})
				return
			}

			report := generateReport(c, gen, req)
			report.PotentialCollaborations = directory.Enrich(report.PotentialCollaborations)

			c.JSON(http.StatusOK, report)
		})
}

// generateReport runs the provider path when a client is available and
// falls back to the deterministic templates on any failure. It never
// returns a partial report.
func generateReport(c *gin.Context, gen *ai.Client, req models.GenerateReportRequest) models.CampaignReport {
	requestID := middleware.GetRequestID(c)

	if gen == nil {
		logger.Warn("no provider credential configured, using mock report",
			"endpoint", "generate-report", "request_id", requestID)
		return fallback.Report(req.BrandEssence, req.Keywords, req.Audience)
	}

	text, err := gen.GenerateJSON(c.Request.Context(), prompt.ReportSystem(), prompt.ReportUser(req))
	if err != nil {
		logger.Error("report provider call failed", "error", err, "request_id", requestID)
		return fallback.Report(req.BrandEssence, req.Keywords, req.Audience)
	}

	result := parse.Report(text)
	if result.Confidence != parse.Structured {
		logger.Warn("report response degraded",
			"confidence", result.Confidence.String(),
			"warnings", strings.Join(result.Warnings, "; "),
			"response", text,
			"request_id", requestID)
	}
	return result.Report
}
