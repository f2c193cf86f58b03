package routes

import (
	"net/http"

	"brief-engine/internal/directory"

	"github.com/gin-gonic/gin"
)

// SetupCommunityRoutes serves the static community directory. No rate
// limit: the data is bundled and the handler does no outbound work.
func SetupCommunityRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/communities", func(c *gin.Context) {
		if vibes := c.Query("vibes"); vibes != "" {
			c.JSON(http.StatusOK, gin.H{"communities": directory.Match(vibes)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"communities": directory.All()})
	})
}
