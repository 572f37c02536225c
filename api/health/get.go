package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report server liveness plus database and live-session status
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Health status"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.DB != nil {
			response["database"] = getDatabaseStatus(deps)
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil && deps.Manager != nil {
			response["live_sessions"] = len(deps.Manager.List())
		}

		c.JSON(http.StatusOK, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
