package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build metadata, overridden at link time via -ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Get handles version requests
// @Summary      Version
// @Description  Report the server's build metadata
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]interface{} "Build info"
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Observer API",
			"version": Version,
			"commit":  Commit,
			"date":    Date,
			"status":  "running",
		})
	}
}
