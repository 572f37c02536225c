package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// RegisterRoutes registers analytics routes under one session
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/counts", GetCounts(deps))
	router.GET("/histogram", GetHistogram(deps))
}
