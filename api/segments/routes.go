package segments

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// RegisterRoutes registers timeline segment routes under one session
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", AppendSegment(deps))
	router.GET("", ListSegments(deps))
	router.PUT("/start-time", SetStartTime(deps))
	router.DELETE("/:segmentId", RemoveSegment(deps))
	router.POST("/:segmentId/reorder", ReorderSegment(deps))
}
