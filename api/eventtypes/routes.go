package eventtypes

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// RegisterRoutes registers event-type catalog routes under one session
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListEventTypes(deps))
	router.PUT("/:typeId", RenameEventType(deps))
}
