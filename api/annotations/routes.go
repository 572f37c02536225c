package annotations

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// RegisterRoutes registers annotation routes under one session
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", RecordAnnotation(deps))
	router.GET("", ListAnnotations(deps))
	router.POST("/delete-closest", DeleteClosest(deps))
	router.DELETE("/:annotationId", DeleteAnnotation(deps))
	router.PUT("/:annotationId/event-type", ReassignAnnotation(deps))
	router.PUT("/:annotationId/note", SetNote(deps))
}
