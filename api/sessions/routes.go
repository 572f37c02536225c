package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// RegisterRoutes registers session lifecycle routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", CreateSession(deps))
	router.GET("", ListSessions(deps))
	router.GET("/saved", ListSaved(deps))
	router.DELETE("/saved/:uuid", DeleteSaved(deps))
	router.GET("/:id", GetSession(deps))
	router.DELETE("/:id", DeleteSession(deps))
	router.POST("/:id/save", SaveSession(deps))
	router.GET("/:id/export", ExportSession(deps))
}
