package playback

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldtally/observer-api/api/types"
)

// RegisterRoutes registers playback routes under one session. The tick
// middleware gets its own, looser bucket since it fires per animation frame.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, tickMiddleware gin.HandlerFunc) {
	router.GET("", GetState(deps))
	router.POST("/play", Play(deps))
	router.POST("/pause", Pause(deps))
	router.POST("/toggle", Toggle(deps))
	router.POST("/reverse", Reverse(deps))
	router.PUT("/rate", SetRate(deps))
	router.PUT("/seek", Seek(deps))
	router.POST("/step", Step(deps))
	router.PUT("/mute", SetMuted(deps))
	router.POST("/sync", Sync(deps))

	tick := router.Group("/tick")
	if tickMiddleware != nil {
		tick.Use(tickMiddleware)
	}
	tick.POST("", Tick(deps))
}
