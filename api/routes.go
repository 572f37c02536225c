package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fieldtally/observer-api/api/analytics"
	"github.com/fieldtally/observer-api/api/annotations"
	"github.com/fieldtally/observer-api/api/eventtypes"
	"github.com/fieldtally/observer-api/api/health"
	"github.com/fieldtally/observer-api/api/playback"
	"github.com/fieldtally/observer-api/api/segments"
	"github.com/fieldtally/observer-api/api/sessions"
	"github.com/fieldtally/observer-api/api/types"
	"github.com/fieldtally/observer-api/api/version"
	_ "github.com/fieldtally/observer-api/docs/swagger"
	"github.com/fieldtally/observer-api/internal/engine"
	sessionsService "github.com/fieldtally/observer-api/internal/services/sessions"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(router, deps)
	version.RegisterRoutes(router, deps)

	// Swagger documentation route
	router.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := router.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(NotFoundHandler())

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if deps.Manager == nil {
		deps.Manager = engine.NewManager(sessionOptions(deps))
	}
	if deps.SessionService == nil && deps.DB != nil && deps.DB.DB != nil {
		deps.SessionService = sessionsService.NewService(sessionsService.NewRepository(deps.DB.DB))
	}

	v1 := router.Group("/api/v1")

	// Session lifecycle with general rate limiting (10 req/s, burst of 20)
	sessionGroup := v1.Group("/sessions")
	sessionGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	sessions.RegisterRoutes(sessionGroup, deps)

	segmentGroup := v1.Group("/sessions/:id/segments")
	segmentGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	segments.RegisterRoutes(segmentGroup, deps)

	annotationGroup := v1.Group("/sessions/:id/annotations")
	annotationGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 40))
	annotations.RegisterRoutes(annotationGroup, deps)

	eventTypeGroup := v1.Group("/sessions/:id/event-types")
	eventTypeGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	eventtypes.RegisterRoutes(eventTypeGroup, deps)

	// Playback control with higher limits to allow scrubbing; the tick
	// endpoint fires per animation frame and gets its own looser bucket.
	playbackGroup := v1.Group("/sessions/:id/playback")
	playbackGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 30, 60))
	tickMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 120, 240)
	playback.RegisterRoutes(playbackGroup, deps, tickMiddleware)

	analyticsGroup := v1.Group("/sessions/:id/analytics")
	analyticsGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	analytics.RegisterRoutes(analyticsGroup, deps)

	return nil
}

// sessionOptions derives per-session tunables from the loaded config
func sessionOptions(deps *types.Dependencies) engine.Options {
	opts := engine.Options{}
	if deps.Config == nil {
		return opts
	}

	opts.MaxRate = deps.Config.Playback.MaxRate
	opts.SyncTolerance = deps.Config.Playback.SyncTolerance
	opts.SeekStep = deps.Config.Playback.SeekStep
	opts.SeekStepLarge = deps.Config.Playback.SeekStepLarge
	for _, et := range deps.Config.EventTypes {
		opts.EventTypes = append(opts.EventTypes, engine.EventTypeSeed{
			Key:   et.Key,
			Name:  et.Name,
			Color: et.Color,
		})
	}
	return opts
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
