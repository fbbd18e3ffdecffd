package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pathfound/projectzero/internal/service"
	"github.com/rs/zerolog"
)

// NewEngine builds a gin engine with the standard middleware chain and all routes mounted.
func NewEngine(logger zerolog.Logger, repo Pinger, greetingSvc service.GreetingService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(logger))
	Register(r, repo, greetingSvc)
	return r
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, repo Pinger, greetingSvc service.GreetingService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	RegisterDocs(r)

	greetings := NewGreetingHandler(greetingSvc)
	greetings.RegisterLegacy(r.Group(APIPrefix))

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		greetings.Register(api)
	}
}
