package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagination-service/internal/service"
)

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, ready Pinger, paginationSvc service.PaginationService) {
	h := NewHealthHandler(ready)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPaginationHandler(paginationSvc).Register(api)
	}
}
