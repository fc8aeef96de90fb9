package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/aravindan888/opsml/internal/handler"
	"github.com/aravindan888/opsml/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	registryHandler *handler.RegistryHandler,
	monitorHandler *handler.MonitorHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes
	apiV1 := h.Group("/api/v1")
	{
		card := apiV1.Group("/card")
		{
			card.GET("/spaces", registryHandler.Spaces)
			card.GET("/registry/stats", registryHandler.Stats)
			card.GET("/registry/page", registryHandler.Page)
			card.GET("/list", registryHandler.List)
			card.GET("/metadata", registryHandler.Metadata)
			card.GET("/version/page", registryHandler.VersionPage)
		}

		monitor := apiV1.Group("/monitor")
		{
			monitor.GET("/metrics/custom", monitorHandler.CustomMetrics)
			monitor.GET("/metrics/spc", monitorHandler.SpcMetrics)
			monitor.GET("/metrics/psi", monitorHandler.PsiMetrics)
			monitor.GET("/alerts", monitorHandler.Alerts)
		}
	}
}
