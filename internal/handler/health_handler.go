package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// HealthHandler serves liveness and readiness probes. The mock server has no
// external dependencies, so readiness is unconditional.
type HealthHandler struct{}

// NewHealthHandler creates a health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Ping is a basic health check.
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness reports whether the server can take traffic.
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "ready",
	})
}

// Liveness reports whether the process is alive.
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
