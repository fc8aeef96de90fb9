package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	"github.com/aravindan888/opsml/internal/fixtures"
)

// MonitorHandler serves the drift/SPC/PSI/alert fixture routes so chart and
// table views can be developed without a live scouter backend.
type MonitorHandler struct{}

// NewMonitorHandler creates a monitor handler.
func NewMonitorHandler() *MonitorHandler {
	return &MonitorHandler{}
}

// CustomMetrics handles GET /api/v1/monitor/metrics/custom.
func (h *MonitorHandler) CustomMetrics(ctx context.Context, c *app.RequestContext) {
	JSON(c, utils.H{"metrics": fixtures.CustomMetrics})
}

// SpcMetrics handles GET /api/v1/monitor/metrics/spc.
func (h *MonitorHandler) SpcMetrics(ctx context.Context, c *app.RequestContext) {
	JSON(c, utils.H{"metrics": fixtures.SpcMetrics})
}

// PsiMetrics handles GET /api/v1/monitor/metrics/psi.
func (h *MonitorHandler) PsiMetrics(ctx context.Context, c *app.RequestContext) {
	JSON(c, utils.H{"metrics": fixtures.PsiMetrics})
}

// Alerts handles GET /api/v1/monitor/alerts.
func (h *MonitorHandler) Alerts(ctx context.Context, c *app.RequestContext) {
	JSON(c, utils.H{"alerts": fixtures.Alerts})
}
