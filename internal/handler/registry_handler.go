package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/aravindan888/opsml/internal/cli/types"
	"github.com/aravindan888/opsml/internal/registry"
)

// RegistryHandler serves the card registry routes from the in-memory store.
type RegistryHandler struct {
	store  *registry.Store
	logger *slog.Logger
}

// NewRegistryHandler creates a registry handler.
func NewRegistryHandler(store *registry.Store, logger *slog.Logger) *RegistryHandler {
	return &RegistryHandler{store: store, logger: logger}
}

// registryType parses and validates the required registry_type parameter.
// Returns false after writing the error response when the parameter is bad.
func (h *RegistryHandler) registryType(c *app.RequestContext) (types.RegistryType, bool) {
	rt, err := types.ParseRegistryType(c.Query("registry_type"))
	if err != nil {
		BadRequest(c, err.Error())
		return "", false
	}
	return rt, true
}

// page parses the optional page parameter, defaulting to 0.
func page(c *app.RequestContext) (int, bool) {
	raw := c.Query("page")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		BadRequest(c, "page must be a non-negative integer")
		return 0, false
	}
	return n, true
}

// Spaces handles GET /api/v1/card/spaces.
func (h *RegistryHandler) Spaces(ctx context.Context, c *app.RequestContext) {
	rt, ok := h.registryType(c)
	if !ok {
		return
	}
	JSON(c, types.SpaceResponse{Spaces: h.store.Spaces(rt)})
}

// Stats handles GET /api/v1/card/registry/stats.
func (h *RegistryHandler) Stats(ctx context.Context, c *app.RequestContext) {
	rt, ok := h.registryType(c)
	if !ok {
		return
	}
	stats := h.store.Stats(rt, c.Query("search_term"), c.Query("space"))
	JSON(c, types.RegistryStatsResponse{Stats: stats})
}

// Page handles GET /api/v1/card/registry/page.
func (h *RegistryHandler) Page(ctx context.Context, c *app.RequestContext) {
	rt, ok := h.registryType(c)
	if !ok {
		return
	}
	pageNum, ok := page(c)
	if !ok {
		return
	}
	rows := h.store.Page(rt, c.Query("sort_by"), c.Query("space"), c.Query("search_term"), pageNum)
	JSON(c, types.RegistryPageResponse{Page: rows})
}

// List handles GET /api/v1/card/list. The body is a bare JSON array of card
// records, matching what the dashboard's uid lookup expects.
func (h *RegistryHandler) List(ctx context.Context, c *app.RequestContext) {
	rt, ok := h.registryType(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	records := h.store.List(rt, c.Query("name"), c.Query("space"), c.Query("version"), limit)
	JSON(c, records)
}

// Metadata handles GET /api/v1/card/metadata.
func (h *RegistryHandler) Metadata(ctx context.Context, c *app.RequestContext) {
	rt, ok := h.registryType(c)
	if !ok {
		return
	}
	uid := c.Query("uid")
	if uid == "" {
		BadRequest(c, "uid is required")
		return
	}
	card, err := h.store.Metadata(rt, uid)
	if err != nil {
		h.logger.Warn("metadata lookup failed", "uid", uid, "registry_type", rt)
		Error(c, err)
		return
	}
	JSON(c, card)
}

// VersionPage handles GET /api/v1/card/version/page.
func (h *RegistryHandler) VersionPage(ctx context.Context, c *app.RequestContext) {
	rt, ok := h.registryType(c)
	if !ok {
		return
	}
	pageNum, ok := page(c)
	if !ok {
		return
	}
	rows := h.store.VersionPage(rt, c.Query("space"), c.Query("name"), pageNum)
	JSON(c, types.VersionPageResponse{Page: rows})
}
