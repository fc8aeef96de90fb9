package handler_test

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"

	"github.com/aravindan888/opsml/internal/cli/types"
	"github.com/aravindan888/opsml/internal/fixtures"
	"github.com/aravindan888/opsml/internal/handler"
	"github.com/aravindan888/opsml/internal/registry"
	"github.com/aravindan888/opsml/internal/router"
)

func newTestEngine(t *testing.T) *route.Engine {
	t.Helper()

	h := server.New()
	store := registry.NewStore(fixtures.Cards)
	router.Setup(h,
		handler.NewRegistryHandler(store, slog.Default()),
		handler.NewMonitorHandler(),
		handler.NewHealthHandler(),
	)
	return h.Engine
}

func TestSpacesRoute(t *testing.T) {
	engine := newTestEngine(t)

	w := ut.PerformRequest(engine, "GET", "/api/v1/card/spaces?registry_type=model", nil)
	resp := w.Result()
	if resp.StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode())
	}

	var body types.SpaceResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Spaces) == 0 {
		t.Error("expected at least one space from fixture cards")
	}
}

func TestSpacesRouteRejectsBadRegistryType(t *testing.T) {
	engine := newTestEngine(t)

	w := ut.PerformRequest(engine, "GET", "/api/v1/card/spaces?registry_type=bogus", nil)
	if code := w.Result().StatusCode(); code != 400 {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestMetadataRoute(t *testing.T) {
	t.Run("known uid", func(t *testing.T) {
		engine := newTestEngine(t)

		w := ut.PerformRequest(engine, "GET", "/api/v1/card/metadata?registry_type=model&uid=9f0c2e4a-churn-140", nil)
		resp := w.Result()
		if resp.StatusCode() != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode())
		}

		var card types.CardMetadata
		if err := json.Unmarshal(resp.Body(), &card); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if card.Name != "churn-model" || card.Version != "1.4.0" {
			t.Errorf("unexpected card: %+v", card)
		}
	})

	t.Run("unknown uid", func(t *testing.T) {
		engine := newTestEngine(t)

		w := ut.PerformRequest(engine, "GET", "/api/v1/card/metadata?registry_type=model&uid=missing", nil)
		if code := w.Result().StatusCode(); code != 404 {
			t.Errorf("status = %d, want 404", code)
		}
	})
}

func TestCardListRoute(t *testing.T) {
	engine := newTestEngine(t)

	w := ut.PerformRequest(engine, "GET", "/api/v1/card/list?registry_type=model&name=churn-model&limit=1", nil)
	resp := w.Result()
	if resp.StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode())
	}

	var records []types.CardRecord
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Data.UID == "" {
		t.Error("record has no uid")
	}
}

func TestMonitorAlertsRoute(t *testing.T) {
	engine := newTestEngine(t)

	w := ut.PerformRequest(engine, "GET", "/api/v1/monitor/alerts", nil)
	resp := w.Result()
	if resp.StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode())
	}

	var body struct {
		Alerts []types.Alert `json:"alerts"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Alerts) != len(fixtures.Alerts) {
		t.Errorf("alerts = %d, want %d", len(body.Alerts), len(fixtures.Alerts))
	}
}
