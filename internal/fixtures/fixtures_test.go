package fixtures

import (
	"testing"

	"github.com/aravindan888/opsml/internal/cli/types"
)

func TestCustomMetricsShape(t *testing.T) {
	if len(CustomMetrics) == 0 {
		t.Fatal("no custom metric fixtures")
	}

	for _, series := range CustomMetrics {
		if len(series.CreatedAt) != len(series.Stats) {
			t.Errorf("%s: %d timestamps but %d stats", series.MetricName, len(series.CreatedAt), len(series.Stats))
		}
		for i := 1; i < len(series.CreatedAt); i++ {
			if !series.CreatedAt[i].After(series.CreatedAt[i-1]) {
				t.Errorf("%s: timestamps not ascending at index %d", series.MetricName, i)
			}
		}
	}
}

// The mape series ends with an out-of-bounds average on purpose. Charts are
// developed against it; pin it so nobody "fixes" the data.
func TestCustomMetricsKeepsAnomalousPoint(t *testing.T) {
	for _, series := range CustomMetrics {
		if series.MetricName != "mape" {
			continue
		}
		last := series.Stats[len(series.Stats)-1]
		if last.Avg >= last.LowerBound {
			t.Errorf("mape fixture lost its anomaly: avg %.2f >= lower bound %.2f", last.Avg, last.LowerBound)
		}
		return
	}
	t.Fatal("mape fixture missing")
}

func TestSpcMetricsShape(t *testing.T) {
	for _, series := range SpcMetrics {
		if len(series.CreatedAt) != len(series.Values) {
			t.Errorf("%s: %d timestamps but %d values", series.Feature, len(series.CreatedAt), len(series.Values))
		}
	}
}

func TestPsiMetricsShape(t *testing.T) {
	for _, series := range PsiMetrics {
		if len(series.CreatedAt) != len(series.Psi) {
			t.Errorf("%s: %d timestamps but %d psi values", series.Feature, len(series.CreatedAt), len(series.Psi))
		}
		if len(series.Bins) != 10 {
			t.Errorf("%s: %d bins, want 10 deciles", series.Feature, len(series.Bins))
		}
	}
}

func TestAlertsAreWellFormed(t *testing.T) {
	validStatuses := map[types.AlertStatus]bool{
		types.AlertActive:        true,
		types.AlertResolved:      true,
		types.AlertPending:       true,
		types.AlertInvestigating: true,
	}

	seen := make(map[int]bool)
	for _, alert := range Alerts {
		if seen[alert.ID] {
			t.Errorf("duplicate alert id %d", alert.ID)
		}
		seen[alert.ID] = true

		if !validStatuses[alert.Status] {
			t.Errorf("alert %d has unknown status %q", alert.ID, alert.Status)
		}
		if alert.Alert.Type == "" || alert.Alert.Message == "" {
			t.Errorf("alert %d has an empty body", alert.ID)
		}
	}
}

func TestCardsHaveUniqueUIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, card := range Cards {
		if card.UID == "" {
			t.Errorf("card %s/%s@%s has no uid", card.Space, card.Name, card.Version)
		}
		if seen[card.UID] {
			t.Errorf("duplicate card uid %s", card.UID)
		}
		seen[card.UID] = true
	}
}
