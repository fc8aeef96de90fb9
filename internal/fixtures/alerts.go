package fixtures

import (
	"time"

	"github.com/aravindan888/opsml/internal/cli/types"
)

// Alerts covers every alert status at least once. IDs are unique within the
// collection and roughly monotonic with creation time.
var Alerts = []types.Alert{
	{
		ID:        101,
		CreatedAt: time.Date(2024, time.March, 4, 8, 15, 0, 0, time.UTC),
		Name:      "churn-model",
		Space:     "ops",
		Version:   "1.4.0",
		Feature:   "col_2",
		Alert:     types.AlertBody{Type: "spc", Message: "value -2.8 crossed the lower control limit"},
		Status:    types.AlertActive,
	},
	{
		ID:        102,
		CreatedAt: time.Date(2024, time.March, 4, 9, 40, 0, 0, time.UTC),
		Name:      "churn-model",
		Space:     "ops",
		Version:   "1.4.0",
		Feature:   "pressure",
		Alert:     types.AlertBody{Type: "psi", Message: "overall PSI 0.31 exceeded threshold 0.25"},
		Status:    types.AlertInvestigating,
	},
	{
		ID:        103,
		CreatedAt: time.Date(2024, time.March, 5, 11, 5, 0, 0, time.UTC),
		Name:      "forecast-model",
		Space:     "vision",
		Version:   "2.0.1",
		Feature:   "mape",
		Alert:     types.AlertBody{Type: "custom", Message: "avg 2.3 fell below lower bound 10.6"},
		Status:    types.AlertPending,
	},
	{
		ID:        104,
		CreatedAt: time.Date(2024, time.March, 6, 16, 22, 0, 0, time.UTC),
		Name:      "forecast-model",
		Space:     "vision",
		Version:   "2.0.0",
		Feature:   "temperature",
		Alert:     types.AlertBody{Type: "psi", Message: "bin densities shifted in deciles 6-9"},
		Status:    types.AlertResolved,
	},
}
