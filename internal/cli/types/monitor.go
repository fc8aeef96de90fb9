package types

import "time"

// MetricStats is one observation window of a custom metric: the average and
// the control bounds computed for that window.
type MetricStats struct {
	Avg        float64 `json:"avg"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// CustomMetricSeries is a user-defined metric over time. CreatedAt and Stats
// are index-aligned; timestamps ascend. Bounds are a convention only, chart
// code must tolerate averages outside them.
type CustomMetricSeries struct {
	MetricName string        `json:"metric_name"`
	CreatedAt  []time.Time   `json:"created_at"`
	Stats      []MetricStats `json:"stats"`
}

// SpcFeatureSeries is one feature's SPC values over time. CreatedAt and
// Values are index-aligned.
type SpcFeatureSeries struct {
	Feature   string      `json:"feature"`
	CreatedAt []time.Time `json:"created_at"`
	Values    []float64   `json:"values"`
}

// PsiFeatureSeries is one feature's PSI drift values over time, plus the
// overall PSI and the decile bin densities the score was computed from.
// CreatedAt and Psi are index-aligned.
type PsiFeatureSeries struct {
	Feature    string             `json:"feature"`
	CreatedAt  []time.Time        `json:"created_at"`
	Psi        []float64          `json:"psi"`
	OverallPsi float64            `json:"overall_psi"`
	Bins       map[string]float64 `json:"bins"`
}

// AlertStatus is the lifecycle state of a drift alert.
type AlertStatus string

const (
	AlertActive        AlertStatus = "active"
	AlertResolved      AlertStatus = "resolved"
	AlertPending       AlertStatus = "pending"
	AlertInvestigating AlertStatus = "investigating"
)

// AlertBody is the kind and message of a triggered alert.
type AlertBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Alert is one drift alert record tied to a card version and feature.
type Alert struct {
	ID        int         `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Name      string      `json:"name"`
	Space     string      `json:"space"`
	Version   string      `json:"version"`
	Feature   string      `json:"feature"`
	Alert     AlertBody   `json:"alert"`
	Status    AlertStatus `json:"status"`
}
