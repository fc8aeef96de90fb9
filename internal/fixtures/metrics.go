// Package fixtures supplies deterministic sample datasets for dashboard
// development and tests when no live backend is available. Values are
// hand-authored and must be treated as read-only by consumers. Array lengths
// are internally consistent per series, but cross-field semantics are
// deliberately not: some series carry anomalous values to exercise chart
// rendering edge cases.
package fixtures

import (
	"time"

	"github.com/aravindan888/opsml/internal/cli/types"
)

var baseTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return baseTime.AddDate(0, 0, n)
}

// CustomMetrics covers a healthy series and one whose final average falls
// sharply below its lower bound. The out-of-bounds point stays: charts must
// render it, not clamp it.
var CustomMetrics = []types.CustomMetricSeries{
	{
		MetricName: "mape",
		CreatedAt: []time.Time{
			day(0), day(1), day(2), day(3), day(4), day(5), day(6), day(7),
		},
		Stats: []types.MetricStats{
			{Avg: 12.4, LowerBound: 10.0, UpperBound: 15.0},
			{Avg: 12.9, LowerBound: 10.0, UpperBound: 15.0},
			{Avg: 13.1, LowerBound: 10.2, UpperBound: 15.2},
			{Avg: 12.7, LowerBound: 10.2, UpperBound: 15.2},
			{Avg: 13.6, LowerBound: 10.4, UpperBound: 15.4},
			{Avg: 14.2, LowerBound: 10.4, UpperBound: 15.4},
			{Avg: 13.9, LowerBound: 10.6, UpperBound: 15.6},
			{Avg: 2.3, LowerBound: 10.6, UpperBound: 15.6},
		},
	},
	{
		MetricName: "accuracy",
		CreatedAt: []time.Time{
			day(0), day(1), day(2), day(3), day(4), day(5),
		},
		Stats: []types.MetricStats{
			{Avg: 0.91, LowerBound: 0.85, UpperBound: 0.97},
			{Avg: 0.92, LowerBound: 0.85, UpperBound: 0.97},
			{Avg: 0.90, LowerBound: 0.85, UpperBound: 0.97},
			{Avg: 0.93, LowerBound: 0.85, UpperBound: 0.97},
			{Avg: 0.91, LowerBound: 0.85, UpperBound: 0.97},
			{Avg: 0.92, LowerBound: 0.85, UpperBound: 0.97},
		},
	},
}

// SpcMetrics holds per-feature SPC series with aligned timestamps and values.
var SpcMetrics = []types.SpcFeatureSeries{
	{
		Feature: "col_1",
		CreatedAt: []time.Time{
			day(0), day(1), day(2), day(3), day(4), day(5), day(6),
		},
		Values: []float64{0.12, 0.18, 0.11, 0.22, 0.16, 0.19, 0.14},
	},
	{
		Feature: "col_2",
		CreatedAt: []time.Time{
			day(0), day(1), day(2), day(3), day(4),
		},
		Values: []float64{-1.4, -0.9, -1.1, -2.8, -1.2},
	},
	{
		Feature: "col_3",
		CreatedAt: []time.Time{
			day(0), day(1), day(2),
		},
		Values: []float64{4.1, 4.3, 4.0},
	},
}

// PsiMetrics holds per-feature PSI drift series. The temperature series is
// intentionally malformed-looking: ten timestamps whose values are raw bin
// counts rather than normalized PSI scores. Keep it, the dashboard has to
// survive structurally valid but semantically odd payloads.
var PsiMetrics = []types.PsiFeatureSeries{
	{
		Feature: "pressure",
		CreatedAt: []time.Time{
			day(0), day(1), day(2), day(3), day(4), day(5),
		},
		Psi:        []float64{0.02, 0.04, 0.03, 0.11, 0.26, 0.31},
		OverallPsi: 0.31,
		Bins: map[string]float64{
			"0": 0.10, "1": 0.09, "2": 0.11, "3": 0.10, "4": 0.12,
			"5": 0.08, "6": 0.11, "7": 0.09, "8": 0.10, "9": 0.10,
		},
	},
	{
		Feature: "temperature",
		CreatedAt: []time.Time{
			day(0), day(1), day(2), day(3), day(4),
			day(5), day(6), day(7), day(8), day(9),
		},
		Psi:        []float64{142, 156, 133, 170, 161, 149, 188, 175, 164, 180},
		OverallPsi: 0.07,
		Bins: map[string]float64{
			"0": 0.12, "1": 0.10, "2": 0.08, "3": 0.11, "4": 0.09,
			"5": 0.10, "6": 0.10, "7": 0.11, "8": 0.09, "9": 0.10,
		},
	},
}
