package fixtures

import (
	"time"

	"github.com/aravindan888/opsml/internal/cli/types"
)

// Cards seeds the mock registry store. UIDs are fixed so that CLI sessions
// and tests can refer to them verbatim.
var Cards = []types.CardMetadata{
	{
		UID:           "9f0c2e4a-churn-120",
		Name:          "churn-model",
		Space:         "ops",
		Version:       "1.2.0",
		RegistryType:  types.RegistryModel,
		InterfaceType: "sklearn",
		Tags:          []string{"churn", "baseline"},
		CreatedAt:     time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC),
	},
	{
		UID:           "9f0c2e4a-churn-130",
		Name:          "churn-model",
		Space:         "ops",
		Version:       "1.3.0",
		RegistryType:  types.RegistryModel,
		InterfaceType: "sklearn",
		Tags:          []string{"churn"},
		CreatedAt:     time.Date(2024, time.February, 2, 14, 30, 0, 0, time.UTC),
	},
	{
		UID:           "9f0c2e4a-churn-140",
		Name:          "churn-model",
		Space:         "ops",
		Version:       "1.4.0",
		RegistryType:  types.RegistryModel,
		InterfaceType: "sklearn",
		Tags:          []string{"churn", "production"},
		CreatedAt:     time.Date(2024, time.February, 28, 10, 45, 0, 0, time.UTC),
	},
	{
		UID:           "b7d81f3c-forecast-200",
		Name:          "forecast-model",
		Space:         "vision",
		Version:       "2.0.0",
		RegistryType:  types.RegistryModel,
		InterfaceType: "lightgbm",
		CreatedAt:     time.Date(2024, time.February, 12, 8, 0, 0, 0, time.UTC),
	},
	{
		UID:           "b7d81f3c-forecast-201",
		Name:          "forecast-model",
		Space:         "vision",
		Version:       "2.0.1",
		RegistryType:  types.RegistryModel,
		InterfaceType: "lightgbm",
		Tags:          []string{"production"},
		CreatedAt:     time.Date(2024, time.March, 1, 17, 20, 0, 0, time.UTC),
	},
	{
		UID:           "4a66c09d-ranker-010",
		Name:          "ranker",
		Space:         "mlops",
		Version:       "0.1.0",
		RegistryType:  types.RegistryModel,
		InterfaceType: "torch",
		CreatedAt:     time.Date(2024, time.March, 3, 12, 0, 0, 0, time.UTC),
	},
	{
		UID:          "17be5ad2-transactions-100",
		Name:         "transactions",
		Space:        "ops",
		Version:      "1.0.0",
		RegistryType: types.RegistryData,
		DataType:     "polars",
		CreatedAt:    time.Date(2024, time.January, 8, 7, 30, 0, 0, time.UTC),
	},
	{
		UID:          "17be5ad2-transactions-110",
		Name:         "transactions",
		Space:        "ops",
		Version:      "1.1.0",
		RegistryType: types.RegistryData,
		DataType:     "polars",
		CreatedAt:    time.Date(2024, time.February, 20, 7, 30, 0, 0, time.UTC),
	},
	{
		UID:          "c3f2a881-images-310",
		Name:         "image-set",
		Space:        "vision",
		Version:      "3.1.0",
		RegistryType: types.RegistryData,
		DataType:     "arrow",
		CreatedAt:    time.Date(2024, time.February, 25, 19, 10, 0, 0, time.UTC),
	},
}
