package calc

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/buffcalc/internal/model"
)

// Report is the full calculation result.
type Report struct {
	Totals    Cumulatives `json:"totals"`
	SetCounts SetCounts   `json:"setCounts"`
	Stats     Stats       `json:"stats"`
}

// Calculate validates the input, aggregates it and derives stats.
// Validation errors wrap the data / model sentinel errors.
func Calculate(defaults []model.DefaultBuff, st model.State, opts Options) (Report, error) {
	if err := model.ValidateDefaults(defaults); err != nil {
		return Report{}, fmt.Errorf("validating defaults: %w", err)
	}
	if err := st.Validate(); err != nil {
		return Report{}, fmt.Errorf("validating state: %w", err)
	}

	totals, counts, err := Aggregate(defaults, st.Buffs, st.SomeData, opts)
	if err != nil {
		return Report{}, err
	}

	stats := Derive(totals)
	if stats.HasNaN() {
		slog.Debug("derived stats contain NaN", "mode", opts.Mode)
	}
	return Report{Totals: totals, SetCounts: counts, Stats: stats}, nil
}
