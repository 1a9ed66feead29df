package calc

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/udisondev/buffcalc/internal/data"
	"github.com/udisondev/buffcalc/internal/model"
)

// Cumulatives — накопленная сумма по каждому типу баффа.
// Indexed by data.BuffID; the zero value is the all-zero starting state.
type Cumulatives [data.NumBuffTypes]float64

// Add adds b.Value to the total of b.Type.
func (c *Cumulatives) Add(b data.Buff) {
	c[data.MustBuffType(b.Type).ID] += b.Value
}

// Get returns the total of id.
func (c Cumulatives) Get(id data.BuffID) float64 {
	return c[data.MustBuffType(id).ID]
}

// MarshalJSON encodes totals as {wire name: value}. Non-finite values become null.
func (c Cumulatives) MarshalJSON() ([]byte, error) {
	out := make(map[string]*float64, len(c))
	for i := range c {
		out[data.BuffID(i).String()] = finiteOrNil(c[i])
	}
	return json.Marshal(out)
}

// SetCounts — количество слотов каждого сета.
type SetCounts [data.NumSomethings]int

// Options control aggregation.
type Options struct {
	Mode ParseMode
}

// Aggregate sums every contribution into per-type totals:
// fixed defaults, user rows, then per slot the cost bonus, main status and
// sub-statuses, then set bonuses for sets reaching the 2/5 thresholds.
//
// Input must be validated (model.State.Validate); unknown identifiers panic.
// In lenient mode the only possible outcome of bad value strings is NaN in
// the affected totals; in strict mode a *ParseError is returned.
func Aggregate(defaults []model.DefaultBuff, rows []model.BuffData, sd model.SomeData, opts Options) (Cumulatives, SetCounts, error) {
	var totals Cumulatives
	var counts SetCounts

	for _, d := range defaults {
		totals.Add(d.Buff)
	}

	for i, row := range rows {
		v, err := ParseValue(row.Value, opts.Mode)
		if err != nil {
			return totals, counts, &ParseError{Field: fmt.Sprintf("buffs[%d].value", i), Input: row.Value, Err: err}
		}
		totals.Add(data.Buff{Type: row.Type, Value: v})
	}

	for i, some := range sd.Somes {
		counts[data.MustSomething(some.Something).ID]++

		totals.Add(data.MustCostMain(some.Cost))
		totals.Add(data.MustMainStatus(some.Cost, some.MainStatus))

		for sub, t := range some.SubStatusTypes {
			raw := some.SubStatusValue(sub)
			v, err := ParseValue(raw, opts.Mode)
			if err != nil {
				return totals, counts, &ParseError{
					Field: fmt.Sprintf("somes[%d].subStatusValues[%d]", i, sub),
					Input: raw,
					Err:   err,
				}
			}
			totals.Add(data.Buff{Type: t, Value: v})
		}
	}

	for i, n := range counts {
		st := data.MustSomething(data.SomethingID(i))
		if n >= data.SetThreshold2 {
			totals.Add(st.Effect2)
		}
		if n >= data.SetThreshold5 {
			totals.Add(st.Effect5)
		}
	}

	return totals, counts, nil
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
