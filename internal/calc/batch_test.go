package calc

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buffcalc/internal/data"
	"github.com/udisondev/buffcalc/internal/model"
	"github.com/udisondev/buffcalc/internal/testutil"
)

func buildWithAttack(attack int) NamedState {
	return NamedState{
		Name: fmt.Sprintf("atk-%d", attack),
		State: model.State{Buffs: []model.BuffData{
			testutil.Row(data.BuffAttackConst, fmt.Sprint(attack)),
		}},
	}
}

func TestEvaluateAll_PreservesOrder(t *testing.T) {
	builds := make([]NamedState, 0, 20)
	for i := range 20 {
		builds = append(builds, buildWithAttack(100*(i+1)))
	}

	reports, err := EvaluateAll(context.Background(), nil, builds, Options{}, 3)
	require.NoError(t, err)
	require.Len(t, reports, len(builds))

	for i, r := range reports {
		assert.Equal(t, float64(100*(i+1)), r.Stats.Attack, "build %d", i)
	}
}

func TestEvaluateAll_DefaultWorkers(t *testing.T) {
	reports, err := EvaluateAll(context.Background(), model.DefaultBaseBuffs(),
		[]NamedState{{Name: "sample", State: testutil.SampleState()}}, Options{}, 0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 3827.0, reports[0].Stats.ExpDamage)
}

func TestEvaluateAll_Error(t *testing.T) {
	bad := buildWithAttack(1)
	bad.Name = "broken"
	bad.State.Buffs[0].Value = "nope"

	builds := []NamedState{buildWithAttack(100), bad, buildWithAttack(300)}

	_, err := EvaluateAll(context.Background(), nil, builds, Options{Mode: ParseStrict}, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `build "broken"`)

	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestEvaluateAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EvaluateAll(ctx, nil, []NamedState{buildWithAttack(1)}, Options{}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateAll_Empty(t *testing.T) {
	reports, err := EvaluateAll(context.Background(), nil, nil, Options{}, 2)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
