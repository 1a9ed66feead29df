package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buffcalc/internal/data"
	"github.com/udisondev/buffcalc/internal/model"
	"github.com/udisondev/buffcalc/internal/testutil"
)

func TestParseLenientFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64 // NaN means "expect NaN"
	}{
		{"0", 0},
		{"18", 18},
		{"22.8", 22.8},
		{"-3.5", -3.5},
		{"+7", 7},
		{".5", 0.5},
		{"5.", 5},
		{"  12 ", 12},
		{"\t\n4", 4},
		{"12abc", 12},
		{"1.2.3", 1.2},
		{"1e3", 1000},
		{"1E-2", 0.01},
		{"2e", 2},
		{"2e+", 2},
		{"0x10", 0},
		{"1_000", 1},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
		{"", math.NaN()},
		{"   ", math.NaN()},
		{"abc", math.NaN()},
		{".", math.NaN()},
		{"-", math.NaN()},
		{"e5", math.NaN()},
		{"NaN", math.NaN()},
		{"infinity", math.NaN()},
		{"0x1p4", 0},
		{"\u00a03", 3},
		{"\u30003", 3},
		{"\u20283", 3},
		{"\ufeff3", 3},
		{"\u00853", math.NaN()},
	}

	for _, tt := range tests {
		got := ParseLenientFloat(tt.input)
		if math.IsNaN(tt.want) {
			if !math.IsNaN(got) {
				t.Errorf("ParseLenientFloat(%q) = %v, want NaN", tt.input, got)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLenientFloat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseValue_Strict(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr error
	}{
		{" 16.2 ", 16.2, nil},
		{"\u00a05\u3000", 5, nil},
		{"-3e2", -300, nil},
		{".5", 0.5, nil},
		{"", 0, ErrNotNumber},
		{"abc", 0, ErrNotNumber},
		{"12abc", 0, ErrNotNumber},
		{"NaN", 0, ErrNotNumber},
		{"Inf", 0, ErrNotNumber},
		{"1_000", 0, ErrNotNumber},
		{"0x1p4", 0, ErrNotNumber},
		{"0x10", 0, ErrNotNumber},
		{"1e", 0, ErrNotNumber},
		{"\u00851", 0, ErrNotNumber},
		{"Infinity", 0, ErrNotFinite},
		{"1e400", 0, ErrNotFinite},
	}

	for _, tt := range tests {
		got, err := ParseValue(tt.input, ParseStrict)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		// strict never reads a value differently from lenient
		assert.Equal(t, ParseLenientFloat(tt.input), got, "input %q", tt.input)
	}
}

func TestCalculate_StrictRejectsGoOnlySyntax(t *testing.T) {
	for _, input := range []string{"1_000", "0x1p4", "1e"} {
		st := model.State{Buffs: []model.BuffData{testutil.Row(data.BuffAttackConst, input)}}

		_, err := Calculate(nil, st, Options{Mode: ParseStrict})
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "input %q", input)
		assert.Equal(t, "buffs[0].value", perr.Field)
		assert.Equal(t, input, perr.Input)
		assert.ErrorIs(t, err, ErrNotNumber)
	}
}

func TestParseValue_LenientNeverErrors(t *testing.T) {
	v, err := ParseValue("garbage", ParseLenient)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestParseParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ParseMode
		wantErr bool
	}{
		{"", ParseLenient, false},
		{"lenient", ParseLenient, false},
		{"Strict", ParseStrict, false},
		{" strict ", ParseStrict, false},
		{"paranoid", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseParseMode(tt.input)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrInvalidParseMode), "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}

	assert.Equal(t, "lenient", ParseLenient.String())
	assert.Equal(t, "strict", ParseStrict.String())
}
