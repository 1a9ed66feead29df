package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buffcalc/internal/data"
)

func TestState_JSONShape(t *testing.T) {
	st := State{
		Buffs: []BuffData{{Memo: "weapon", Type: data.BuffAttackConst, Value: "500"}},
		SomeData: SomeData{Somes: []Some{{
			Something:       data.SomethingVoidThunder,
			Cost:            data.Cost3,
			MainStatus:      1,
			SubStatusTypes:  []data.BuffID{data.BuffCriticalPer},
			SubStatusValues: []string{"6.3"},
		}}},
	}

	b, err := json.Marshal(st)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		[{"memo":"weapon","type":"attack_const","value":"500"}],
		{"somes":[{"something":"void_thunder","cost":3,"mainStatus":1,
			"subStatusTypes":["critical_per"],"subStatusValues":["6.3"]}]}
	]`, string(b))

	var got State
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, st, got)
}

func TestState_RoundTripPreservesOrder(t *testing.T) {
	st := DefaultState()
	st.Buffs = append(st.Buffs,
		BuffData{Memo: "a", Type: data.BuffSkillDamage, Value: "12"},
		BuffData{Memo: "b", Type: data.BuffHPConst, Value: "x"},
	)

	b, err := json.Marshal(st)
	require.NoError(t, err)

	var got State
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, st, got)
}

func TestState_EmptyEncodesAsArrays(t *testing.T) {
	b, err := json.Marshal(State{})
	require.NoError(t, err)
	assert.JSONEq(t, `[[],{"somes":[]}]`, string(b))
}

func TestState_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an array", `{"somes":[]}`},
		{"one element", `[[]]`},
		{"three elements", `[[],{"somes":[]},1]`},
		{"unknown buff type", `[[{"memo":"","type":"mana","value":"1"}],{"somes":[]}]`},
		{"unknown something", `[[],{"somes":[{"something":"nope","cost":1,"mainStatus":0}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st State
			assert.Error(t, json.Unmarshal([]byte(tt.input), &st))
		})
	}
}

func TestState_Validate(t *testing.T) {
	valid := DefaultState()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*State)
		wantErr error
	}{
		{"row type", func(s *State) { s.Buffs[0].Type = data.NumBuffTypes }, data.ErrUnknownBuffType},
		{"something", func(s *State) { s.SomeData.Somes[1].Something = data.NumSomethings }, data.ErrUnknownSomething},
		{"cost", func(s *State) { s.SomeData.Somes[2].Cost = 2 }, data.ErrUnknownCost},
		{"main status", func(s *State) { s.SomeData.Somes[3].MainStatus = 4 }, data.ErrMainStatusIndex},
		{"sub type", func(s *State) { s.SomeData.Somes[0].SubStatusTypes[2] = data.NumBuffTypes }, data.ErrUnknownBuffType},
		{"too many subs", func(s *State) {
			s.SomeData.Somes[0].SubStatusTypes = append(s.SomeData.Somes[0].SubStatusTypes, data.BuffNone)
		}, ErrTooManySubStatuses},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := DefaultState()
			tt.mutate(&st)
			assert.ErrorIs(t, st.Validate(), tt.wantErr)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	require.NoError(t, ValidateDefaults(DefaultBaseBuffs()))

	bad := []DefaultBuff{{Memo: "x", Buff: data.Buff{Type: data.NumBuffTypes}}}
	assert.ErrorIs(t, ValidateDefaults(bad), data.ErrUnknownBuffType)
}

func TestSome_SubStatusValue(t *testing.T) {
	s := Some{SubStatusValues: []string{"1"}}
	assert.Equal(t, "1", s.SubStatusValue(0))
	assert.Equal(t, "", s.SubStatusValue(1))
	assert.Equal(t, "", s.SubStatusValue(-1))
}

func TestClone_IsDeep(t *testing.T) {
	st := DefaultState()
	cp := st.Clone()
	cp.Buffs[0].Value = "999"
	cp.SomeData.Somes[0].SubStatusValues[0] = "999"
	cp.SomeData.Somes[0].SubStatusTypes[0] = data.BuffNone

	assert.Equal(t, DefaultState(), st)
}
