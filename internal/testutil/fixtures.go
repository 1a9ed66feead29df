package testutil

import (
	"github.com/udisondev/buffcalc/internal/data"
	"github.com/udisondev/buffcalc/internal/model"
)

// Slot returns a slot with no sub-statuses.
func Slot(something data.SomethingID, cost data.Cost, mainStatus int) model.Some {
	return model.Some{
		Something:       something,
		Cost:            cost,
		MainStatus:      mainStatus,
		SubStatusTypes:  []data.BuffID{},
		SubStatusValues: []string{},
	}
}

// Slots returns n identical slots.
func Slots(n int, something data.SomethingID, cost data.Cost, mainStatus int) []model.Some {
	out := make([]model.Some, n)
	for i := range out {
		out[i] = Slot(something, cost, mainStatus)
	}
	return out
}

// Row returns a user buff row.
func Row(t data.BuffID, value string) model.BuffData {
	return model.BuffData{Memo: "test", Type: t, Value: value}
}

// Base returns a fixed default row.
func Base(t data.BuffID, value float64) model.DefaultBuff {
	return model.DefaultBuff{Memo: "test", Buff: data.Buff{Type: t, Value: value}}
}

// SampleState — типичная сборка: 1000 базовой атаки, 4-3-3-1-1 пять слотов одного сета.
func SampleState() model.State {
	somes := []model.Some{
		{
			Something:       data.SomethingLingeringTunes,
			Cost:            data.Cost4,
			MainStatus:      4, // critical_per 22
			SubStatusTypes:  []data.BuffID{data.BuffCriticalPer, data.BuffCriticalDamage, data.BuffAttackPer},
			SubStatusValues: []string{"8.1", "16.2", "7.9"},
		},
		Slot(data.SomethingLingeringTunes, data.Cost3, 4), // elt_damage_per 30
		Slot(data.SomethingLingeringTunes, data.Cost3, 0), // attack_per 30
		Slot(data.SomethingLingeringTunes, data.Cost1, 0), // attack_per 18
		Slot(data.SomethingLingeringTunes, data.Cost1, 0),
	}
	return model.State{
		Buffs: []model.BuffData{
			{Memo: "キャラ", Type: data.BuffAttackConst, Value: "400"},
			{Memo: "武器", Type: data.BuffAttackConst, Value: "600"},
		},
		SomeData: model.SomeData{Somes: somes},
	}
}
