package model

import "github.com/udisondev/buffcalc/internal/data"

// DefaultSlotCosts — стоимости пяти слотов в стартовом состоянии.
var DefaultSlotCosts = [...]data.Cost{data.Cost4, data.Cost3, data.Cost3, data.Cost1, data.Cost1}

func defaultSubStatusTypes() []data.BuffID {
	return []data.BuffID{
		data.BuffCriticalPer,
		data.BuffCriticalDamage,
		data.BuffAttackPer,
		data.BuffAttackConst,
		data.BuffEnergyRegen,
	}
}

func defaultSubStatusValues() []string {
	return []string{"0", "0", "0", "0", "0"}
}

// DefaultSomeData returns the starting slot layout. Each call returns a fresh copy.
func DefaultSomeData() SomeData {
	somes := make([]Some, 0, len(DefaultSlotCosts))
	for _, c := range DefaultSlotCosts {
		somes = append(somes, Some{
			Something:       data.SomethingFreezingFrost,
			Cost:            c,
			MainStatus:      0,
			SubStatusTypes:  defaultSubStatusTypes(),
			SubStatusValues: defaultSubStatusValues(),
		})
	}
	return SomeData{Somes: somes}
}

// DefaultBuffRows returns the starting free-form rows (character and weapon base attack).
func DefaultBuffRows() []BuffData {
	return []BuffData{
		{Memo: "キャラ基礎攻撃力", Type: data.BuffAttackConst, Value: "0"},
		{Memo: "武器基礎攻撃力", Type: data.BuffAttackConst, Value: "0"},
	}
}

// DefaultState is the state used when no saved state is supplied.
func DefaultState() State {
	return State{Buffs: DefaultBuffRows(), SomeData: DefaultSomeData()}
}

// DefaultBaseBuffs returns the fixed base rows every character has.
func DefaultBaseBuffs() []DefaultBuff {
	return []DefaultBuff{
		{Memo: "基礎クリティカル", Buff: data.Buff{Type: data.BuffCriticalPer, Value: 5.0}},
		{Memo: "基礎クリティカルダメージ", Buff: data.Buff{Type: data.BuffCriticalDamage, Value: 150.0}},
	}
}

// NewBuffRow is the row appended by AddRow.
func NewBuffRow() BuffData {
	return BuffData{Memo: "", Type: data.BuffAttackPer, Value: "0"}
}
