package data

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownCost     = errors.New("unknown cost tier")
	ErrMainStatusIndex = errors.New("main status index out of range")
)

// Cost — стоимость слота (1, 3 или 4).
type Cost uint8

const (
	Cost1 Cost = 1
	Cost3 Cost = 3
	Cost4 Cost = 4
)

// Costs lists the cost tiers in selector order.
var Costs = [...]Cost{Cost1, Cost3, Cost4}

// MaxSubStatuses is the number of sub-status slots per entry.
const MaxSubStatuses = 5

// costMain — фиксированный бонус, который даёт каждый слот данной стоимости.
var costMain = map[Cost]Buff{
	Cost1: {Type: BuffHPConst, Value: 2280},
	Cost3: {Type: BuffSomeAttackConst, Value: 100},
	Cost4: {Type: BuffSomeAttackConst, Value: 150},
}

// mainStatuses — доступные main status для каждой стоимости.
// Index 0 is the default selection after a cost change.
var mainStatuses = map[Cost][]Buff{
	Cost1: {
		{Type: BuffAttackPer, Value: 18.0},
		{Type: BuffDefensePer, Value: 18.0},
		{Type: BuffHPPer, Value: 22.8},
		{Type: BuffNone, Value: 0.0},
	},
	Cost3: {
		{Type: BuffAttackPer, Value: 30.0},
		{Type: BuffHPPer, Value: 30.0},
		{Type: BuffDefensePer, Value: 30.0},
		{Type: BuffEnergyRegen, Value: 32.0},
		{Type: BuffEltDamagePer, Value: 30.0},
		{Type: BuffNone, Value: 0.0},
	},
	Cost4: {
		{Type: BuffAttackPer, Value: 33.0},
		{Type: BuffHPPer, Value: 33.0},
		{Type: BuffDefensePer, Value: 33.0},
		{Type: BuffHealingBonus, Value: 26.4},
		{Type: BuffCriticalPer, Value: 22.0},
		{Type: BuffCriticalDamage, Value: 44.0},
		{Type: BuffNormalAttackDamage, Value: 33.0},
		{Type: BuffHeavyAttackDamage, Value: 33.0},
		{Type: BuffSkillDamage, Value: 33.0},
		{Type: BuffSuperDamage, Value: 33.0},
		{Type: BuffNone, Value: 0.0},
	},
}

// subStatuses — типы, которые можно выбрать в sub status слоте.
var subStatuses = [...]BuffID{
	BuffAttackConst,
	BuffAttackPer,
	BuffHPConst,
	BuffHPPer,
	BuffDefenseConst,
	BuffDefensePer,
	BuffCriticalPer,
	BuffCriticalDamage,
	BuffEnergyRegen,
	BuffNormalAttackDamage,
	BuffHeavyAttackDamage,
	BuffSkillDamage,
	BuffSuperDamage,
	BuffNone,
}

// Valid reports whether c is one of the known tiers.
func (c Cost) Valid() bool {
	_, ok := costMain[c]
	return ok
}

// CostMain returns the fixed bonus granted by a slot of the given cost.
func CostMain(c Cost) (Buff, bool) {
	b, ok := costMain[c]
	return b, ok
}

// MainStatuses returns a copy of the main status list for a cost tier.
func MainStatuses(c Cost) ([]Buff, bool) {
	list, ok := mainStatuses[c]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// MainStatus returns the idx-th main status of cost tier c.
func MainStatus(c Cost, idx int) (Buff, error) {
	list, ok := mainStatuses[c]
	if !ok {
		return Buff{}, fmt.Errorf("%w: %d", ErrUnknownCost, c)
	}
	if idx < 0 || idx >= len(list) {
		return Buff{}, fmt.Errorf("%w: cost %d index %d (have %d)", ErrMainStatusIndex, c, idx, len(list))
	}
	return list[idx], nil
}

// MustCostMain panics when c is not a known tier.
func MustCostMain(c Cost) Buff {
	b, ok := CostMain(c)
	if !ok {
		panic(fmt.Sprintf("data: cost tier %d not found", c))
	}
	return b
}

// MustMainStatus panics when the (cost, idx) pair was not validated.
func MustMainStatus(c Cost, idx int) Buff {
	b, err := MainStatus(c, idx)
	if err != nil {
		panic("data: " + err.Error())
	}
	return b
}
