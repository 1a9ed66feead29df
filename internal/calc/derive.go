package calc

import (
	"encoding/json"
	"math"

	"github.com/udisondev/buffcalc/internal/data"
)

// MaxCriticalPer caps the critical rate used in the damage formula.
const MaxCriticalPer = 100.0

// Stats — итоговые значения, показываемые пользователю.
//
// BaseAttack, SomeAttack and EltDamagePer are raw totals; every other field is
// rounded to the nearest integer, halves away from zero.
type Stats struct {
	BaseAttack      float64
	SomeAttack      float64
	EltDamagePer    float64
	Attack          float64
	CriticalPer     float64
	CriticalDamage  float64
	ExpDamage       float64
	ExpNormalDamage float64
	ExpHeavyDamage  float64
	ExpSkillDamage  float64
	ExpSuperDamage  float64
}

// Derive computes the derived stats from cumulative totals.
//
//	attack = attack_const × (1 + attack_per/100) + some_attack_const
//	crit   = min(critical_per, 100)
//	damage = (attack + attack × crit/100 × (critical_damage/100 − 1)) × (1 + elt_damage_per/100)
//
// Each damage variant multiplies damage by (1 + modifier/100).
func Derive(c Cumulatives) Stats {
	baseAttack := c.Get(data.BuffAttackConst)
	someAttack := c.Get(data.BuffSomeAttackConst)
	eltDamagePer := c.Get(data.BuffEltDamagePer)

	attack := baseAttack*(1+c.Get(data.BuffAttackPer)/100) + someAttack

	criticalPer := c.Get(data.BuffCriticalPer)
	if criticalPer > MaxCriticalPer {
		criticalPer = MaxCriticalPer
	}
	criticalDamage := c.Get(data.BuffCriticalDamage)

	expDamage := (attack + attack*(criticalPer/100)*(criticalDamage/100-1)) * (1 + eltDamagePer/100)

	return Stats{
		BaseAttack:      baseAttack,
		SomeAttack:      someAttack,
		EltDamagePer:    eltDamagePer,
		Attack:          math.Round(attack),
		CriticalPer:     math.Round(criticalPer),
		CriticalDamage:  math.Round(criticalDamage),
		ExpDamage:       math.Round(expDamage),
		ExpNormalDamage: math.Round(expDamage * (1 + c.Get(data.BuffNormalAttackDamage)/100)),
		ExpHeavyDamage:  math.Round(expDamage * (1 + c.Get(data.BuffHeavyAttackDamage)/100)),
		ExpSkillDamage:  math.Round(expDamage * (1 + c.Get(data.BuffSkillDamage)/100)),
		ExpSuperDamage:  math.Round(expDamage * (1 + c.Get(data.BuffSuperDamage)/100)),
	}
}

// HasNaN reports whether any derived value is NaN (bad input in lenient mode).
func (s Stats) HasNaN() bool {
	for _, v := range s.values() {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

func (s Stats) values() []float64 {
	return []float64{
		s.BaseAttack, s.SomeAttack, s.EltDamagePer, s.Attack, s.CriticalPer,
		s.CriticalDamage, s.ExpDamage, s.ExpNormalDamage, s.ExpHeavyDamage,
		s.ExpSkillDamage, s.ExpSuperDamage,
	}
}

// MarshalJSON encodes the stats with camelCase keys. NaN and ±Inf become null.
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		BaseAttack      *float64 `json:"baseAttack"`
		SomeAttack      *float64 `json:"someAttack"`
		EltDamagePer    *float64 `json:"eltDamagePer"`
		Attack          *float64 `json:"attack"`
		CriticalPer     *float64 `json:"criticalPer"`
		CriticalDamage  *float64 `json:"criticalDamage"`
		ExpDamage       *float64 `json:"expDamage"`
		ExpNormalDamage *float64 `json:"expNormalDamage"`
		ExpHeavyDamage  *float64 `json:"expHeavyDamage"`
		ExpSkillDamage  *float64 `json:"expSkillDamage"`
		ExpSuperDamage  *float64 `json:"expSuperDamage"`
	}{
		BaseAttack:      finiteOrNil(s.BaseAttack),
		SomeAttack:      finiteOrNil(s.SomeAttack),
		EltDamagePer:    finiteOrNil(s.EltDamagePer),
		Attack:          finiteOrNil(s.Attack),
		CriticalPer:     finiteOrNil(s.CriticalPer),
		CriticalDamage:  finiteOrNil(s.CriticalDamage),
		ExpDamage:       finiteOrNil(s.ExpDamage),
		ExpNormalDamage: finiteOrNil(s.ExpNormalDamage),
		ExpHeavyDamage:  finiteOrNil(s.ExpHeavyDamage),
		ExpSkillDamage:  finiteOrNil(s.ExpSkillDamage),
		ExpSuperDamage:  finiteOrNil(s.ExpSuperDamage),
	})
}
