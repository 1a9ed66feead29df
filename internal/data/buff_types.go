package data

import (
	"errors"
	"fmt"
)

// ErrUnknownBuffType is returned when a buff identifier is not in the table.
var ErrUnknownBuffType = errors.New("unknown buff type")

// BuffID — идентификатор типа баффа.
// Closed enumeration: every value below NumBuffTypes is a valid index into buffTypes.
type BuffID uint8

const (
	BuffAttackConst BuffID = iota
	BuffAttackPer
	BuffSomeAttackConst
	BuffHPConst
	BuffHPPer
	BuffDefenseConst
	BuffDefensePer
	BuffCriticalPer
	BuffCriticalDamage
	BuffEnergyRegen
	BuffEltDamagePer
	BuffNormalAttackDamage
	BuffHeavyAttackDamage
	BuffSkillDamage
	BuffSuperDamage
	BuffHealingBonus
	BuffNone

	// NumBuffTypes is the number of buff types (not a valid BuffID).
	NumBuffTypes
)

// BuffType describes one buff kind.
// Strong is used only to filter selector options; aggregation ignores it.
type BuffType struct {
	ID      BuffID
	Name    string // wire name used in JSON state
	LabelJA string
	Strong  bool
}

// Buff is a single (type, value) contribution to a cumulative total.
type Buff struct {
	Type  BuffID  `json:"type" yaml:"type"`
	Value float64 `json:"value" yaml:"value"`
}

// buffTypes is indexed by BuffID.
var buffTypes = [NumBuffTypes]BuffType{
	BuffAttackConst:        {ID: BuffAttackConst, Name: "attack_const", LabelJA: "攻撃力", Strong: true},
	BuffAttackPer:          {ID: BuffAttackPer, Name: "attack_per", LabelJA: "攻撃力%", Strong: true},
	BuffSomeAttackConst:    {ID: BuffSomeAttackConst, Name: "some_attack_const", LabelJA: "攻撃力(音骸)", Strong: true},
	BuffHPConst:            {ID: BuffHPConst, Name: "hp_const", LabelJA: "HP", Strong: false},
	BuffHPPer:              {ID: BuffHPPer, Name: "hp_per", LabelJA: "HP%", Strong: false},
	BuffDefenseConst:       {ID: BuffDefenseConst, Name: "defense_const", LabelJA: "防御力", Strong: false},
	BuffDefensePer:         {ID: BuffDefensePer, Name: "defense_per", LabelJA: "防御力%", Strong: false},
	BuffCriticalPer:        {ID: BuffCriticalPer, Name: "critical_per", LabelJA: "クリティカル", Strong: true},
	BuffCriticalDamage:     {ID: BuffCriticalDamage, Name: "critical_damage", LabelJA: "クリティカルダメージ", Strong: true},
	BuffEnergyRegen:        {ID: BuffEnergyRegen, Name: "energy_regen", LabelJA: "共鳴効率", Strong: false},
	BuffEltDamagePer:       {ID: BuffEltDamagePer, Name: "elt_damage_per", LabelJA: "属性ダメージアップ", Strong: true},
	BuffNormalAttackDamage: {ID: BuffNormalAttackDamage, Name: "normal_attack_damage", LabelJA: "通常攻撃ダメージアップ", Strong: true},
	BuffHeavyAttackDamage:  {ID: BuffHeavyAttackDamage, Name: "heavy_attack_damage", LabelJA: "重撃ダメージアップ", Strong: true},
	BuffSkillDamage:        {ID: BuffSkillDamage, Name: "skill_damage", LabelJA: "共鳴スキルダメージアップ", Strong: true},
	BuffSuperDamage:        {ID: BuffSuperDamage, Name: "super_damage", LabelJA: "共鳴解放ダメージアップ", Strong: true},
	BuffHealingBonus:       {ID: BuffHealingBonus, Name: "healing_bonus", LabelJA: "治療効果アップ", Strong: false},
	BuffNone:               {ID: BuffNone, Name: "none", LabelJA: "なし", Strong: true},
}

// unknownLabel is shown for identifiers missing from a table.
const unknownLabel = "不明"

// Valid reports whether id is inside the enumeration.
func (id BuffID) Valid() bool {
	return id < NumBuffTypes
}

// String returns the wire name, or a numeric placeholder for invalid ids.
func (id BuffID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("BuffID(%d)", uint8(id))
	}
	return buffTypes[id].Name
}

// MarshalText encodes the buff id as its wire name.
func (id BuffID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBuffType, uint8(id))
	}
	return []byte(buffTypes[id].Name), nil
}

// UnmarshalText decodes a wire name.
func (id *BuffID) UnmarshalText(text []byte) error {
	parsed, ok := ParseBuffID(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBuffType, text)
	}
	*id = parsed
	return nil
}

// ParseBuffID looks a buff id up by wire name.
func ParseBuffID(name string) (BuffID, bool) {
	for i := range buffTypes {
		if buffTypes[i].Name == name {
			return buffTypes[i].ID, true
		}
	}
	return 0, false
}

// FindBuffType возвращает описание типа баффа.
// ok=false если id вне таблицы.
func FindBuffType(id BuffID) (BuffType, bool) {
	if !id.Valid() {
		return BuffType{}, false
	}
	return buffTypes[id], true
}

// MustBuffType returns the buff type for id and panics if it is missing.
// Only for ids that already passed validation.
func MustBuffType(id BuffID) BuffType {
	bt, ok := FindBuffType(id)
	if !ok {
		panic(fmt.Sprintf("data: buff type %d not found", uint8(id)))
	}
	return bt
}

// BuffTypes returns all buff types in table order.
func BuffTypes() []BuffType {
	out := make([]BuffType, len(buffTypes))
	copy(out, buffTypes[:])
	return out
}

// BuffLabel returns the display label or a placeholder for unknown ids.
func BuffLabel(id BuffID) string {
	if bt, ok := FindBuffType(id); ok {
		return bt.LabelJA
	}
	return unknownLabel
}

// IsStrong reports the strong flag; unknown ids are not strong.
func IsStrong(id BuffID) bool {
	bt, ok := FindBuffType(id)
	return ok && bt.Strong
}
