package data

import (
	"errors"
	"fmt"
)

// ErrUnknownSomething is returned when a set identifier is not in the table.
var ErrUnknownSomething = errors.New("unknown something")

// Set bonus thresholds.
const (
	SetThreshold2 = 2
	SetThreshold5 = 5
)

// SomethingID — идентификатор сета (something).
type SomethingID uint8

const (
	SomethingFreezingFrost SomethingID = iota
	SomethingMoltenRift
	SomethingVoidThunder
	SomethingSierraGale
	SomethingCelestialLight
	SomethingSunSinkingEclipse
	SomethingMoonlitClouds
	SomethingRejuvenatingGlow
	SomethingLingeringTunes

	// NumSomethings is the number of set types (not a valid SomethingID).
	NumSomethings
)

// SomethingType describes a set and its threshold bonuses.
type SomethingType struct {
	ID      SomethingID
	Name    string
	LabelJA string
	Effect2 Buff // granted at SetThreshold2 entries
	Effect5 Buff // granted at SetThreshold5 entries
}

// somethings is indexed by SomethingID.
var somethings = [NumSomethings]SomethingType{
	SomethingFreezingFrost: {
		ID: SomethingFreezingFrost, Name: "freezing_frost", LabelJA: "凍てついた霜",
		Effect2: Buff{Type: BuffEltDamagePer, Value: 10.0},
		Effect5: Buff{Type: BuffEltDamagePer, Value: 30.0},
	},
	SomethingMoltenRift: {
		ID: SomethingMoltenRift, Name: "molten_rift", LabelJA: "溶融の裂け目",
		Effect2: Buff{Type: BuffEltDamagePer, Value: 10.0},
		Effect5: Buff{Type: BuffEltDamagePer, Value: 30.0},
	},
	SomethingVoidThunder: {
		ID: SomethingVoidThunder, Name: "void_thunder", LabelJA: "虚空の雷鳴",
		Effect2: Buff{Type: BuffEltDamagePer, Value: 10.0},
		Effect5: Buff{Type: BuffEltDamagePer, Value: 30.0},
	},
	SomethingSierraGale: {
		ID: SomethingSierraGale, Name: "sierra_gale", LabelJA: "山岳の疾風",
		Effect2: Buff{Type: BuffEltDamagePer, Value: 10.0},
		Effect5: Buff{Type: BuffEltDamagePer, Value: 30.0},
	},
	SomethingCelestialLight: {
		ID: SomethingCelestialLight, Name: "celestial_light", LabelJA: "天上の光",
		Effect2: Buff{Type: BuffEltDamagePer, Value: 10.0},
		Effect5: Buff{Type: BuffEltDamagePer, Value: 30.0},
	},
	SomethingSunSinkingEclipse: {
		ID: SomethingSunSinkingEclipse, Name: "sun_sinking_eclipse", LabelJA: "沈日の蝕",
		Effect2: Buff{Type: BuffEltDamagePer, Value: 10.0},
		Effect5: Buff{Type: BuffEltDamagePer, Value: 30.0},
	},
	SomethingMoonlitClouds: {
		ID: SomethingMoonlitClouds, Name: "moonlit_clouds", LabelJA: "月明かりの雲",
		Effect2: Buff{Type: BuffEnergyRegen, Value: 10.0},
		Effect5: Buff{Type: BuffAttackPer, Value: 15.0},
	},
	SomethingRejuvenatingGlow: {
		ID: SomethingRejuvenatingGlow, Name: "rejuvenating_glow", LabelJA: "癒しの輝き",
		Effect2: Buff{Type: BuffHealingBonus, Value: 10.0},
		Effect5: Buff{Type: BuffAttackPer, Value: 0},
	},
	SomethingLingeringTunes: {
		ID: SomethingLingeringTunes, Name: "lingering_tunes", LabelJA: "残響の旋律",
		Effect2: Buff{Type: BuffAttackPer, Value: 10.0},
		Effect5: Buff{Type: BuffAttackPer, Value: 20.0},
	},
}

// Valid reports whether id is inside the enumeration.
func (id SomethingID) Valid() bool {
	return id < NumSomethings
}

func (id SomethingID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("SomethingID(%d)", uint8(id))
	}
	return somethings[id].Name
}

// MarshalText encodes the set id as its wire name.
func (id SomethingID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSomething, uint8(id))
	}
	return []byte(somethings[id].Name), nil
}

// UnmarshalText decodes a wire name.
func (id *SomethingID) UnmarshalText(text []byte) error {
	parsed, ok := ParseSomethingID(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSomething, text)
	}
	*id = parsed
	return nil
}

// ParseSomethingID looks a set id up by wire name.
func ParseSomethingID(name string) (SomethingID, bool) {
	for i := range somethings {
		if somethings[i].Name == name {
			return somethings[i].ID, true
		}
	}
	return 0, false
}

// FindSomething возвращает описание сета.
// ok=false если id вне таблицы.
func FindSomething(id SomethingID) (SomethingType, bool) {
	if !id.Valid() {
		return SomethingType{}, false
	}
	return somethings[id], true
}

// MustSomething panics if id is not in the table.
func MustSomething(id SomethingID) SomethingType {
	st, ok := FindSomething(id)
	if !ok {
		panic(fmt.Sprintf("data: something %d not found", uint8(id)))
	}
	return st
}

// Somethings returns all set types in table order.
func Somethings() []SomethingType {
	out := make([]SomethingType, len(somethings))
	copy(out, somethings[:])
	return out
}

// SomethingLabel returns the display label or a placeholder for unknown ids.
func SomethingLabel(id SomethingID) string {
	if st, ok := FindSomething(id); ok {
		return st.LabelJA
	}
	return unknownLabel
}
