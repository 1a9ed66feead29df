package model

import (
	"encoding/json"
	"fmt"

	"github.com/udisondev/buffcalc/internal/data"
)

// DefaultBuff — фиксированная строка с числовым значением (базовые статы персонажа).
type DefaultBuff struct {
	Memo string    `json:"memo" yaml:"memo"`
	Buff data.Buff `json:"buff" yaml:"buff"`
}

// BuffData — строка, введённая пользователем.
// Value хранится как строка и парсится только при расчёте.
type BuffData struct {
	Memo  string      `json:"memo"`
	Type  data.BuffID `json:"type"`
	Value string      `json:"value"`
}

// Some is one configurable equipment slot.
type Some struct {
	Something       data.SomethingID `json:"something"`
	Cost            data.Cost        `json:"cost"`
	MainStatus      int              `json:"mainStatus"`
	SubStatusTypes  []data.BuffID    `json:"subStatusTypes"`
	SubStatusValues []string         `json:"subStatusValues"`
}

// SomeData holds all slots.
type SomeData struct {
	Somes []Some `json:"somes"`
}

// State is the full calculator input: user rows plus slots.
// On the wire it is the two-element array [BuffData[], SomeData].
type State struct {
	Buffs    []BuffData
	SomeData SomeData
}

// MarshalJSON encodes the state as [buffs, someData].
func (s State) MarshalJSON() ([]byte, error) {
	buffs := s.Buffs
	if buffs == nil {
		buffs = []BuffData{}
	}
	somes := s.SomeData
	if somes.Somes == nil {
		somes.Somes = []Some{}
	}
	return json.Marshal([2]any{buffs, somes})
}

// UnmarshalJSON decodes [buffs, someData].
func (s *State) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decoding state: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("decoding state: want 2 elements, got %d", len(raw))
	}

	var out State
	if err := json.Unmarshal(raw[0], &out.Buffs); err != nil {
		return fmt.Errorf("decoding buff rows: %w", err)
	}
	if err := json.Unmarshal(raw[1], &out.SomeData); err != nil {
		return fmt.Errorf("decoding some data: %w", err)
	}
	*s = out
	return nil
}

// Clone returns a deep copy.
func (s State) Clone() State {
	return State{
		Buffs:    cloneRows(s.Buffs),
		SomeData: s.SomeData.Clone(),
	}
}

// Clone returns a deep copy.
func (d SomeData) Clone() SomeData {
	if d.Somes == nil {
		return SomeData{}
	}
	out := SomeData{Somes: make([]Some, len(d.Somes))}
	for i, s := range d.Somes {
		out.Somes[i] = s.Clone()
	}
	return out
}

// Clone returns a deep copy.
func (s Some) Clone() Some {
	out := s
	if s.SubStatusTypes != nil {
		out.SubStatusTypes = append([]data.BuffID(nil), s.SubStatusTypes...)
	}
	if s.SubStatusValues != nil {
		out.SubStatusValues = append([]string(nil), s.SubStatusValues...)
	}
	return out
}

// SubStatusValue returns the value string of sub-status slot i, "" if absent.
func (s Some) SubStatusValue(i int) string {
	if i < 0 || i >= len(s.SubStatusValues) {
		return ""
	}
	return s.SubStatusValues[i]
}

func cloneRows(rows []BuffData) []BuffData {
	if rows == nil {
		return nil
	}
	return append([]BuffData(nil), rows...)
}
