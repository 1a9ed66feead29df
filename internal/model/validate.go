package model

import (
	"errors"
	"fmt"

	"github.com/udisondev/buffcalc/internal/data"
)

// ErrTooManySubStatuses is returned when a slot has more than data.MaxSubStatuses sub-statuses.
var ErrTooManySubStatuses = errors.New("too many sub statuses")

// Validate checks every identifier in the state against the static tables.
// The calculator core assumes a validated state.
func (s State) Validate() error {
	for i, row := range s.Buffs {
		if !row.Type.Valid() {
			return fmt.Errorf("buffs[%d]: %w: %d", i, data.ErrUnknownBuffType, row.Type)
		}
	}
	for i, some := range s.SomeData.Somes {
		if err := some.Validate(); err != nil {
			return fmt.Errorf("somes[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single slot.
func (s Some) Validate() error {
	if !s.Something.Valid() {
		return fmt.Errorf("%w: %d", data.ErrUnknownSomething, s.Something)
	}
	if _, err := data.MainStatus(s.Cost, s.MainStatus); err != nil {
		return err
	}
	if len(s.SubStatusTypes) > data.MaxSubStatuses {
		return fmt.Errorf("%w: %d", ErrTooManySubStatuses, len(s.SubStatusTypes))
	}
	for i, t := range s.SubStatusTypes {
		if !t.Valid() {
			return fmt.Errorf("subStatusTypes[%d]: %w: %d", i, data.ErrUnknownBuffType, t)
		}
	}
	return nil
}

// ValidateDefaults checks fixed base rows.
func ValidateDefaults(defaults []DefaultBuff) error {
	for i, d := range defaults {
		if !d.Buff.Type.Valid() {
			return fmt.Errorf("default_buffs[%d]: %w: %d", i, data.ErrUnknownBuffType, d.Buff.Type)
		}
	}
	return nil
}
