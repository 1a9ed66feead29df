package model

import (
	"errors"
	"fmt"

	"github.com/udisondev/buffcalc/internal/data"
)

var (
	ErrSlotIndex      = errors.New("slot index out of range")
	ErrSubStatusIndex = errors.New("sub status index out of range")
	ErrRowIndex       = errors.New("row index out of range")
)

// Edit operations never mutate the receiver: each returns a rebuilt copy.

func (d SomeData) slot(idx int) (SomeData, *Some, error) {
	if idx < 0 || idx >= len(d.Somes) {
		return d, nil, fmt.Errorf("%w: %d (have %d)", ErrSlotIndex, idx, len(d.Somes))
	}
	out := d.Clone()
	return out, &out.Somes[idx], nil
}

// SetCost sets the cost tier of a slot and resets its main status to index 0.
func (d SomeData) SetCost(idx int, c data.Cost) (SomeData, error) {
	if !c.Valid() {
		return d, fmt.Errorf("%w: %d", data.ErrUnknownCost, c)
	}
	out, s, err := d.slot(idx)
	if err != nil {
		return d, err
	}
	s.Cost = c
	s.MainStatus = 0
	return out, nil
}

// SetSomething sets the set type of one slot.
func (d SomeData) SetSomething(idx int, id data.SomethingID) (SomeData, error) {
	if !id.Valid() {
		return d, fmt.Errorf("%w: %d", data.ErrUnknownSomething, id)
	}
	out, s, err := d.slot(idx)
	if err != nil {
		return d, err
	}
	s.Something = id
	return out, nil
}

// SetAllSomething sets the set type of every slot.
func (d SomeData) SetAllSomething(id data.SomethingID) (SomeData, error) {
	if !id.Valid() {
		return d, fmt.Errorf("%w: %d", data.ErrUnknownSomething, id)
	}
	out := d.Clone()
	for i := range out.Somes {
		out.Somes[i].Something = id
	}
	return out, nil
}

// SetMainStatus selects main status i of the slot's cost tier.
func (d SomeData) SetMainStatus(idx, i int) (SomeData, error) {
	out, s, err := d.slot(idx)
	if err != nil {
		return d, err
	}
	if _, err := data.MainStatus(s.Cost, i); err != nil {
		return d, err
	}
	s.MainStatus = i
	return out, nil
}

// SetSubStatus sets the type and value string of sub-status slot sub.
// Missing slots up to sub are filled with BuffNone / "0".
func (d SomeData) SetSubStatus(idx, sub int, t data.BuffID, value string) (SomeData, error) {
	if sub < 0 || sub >= data.MaxSubStatuses {
		return d, fmt.Errorf("%w: %d", ErrSubStatusIndex, sub)
	}
	if !t.Valid() {
		return d, fmt.Errorf("%w: %d", data.ErrUnknownBuffType, t)
	}
	out, s, err := d.slot(idx)
	if err != nil {
		return d, err
	}
	for len(s.SubStatusTypes) <= sub {
		s.SubStatusTypes = append(s.SubStatusTypes, data.BuffNone)
	}
	for len(s.SubStatusValues) <= sub {
		s.SubStatusValues = append(s.SubStatusValues, "0")
	}
	s.SubStatusTypes[sub] = t
	s.SubStatusValues[sub] = value
	return out, nil
}

// AddRow appends NewBuffRow to rows.
func AddRow(rows []BuffData) []BuffData {
	out := make([]BuffData, 0, len(rows)+1)
	out = append(out, rows...)
	return append(out, NewBuffRow())
}

// SetRow replaces row idx.
func SetRow(rows []BuffData, idx int, row BuffData) ([]BuffData, error) {
	if idx < 0 || idx >= len(rows) {
		return rows, fmt.Errorf("%w: %d (have %d)", ErrRowIndex, idx, len(rows))
	}
	if !row.Type.Valid() {
		return rows, fmt.Errorf("%w: %d", data.ErrUnknownBuffType, row.Type)
	}
	out := cloneRows(rows)
	out[idx] = row
	return out, nil
}

// RemoveRow deletes row idx, keeping the order of the rest.
func RemoveRow(rows []BuffData, idx int) ([]BuffData, error) {
	if idx < 0 || idx >= len(rows) {
		return rows, fmt.Errorf("%w: %d (have %d)", ErrRowIndex, idx, len(rows))
	}
	out := make([]BuffData, 0, len(rows)-1)
	out = append(out, rows[:idx]...)
	return append(out, rows[idx+1:]...), nil
}
