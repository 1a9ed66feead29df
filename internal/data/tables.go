package data

import (
	"errors"
	"fmt"
	"log/slog"
)

// LoadTables проверяет статические таблицы на согласованность.
// Вызывается при старте (cmd/buffcalc/main.go) до первого расчёта.
//
// Все ссылки на BuffID внутри таблиц должны быть валидны, а имена уникальны;
// после успешной проверки ядро расчёта использует Must* lookups.
func LoadTables() error {
	var errs []error

	seen := make(map[string]BuffID, NumBuffTypes)
	for i, bt := range buffTypes {
		if bt.ID != BuffID(i) {
			errs = append(errs, fmt.Errorf("buff type %q: id %d at index %d", bt.Name, bt.ID, i))
		}
		if bt.Name == "" {
			errs = append(errs, fmt.Errorf("buff type at index %d: empty name", i))
		}
		if prev, dup := seen[bt.Name]; dup {
			errs = append(errs, fmt.Errorf("buff type %q: duplicate of %d", bt.Name, prev))
		}
		seen[bt.Name] = bt.ID
	}

	for _, c := range Costs {
		b, ok := costMain[c]
		if !ok {
			errs = append(errs, fmt.Errorf("cost %d: no fixed bonus", c))
		} else if !b.Type.Valid() {
			errs = append(errs, fmt.Errorf("cost %d fixed bonus: %w: %d", c, ErrUnknownBuffType, b.Type))
		}

		list, ok := mainStatuses[c]
		if !ok || len(list) == 0 {
			errs = append(errs, fmt.Errorf("cost %d: no main statuses", c))
			continue
		}
		for i, m := range list {
			if !m.Type.Valid() {
				errs = append(errs, fmt.Errorf("cost %d main status %d: %w: %d", c, i, ErrUnknownBuffType, m.Type))
			}
		}
	}

	for i, id := range subStatuses {
		if !id.Valid() {
			errs = append(errs, fmt.Errorf("sub status %d: %w: %d", i, ErrUnknownBuffType, id))
		}
	}

	names := make(map[string]struct{}, NumSomethings)
	for i, st := range somethings {
		if st.ID != SomethingID(i) {
			errs = append(errs, fmt.Errorf("something %q: id %d at index %d", st.Name, st.ID, i))
		}
		if _, dup := names[st.Name]; dup {
			errs = append(errs, fmt.Errorf("something %q: duplicate name", st.Name))
		}
		names[st.Name] = struct{}{}
		if !st.Effect2.Type.Valid() || !st.Effect5.Type.Valid() {
			errs = append(errs, fmt.Errorf("something %q: %w in effects", st.Name, ErrUnknownBuffType))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("validating stat tables: %w", err)
	}

	slog.Info("loaded stat tables",
		"buff_types", len(buffTypes),
		"somethings", len(somethings),
		"cost_tiers", len(Costs),
		"sub_statuses", len(subStatuses))
	return nil
}
