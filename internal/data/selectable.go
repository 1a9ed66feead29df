package data

// Selector filtering.
// When ignoreWeak is set only strong types are offered, but the current
// selection always stays in the list so a selector never loses its value.

// SelectableBuffTypes returns the buff types offered in a free-form row selector.
func SelectableBuffTypes(ignoreWeak bool, current BuffID) []BuffID {
	out := make([]BuffID, 0, len(buffTypes))
	for _, bt := range buffTypes {
		if bt.Strong || !ignoreWeak || bt.ID == current {
			out = append(out, bt.ID)
		}
	}
	return out
}

// SelectableSubStatuses returns the sub-status types offered in a sub-status selector.
func SelectableSubStatuses(ignoreWeak bool, current BuffID) []BuffID {
	out := make([]BuffID, 0, len(subStatuses))
	for _, id := range subStatuses {
		if IsStrong(id) || !ignoreWeak || id == current {
			out = append(out, id)
		}
	}
	return out
}

// SelectableMainStatuses returns indices into MainStatuses(c) offered for cost tier c.
// Unknown tiers yield nil.
func SelectableMainStatuses(c Cost, ignoreWeak bool, current int) []int {
	list, ok := mainStatuses[c]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(list))
	for i, m := range list {
		if IsStrong(m.Type) || !ignoreWeak || i == current {
			out = append(out, i)
		}
	}
	return out
}
