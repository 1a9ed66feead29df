package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectableBuffTypes(t *testing.T) {
	all := SelectableBuffTypes(false, BuffAttackConst)
	assert.Len(t, all, int(NumBuffTypes))

	strong := SelectableBuffTypes(true, BuffAttackConst)
	for _, id := range strong {
		assert.True(t, IsStrong(id), id.String())
	}
	assert.NotContains(t, strong, BuffHPPer)

	// Current weak selection stays visible.
	withCurrent := SelectableBuffTypes(true, BuffHPPer)
	assert.Contains(t, withCurrent, BuffHPPer)
	assert.Len(t, withCurrent, len(strong)+1)
}

func TestSelectableSubStatuses(t *testing.T) {
	assert.Len(t, SelectableSubStatuses(false, BuffNone), 14)

	strong := SelectableSubStatuses(true, BuffNone)
	assert.NotContains(t, strong, BuffDefenseConst)
	assert.Contains(t, strong, BuffCriticalDamage)

	assert.Contains(t, SelectableSubStatuses(true, BuffDefenseConst), BuffDefenseConst)
}

func TestSelectableMainStatuses(t *testing.T) {
	// cost 1: attack_per(strong), defense_per, hp_per, none(strong)
	assert.Equal(t, []int{0, 1, 2, 3}, SelectableMainStatuses(Cost1, false, 0))
	assert.Equal(t, []int{0, 3}, SelectableMainStatuses(Cost1, true, 0))
	assert.Equal(t, []int{0, 2, 3}, SelectableMainStatuses(Cost1, true, 2))

	assert.Nil(t, SelectableMainStatuses(Cost(7), false, 0))
}
