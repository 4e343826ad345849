package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const pestID int64 = 7

func TestApplySelection_CheckAndUncheck(t *testing.T) {
	sel := ApplySelection(nil, 1, true, pestID)
	assert.Equal(t, []int64{1}, sel)

	sel = ApplySelection(sel, 2, true, pestID)
	assert.Equal(t, []int64{1, 2}, sel)

	sel = ApplySelection(sel, 1, false, pestID)
	assert.Equal(t, []int64{2}, sel)
}

func TestApplySelection_ExclusiveReplacesSelection(t *testing.T) {
	// paint + flooring selected, then pest control checked
	sel := ApplySelection([]int64{1, 2}, pestID, true, pestID)
	assert.Equal(t, []int64{pestID}, sel)
}

func TestApplySelection_CheckingOtherLeavesExclusive(t *testing.T) {
	// pest control selected, then paint checked: the selection becomes paint
	// alone rather than an invalid mix
	sel := ApplySelection([]int64{pestID}, 1, true, pestID)
	assert.Equal(t, []int64{1}, sel)
}

func TestApplySelection_FullScenario(t *testing.T) {
	var sel []int64
	sel = ApplySelection(sel, 1, true, pestID)
	sel = ApplySelection(sel, 2, true, pestID)
	assert.Equal(t, []int64{1, 2}, sel)

	sel = ApplySelection(sel, pestID, true, pestID)
	assert.Equal(t, []int64{pestID}, sel)

	sel = ApplySelection(sel, 1, true, pestID)
	assert.Equal(t, []int64{1}, sel)
}

func TestApplySelection_CheckingSelectedIsNoop(t *testing.T) {
	sel := ApplySelection([]int64{1, 2}, 2, true, pestID)
	assert.Equal(t, []int64{1, 2}, sel)
}

func TestApplySelection_DoesNotMutateInput(t *testing.T) {
	current := []int64{1, 2, 3}
	_ = ApplySelection(current, 2, false, pestID)
	_ = ApplySelection(current, 4, true, pestID)
	assert.Equal(t, []int64{1, 2, 3}, current)
}

func TestApplySelection_AlwaysValid(t *testing.T) {
	states := [][]int64{nil, {1}, {1, 2}, {pestID}}
	for _, current := range states {
		for _, toggled := range []int64{1, 2, 3, pestID} {
			for _, checked := range []bool{true, false} {
				got := ApplySelection(current, toggled, checked, pestID)
				assert.True(t, SelectionValid(got, pestID),
					"current=%v toggled=%d checked=%v produced %v", current, toggled, checked, got)
			}
		}
	}
}

func TestSelectionValid(t *testing.T) {
	assert.True(t, SelectionValid(nil, pestID))
	assert.True(t, SelectionValid([]int64{1, 2}, pestID))
	assert.True(t, SelectionValid([]int64{pestID}, pestID))
	assert.False(t, SelectionValid([]int64{1, pestID}, pestID))
}
