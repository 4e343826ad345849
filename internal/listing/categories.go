package listing

// ApplySelection applies one checkbox toggle to a category selection under the
// exclusivity rule: the exclusive category (pest control) may only ever be
// selected alone.
//
//   - Checking the exclusive category replaces the whole selection with it.
//   - Checking any other category while the exclusive one is selected replaces
//     the selection with just the newly checked category.
//   - Unchecking removes the category.
//
// The input slice is never mutated.
func ApplySelection(current []int64, toggled int64, checked bool, exclusiveID int64) []int64 {
	if !checked {
		out := make([]int64, 0, len(current))
		for _, id := range current {
			if id != toggled {
				out = append(out, id)
			}
		}
		return out
	}

	if toggled == exclusiveID {
		return []int64{exclusiveID}
	}
	for _, id := range current {
		if id == exclusiveID {
			return []int64{toggled}
		}
	}

	for _, id := range current {
		if id == toggled {
			return append([]int64(nil), current...)
		}
	}
	out := make([]int64, 0, len(current)+1)
	out = append(out, current...)
	return append(out, toggled)
}

// SelectionValid reports whether a selection respects the exclusivity rule:
// either it contains only the exclusive category, or it does not contain the
// exclusive category at all.
func SelectionValid(selection []int64, exclusiveID int64) bool {
	hasExclusive := false
	for _, id := range selection {
		if id == exclusiveID {
			hasExclusive = true
		}
	}
	return !hasExclusive || len(selection) == 1
}
