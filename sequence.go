package songbook

import "slices"

// SequenceSheets orders sheet names for rendering: names from the priority
// list that exist in the workbook come first, in list order, followed by
// the remaining names in workbook order.
func SequenceSheets(names []string, order []string) []string {
	sequenced := make([]string, 0, len(names))
	for _, name := range order {
		if slices.Contains(names, name) {
			sequenced = append(sequenced, name)
		}
	}
	for _, name := range names {
		if !slices.Contains(sequenced, name) {
			sequenced = append(sequenced, name)
		}
	}
	return sequenced
}
