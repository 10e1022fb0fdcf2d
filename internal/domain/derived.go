package domain

// HasActiveFilters reports whether any filtering dimension differs from its
// registry default. Sort, view and group settings are display preferences
// and never count.
func HasActiveFilters(s FilterState) bool {
	return ActiveFilterCount(s) > 0
}

// ActiveFilterCount counts the filtering dimensions currently off their
// default. A dimension counts once no matter how many values it holds:
// three selected token types are one active dimension.
func ActiveFilterCount(s FilterState) int {
	count := 0
	for _, spec := range fieldSpecs {
		if spec.filtering && !spec.atDefault(s) {
			count++
		}
	}
	return count
}

// ActiveFields returns the filtering dimensions currently off their default,
// in registry order.
func ActiveFields(s FilterState) []Field {
	var out []Field
	for _, spec := range fieldSpecs {
		if spec.filtering && !spec.atDefault(s) {
			out = append(out, spec.field)
		}
	}
	return out
}
