package domain

// QuickFilter is an immutable catalog entry: a labelled, predefined patch
// the UI can toggle as a unit.
type QuickFilter struct {
	ID    string
	Label string
	Color string
	Icon  *string

	// Patch names only the fields this quick filter sets. Toggling the
	// filter off restores exactly these fields to their registry defaults.
	Patch FilterPatch
}
