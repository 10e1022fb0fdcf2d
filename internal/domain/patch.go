package domain

// RangeUpdate names a nullable range field in a patch. The wrapper is needed
// because the field itself is nullable: a nil *RangeUpdate leaves the field
// untouched, while RangeUpdate{Range: nil} explicitly clears the constraint.
type RangeUpdate struct {
	Range *Range
}

// ClearRange returns an update that removes the range constraint.
func ClearRange() *RangeUpdate { return &RangeUpdate{} }

// SetRange returns an update that constrains the field to [min, max].
func SetRange(min, max float64) *RangeUpdate {
	return &RangeUpdate{Range: &Range{Min: min, Max: max}}
}

// FilterPatch is a partial FilterState: only non-nil fields are applied.
// For category sets, nil means "untouched" and an empty non-nil slice means
// "clear the set".
type FilterPatch struct {
	SearchQuery *string

	TokenTypes    []TokenType
	Protocols     []Protocol
	Chains        []Chain
	PositionTypes []PositionType

	ValueRange *RangeUpdate
	APYRange   *RangeUpdate

	HideSmallBalances *bool
	HideZeroBalances  *bool
	ShowOnlyStaked    *bool
	ShowOnlyActive    *bool

	SortBy    *SortField
	SortOrder *SortOrder
	ViewMode  *ViewMode
	GroupBy   *GroupBy
}

// IsZero reports whether the patch names no fields at all.
func (p FilterPatch) IsZero() bool {
	return len(p.Fields()) == 0
}

// Fields returns the names of all fields the patch touches.
func (p FilterPatch) Fields() []Field {
	var out []Field
	for _, spec := range fieldSpecs {
		if spec.inPatch(p) {
			out = append(out, spec.field)
		}
	}
	return out
}

// Validate checks every named field: enum values must be valid and ranges
// must satisfy Min <= Max. All problems are collected into one
// ValidationError.
func (p FilterPatch) Validate() error {
	var errs []FieldError

	for _, t := range p.TokenTypes {
		if !t.IsValid() {
			errs = append(errs, FieldError{Field: "tokenTypes", Message: "unknown token type " + t.String()})
		}
	}
	for _, pr := range p.Protocols {
		if !pr.IsValid() {
			errs = append(errs, FieldError{Field: "protocols", Message: "unknown protocol " + pr.String()})
		}
	}
	for _, c := range p.Chains {
		if !c.IsValid() {
			errs = append(errs, FieldError{Field: "chains", Message: "unknown chain " + c.String()})
		}
	}
	for _, pt := range p.PositionTypes {
		if !pt.IsValid() {
			errs = append(errs, FieldError{Field: "positionTypes", Message: "unknown position type " + pt.String()})
		}
	}

	if p.ValueRange != nil && p.ValueRange.Range != nil {
		if err := p.ValueRange.Range.Validate(); err != nil {
			errs = append(errs, FieldError{Field: "valueRange", Message: "min greater than max"})
		}
	}
	if p.APYRange != nil && p.APYRange.Range != nil {
		if err := p.APYRange.Range.Validate(); err != nil {
			errs = append(errs, FieldError{Field: "apyRange", Message: "min greater than max"})
		}
	}

	if p.SortBy != nil && !p.SortBy.IsValid() {
		errs = append(errs, FieldError{Field: "sortBy", Message: "unknown sort field " + p.SortBy.String()})
	}
	if p.SortOrder != nil && !p.SortOrder.IsValid() {
		errs = append(errs, FieldError{Field: "sortOrder", Message: "unknown sort order " + p.SortOrder.String()})
	}
	if p.ViewMode != nil && !p.ViewMode.IsValid() {
		errs = append(errs, FieldError{Field: "viewMode", Message: "unknown view mode " + p.ViewMode.String()})
	}
	if p.GroupBy != nil && !p.GroupBy.IsValid() {
		errs = append(errs, FieldError{Field: "groupBy", Message: "unknown grouping " + p.GroupBy.String()})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
