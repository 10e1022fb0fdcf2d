package domain

// Field names one dimension of the FilterState.
type Field string

const (
	FieldSearchQuery       Field = "searchQuery"
	FieldTokenTypes        Field = "tokenTypes"
	FieldProtocols         Field = "protocols"
	FieldChains            Field = "chains"
	FieldPositionTypes     Field = "positionTypes"
	FieldValueRange        Field = "valueRange"
	FieldAPYRange          Field = "apyRange"
	FieldHideSmallBalances Field = "hideSmallBalances"
	FieldHideZeroBalances  Field = "hideZeroBalances"
	FieldShowOnlyStaked    Field = "showOnlyStaked"
	FieldShowOnlyActive    Field = "showOnlyActive"
	FieldSortBy            Field = "sortBy"
	FieldSortOrder         Field = "sortOrder"
	FieldViewMode          Field = "viewMode"
	FieldGroupBy           Field = "groupBy"
)

// fieldSpec is the single declaration point for one filter dimension.
// Patch application, default/inverse patches and derived-state accounting
// all iterate this table, so adding a field to FilterState means adding
// exactly one row here (fields_test.go pins the table to the structs).
type fieldSpec struct {
	field Field

	// filtering marks dimensions that count as "active filters".
	// Sort, view and group fields are display preferences and stay false.
	filtering bool

	// inPatch reports whether a patch names this field.
	inPatch func(FilterPatch) bool

	// apply copies the field from patch to state. Called only when inPatch.
	apply func(*FilterState, FilterPatch)

	// writeDefault writes the field's registry default into a patch.
	writeDefault func(*FilterPatch)

	// atDefault reports whether the field currently equals its default.
	atDefault func(FilterState) bool
}

var fieldSpecs = []fieldSpec{
	{
		field:     FieldSearchQuery,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.SearchQuery != nil },
		apply:     func(s *FilterState, p FilterPatch) { s.SearchQuery = *p.SearchQuery },
		writeDefault: func(p *FilterPatch) {
			v := ""
			p.SearchQuery = &v
		},
		atDefault: func(s FilterState) bool { return s.SearchQuery == "" },
	},
	{
		field:     FieldTokenTypes,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.TokenTypes != nil },
		apply: func(s *FilterState, p FilterPatch) {
			s.TokenTypes = NormalizeTokenTypes(append([]TokenType{}, p.TokenTypes...))
		},
		writeDefault: func(p *FilterPatch) { p.TokenTypes = []TokenType{} },
		atDefault:    func(s FilterState) bool { return len(s.TokenTypes) == 0 },
	},
	{
		field:     FieldProtocols,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.Protocols != nil },
		apply: func(s *FilterState, p FilterPatch) {
			s.Protocols = NormalizeProtocols(append([]Protocol{}, p.Protocols...))
		},
		writeDefault: func(p *FilterPatch) { p.Protocols = []Protocol{} },
		atDefault:    func(s FilterState) bool { return len(s.Protocols) == 0 },
	},
	{
		field:     FieldChains,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.Chains != nil },
		apply: func(s *FilterState, p FilterPatch) {
			s.Chains = NormalizeChains(append([]Chain{}, p.Chains...))
		},
		writeDefault: func(p *FilterPatch) { p.Chains = []Chain{} },
		atDefault:    func(s FilterState) bool { return len(s.Chains) == 0 },
	},
	{
		field:     FieldPositionTypes,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.PositionTypes != nil },
		apply: func(s *FilterState, p FilterPatch) {
			s.PositionTypes = NormalizePositionTypes(append([]PositionType{}, p.PositionTypes...))
		},
		writeDefault: func(p *FilterPatch) { p.PositionTypes = []PositionType{} },
		atDefault:    func(s FilterState) bool { return len(s.PositionTypes) == 0 },
	},
	{
		field:     FieldValueRange,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.ValueRange != nil },
		apply: func(s *FilterState, p FilterPatch) {
			s.ValueRange = cloneRange(p.ValueRange.Range)
		},
		writeDefault: func(p *FilterPatch) { p.ValueRange = ClearRange() },
		atDefault:    func(s FilterState) bool { return s.ValueRange == nil },
	},
	{
		field:     FieldAPYRange,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.APYRange != nil },
		apply: func(s *FilterState, p FilterPatch) {
			s.APYRange = cloneRange(p.APYRange.Range)
		},
		writeDefault: func(p *FilterPatch) { p.APYRange = ClearRange() },
		atDefault:    func(s FilterState) bool { return s.APYRange == nil },
	},
	{
		field:     FieldHideSmallBalances,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.HideSmallBalances != nil },
		apply:     func(s *FilterState, p FilterPatch) { s.HideSmallBalances = *p.HideSmallBalances },
		writeDefault: func(p *FilterPatch) {
			v := false
			p.HideSmallBalances = &v
		},
		atDefault: func(s FilterState) bool { return !s.HideSmallBalances },
	},
	{
		field:     FieldHideZeroBalances,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.HideZeroBalances != nil },
		apply:     func(s *FilterState, p FilterPatch) { s.HideZeroBalances = *p.HideZeroBalances },
		writeDefault: func(p *FilterPatch) {
			v := false
			p.HideZeroBalances = &v
		},
		atDefault: func(s FilterState) bool { return !s.HideZeroBalances },
	},
	{
		field:     FieldShowOnlyStaked,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.ShowOnlyStaked != nil },
		apply:     func(s *FilterState, p FilterPatch) { s.ShowOnlyStaked = *p.ShowOnlyStaked },
		writeDefault: func(p *FilterPatch) {
			v := false
			p.ShowOnlyStaked = &v
		},
		atDefault: func(s FilterState) bool { return !s.ShowOnlyStaked },
	},
	{
		field:     FieldShowOnlyActive,
		filtering: true,
		inPatch:   func(p FilterPatch) bool { return p.ShowOnlyActive != nil },
		apply:     func(s *FilterState, p FilterPatch) { s.ShowOnlyActive = *p.ShowOnlyActive },
		writeDefault: func(p *FilterPatch) {
			v := false
			p.ShowOnlyActive = &v
		},
		atDefault: func(s FilterState) bool { return !s.ShowOnlyActive },
	},
	{
		field:   FieldSortBy,
		inPatch: func(p FilterPatch) bool { return p.SortBy != nil },
		apply:   func(s *FilterState, p FilterPatch) { s.SortBy = *p.SortBy },
		writeDefault: func(p *FilterPatch) {
			v := SortFieldValue
			p.SortBy = &v
		},
		atDefault: func(s FilterState) bool { return s.SortBy == SortFieldValue },
	},
	{
		field:   FieldSortOrder,
		inPatch: func(p FilterPatch) bool { return p.SortOrder != nil },
		apply:   func(s *FilterState, p FilterPatch) { s.SortOrder = *p.SortOrder },
		writeDefault: func(p *FilterPatch) {
			v := SortOrderDesc
			p.SortOrder = &v
		},
		atDefault: func(s FilterState) bool { return s.SortOrder == SortOrderDesc },
	},
	{
		field:   FieldViewMode,
		inPatch: func(p FilterPatch) bool { return p.ViewMode != nil },
		apply:   func(s *FilterState, p FilterPatch) { s.ViewMode = *p.ViewMode },
		writeDefault: func(p *FilterPatch) {
			v := ViewModeList
			p.ViewMode = &v
		},
		atDefault: func(s FilterState) bool { return s.ViewMode == ViewModeList },
	},
	{
		field:   FieldGroupBy,
		inPatch: func(p FilterPatch) bool { return p.GroupBy != nil },
		apply:   func(s *FilterState, p FilterPatch) { s.GroupBy = *p.GroupBy },
		writeDefault: func(p *FilterPatch) {
			v := GroupByNone
			p.GroupBy = &v
		},
		atDefault: func(s FilterState) bool { return s.GroupBy == GroupByNone },
	},
}

// AllFields lists every declared field in registry order.
func AllFields() []Field {
	out := make([]Field, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		out[i] = spec.field
	}
	return out
}

// Apply merges a patch into the state and returns the result. Only fields
// the patch names change; everything else is carried over untouched.
// The receiver is not modified.
func (s FilterState) Apply(p FilterPatch) FilterState {
	next := s.Clone()
	for _, spec := range fieldSpecs {
		if spec.inPatch(p) {
			spec.apply(&next, p)
		}
	}
	return next
}

// DefaultPatch returns a patch naming every field with its registry default.
// Applying it to any state yields DefaultState.
func DefaultPatch() FilterPatch {
	var p FilterPatch
	for _, spec := range fieldSpecs {
		spec.writeDefault(&p)
	}
	return p
}

// InversePatch returns a patch carrying the registry default for exactly the
// given fields. It is the exact inverse of any patch naming those fields.
func InversePatch(fields []Field) FilterPatch {
	var p FilterPatch
	for _, spec := range fieldSpecs {
		for _, f := range fields {
			if spec.field == f {
				spec.writeDefault(&p)
				break
			}
		}
	}
	return p
}

func cloneRange(r *Range) *Range {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
