package domain

import (
	"fmt"
	"slices"
)

// Range is a closed numeric interval. A nil *Range means "no constraint".
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate checks the Min <= Max invariant.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return NewValidationError("range", fmt.Sprintf("min %v greater than max %v", r.Min, r.Max))
	}
	return nil
}

// FilterState is the complete record of all filter, sort and view settings.
// It is always fully populated: category sets may be empty and ranges nil,
// but no field is ever "missing". Category sets are kept sorted and
// deduplicated so that slices.Equal gives set equality.
type FilterState struct {
	SearchQuery string `json:"searchQuery"`

	TokenTypes    []TokenType    `json:"tokenTypes"`
	Protocols     []Protocol     `json:"protocols"`
	Chains        []Chain        `json:"chains"`
	PositionTypes []PositionType `json:"positionTypes"`

	ValueRange *Range `json:"valueRange"`
	APYRange   *Range `json:"apyRange"`

	HideSmallBalances bool `json:"hideSmallBalances"`
	HideZeroBalances  bool `json:"hideZeroBalances"`
	ShowOnlyStaked    bool `json:"showOnlyStaked"`
	ShowOnlyActive    bool `json:"showOnlyActive"`

	SortBy    SortField `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
	ViewMode  ViewMode  `json:"viewMode"`
	GroupBy   GroupBy   `json:"groupBy"`
}

// DefaultState returns the documented initial descriptor: empty search,
// empty category sets, no range constraints, all toggles off, sorted by
// value descending, list view, no grouping.
func DefaultState() FilterState {
	return FilterState{
		TokenTypes:    []TokenType{},
		Protocols:     []Protocol{},
		Chains:        []Chain{},
		PositionTypes: []PositionType{},
		SortBy:        SortFieldValue,
		SortOrder:     SortOrderDesc,
		ViewMode:      ViewModeList,
		GroupBy:       GroupByNone,
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (s FilterState) Clone() FilterState {
	c := s
	c.TokenTypes = slices.Clone(s.TokenTypes)
	c.Protocols = slices.Clone(s.Protocols)
	c.Chains = slices.Clone(s.Chains)
	c.PositionTypes = slices.Clone(s.PositionTypes)
	if s.ValueRange != nil {
		r := *s.ValueRange
		c.ValueRange = &r
	}
	if s.APYRange != nil {
		r := *s.APYRange
		c.APYRange = &r
	}
	return c
}

// Equal reports structural equality of two descriptors.
func (s FilterState) Equal(o FilterState) bool {
	return s.SearchQuery == o.SearchQuery &&
		slices.Equal(s.TokenTypes, o.TokenTypes) &&
		slices.Equal(s.Protocols, o.Protocols) &&
		slices.Equal(s.Chains, o.Chains) &&
		slices.Equal(s.PositionTypes, o.PositionTypes) &&
		rangeEqual(s.ValueRange, o.ValueRange) &&
		rangeEqual(s.APYRange, o.APYRange) &&
		s.HideSmallBalances == o.HideSmallBalances &&
		s.HideZeroBalances == o.HideZeroBalances &&
		s.ShowOnlyStaked == o.ShowOnlyStaked &&
		s.ShowOnlyActive == o.ShowOnlyActive &&
		s.SortBy == o.SortBy &&
		s.SortOrder == o.SortOrder &&
		s.ViewMode == o.ViewMode &&
		s.GroupBy == o.GroupBy
}

func rangeEqual(a, b *Range) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// normalizeSet sorts and deduplicates a category set in place.
// A nil input stays nil (the caller decides whether nil means
// "empty set" or "field untouched").
func normalizeSet[T ~string](in []T) []T {
	if in == nil {
		return nil
	}
	slices.Sort(in)
	return slices.Compact(in)
}

// NormalizeTokenTypes returns the sorted, deduplicated set form.
func NormalizeTokenTypes(in []TokenType) []TokenType { return normalizeSet(in) }

// NormalizeProtocols returns the sorted, deduplicated set form.
func NormalizeProtocols(in []Protocol) []Protocol { return normalizeSet(in) }

// NormalizeChains returns the sorted, deduplicated set form.
func NormalizeChains(in []Chain) []Chain { return normalizeSet(in) }

// NormalizePositionTypes returns the sorted, deduplicated set form.
func NormalizePositionTypes(in []PositionType) []PositionType { return normalizeSet(in) }
