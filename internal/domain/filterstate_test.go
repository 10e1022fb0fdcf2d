package domain

import (
	"slices"
	"testing"
)

func TestDefaultState_FullyPopulated(t *testing.T) {
	t.Parallel()

	s := DefaultState()

	if s.TokenTypes == nil || s.Protocols == nil || s.Chains == nil || s.PositionTypes == nil {
		t.Error("category sets must be empty, not nil")
	}
	if s.ValueRange != nil || s.APYRange != nil {
		t.Error("ranges default to no constraint")
	}
	if s.SortBy != SortFieldValue || s.SortOrder != SortOrderDesc {
		t.Errorf("sort default = %v/%v, want value/desc", s.SortBy, s.SortOrder)
	}
	if s.ViewMode != ViewModeList || s.GroupBy != GroupByNone {
		t.Errorf("view default = %v/%v, want list/none", s.ViewMode, s.GroupBy)
	}
}

func TestFilterState_CloneIsDeep(t *testing.T) {
	t.Parallel()

	s := DefaultState()
	s.Chains = []Chain{ChainEthereum}
	s.ValueRange = &Range{Min: 10, Max: 20}

	c := s.Clone()
	c.Chains[0] = ChainSolana
	c.ValueRange.Min = 999

	if s.Chains[0] != ChainEthereum {
		t.Error("Clone shares the chains slice")
	}
	if s.ValueRange.Min != 10 {
		t.Error("Clone shares the range pointer")
	}
}

func TestFilterState_Equal(t *testing.T) {
	t.Parallel()

	a := DefaultState()
	b := DefaultState()
	if !a.Equal(b) {
		t.Fatal("two default states must be equal")
	}

	b.ValueRange = &Range{Min: 1, Max: 2}
	if a.Equal(b) {
		t.Error("states differing in ValueRange reported equal")
	}

	a.ValueRange = &Range{Min: 1, Max: 2}
	if !a.Equal(b) {
		t.Error("identical range values reported unequal")
	}

	b.SearchQuery = "x"
	if a.Equal(b) {
		t.Error("states differing in SearchQuery reported equal")
	}
}

func TestNormalizeSet(t *testing.T) {
	t.Parallel()

	got := NormalizeProtocols([]Protocol{ProtocolLido, ProtocolAave, ProtocolLido})
	want := []Protocol{ProtocolAave, ProtocolLido}
	if !slices.Equal(got, want) {
		t.Errorf("NormalizeProtocols = %v, want %v", got, want)
	}

	if NormalizeChains(nil) != nil {
		t.Error("nil input must stay nil")
	}
}

func TestRange_Validate(t *testing.T) {
	t.Parallel()

	if err := (Range{Min: 1, Max: 1}).Validate(); err != nil {
		t.Errorf("degenerate interval rejected: %v", err)
	}
	if err := (Range{Min: 5, Max: 1}).Validate(); err == nil {
		t.Error("inverted interval accepted")
	}
}
