package filterstate

import "github.com/folioview/backend/internal/domain"

// Field-level setters. Each one replaces exactly its field and nothing else;
// all of them funnel through Apply so the populated-descriptor invariant and
// change notification hold uniformly.

func (s *Store) SetSearchQuery(q string) error {
	_, err := s.Apply(domain.FilterPatch{SearchQuery: &q})
	return err
}

func (s *Store) SetTokenTypes(v []domain.TokenType) error {
	if v == nil {
		v = []domain.TokenType{}
	}
	_, err := s.Apply(domain.FilterPatch{TokenTypes: v})
	return err
}

func (s *Store) SetProtocols(v []domain.Protocol) error {
	if v == nil {
		v = []domain.Protocol{}
	}
	_, err := s.Apply(domain.FilterPatch{Protocols: v})
	return err
}

func (s *Store) SetChains(v []domain.Chain) error {
	if v == nil {
		v = []domain.Chain{}
	}
	_, err := s.Apply(domain.FilterPatch{Chains: v})
	return err
}

func (s *Store) SetPositionTypes(v []domain.PositionType) error {
	if v == nil {
		v = []domain.PositionType{}
	}
	_, err := s.Apply(domain.FilterPatch{PositionTypes: v})
	return err
}

// SetValueRange constrains the position value. A nil range means
// "no constraint" and is a legal, explicit value.
func (s *Store) SetValueRange(r *domain.Range) error {
	_, err := s.Apply(domain.FilterPatch{ValueRange: &domain.RangeUpdate{Range: r}})
	return err
}

// SetAPYRange constrains the position APY. A nil range clears the constraint.
func (s *Store) SetAPYRange(r *domain.Range) error {
	_, err := s.Apply(domain.FilterPatch{APYRange: &domain.RangeUpdate{Range: r}})
	return err
}

func (s *Store) SetHideSmallBalances(v bool) error {
	_, err := s.Apply(domain.FilterPatch{HideSmallBalances: &v})
	return err
}

func (s *Store) SetHideZeroBalances(v bool) error {
	_, err := s.Apply(domain.FilterPatch{HideZeroBalances: &v})
	return err
}

func (s *Store) SetShowOnlyStaked(v bool) error {
	_, err := s.Apply(domain.FilterPatch{ShowOnlyStaked: &v})
	return err
}

func (s *Store) SetShowOnlyActive(v bool) error {
	_, err := s.Apply(domain.FilterPatch{ShowOnlyActive: &v})
	return err
}

func (s *Store) SetSortBy(v domain.SortField) error {
	_, err := s.Apply(domain.FilterPatch{SortBy: &v})
	return err
}

func (s *Store) SetSortOrder(v domain.SortOrder) error {
	_, err := s.Apply(domain.FilterPatch{SortOrder: &v})
	return err
}

func (s *Store) SetViewMode(v domain.ViewMode) error {
	_, err := s.Apply(domain.FilterPatch{ViewMode: &v})
	return err
}

func (s *Store) SetGroupBy(v domain.GroupBy) error {
	_, err := s.Apply(domain.FilterPatch{GroupBy: &v})
	return err
}
