package quickfilter

import "github.com/folioview/backend/internal/domain"

// maxUSD caps open-ended value intervals. Large enough for any realistic
// portfolio, small enough to survive float64 round-trips exactly.
const maxUSD = 1e12

// maxAPYPercent caps open-ended APY intervals.
const maxAPYPercent = 1e4

// DefaultCatalog returns the built-in quick filters shown as chips above
// the position list.
func DefaultCatalog() []domain.QuickFilter {
	ptr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }
	sortBy := func(f domain.SortField) *domain.SortField { return &f }
	sortOrder := func(o domain.SortOrder) *domain.SortOrder { return &o }

	return []domain.QuickFilter{
		{
			ID:    "high-value",
			Label: "High Value",
			Color: "amber",
			Icon:  ptr("trending-up"),
			Patch: domain.FilterPatch{
				ValueRange: domain.SetRange(1000, maxUSD),
				SortBy:     sortBy(domain.SortFieldValue),
				SortOrder:  sortOrder(domain.SortOrderDesc),
			},
		},
		{
			ID:    "staking",
			Label: "Staking",
			Color: "green",
			Icon:  ptr("layers"),
			Patch: domain.FilterPatch{
				PositionTypes:  []domain.PositionType{domain.PositionTypeStaked},
				ShowOnlyStaked: boolPtr(true),
			},
		},
		{
			ID:    "stablecoins",
			Label: "Stablecoins",
			Color: "blue",
			Icon:  ptr("dollar-sign"),
			Patch: domain.FilterPatch{
				TokenTypes: []domain.TokenType{domain.TokenTypeStablecoin},
			},
		},
		{
			ID:    "high-apy",
			Label: "High APY",
			Color: "purple",
			Icon:  ptr("zap"),
			Patch: domain.FilterPatch{
				APYRange:  domain.SetRange(10, maxAPYPercent),
				SortBy:    sortBy(domain.SortFieldAPY),
				SortOrder: sortOrder(domain.SortOrderDesc),
			},
		},
		{
			ID:    "defi",
			Label: "DeFi",
			Color: "teal",
			Patch: domain.FilterPatch{
				PositionTypes: []domain.PositionType{
					domain.PositionTypeLending,
					domain.PositionTypeBorrowing,
					domain.PositionTypeLiquidity,
					domain.PositionTypeVault,
				},
			},
		},
		{
			ID:    "majors",
			Label: "Majors",
			Color: "slate",
			Patch: domain.FilterPatch{
				TokenTypes: []domain.TokenType{
					domain.TokenTypeNative,
					domain.TokenTypeWrapped,
				},
				Chains: []domain.Chain{domain.ChainEthereum},
			},
		},
	}
}
