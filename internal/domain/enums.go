package domain

// TokenType categorizes a token within a portfolio.
type TokenType string

const (
	TokenTypeNative     TokenType = "native"
	TokenTypeStablecoin TokenType = "stablecoin"
	TokenTypeLP         TokenType = "lp"
	TokenTypeGovernance TokenType = "governance"
	TokenTypeWrapped    TokenType = "wrapped"
)

func (t TokenType) String() string { return string(t) }

func (t TokenType) IsValid() bool {
	switch t {
	case TokenTypeNative, TokenTypeStablecoin, TokenTypeLP, TokenTypeGovernance, TokenTypeWrapped:
		return true
	}
	return false
}

// Protocol identifies the DeFi protocol a position belongs to.
type Protocol string

const (
	ProtocolUniswap    Protocol = "uniswap"
	ProtocolAave       Protocol = "aave"
	ProtocolLido       Protocol = "lido"
	ProtocolCurve      Protocol = "curve"
	ProtocolCompound   Protocol = "compound"
	ProtocolConvex     Protocol = "convex"
	ProtocolRocketPool Protocol = "rocketpool"
)

func (p Protocol) String() string { return string(p) }

func (p Protocol) IsValid() bool {
	switch p {
	case ProtocolUniswap, ProtocolAave, ProtocolLido, ProtocolCurve,
		ProtocolCompound, ProtocolConvex, ProtocolRocketPool:
		return true
	}
	return false
}

// Chain identifies the network a position lives on.
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainArbitrum Chain = "arbitrum"
	ChainOptimism Chain = "optimism"
	ChainPolygon  Chain = "polygon"
	ChainBase     Chain = "base"
	ChainSolana   Chain = "solana"
)

func (c Chain) String() string { return string(c) }

func (c Chain) IsValid() bool {
	switch c {
	case ChainEthereum, ChainArbitrum, ChainOptimism, ChainPolygon, ChainBase, ChainSolana:
		return true
	}
	return false
}

// PositionType categorizes how a position is held.
type PositionType string

const (
	PositionTypeWallet    PositionType = "wallet"
	PositionTypeStaked    PositionType = "staked"
	PositionTypeLending   PositionType = "lending"
	PositionTypeBorrowing PositionType = "borrowing"
	PositionTypeLiquidity PositionType = "liquidity"
	PositionTypeVault     PositionType = "vault"
)

func (p PositionType) String() string { return string(p) }

func (p PositionType) IsValid() bool {
	switch p {
	case PositionTypeWallet, PositionTypeStaked, PositionTypeLending,
		PositionTypeBorrowing, PositionTypeLiquidity, PositionTypeVault:
		return true
	}
	return false
}

// SortField is the column positions are ordered by.
type SortField string

const (
	SortFieldValue      SortField = "value"
	SortFieldAmount     SortField = "amount"
	SortFieldName       SortField = "name"
	SortFieldAPY        SortField = "apy"
	SortFieldProtocol   SortField = "protocol"
	SortFieldChange24h  SortField = "change24h"
	SortFieldAllocation SortField = "allocation"
)

func (f SortField) String() string { return string(f) }

func (f SortField) IsValid() bool {
	switch f {
	case SortFieldValue, SortFieldAmount, SortFieldName, SortFieldAPY,
		SortFieldProtocol, SortFieldChange24h, SortFieldAllocation:
		return true
	}
	return false
}

// SortOrder is the direction positions are ordered in.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// ViewMode is how the result list is laid out.
type ViewMode string

const (
	ViewModeList    ViewMode = "list"
	ViewModeGrid    ViewMode = "grid"
	ViewModeCompact ViewMode = "compact"
)

func (m ViewMode) String() string { return string(m) }

func (m ViewMode) IsValid() bool {
	switch m {
	case ViewModeList, ViewModeGrid, ViewModeCompact:
		return true
	}
	return false
}

// GroupBy is the dimension positions are grouped under.
type GroupBy string

const (
	GroupByNone     GroupBy = "none"
	GroupByProtocol GroupBy = "protocol"
	GroupByType     GroupBy = "type"
	GroupByChain    GroupBy = "chain"
)

func (g GroupBy) String() string { return string(g) }

func (g GroupBy) IsValid() bool {
	switch g {
	case GroupByNone, GroupByProtocol, GroupByType, GroupByChain:
		return true
	}
	return false
}
