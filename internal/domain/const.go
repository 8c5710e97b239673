package domain

import "math"

// Basis-point math
const (
	// BpsDenominator is the denominator for basis-point math (10000 bps = 100%)
	BpsDenominator uint64 = 10_000
	// MaxFeeBps caps the platform fee at 100%
	MaxFeeBps uint16 = 10_000
	// DesignerShareBps is the share of a freshly minted designer token credited to the designer (90%).
	// The platform pool receives the remainder, computed by subtraction so nothing is lost to rounding.
	DesignerShareBps uint64 = 9_000
)

// Decimal-scaling convention. Every balance is stored as an integer in its smallest unit.
const (
	// TokenDecimals is the number of fractional decimal places of a designer token
	TokenDecimals int32 = 6
	// TokenWholeUnits is the fixed supply of every designer token in whole units
	TokenWholeUnits uint64 = 1_000_000
	// TokenTotalSupply is the fixed raw supply of every designer token (1,000,000 × 10^6)
	TokenTotalSupply Amount = Amount(TokenWholeUnits * 1_000_000)

	// SettlementDecimals is the number of fractional decimal places of the settlement currency
	SettlementDecimals int32 = 9
	// SettlementUnit is one whole unit of the settlement currency in smallest units
	SettlementUnit Amount = 1_000_000_000
)

// Derivation namespace tags
const (
	NamespacePlatform        = "platform"
	NamespaceDesignerProfile = "designer-profile"
	NamespaceDesignerMint    = "designer-mint"
	NamespaceDesignMeta      = "design-meta"
	NamespaceEscrow          = "escrow"
	NamespacePlatformPool    = "platform-pool"
)

// MaxUnitCount bounds inventory and sales counters, which are stored as signed 64-bit integers
const MaxUnitCount uint64 = math.MaxInt64

// Designer profile limits
const (
	MaxDisplayNameLength = 64
	MaxBioURILength      = 200
)
