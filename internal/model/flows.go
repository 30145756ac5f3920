package model

// FeeTotals is one month's gross fee output, before any split.
type FeeTotals struct {
	SwapFees          float64
	PerpFees          float64
	SecondaryTotal    float64
	SecondaryStakers  float64
	SecondaryTreasury float64
}

// Distribution allocates one month's primary-venue fees by recipient.
// Buyback is always zero under the legacy split.
type Distribution struct {
	Variant   MechanismVariant
	Affiliate float64
	Stakers   float64
	Treasury  float64
	Buyback   float64
}

// BurnResult is the outcome of the buyback/burn stage.
//
// Under treasury-match, TokensBurned is capped at the treasury balance
// while PurchaseTokens is not: the surplus of purchased-but-unburned
// tokens is a known discrepancy of the legacy design and is left
// unreconciled on purpose.
type BurnResult struct {
	PurchaseTokens float64
	TokensBurned   float64
	CashToStakers  float64
	BuyPressureUSD float64 // auto-compound or buyback USD, feeds the impact model
	TreasuryBurn   float64 // tokens destroyed out of the primary treasury
	MarketBurn     float64 // purchased tokens destroyed directly
}

// ImpactResult decomposes one month's price move.
type ImpactResult struct {
	Permanent      float64
	NewTemporary   float64
	TotalTemporary float64
	Multiplier     float64
	NewPrice       float64
}
