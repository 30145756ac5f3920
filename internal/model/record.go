package model

// HistoryRecord snapshots every tracked quantity at the end of one
// month. Records are appended once per completed month and never
// mutated afterwards.
type HistoryRecord struct {
	Month int `json:"month"`

	SpotPrice         float64 `json:"spot_price"`
	TotalSupply       float64 `json:"total_supply"`
	CirculatingSupply float64 `json:"circulating_supply"`
	CumulativeBurned  float64 `json:"cumulative_burned"`
	PrimaryTreasury   float64 `json:"primary_treasury"`
	SecondaryTreasury float64 `json:"secondary_treasury"`
	TotalStaked       float64 `json:"total_staked"`

	TokensBurned   float64 `json:"tokens_burned"`
	PurchaseTokens float64 `json:"purchase_tokens"`
	CashToStakers  float64 `json:"cash_to_stakers"`
	BuyPressureUSD float64 `json:"buy_pressure_usd"`

	SwapFees             float64 `json:"swap_fees"`
	PerpFees             float64 `json:"perp_fees"`
	AffiliateFees        float64 `json:"affiliate_fees"`
	StakerFees           float64 `json:"staker_fees"`
	TreasuryFees         float64 `json:"treasury_fees"`
	BuybackFees          float64 `json:"buyback_fees"`
	SecondaryStakerFees  float64 `json:"secondary_staker_fees"`
	SecondaryTreasuryUSD float64 `json:"secondary_treasury_usd"`

	PermanentImpact float64 `json:"permanent_impact"`
	TemporaryImpact float64 `json:"temporary_impact"`

	// Derived health metrics.
	MarketCap    float64 `json:"market_cap"`
	BurnValueUSD float64 `json:"burn_value_usd"`
	RunwayMonths float64 `json:"runway_months"` // primary balance over this month's treasury burn; 0 when nothing burned
}

// AnnualRatio is the trailing-12-month P/V aggregate computed at each
// year boundary. A ratio with a zero denominator carries Defined=false;
// an infinity is never stored.
type AnnualRatio struct {
	Year    int              `json:"year"`
	Variant MechanismVariant `json:"variant"`

	// Treasury-match: a single ratio over cash + burn value + auto-compound.
	PV        float64 `json:"pv"`
	PVDefined bool    `json:"pv_defined"`

	// Direct buyback: a cash-flow / market-value pair.
	CashFlow           float64 `json:"cash_flow"`
	CashFlowDefined    bool    `json:"cash_flow_defined"`
	MarketValue        float64 `json:"market_value"`
	MarketValueDefined bool    `json:"market_value_defined"`
}

// Snapshot is a read-only copy of engine state handed to consumers
// (report, export, recorder, tests). Mutating it never touches the run.
type Snapshot struct {
	State   SimState            `json:"state"`
	History []HistoryRecord     `json:"history"`
	Annual  map[int]AnnualRatio `json:"annual_ratios"`
}
