package model

import (
	"fmt"
	"math"
)

// MechanismVariant selects which fee-and-burn design a run simulates.
type MechanismVariant string

const (
	// VariantTreasuryMatch is the legacy match-and-burn design: staker
	// auto-compound purchases are matched by treasury burns.
	VariantTreasuryMatch MechanismVariant = "treasury_match"
	// VariantDirectBuyback is the direct buyback-and-burn design: a fee
	// allocation buys tokens on the market and burns them 1:1.
	VariantDirectBuyback MechanismVariant = "direct_buyback"
)

// Parameters is the normalized, immutable input of one simulation run.
// Volumes are USD totals; all shares and rates are plain fractions in
// [0,1], never percent or bps.
type Parameters struct {
	Variant MechanismVariant

	// Venue volumes resolved to monthly USD totals.
	SwapVolumeMonthly      float64
	PerpVolumeMonthly      float64
	SecondaryVolumeMonthly float64

	// Daily totals, kept for the market-depth proxy of the impact model.
	SwapVolumeDaily      float64
	PerpVolumeDaily      float64
	SecondaryVolumeDaily float64

	FeeRate             float64 // swap and perp venues share one rate
	SecondaryFeeRate    float64 // secondary venue total fee rate
	SecondaryStakerRate float64 // secondary venue share routed to stakers
	AffiliateShare      float64 // cut of perp fees, taken before any split

	// Legacy split (treasury-match variant).
	LegacyStakerShare   float64
	LegacyTreasuryShare float64
	AutoCompoundRate    float64 // share of staker rewards auto-compounded into purchases

	// Configurable split (direct-buyback variant). The resolver
	// rebalances these to sum to 1; the strategy trusts them as-is.
	BuybackShare  float64
	StakerShare   float64
	TreasuryShare float64

	SupplyElasticity   float64
	PressureElasticity float64
	DecayRate          float64 // monthly geometric decay of temporary impact

	DurationMonths int
	InitialPrice   float64

	MaxSupply                float64
	InitialTotalSupply       float64
	InitialCirculatingSupply float64
	InitialStaked            float64
	InitialPrimaryTreasury   float64 // tokens
	InitialSecondaryTreasury float64 // tokens
}

// Validate checks ranges and finiteness before a run is created.
func (p *Parameters) Validate() error {
	switch p.Variant {
	case VariantTreasuryMatch, VariantDirectBuyback:
	default:
		return fmt.Errorf("unknown mechanism variant %q", p.Variant)
	}

	volumes := map[string]float64{
		"swap monthly volume":      p.SwapVolumeMonthly,
		"perp monthly volume":      p.PerpVolumeMonthly,
		"secondary monthly volume": p.SecondaryVolumeMonthly,
		"swap daily volume":        p.SwapVolumeDaily,
		"perp daily volume":        p.PerpVolumeDaily,
		"secondary daily volume":   p.SecondaryVolumeDaily,
	}
	for name, v := range volumes {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("%s must be a non-negative finite number, got %v", name, v)
		}
	}

	fractions := map[string]float64{
		"fee rate":              p.FeeRate,
		"secondary fee rate":    p.SecondaryFeeRate,
		"secondary staker rate": p.SecondaryStakerRate,
		"affiliate share":       p.AffiliateShare,
		"legacy staker share":   p.LegacyStakerShare,
		"legacy treasury share": p.LegacyTreasuryShare,
		"auto-compound rate":    p.AutoCompoundRate,
		"buyback share":         p.BuybackShare,
		"staker share":          p.StakerShare,
		"treasury share":        p.TreasuryShare,
		"decay rate":            p.DecayRate,
	}
	for name, f := range fractions {
		if !isFinite(f) || f < 0 || f > 1 {
			return fmt.Errorf("%s must be a fraction in [0,1], got %v", name, f)
		}
	}

	if p.SecondaryStakerRate > p.SecondaryFeeRate {
		return fmt.Errorf("secondary staker rate %v exceeds secondary fee rate %v", p.SecondaryStakerRate, p.SecondaryFeeRate)
	}
	if !isFinite(p.SupplyElasticity) || p.SupplyElasticity < 0 {
		return fmt.Errorf("supply elasticity must be non-negative, got %v", p.SupplyElasticity)
	}
	if !isFinite(p.PressureElasticity) || p.PressureElasticity < 0 {
		return fmt.Errorf("pressure elasticity must be non-negative, got %v", p.PressureElasticity)
	}
	if p.DurationMonths < 1 {
		return fmt.Errorf("duration must be at least 1 month, got %d", p.DurationMonths)
	}
	if !isFinite(p.InitialPrice) || p.InitialPrice <= 0 {
		return fmt.Errorf("initial price must be positive, got %v", p.InitialPrice)
	}
	if !isFinite(p.InitialCirculatingSupply) || p.InitialCirculatingSupply <= 0 {
		return fmt.Errorf("initial circulating supply must be positive, got %v", p.InitialCirculatingSupply)
	}
	if p.InitialTotalSupply < p.InitialCirculatingSupply {
		return fmt.Errorf("total supply %v below circulating supply %v", p.InitialTotalSupply, p.InitialCirculatingSupply)
	}
	if p.MaxSupply < p.InitialTotalSupply {
		return fmt.Errorf("max supply %v below total supply %v", p.MaxSupply, p.InitialTotalSupply)
	}
	balances := map[string]float64{
		"initial staked":             p.InitialStaked,
		"initial primary treasury":   p.InitialPrimaryTreasury,
		"initial secondary treasury": p.InitialSecondaryTreasury,
	}
	for name, v := range balances {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", name, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
