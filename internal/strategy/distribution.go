package strategy

import (
	"fmt"
	"math"

	"BurnLab/internal/model"
)

// DistributionStrategy splits one month's gross fees among affiliates,
// stakers, treasury and (direct buyback only) the buyback pool.
type DistributionStrategy interface {
	Name() string
	Distribute(fees model.FeeTotals, price float64) (model.Distribution, error)
}

// LegacySplit is the match-and-burn era distribution: fixed staker and
// treasury fractions, no buyback allocation.
type LegacySplit struct {
	StakerShare    float64
	TreasuryShare  float64
	AffiliateShare float64
}

func (s *LegacySplit) Name() string { return "legacy_split" }

// Distribute applies the fixed fractions to swap fees and to perp fees
// net of the affiliate cut, independently, then sums.
func (s *LegacySplit) Distribute(fees model.FeeTotals, price float64) (model.Distribution, error) {
	if err := guardInputs(fees, price); err != nil {
		return model.Distribution{}, err
	}
	if err := guardFractions(s.StakerShare, s.TreasuryShare, s.AffiliateShare); err != nil {
		return model.Distribution{}, err
	}

	affiliate := fees.PerpFees * s.AffiliateShare
	perpNet := fees.PerpFees - affiliate

	return model.Distribution{
		Variant:   model.VariantTreasuryMatch,
		Affiliate: affiliate,
		Stakers:   fees.SwapFees*s.StakerShare + perpNet*s.StakerShare,
		Treasury:  fees.SwapFees*s.TreasuryShare + perpNet*s.TreasuryShare,
	}, nil
}

// ConfigurableSplit carries three fractions that the caller must have
// reconciled to sum to 1.0 (the config resolver rebalances them
// proportionally). It does not re-validate the sum: unreconciled
// fractions silently misallocate.
type ConfigurableSplit struct {
	BuybackShare   float64
	StakerShare    float64
	TreasuryShare  float64
	AffiliateShare float64
}

func (s *ConfigurableSplit) Name() string { return "configurable_split" }

func (s *ConfigurableSplit) Distribute(fees model.FeeTotals, price float64) (model.Distribution, error) {
	if err := guardInputs(fees, price); err != nil {
		return model.Distribution{}, err
	}
	if err := guardFractions(s.BuybackShare, s.StakerShare, s.TreasuryShare, s.AffiliateShare); err != nil {
		return model.Distribution{}, err
	}

	affiliate := fees.PerpFees * s.AffiliateShare
	net := fees.SwapFees + fees.PerpFees - affiliate

	return model.Distribution{
		Variant:   model.VariantDirectBuyback,
		Affiliate: affiliate,
		Buyback:   net * s.BuybackShare,
		Stakers:   net * s.StakerShare,
		Treasury:  net * s.TreasuryShare,
	}, nil
}

// guardInputs fails the stage closed instead of letting NaN flow into
// the month's allocations.
func guardInputs(fees model.FeeTotals, price float64) error {
	if !isFinite(price) || price <= 0 {
		return fmt.Errorf("spot price %v is not usable", price)
	}
	for _, v := range []float64{fees.SwapFees, fees.PerpFees, fees.SecondaryTotal, fees.SecondaryStakers, fees.SecondaryTreasury} {
		if !isFinite(v) {
			return fmt.Errorf("non-finite fee amount %v", v)
		}
	}
	return nil
}

func guardFractions(fractions ...float64) error {
	for _, f := range fractions {
		if !isFinite(f) {
			return fmt.Errorf("non-finite split fraction %v", f)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
