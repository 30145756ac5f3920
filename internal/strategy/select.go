package strategy

import (
	"fmt"

	"BurnLab/internal/model"
)

// ForVariant binds the distribution and buyback strategies for a run.
// Selection happens once at engine construction; the monthly pipeline
// never re-checks the variant flag.
func ForVariant(p *model.Parameters) (DistributionStrategy, BuybackStrategy, error) {
	switch p.Variant {
	case model.VariantTreasuryMatch:
		return &LegacySplit{
				StakerShare:    p.LegacyStakerShare,
				TreasuryShare:  p.LegacyTreasuryShare,
				AffiliateShare: p.AffiliateShare,
			}, &TreasuryMatch{
				AutoCompoundRate: p.AutoCompoundRate,
			}, nil
	case model.VariantDirectBuyback:
		return &ConfigurableSplit{
			BuybackShare:   p.BuybackShare,
			StakerShare:    p.StakerShare,
			TreasuryShare:  p.TreasuryShare,
			AffiliateShare: p.AffiliateShare,
		}, &DirectBuyback{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown mechanism variant %q", p.Variant)
	}
}
