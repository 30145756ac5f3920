package strategy

import (
	"fmt"

	"BurnLab/internal/model"
)

// BuybackStrategy converts allocated USD value into token purchases and
// burns. The two variants differ in funding source and constraint.
type BuybackStrategy interface {
	Name() string
	Execute(dist model.Distribution, price, treasuryBalance float64) (model.BurnResult, error)
}

// TreasuryMatch is the legacy match-and-burn mechanism. A fixed
// adoption rate of the staker reward pool auto-compounds into market
// purchases; the primary treasury then burns tokens to match, capped at
// its own balance.
//
// When the purchase exceeds the treasury balance the burn is capped but
// the purchase is not reduced. The surplus of purchased-but-unburned
// tokens is a documented discrepancy of the legacy design and is kept,
// not fixed.
type TreasuryMatch struct {
	AutoCompoundRate float64
}

func (s *TreasuryMatch) Name() string { return "treasury_match" }

func (s *TreasuryMatch) Execute(dist model.Distribution, price, treasuryBalance float64) (model.BurnResult, error) {
	if !isFinite(price) || price <= 0 {
		return model.BurnResult{}, fmt.Errorf("spot price %v is not usable", price)
	}

	autoCompoundUSD := dist.Stakers * s.AutoCompoundRate
	purchase := autoCompoundUSD / price
	burned := purchase
	if burned > treasuryBalance {
		burned = treasuryBalance
	}

	res := model.BurnResult{
		PurchaseTokens: purchase,
		TokensBurned:   burned,
		CashToStakers:  dist.Stakers - autoCompoundUSD,
		BuyPressureUSD: autoCompoundUSD,
		TreasuryBurn:   burned,
	}
	if err := guardResult(res); err != nil {
		return model.BurnResult{}, err
	}
	return res, nil
}

// DirectBuyback is the buyback-and-burn mechanism: the entire buyback
// allocation funds a market purchase and every purchased token is
// burned 1:1, unconstrained by any treasury balance.
type DirectBuyback struct{}

func (s *DirectBuyback) Name() string { return "direct_buyback" }

func (s *DirectBuyback) Execute(dist model.Distribution, price, _ float64) (model.BurnResult, error) {
	if !isFinite(price) || price <= 0 {
		return model.BurnResult{}, fmt.Errorf("spot price %v is not usable", price)
	}

	purchase := dist.Buyback / price

	res := model.BurnResult{
		PurchaseTokens: purchase,
		TokensBurned:   purchase,
		CashToStakers:  dist.Stakers,
		BuyPressureUSD: dist.Buyback,
		MarketBurn:     purchase,
	}
	if err := guardResult(res); err != nil {
		return model.BurnResult{}, err
	}
	return res, nil
}

func guardResult(res model.BurnResult) error {
	for _, v := range []float64{res.PurchaseTokens, res.TokensBurned, res.CashToStakers, res.BuyPressureUSD} {
		if !isFinite(v) {
			return fmt.Errorf("non-finite burn result %v", v)
		}
	}
	return nil
}
