package calculator

import (
	"errors"
	"fmt"
	"math"

	"BurnLab/internal/model"
)

// Spot price bounds. The simulation clamps rather than aborts when the
// compounded multiplier pushes the price past either end.
const (
	MinPrice = 0.0001
	MaxPrice = 1000.0
)

// ComputeImpact derives one month's price move from the burn outcome
// and the buying pressure.
//
// The permanent component is supply-driven and compounds into the price
// forever. The temporary component is flow-driven: last month's carried
// impact decays geometrically and this month's buy pressure adds on top.
// prevTemp is the carried impact before decay.
func ComputeImpact(p *model.Parameters, burn *model.BurnResult, circulating, prevTemp, price float64) (model.ImpactResult, error) {
	var res model.ImpactResult

	if circulating <= 0 {
		return res, errors.New("circulating supply must be positive")
	}

	res.Permanent = burn.TokensBurned / circulating * p.SupplyElasticity

	// Market depth proxy: total daily volume across all venues.
	depth := p.SwapVolumeDaily + p.PerpVolumeDaily + p.SecondaryVolumeDaily
	if depth > 0 {
		res.NewTemporary = burn.BuyPressureUSD / depth * p.PressureElasticity
	}
	res.TotalTemporary = prevTemp*(1-p.DecayRate) + res.NewTemporary

	res.Multiplier = 1 + res.Permanent + res.TotalTemporary
	if math.IsNaN(res.Multiplier) || math.IsInf(res.Multiplier, 0) || res.Multiplier <= 0 {
		return model.ImpactResult{}, fmt.Errorf("price multiplier degenerated to %v", res.Multiplier)
	}

	res.NewPrice = ClampPrice(price * res.Multiplier)
	return res, nil
}

// ClampPrice bounds a spot price to [MinPrice, MaxPrice].
func ClampPrice(price float64) float64 {
	if price < MinPrice {
		return MinPrice
	}
	if price > MaxPrice {
		return MaxPrice
	}
	return price
}
