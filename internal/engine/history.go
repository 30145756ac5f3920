package engine

import "BurnLab/internal/model"

// record appends the immutable snapshot for the month that just ended.
// Month numbers are 1-based in the history.
func (e *Engine) record(fees model.FeeTotals, dist model.Distribution, burn model.BurnResult, impact model.ImpactResult) {
	spot := e.state.Price.SpotPrice

	rec := model.HistoryRecord{
		Month: e.state.Month,

		SpotPrice:         spot,
		TotalSupply:       e.state.Supply.TotalSupply,
		CirculatingSupply: e.state.Supply.CirculatingSupply,
		CumulativeBurned:  e.state.Supply.CumulativeBurned,
		PrimaryTreasury:   e.state.PrimaryTreasury.Balance,
		SecondaryTreasury: e.state.SecondaryTreasury.Balance,
		TotalStaked:       e.state.Staking.TotalStaked,

		TokensBurned:   burn.TokensBurned,
		PurchaseTokens: burn.PurchaseTokens,
		CashToStakers:  burn.CashToStakers,
		BuyPressureUSD: burn.BuyPressureUSD,

		SwapFees:             fees.SwapFees,
		PerpFees:             fees.PerpFees,
		AffiliateFees:        dist.Affiliate,
		StakerFees:           dist.Stakers,
		TreasuryFees:         dist.Treasury,
		BuybackFees:          dist.Buyback,
		SecondaryStakerFees:  fees.SecondaryStakers,
		SecondaryTreasuryUSD: fees.SecondaryTreasury,

		PermanentImpact: impact.Permanent,
		TemporaryImpact: impact.TotalTemporary,

		MarketCap:    e.state.Supply.CirculatingSupply * spot,
		BurnValueUSD: burn.TokensBurned * spot,
	}
	if burn.TreasuryBurn > 0 {
		rec.RunwayMonths = e.state.PrimaryTreasury.Balance / burn.TreasuryBurn
	}

	e.history = append(e.history, rec)
}

// aggregateYear computes the trailing-12-month P/V ratio(s) at a year
// boundary. Denominators of zero leave the ratio undefined; infinities
// never reach downstream consumers.
func (e *Engine) aggregateYear() {
	year := e.state.Month / 12
	window := e.history[len(e.history)-12:]

	var cash, burned, pressureUSD float64
	for _, rec := range window {
		cash += rec.CashToStakers
		burned += rec.TokensBurned
		pressureUSD += rec.BuyPressureUSD
	}

	spot := e.state.Price.SpotPrice
	marketCap := e.state.Supply.CirculatingSupply * spot
	burnValue := burned * spot

	ratio := model.AnnualRatio{Year: year, Variant: e.params.Variant}

	switch e.params.Variant {
	case model.VariantTreasuryMatch:
		if den := cash + burnValue + pressureUSD; den > 0 {
			ratio.PV = marketCap / den
			ratio.PVDefined = true
		}
	case model.VariantDirectBuyback:
		if den := cash + pressureUSD; den > 0 {
			ratio.CashFlow = marketCap / den
			ratio.CashFlowDefined = true
		}
		if den := cash + burnValue; den > 0 {
			ratio.MarketValue = marketCap / den
			ratio.MarketValueDefined = true
		}
	}

	e.annual[year] = ratio
}
