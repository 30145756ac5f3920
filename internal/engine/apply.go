package engine

import (
	"log"

	"BurnLab/internal/model"
)

// apply mutates the state store with one month's results, in order:
// treasury inflows (USD converted to tokens at the pre-update spot),
// variant-dependent outflows, staking change, supply decrements, then
// the new price. Balances that would go negative clamp to zero; that is
// a boundary condition, not an error.
func (e *Engine) apply(fees model.FeeTotals, dist model.Distribution, burn model.BurnResult, impact model.ImpactResult) {
	spot := e.state.Price.SpotPrice

	e.state.PrimaryTreasury.Balance += dist.Treasury / spot
	e.state.SecondaryTreasury.Balance += fees.SecondaryTreasury / spot

	if e.params.Variant == model.VariantTreasuryMatch {
		e.state.PrimaryTreasury.Balance -= burn.TreasuryBurn
		e.state.Staking.TotalStaked += burn.PurchaseTokens
	}

	e.state.Supply.TotalSupply -= burn.TokensBurned
	e.state.Supply.CirculatingSupply -= burn.PurchaseTokens
	e.state.Supply.CumulativeBurned += burn.TokensBurned

	e.clamp(&e.state.PrimaryTreasury.Balance, "primary treasury")
	e.clamp(&e.state.SecondaryTreasury.Balance, "secondary treasury")
	e.clamp(&e.state.Supply.TotalSupply, "total supply")
	e.clamp(&e.state.Supply.CirculatingSupply, "circulating supply")

	e.state.Price.SpotPrice = impact.NewPrice
	e.state.Price.TemporaryImpact = impact.TotalTemporary
}

func (e *Engine) clamp(balance *float64, name string) {
	if *balance < 0 {
		log.Printf("[WARN] %s clamped to zero at month %d (was %v)", name, e.state.Month, *balance)
		*balance = 0
	}
}
