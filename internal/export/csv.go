package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"BurnLab/internal/model"
)

var csvHeader = []string{
	"month", "spot_price", "total_supply", "circulating_supply", "cumulative_burned",
	"primary_treasury", "secondary_treasury", "total_staked",
	"tokens_burned", "purchase_tokens", "cash_to_stakers", "buy_pressure_usd",
	"swap_fees", "perp_fees", "affiliate_fees", "staker_fees", "treasury_fees", "buyback_fees",
	"secondary_staker_fees", "secondary_treasury_usd",
	"permanent_impact", "temporary_impact", "market_cap", "burn_value_usd", "runway_months",
}

// WriteCSV serializes the full monthly history to a CSV file, one row
// per month in order.
func WriteCSV(path string, snap model.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range snap.History {
		row := []string{
			strconv.Itoa(rec.Month),
			num(rec.SpotPrice), num(rec.TotalSupply), num(rec.CirculatingSupply), num(rec.CumulativeBurned),
			num(rec.PrimaryTreasury), num(rec.SecondaryTreasury), num(rec.TotalStaked),
			num(rec.TokensBurned), num(rec.PurchaseTokens), num(rec.CashToStakers), num(rec.BuyPressureUSD),
			num(rec.SwapFees), num(rec.PerpFees), num(rec.AffiliateFees), num(rec.StakerFees),
			num(rec.TreasuryFees), num(rec.BuybackFees),
			num(rec.SecondaryStakerFees), num(rec.SecondaryTreasuryUSD),
			num(rec.PermanentImpact), num(rec.TemporaryImpact),
			num(rec.MarketCap), num(rec.BurnValueUSD), num(rec.RunwayMonths),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write month %d: %w", rec.Month, err)
		}
	}
	w.Flush()
	return w.Error()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
