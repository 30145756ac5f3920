package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"BurnLab/internal/model"
)

// FormatRunReport renders a finished run as a console summary.
func FormatRunReport(scenario string, snap model.Snapshot) string {
	var b strings.Builder

	state := snap.State
	b.WriteString(fmt.Sprintf("=== %s | %s after %d month(s) ===\n\n", scenario, statusLabel(state.Status), state.Month))

	b.WriteString(fmt.Sprintf("Spot price:          %.6f (temporary impact %+.4f)\n",
		state.Price.SpotPrice, state.Price.TemporaryImpact))
	b.WriteString(fmt.Sprintf("Market cap:          $%s\n",
		humanize.CommafWithDigits(state.Supply.CirculatingSupply*state.Price.SpotPrice, 0)))
	b.WriteString(fmt.Sprintf("Total supply:        %s\n", humanize.CommafWithDigits(state.Supply.TotalSupply, 0)))
	b.WriteString(fmt.Sprintf("Circulating supply:  %s\n", humanize.CommafWithDigits(state.Supply.CirculatingSupply, 0)))
	b.WriteString(fmt.Sprintf("Cumulative burned:   %s\n", humanize.CommafWithDigits(state.Supply.CumulativeBurned, 0)))
	b.WriteString(fmt.Sprintf("Primary treasury:    %s tokens\n", humanize.CommafWithDigits(state.PrimaryTreasury.Balance, 0)))
	b.WriteString(fmt.Sprintf("Secondary treasury:  %s tokens\n", humanize.CommafWithDigits(state.SecondaryTreasury.Balance, 0)))
	b.WriteString(fmt.Sprintf("Total staked:        %s\n", humanize.CommafWithDigits(state.Staking.TotalStaked, 0)))

	if last := lastRecord(snap.History); last != nil {
		b.WriteString(fmt.Sprintf("\nLast month burn:     %s tokens ($%s)\n",
			humanize.CommafWithDigits(last.TokensBurned, 0),
			humanize.CommafWithDigits(last.BurnValueUSD, 0)))
		if last.RunwayMonths > 0 {
			b.WriteString(fmt.Sprintf("Treasury runway:     %.1f months\n", last.RunwayMonths))
		}
	}

	if len(snap.Annual) > 0 {
		b.WriteString("\nAnnual P/V ratios:\n")
		years := make([]int, 0, len(snap.Annual))
		for year := range snap.Annual {
			years = append(years, year)
		}
		sort.Ints(years)
		for _, year := range years {
			b.WriteString("  " + formatAnnual(snap.Annual[year]) + "\n")
		}
	}

	return b.String()
}

func formatAnnual(r model.AnnualRatio) string {
	switch r.Variant {
	case model.VariantTreasuryMatch:
		return fmt.Sprintf("year %d: P/V %s", r.Year, ratioValue(r.PV, r.PVDefined))
	default:
		return fmt.Sprintf("year %d: cash-flow %s | market-value %s",
			r.Year, ratioValue(r.CashFlow, r.CashFlowDefined), ratioValue(r.MarketValue, r.MarketValueDefined))
	}
}

func ratioValue(v float64, defined bool) string {
	if !defined {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", v)
}

func statusLabel(s model.RunStatus) string {
	switch s {
	case model.StatusCompleted:
		return "completed full duration"
	case model.StatusDepleted:
		return "completed early (treasury depleted)"
	case model.StatusAborted:
		return "aborted"
	default:
		return strings.ToLower(string(s))
	}
}

func lastRecord(history []model.HistoryRecord) *model.HistoryRecord {
	if len(history) == 0 {
		return nil
	}
	return &history[len(history)-1]
}
