package calculator

import "BurnLab/internal/model"

// ComputeFees derives the gross monthly fee totals from venue volumes.
// Pure function of the parameters; no state is read or written and the
// result does not depend on the mechanism variant.
func ComputeFees(p *model.Parameters) model.FeeTotals {
	secondaryTotal := p.SecondaryVolumeMonthly * p.SecondaryFeeRate
	secondaryStakers := p.SecondaryVolumeMonthly * p.SecondaryStakerRate

	return model.FeeTotals{
		SwapFees:          p.SwapVolumeMonthly * p.FeeRate,
		PerpFees:          p.PerpVolumeMonthly * p.FeeRate,
		SecondaryTotal:    secondaryTotal,
		SecondaryStakers:  secondaryStakers,
		SecondaryTreasury: secondaryTotal - secondaryStakers,
	}
}
