package calculator

import (
	"math"
	"testing"

	"BurnLab/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestComputeFees(t *testing.T) {
	p := &model.Parameters{
		SwapVolumeMonthly:      49_400_000,
		PerpVolumeMonthly:      60_000_000,
		SecondaryVolumeMonthly: 15_000_000,
		FeeRate:                0.0025,
		SecondaryFeeRate:       0.001,
		SecondaryStakerRate:    0.0005,
	}
	fees := ComputeFees(p)

	if !almostEqual(fees.SwapFees, 123_500) {
		t.Errorf("swap fees: expected 123500, got %v", fees.SwapFees)
	}
	if !almostEqual(fees.PerpFees, 150_000) {
		t.Errorf("perp fees: expected 150000, got %v", fees.PerpFees)
	}
	if !almostEqual(fees.SecondaryTotal, 15_000) {
		t.Errorf("secondary total: expected 15000, got %v", fees.SecondaryTotal)
	}
	if !almostEqual(fees.SecondaryStakers, 7_500) {
		t.Errorf("secondary stakers: expected 7500, got %v", fees.SecondaryStakers)
	}
	// Remainder identity: total = stakers + treasury
	if !almostEqual(fees.SecondaryTotal, fees.SecondaryStakers+fees.SecondaryTreasury) {
		t.Errorf("secondary split does not reconcile: %v != %v + %v",
			fees.SecondaryTotal, fees.SecondaryStakers, fees.SecondaryTreasury)
	}
}

func TestComputeFees_ZeroVolumes(t *testing.T) {
	fees := ComputeFees(&model.Parameters{FeeRate: 0.0025, SecondaryFeeRate: 0.001})
	if fees.SwapFees != 0 || fees.PerpFees != 0 || fees.SecondaryTotal != 0 {
		t.Errorf("expected all-zero fees for zero volumes, got %+v", fees)
	}
}
