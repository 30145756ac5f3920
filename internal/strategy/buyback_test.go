package strategy

import (
	"math"
	"testing"

	"BurnLab/internal/model"
)

func TestTreasuryMatch_FullMatch(t *testing.T) {
	s := &TreasuryMatch{AutoCompoundRate: 0.5}
	dist := model.Distribution{Stakers: 1_000}

	res, err := s.Execute(dist, 0.05, 20_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 500 USD auto-compounds into 10,000 tokens at 0.05.
	if !almostEqual(res.PurchaseTokens, 10_000) {
		t.Errorf("purchase: expected 10000, got %v", res.PurchaseTokens)
	}
	if !almostEqual(res.TokensBurned, 10_000) {
		t.Errorf("burned: expected full match 10000, got %v", res.TokensBurned)
	}
	if !almostEqual(res.CashToStakers, 500) {
		t.Errorf("cash: expected 500, got %v", res.CashToStakers)
	}
	if !almostEqual(res.BuyPressureUSD, 500) {
		t.Errorf("buy pressure: expected 500, got %v", res.BuyPressureUSD)
	}
	if res.TreasuryBurn != res.TokensBurned {
		t.Errorf("treasury burn %v != tokens burned %v", res.TreasuryBurn, res.TokensBurned)
	}
}

// The legacy design caps the burn at the treasury balance but does not
// reduce the staker purchase to match. The surplus of purchased-but-
// unburned tokens is deliberate: the model leaves it unreconciled.
func TestTreasuryMatch_CappedBurnKeepsFullPurchase(t *testing.T) {
	s := &TreasuryMatch{AutoCompoundRate: 0.5}
	dist := model.Distribution{Stakers: 1_000}

	res, err := s.Execute(dist, 0.05, 4_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.TokensBurned, 4_000) {
		t.Errorf("burned: expected cap at 4000, got %v", res.TokensBurned)
	}
	if !almostEqual(res.PurchaseTokens, 10_000) {
		t.Errorf("purchase must stay 10000 despite the cap, got %v", res.PurchaseTokens)
	}
	if surplus := res.PurchaseTokens - res.TokensBurned; !almostEqual(surplus, 6_000) {
		t.Errorf("unmatched surplus: expected 6000, got %v", surplus)
	}
}

func TestDirectBuyback_BurnsOneToOne(t *testing.T) {
	s := &DirectBuyback{}
	dist := model.Distribution{Buyback: 500, Stakers: 300}

	res, err := s.Execute(dist, 0.05, 0) // treasury balance irrelevant
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.PurchaseTokens, 10_000) {
		t.Errorf("purchase: expected 10000, got %v", res.PurchaseTokens)
	}
	if res.TokensBurned != res.PurchaseTokens {
		t.Errorf("direct buyback must burn 1:1, burned %v of %v", res.TokensBurned, res.PurchaseTokens)
	}
	if !almostEqual(res.CashToStakers, 300) {
		t.Errorf("stakers keep their full allocation, expected 300, got %v", res.CashToStakers)
	}
	if res.MarketBurn != res.TokensBurned {
		t.Errorf("market burn %v != tokens burned %v", res.MarketBurn, res.TokensBurned)
	}
}

func TestExecute_BadPrice(t *testing.T) {
	match := &TreasuryMatch{AutoCompoundRate: 0.5}
	direct := &DirectBuyback{}
	dist := model.Distribution{Stakers: 1_000, Buyback: 500}

	for _, price := range []float64{0, -0.01, math.NaN(), math.Inf(1)} {
		res, err := match.Execute(dist, price, 10_000)
		if err == nil {
			t.Errorf("treasury match: expected error for price %v", price)
		}
		if res != (model.BurnResult{}) {
			t.Errorf("treasury match: expected zero result for price %v, got %+v", price, res)
		}
		res, err = direct.Execute(dist, price, 0)
		if err == nil {
			t.Errorf("direct buyback: expected error for price %v", price)
		}
		if res != (model.BurnResult{}) {
			t.Errorf("direct buyback: expected zero result for price %v, got %+v", price, res)
		}
	}
}

func TestForVariant(t *testing.T) {
	p := &model.Parameters{Variant: model.VariantTreasuryMatch, LegacyStakerShare: 0.8, LegacyTreasuryShare: 0.2}
	dist, buy, err := ForVariant(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist.Name() != "legacy_split" || buy.Name() != "treasury_match" {
		t.Errorf("unexpected strategies %s/%s", dist.Name(), buy.Name())
	}

	p.Variant = model.VariantDirectBuyback
	dist, buy, err = ForVariant(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist.Name() != "configurable_split" || buy.Name() != "direct_buyback" {
		t.Errorf("unexpected strategies %s/%s", dist.Name(), buy.Name())
	}

	p.Variant = "bonding_curve"
	if _, _, err := ForVariant(p); err == nil {
		t.Error("expected error for unknown variant")
	}
}
