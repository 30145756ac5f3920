package config

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"BurnLab/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scenario.Variant != string(model.VariantDirectBuyback) {
		t.Errorf("default variant: expected direct_buyback, got %q", cfg.Scenario.Variant)
	}
	if cfg.Scenario.DurationMonths != 36 {
		t.Errorf("default duration: expected 36, got %d", cfg.Scenario.DurationMonths)
	}
	if cfg.Token.InitialPrice != 0.065 {
		t.Errorf("default price: expected 0.065, got %v", cfg.Token.InitialPrice)
	}

	params, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve defaults: %v", err)
	}
	if !almostEqual(params.SwapVolumeMonthly, 49_400_000) {
		t.Errorf("default monthly swap volume: expected 49.4M, got %v", params.SwapVolumeMonthly)
	}
}

func TestResolve_Conversions(t *testing.T) {
	path := writeScenario(t, `
scenario:
  name: conversions
  variant: direct_buyback
  duration_months: 24
volumes:
  swap_daily: 1000000
  perp_daily: 2000000
  secondary_daily: 500000
  days_per_month: 30
fees:
  trade_fee_bps: 25
  secondary_fee_bps: 10
  secondary_staker_bps: 5
  affiliate_pct: 10
impact:
  decay_pct: 30
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	params, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if !almostEqual(params.SwapVolumeMonthly, 30_000_000) {
		t.Errorf("monthly swap volume: expected 30M, got %v", params.SwapVolumeMonthly)
	}
	if !almostEqual(params.FeeRate, 0.0025) {
		t.Errorf("fee rate: expected 0.0025 from 25 bps, got %v", params.FeeRate)
	}
	if !almostEqual(params.SecondaryStakerRate, 0.0005) {
		t.Errorf("secondary staker rate: expected 0.0005 from 5 bps, got %v", params.SecondaryStakerRate)
	}
	if !almostEqual(params.AffiliateShare, 0.1) {
		t.Errorf("affiliate share: expected 0.1 from 10%%, got %v", params.AffiliateShare)
	}
	if !almostEqual(params.DecayRate, 0.3) {
		t.Errorf("decay rate: expected 0.3 from 30%%, got %v", params.DecayRate)
	}
	if params.DurationMonths != 24 {
		t.Errorf("duration: expected 24, got %d", params.DurationMonths)
	}
}

func TestResolve_RebalancesSplit(t *testing.T) {
	path := writeScenario(t, `
scenario:
  variant: direct_buyback
splits:
  buyback_pct: 40
  staker_pct: 40
  treasury_pct: 40
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	params, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	sum := params.BuybackShare + params.StakerShare + params.TreasuryShare
	if !almostEqual(sum, 1.0) {
		t.Errorf("rebalanced split must sum to 1, got %v", sum)
	}
	if !almostEqual(params.BuybackShare, 1.0/3.0) {
		t.Errorf("buyback share: expected 1/3, got %v", params.BuybackShare)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown variant", "scenario:\n  variant: bonding_curve\n"},
		{"negative price", "token:\n  initial_price: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, tt.body)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if _, err := cfg.Resolve(); err == nil {
				t.Error("expected resolve to fail")
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BURNLAB_VARIANT", string(model.VariantTreasuryMatch))
	t.Setenv("BURNLAB_DURATION_MONTHS", "12")
	t.Setenv("SQLITE_PATH", "/tmp/override.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scenario.Variant != string(model.VariantTreasuryMatch) {
		t.Errorf("variant override not applied, got %q", cfg.Scenario.Variant)
	}
	if cfg.Scenario.DurationMonths != 12 {
		t.Errorf("duration override not applied, got %d", cfg.Scenario.DurationMonths)
	}
	if cfg.Output.SQLitePath != "/tmp/override.db" {
		t.Errorf("sqlite path override not applied, got %q", cfg.Output.SQLitePath)
	}
}

func TestLoad_MalformedDurationOverrideWarns(t *testing.T) {
	t.Setenv("BURNLAB_DURATION_MONTHS", "eighteen")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scenario.DurationMonths != 36 {
		t.Errorf("malformed override must keep the default duration, got %d", cfg.Scenario.DurationMonths)
	}
	if !strings.Contains(buf.String(), "[WARN]") || !strings.Contains(buf.String(), "BURNLAB_DURATION_MONTHS") {
		t.Errorf("expected a warning naming the variable, got %q", buf.String())
	}
}
