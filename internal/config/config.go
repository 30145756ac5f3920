package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"BurnLab/internal/model"
)

// Config is the raw scenario as a researcher writes it: daily volumes,
// fee rates in basis points, shares in percent. Resolve turns it into
// the normalized model.Parameters the engine consumes.
type Config struct {
	Scenario struct {
		Name           string `yaml:"name"`
		Variant        string `yaml:"variant"` // "treasury_match" or "direct_buyback"
		DurationMonths int    `yaml:"duration_months"`
	} `yaml:"scenario"`
	Volumes struct {
		SwapDaily      float64 `yaml:"swap_daily"`
		PerpDaily      float64 `yaml:"perp_daily"`
		SecondaryDaily float64 `yaml:"secondary_daily"`
		DaysPerMonth   float64 `yaml:"days_per_month"`
	} `yaml:"volumes"`
	Fees struct {
		TradeFeeBps        float64 `yaml:"trade_fee_bps"`
		SecondaryFeeBps    float64 `yaml:"secondary_fee_bps"`
		SecondaryStakerBps float64 `yaml:"secondary_staker_bps"`
		AffiliatePct       float64 `yaml:"affiliate_pct"`
	} `yaml:"fees"`
	Splits struct {
		BuybackPct        float64 `yaml:"buyback_pct"`
		StakerPct         float64 `yaml:"staker_pct"`
		TreasuryPct       float64 `yaml:"treasury_pct"`
		LegacyStakerPct   float64 `yaml:"legacy_staker_pct"`
		LegacyTreasuryPct float64 `yaml:"legacy_treasury_pct"`
		AutoCompoundPct   float64 `yaml:"auto_compound_pct"`
	} `yaml:"splits"`
	Impact struct {
		SupplyElasticity   float64 `yaml:"supply_elasticity"`
		PressureElasticity float64 `yaml:"pressure_elasticity"`
		DecayPct           float64 `yaml:"decay_pct"`
	} `yaml:"impact"`
	Token struct {
		InitialPrice            float64 `yaml:"initial_price"`
		MaxSupply               float64 `yaml:"max_supply"`
		TotalSupply             float64 `yaml:"total_supply"`
		CirculatingSupply       float64 `yaml:"circulating_supply"`
		Staked                  float64 `yaml:"staked"`
		PrimaryTreasuryTokens   float64 `yaml:"primary_treasury_tokens"`
		SecondaryTreasuryTokens float64 `yaml:"secondary_treasury_tokens"`
	} `yaml:"token"`
	Output struct {
		SQLitePath string `yaml:"sqlite_path"`
		CSVPath    string `yaml:"csv_path"`
		JSONPath   string `yaml:"json_path"`
	} `yaml:"output"`
	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
}

// Load reads a scenario from a YAML file, then applies environment
// variable overrides and defaults. A missing file yields the default
// scenario.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse scenario: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BURNLAB_VARIANT"); v != "" {
		cfg.Scenario.Variant = v
	}
	if v := os.Getenv("BURNLAB_DURATION_MONTHS"); v != "" {
		if months, err := strconv.Atoi(v); err == nil {
			cfg.Scenario.DurationMonths = months
		} else {
			log.Printf("[WARN] ignoring BURNLAB_DURATION_MONTHS=%q: %v", v, err)
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Output.SQLitePath = v
	}
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.Output.CSVPath = v
	}
	if v := os.Getenv("JSON_PATH"); v != "" {
		cfg.Output.JSONPath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills the gaps with the reference direct-buyback
// scenario: 49.4M/mo swap volume at 30 days per month, a 50/30/20
// buyback split, 36 months from a 0.065 starting price.
func (c *Config) applyDefaults() {
	if c.Scenario.Name == "" {
		c.Scenario.Name = "default"
	}
	if c.Scenario.Variant == "" {
		c.Scenario.Variant = string(model.VariantDirectBuyback)
	}
	if c.Scenario.DurationMonths == 0 {
		c.Scenario.DurationMonths = 36
	}
	if c.Volumes.DaysPerMonth == 0 {
		c.Volumes.DaysPerMonth = 30
	}
	if c.Volumes.SwapDaily == 0 {
		c.Volumes.SwapDaily = 49_400_000 / c.Volumes.DaysPerMonth
	}
	if c.Volumes.PerpDaily == 0 {
		c.Volumes.PerpDaily = 2_000_000
	}
	if c.Volumes.SecondaryDaily == 0 {
		c.Volumes.SecondaryDaily = 500_000
	}
	if c.Fees.TradeFeeBps == 0 {
		c.Fees.TradeFeeBps = 25
	}
	if c.Fees.SecondaryFeeBps == 0 {
		c.Fees.SecondaryFeeBps = 10
	}
	if c.Fees.SecondaryStakerBps == 0 {
		c.Fees.SecondaryStakerBps = 5
	}
	if c.Fees.AffiliatePct == 0 {
		c.Fees.AffiliatePct = 10
	}
	if c.Splits.BuybackPct == 0 && c.Splits.StakerPct == 0 && c.Splits.TreasuryPct == 0 {
		c.Splits.BuybackPct = 50
		c.Splits.StakerPct = 30
		c.Splits.TreasuryPct = 20
	}
	if c.Splits.LegacyStakerPct == 0 && c.Splits.LegacyTreasuryPct == 0 {
		c.Splits.LegacyStakerPct = 80
		c.Splits.LegacyTreasuryPct = 20
	}
	if c.Splits.AutoCompoundPct == 0 {
		c.Splits.AutoCompoundPct = 50
	}
	if c.Impact.SupplyElasticity == 0 {
		c.Impact.SupplyElasticity = 1.0
	}
	if c.Impact.PressureElasticity == 0 {
		c.Impact.PressureElasticity = 0.5
	}
	if c.Impact.DecayPct == 0 {
		c.Impact.DecayPct = 30
	}
	if c.Token.InitialPrice == 0 {
		c.Token.InitialPrice = 0.065
	}
	if c.Token.CirculatingSupply == 0 {
		c.Token.CirculatingSupply = 1_909_200_000
	}
	if c.Token.TotalSupply == 0 {
		c.Token.TotalSupply = 2_400_000_000
	}
	if c.Token.MaxSupply == 0 {
		c.Token.MaxSupply = 10_000_000_000
	}
	if c.Token.Staked == 0 {
		c.Token.Staked = 300_000_000
	}
	if c.Token.PrimaryTreasuryTokens == 0 {
		c.Token.PrimaryTreasuryTokens = 50_000_000
	}
	if c.Token.SecondaryTreasuryTokens == 0 {
		c.Token.SecondaryTreasuryTokens = 10_000_000
	}
}

// Validate checks the raw scenario before resolution.
func (c *Config) Validate() error {
	switch model.MechanismVariant(c.Scenario.Variant) {
	case model.VariantTreasuryMatch, model.VariantDirectBuyback:
	default:
		return fmt.Errorf("scenario.variant must be %q or %q, got %q",
			model.VariantTreasuryMatch, model.VariantDirectBuyback, c.Scenario.Variant)
	}
	if c.Scenario.DurationMonths < 1 {
		return fmt.Errorf("scenario.duration_months must be at least 1")
	}
	if c.Volumes.DaysPerMonth <= 0 {
		return fmt.Errorf("volumes.days_per_month must be positive")
	}
	if c.Splits.BuybackPct+c.Splits.StakerPct+c.Splits.TreasuryPct <= 0 {
		return fmt.Errorf("splits must allocate something: buyback+staker+treasury is zero")
	}
	if c.Token.InitialPrice <= 0 {
		return fmt.Errorf("token.initial_price must be positive")
	}
	return nil
}

// Resolve normalizes the raw scenario into engine parameters: daily
// volumes become monthly totals, bps and percents become fractions, and
// the configurable split is rebalanced proportionally so the three
// fractions sum to exactly 1. The engine trusts that reconciliation.
func (c *Config) Resolve() (*model.Parameters, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	buyback := c.Splits.BuybackPct / 100
	staker := c.Splits.StakerPct / 100
	treasury := c.Splits.TreasuryPct / 100
	if sum := buyback + staker + treasury; sum > 0 {
		buyback /= sum
		staker /= sum
		treasury /= sum
	}

	p := &model.Parameters{
		Variant: model.MechanismVariant(c.Scenario.Variant),

		SwapVolumeMonthly:      c.Volumes.SwapDaily * c.Volumes.DaysPerMonth,
		PerpVolumeMonthly:      c.Volumes.PerpDaily * c.Volumes.DaysPerMonth,
		SecondaryVolumeMonthly: c.Volumes.SecondaryDaily * c.Volumes.DaysPerMonth,
		SwapVolumeDaily:        c.Volumes.SwapDaily,
		PerpVolumeDaily:        c.Volumes.PerpDaily,
		SecondaryVolumeDaily:   c.Volumes.SecondaryDaily,

		FeeRate:             c.Fees.TradeFeeBps / 10_000,
		SecondaryFeeRate:    c.Fees.SecondaryFeeBps / 10_000,
		SecondaryStakerRate: c.Fees.SecondaryStakerBps / 10_000,
		AffiliateShare:      c.Fees.AffiliatePct / 100,

		LegacyStakerShare:   c.Splits.LegacyStakerPct / 100,
		LegacyTreasuryShare: c.Splits.LegacyTreasuryPct / 100,
		AutoCompoundRate:    c.Splits.AutoCompoundPct / 100,

		BuybackShare:  buyback,
		StakerShare:   staker,
		TreasuryShare: treasury,

		SupplyElasticity:   c.Impact.SupplyElasticity,
		PressureElasticity: c.Impact.PressureElasticity,
		DecayRate:          c.Impact.DecayPct / 100,

		DurationMonths: c.Scenario.DurationMonths,
		InitialPrice:   c.Token.InitialPrice,

		MaxSupply:                c.Token.MaxSupply,
		InitialTotalSupply:       c.Token.TotalSupply,
		InitialCirculatingSupply: c.Token.CirculatingSupply,
		InitialStaked:            c.Token.Staked,
		InitialPrimaryTreasury:   c.Token.PrimaryTreasuryTokens,
		InitialSecondaryTreasury: c.Token.SecondaryTreasuryTokens,
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("resolve scenario %q: %w", c.Scenario.Name, err)
	}
	return p, nil
}
