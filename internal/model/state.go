package model

// SupplyPool tracks the token supply ceilings and burn progress.
// CirculatingSupply <= TotalSupply <= MaxSupply holds at all times;
// both supplies only ever decrease.
type SupplyPool struct {
	MaxSupply         float64 `json:"max_supply"`
	TotalSupply       float64 `json:"total_supply"`
	CirculatingSupply float64 `json:"circulating_supply"`
	CumulativeBurned  float64 `json:"cumulative_burned"`
}

// TreasuryAccount is a per-venue token balance, clamped at zero.
// The treasury-match variant draws it down; direct buyback only accumulates.
type TreasuryAccount struct {
	Balance float64 `json:"balance"`
}

// StakingPool tracks total staked tokens. Only the treasury-match
// variant grows it (auto-compound purchases).
type StakingPool struct {
	TotalStaked float64 `json:"total_staked"`
}

// PriceState carries the spot price and the temporary impact scalar
// that decays month to month.
type PriceState struct {
	SpotPrice       float64 `json:"spot_price"`
	TemporaryImpact float64 `json:"temporary_impact"`
}

// RunStatus is the orchestrator lifecycle state.
type RunStatus string

const (
	StatusReady     RunStatus = "READY"
	StatusRunning   RunStatus = "RUNNING"
	StatusCompleted RunStatus = "COMPLETED"
	// StatusDepleted marks treasury exhaustion under the treasury-match
	// variant. A normal terminal outcome, not an error.
	StatusDepleted RunStatus = "DEPLETED"
	StatusAborted  RunStatus = "ABORTED"
)

// Terminal reports whether the run can no longer advance.
func (s RunStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusDepleted || s == StatusAborted
}

// SimState is the single mutable state of one run. The engine owns it
// exclusively; every other component receives copies or derived values.
type SimState struct {
	Month             int             `json:"month"`
	Supply            SupplyPool      `json:"supply"`
	PrimaryTreasury   TreasuryAccount `json:"primary_treasury"`
	SecondaryTreasury TreasuryAccount `json:"secondary_treasury"`
	Staking           StakingPool     `json:"staking"`
	Price             PriceState      `json:"price"`
	Status            RunStatus       `json:"status"`
}
