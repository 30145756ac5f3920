package engine

import (
	"fmt"

	"BurnLab/internal/calculator"
	"BurnLab/internal/model"
	"BurnLab/internal/strategy"
)

// Engine owns the mutable simulation state and drives the monthly
// pipeline: fees → distribution → buyback/burn → price impact → state
// update → history. It is single-threaded by design; parallel parameter
// sweeps must construct one Engine per run.
type Engine struct {
	params *model.Parameters
	state  model.SimState

	history []model.HistoryRecord
	annual  map[int]model.AnnualRatio

	distribute strategy.DistributionStrategy
	buyback    strategy.BuybackStrategy
}

// NewEngine validates the parameters, binds the variant strategies and
// resets the state store to its initial values. A finished run is not
// reusable: start the next run from a fresh Engine.
func NewEngine(p *model.Parameters) (*Engine, error) {
	if p == nil {
		return nil, fmt.Errorf("nil parameters")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate parameters: %w", err)
	}

	distribute, buyback, err := strategy.ForVariant(p)
	if err != nil {
		return nil, err
	}

	params := *p
	return &Engine{
		params: &params,
		state: model.SimState{
			Supply: model.SupplyPool{
				MaxSupply:         p.MaxSupply,
				TotalSupply:       p.InitialTotalSupply,
				CirculatingSupply: p.InitialCirculatingSupply,
			},
			PrimaryTreasury:   model.TreasuryAccount{Balance: p.InitialPrimaryTreasury},
			SecondaryTreasury: model.TreasuryAccount{Balance: p.InitialSecondaryTreasury},
			Staking:           model.StakingPool{TotalStaked: p.InitialStaked},
			Price:             model.PriceState{SpotPrice: p.InitialPrice},
			Status:            model.StatusReady,
		},
		annual:     make(map[int]model.AnnualRatio),
		distribute: distribute,
		buyback:    buyback,
	}, nil
}

// Step advances the simulation by exactly one month. It returns false
// when the run is over: configured duration reached, treasury depleted
// under the treasury-match variant, or aborted on a numeric failure.
// The returned error is non-nil only for aborts.
func (e *Engine) Step() (bool, error) {
	switch e.state.Status {
	case model.StatusReady:
		e.state.Status = model.StatusRunning
	case model.StatusRunning:
	default:
		return false, fmt.Errorf("step on %s run", e.state.Status)
	}

	// Legacy depletion semantics: a drained primary treasury ends a
	// treasury-match run before the month is computed.
	if e.depleted() {
		e.state.Status = model.StatusDepleted
		return false, nil
	}

	fees := calculator.ComputeFees(e.params)

	dist, err := e.distribute.Distribute(fees, e.state.Price.SpotPrice)
	if err != nil {
		return false, e.abort(fmt.Errorf("distribute fees: %w", err))
	}

	burn, err := e.buyback.Execute(dist, e.state.Price.SpotPrice, e.state.PrimaryTreasury.Balance)
	if err != nil {
		return false, e.abort(fmt.Errorf("buyback/burn: %w", err))
	}

	impact, err := calculator.ComputeImpact(e.params, &burn,
		e.state.Supply.CirculatingSupply, e.state.Price.TemporaryImpact, e.state.Price.SpotPrice)
	if err != nil {
		return false, e.abort(fmt.Errorf("price impact: %w", err))
	}

	e.apply(fees, dist, burn, impact)
	e.state.Month++
	e.record(fees, dist, burn, impact)
	if e.state.Month%12 == 0 {
		e.aggregateYear()
	}

	if e.state.Month >= e.params.DurationMonths {
		e.state.Status = model.StatusCompleted
		return false, nil
	}
	if e.depleted() {
		e.state.Status = model.StatusDepleted
		return false, nil
	}
	return true, nil
}

// Run drives Step until the run terminates, for callers that have no
// per-month cadence of their own.
func (e *Engine) Run() (model.RunStatus, error) {
	for {
		cont, err := e.Step()
		if err != nil {
			return e.state.Status, err
		}
		if !cont {
			return e.state.Status, nil
		}
	}
}

// Status returns the orchestrator lifecycle state.
func (e *Engine) Status() model.RunStatus { return e.state.Status }

// Snapshot returns a deep copy of the current state, the full history
// and the annual ratios. Consumers can hold or mutate it freely.
func (e *Engine) Snapshot() model.Snapshot {
	history := make([]model.HistoryRecord, len(e.history))
	copy(history, e.history)

	annual := make(map[int]model.AnnualRatio, len(e.annual))
	for year, ratio := range e.annual {
		annual[year] = ratio
	}

	return model.Snapshot{
		State:   e.state,
		History: history,
		Annual:  annual,
	}
}

func (e *Engine) depleted() bool {
	return e.params.Variant == model.VariantTreasuryMatch && e.state.PrimaryTreasury.Balance <= 0
}

// abort marks the run dead. Monthly state is cumulative, so a corrupted
// month invalidates everything after it; there is no retry.
func (e *Engine) abort(err error) error {
	e.state.Status = model.StatusAborted
	return fmt.Errorf("month %d: %w", e.state.Month, err)
}
