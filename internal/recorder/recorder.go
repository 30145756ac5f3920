package recorder

import (
	"time"

	"github.com/google/uuid"

	"BurnLab/internal/model"
)

// RunSummary is the one-line description of a finished run.
type RunSummary struct {
	ID                string
	Scenario          string
	Variant           model.MechanismVariant
	Status            model.RunStatus
	Months            int
	FinalPrice        float64
	CumulativeBurned  float64
	PrimaryTreasury   float64
	SecondaryTreasury float64
	TotalStaked       float64
	StartedAt         time.Time
	FinishedAt        time.Time
}

// NewRunSummary builds a summary from a finished run's snapshot.
func NewRunSummary(scenario string, variant model.MechanismVariant, snap model.Snapshot, startedAt time.Time) *RunSummary {
	return &RunSummary{
		ID:                uuid.NewString(),
		Scenario:          scenario,
		Variant:           variant,
		Status:            snap.State.Status,
		Months:            snap.State.Month,
		FinalPrice:        snap.State.Price.SpotPrice,
		CumulativeBurned:  snap.State.Supply.CumulativeBurned,
		PrimaryTreasury:   snap.State.PrimaryTreasury.Balance,
		SecondaryTreasury: snap.State.SecondaryTreasury.Balance,
		TotalStaked:       snap.State.Staking.TotalStaked,
		StartedAt:         startedAt,
		FinishedAt:        time.Now(),
	}
}

// Recorder persists finished runs for later analysis. The engine never
// sees it; the driver dumps a run once it terminates.
type Recorder interface {
	RecordRun(run *RunSummary) error
	RecordHistory(runID string, history []model.HistoryRecord) error
	RecordAnnual(runID string, ratios map[int]model.AnnualRatio) error
	Close() error
}
