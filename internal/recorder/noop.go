package recorder

import "BurnLab/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *RunSummary) error                            { return nil }
func (n *NoopRecorder) RecordHistory(_ string, _ []model.HistoryRecord) error    { return nil }
func (n *NoopRecorder) RecordAnnual(_ string, _ map[int]model.AnnualRatio) error { return nil }
func (n *NoopRecorder) Close() error                                             { return nil }
