package models

import "time"

// RunStatus represents the terminal status of a pipeline run
type RunStatus string

const (
	RunStatusCompleted   RunStatus = "COMPLETED"
	RunStatusFailed      RunStatus = "FAILED"
	RunStatusInterrupted RunStatus = "INTERRUPTED"
	RunStatusNoRows      RunStatus = "NO_ROWS"
)

// RunSummary aggregates the outcome of one pipeline run for the final
// log line and for callers that want structured results.
type RunSummary struct {
	RunID         string
	SourceTable   string
	TargetTable   string
	RowsExtracted int
	ChunksLoaded  int
	RowsLoaded    int
	Duration      time.Duration
	Status        RunStatus
	ErrorMessages []string
}

// GetDefaultRunSummary returns a RunSummary with zeroed counters and an
// unset status for the given run session ID.
func GetDefaultRunSummary(runID string) *RunSummary {
	return &RunSummary{
		RunID:         runID,
		ErrorMessages: []string{},
	}
}
