package runstore

import "time"

// Status represents the lifecycle of a recorded run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one pipeline invocation as stored in the run database.
type Run struct {
	ID           string
	Status       Status
	StartedAt    time.Time
	FinishedAt   time.Time
	RawRows      int
	CleanedRows  int
	OutputPath   string
	StatsJSON    string
	ErrorMessage string
}

// Finished reports whether the run has reached a terminal status.
func (r *Run) Finished() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}
