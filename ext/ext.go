package ext

import (
	"context"

	"github.com/xraph/stride"
	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// StatusChanged is called after a context persists a new job status.
type StatusChanged interface {
	OnStatusChanged(ctx context.Context, jobID id.JobID, from, to stride.Status) error
}

// StepAdvanced is called after a context persists a new job step.
type StepAdvanced interface {
	OnStepAdvanced(ctx context.Context, jobID id.JobID, step int) error
}

// JobDone is called after the completion controller has run, with the
// status the job ended in.
type JobDone interface {
	OnJobDone(ctx context.Context, jobID id.JobID, status stride.Status) error
}

// UpdateAppended is called after a status update is appended to a job's
// summary.
type UpdateAppended interface {
	OnUpdateAppended(ctx context.Context, jobID id.JobID, update job.StatusUpdate) error
}

// Shutdown is called once when the owning engine shuts down.
type Shutdown interface {
	OnShutdown(ctx context.Context) error
}
