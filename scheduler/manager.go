package scheduler

import (
	"context"
	"time"

	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
	"github.com/xraph/stride/trigger"
)

// Manager is the scheduler-side collaborator the execution context calls
// during teardown and flush. Both operations may fail with a
// scheduler-domain error; the completion controller logs and absorbs
// those failures rather than re-raising them.
type Manager interface {
	// UnscheduleJob removes all future firings for the job.
	UnscheduleJob(ctx context.Context, jobID id.JobID) error

	// UpdateJobData flushes in-memory job detail mutations back to the
	// persistence layer.
	UpdateJobData(ctx context.Context, detail *job.Detail) error
}

// Firing describes one scheduler-triggered invocation of a job. The
// scheduler builds one per invocation and hands it to the engine, which
// constructs an execution context from it.
type Firing struct {
	// Detail is the durable job record this firing executes against.
	Detail *job.Detail

	// Trigger is the handle that caused this firing. Required; a firing
	// without a trigger is an invariant violation of the scheduler.
	Trigger trigger.Handle

	// Recovering reports whether this firing is a post-crash recovery
	// replay of an earlier, interrupted firing.
	Recovering bool

	// FiredAt is when the scheduler fired the job.
	FiredAt time.Time
}
