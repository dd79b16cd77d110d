package jobctx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xraph/stride"
	"github.com/xraph/stride/trigger"
)

// Outcome reports the per-sub-step results of terminal teardown, so
// callers and tests can observe partial failures without Done ever
// interrupting their control flow.
type Outcome struct {
	// Status is the status passed to Done. StatusUnknown means the
	// previously persisted status was left unchanged.
	Status stride.Status

	// EndedAt is the end timestamp recorded on the job detail.
	EndedAt time.Time

	// TriggerStopped reports whether the trigger supported scheduling
	// control and was stopped in place.
	TriggerStopped bool

	// TriggerErr is set when the trigger does not support scheduling
	// control. Non-fatal; unscheduling is still attempted.
	TriggerErr error

	// UnscheduleErr is set when the scheduler manager failed to remove
	// the job. Non-fatal; the terminal status and end date are already
	// durably recorded, so a future firing can self-unschedule again.
	UnscheduleErr error
}

// Ok reports whether every teardown sub-step succeeded.
func (o Outcome) Ok() bool {
	return o.TriggerErr == nil && o.UnscheduleErr == nil
}

// Done durably finalizes the job and tears down its schedule:
//
//  1. status, unless StatusUnknown, is persisted as the final status
//     (StatusUnknown means "leave the current value");
//  2. the current time is recorded as the job's end date;
//  3. the trigger's end time is set to now and its next firing cleared,
//     when the trigger supports scheduling control;
//  4. the scheduler manager is asked to unschedule the job.
//
// Steps 3 and 4 are best-effort: their failures are logged with the job
// identity and absorbed into the returned Outcome, never raised, so
// scheduler instability during teardown cannot disturb the caller's
// control flow. Calling Done again on an already-terminal context is an
// idempotent re-run of the same teardown.
func (c *Context) Done(ctx context.Context, status stride.Status) Outcome {
	out := Outcome{Status: status}

	if status != stride.StatusUnknown {
		c.SetStatus(ctx, status)
	}

	endedAt := c.now().UTC()
	out.EndedAt = endedAt
	c.detail.SetEndDate(endedAt, c.cfg.DateFormat)

	c.logger.Debug("job done",
		slog.String("job_id", c.jobID.String()),
		slog.String("status", c.Status().String()),
	)

	if mt, ok := c.trig.(trigger.Mutable); ok {
		mt.SetEndTime(endedAt)
		mt.ClearNextFireTime()
		out.TriggerStopped = true
	} else {
		out.TriggerErr = fmt.Errorf("jobctx: trigger %q does not support scheduling control", c.trig.Key())
		c.logger.Error("cannot stop trigger in place",
			slog.String("job_id", c.jobID.String()),
			slog.String("error", out.TriggerErr.Error()),
		)
	}

	if err := c.manager.UnscheduleJob(ctx, c.jobID); err != nil {
		out.UnscheduleErr = err
		c.logger.Error("failed to unschedule job",
			slog.String("job_id", c.jobID.String()),
			slog.String("error", err.Error()),
		)
	}

	if c.extensions != nil {
		c.extensions.EmitJobDone(ctx, c.jobID, c.Status())
	}
	return out
}

// SetError finalizes the job with StatusError. Sugar for Done.
func (c *Context) SetError(ctx context.Context) Outcome {
	return c.Done(ctx, stride.StatusError)
}
