package jobctx

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xraph/stride"
	"github.com/xraph/stride/job"
)

// NotStarted is the sentinel step for a job that has not begun executing.
const NotStarted = -1

// Step returns the durable resumption point for this job.
//
// An absent value yields NotStarted with no error. A present value that
// is not a number wraps stride.ErrBadStep; a number outside the
// configured bounds (and not equal to NotStarted) wraps
// stride.ErrStepOutOfRange. Either error means the persisted state is
// corrupt and the engine must not proceed with this firing; the bounds
// are never silently clamped.
func (c *Context) Step() (int, error) {
	raw, ok := c.detail.Data.Get(job.KeyStep)
	if !ok {
		return NotStarted, nil
	}

	step, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", stride.ErrBadStep, raw)
	}
	if step != NotStarted && (step < c.initStep || step > c.maxStep) {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", stride.ErrStepOutOfRange, step, c.initStep, c.maxStep)
	}

	c.logger.Debug("job step read",
		slog.String("job_id", c.jobID.String()),
		slog.String("status", c.Status().String()),
		slog.Int("step", step),
	)
	return step, nil
}

// SetStep writes the step verbatim into the persisted data map. There is
// no bounds check on write; bounds are enforced on read so corruption by
// any writer is caught, not just writes through this context.
func (c *Context) SetStep(ctx context.Context, step int) {
	c.detail.Data.SetInt(job.KeyStep, step)
	if c.extensions != nil {
		c.extensions.EmitStepAdvanced(ctx, c.jobID, step)
	}
}
