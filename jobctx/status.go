package jobctx

import (
	"context"

	"github.com/xraph/stride"
	"github.com/xraph/stride/job"
)

// Status returns the persisted job status. It never fails: a missing or
// unparsable stored value degrades to StatusUnknown, since status is
// advisory and a bad value must not stop a firing.
func (c *Context) Status() stride.Status {
	raw, ok := c.detail.Data.Get(job.KeyStatus)
	if !ok {
		return stride.StatusUnknown
	}
	status, defined := stride.ParseStatus(raw)
	if !defined {
		return stride.StatusUnknown
	}
	return status
}

// SetStatus persists the status name. The component enforces no
// transition graph; any status may follow any other.
func (c *Context) SetStatus(ctx context.Context, status stride.Status) {
	from := c.Status()
	c.detail.Data.Set(job.KeyStatus, status.String())
	if c.extensions != nil {
		c.extensions.EmitStatusChanged(ctx, c.jobID, from, status)
	}
}

// StatusMessage returns the persisted diagnostic message, or "" when none
// has been set.
func (c *Context) StatusMessage() string {
	return c.detail.Data.GetString(job.KeyStatusMessage)
}

// SetStatusMessage persists a free-text diagnostic message.
func (c *Context) SetStatusMessage(message string) {
	c.detail.Data.Set(job.KeyStatusMessage, message)
}

// SetStatusMessageCause persists the message together with the formatted
// failure chain of cause. With a nil cause it behaves exactly like
// SetStatusMessage; with an empty message only the chain is stored.
func (c *Context) SetStatusMessageCause(message string, cause error) {
	if cause == nil {
		c.SetStatusMessage(message)
		return
	}
	c.SetStatusMessage(stride.FormatCause(message, cause))
}

// AwaitingAction reports whether the job is paused pending an external
// actor. A missing or unparsable stored value reads as false.
func (c *Context) AwaitingAction() bool {
	return c.detail.Data.GetBool(job.KeyAwaitingAction)
}

// SetAwaitingAction records whether the job is paused pending an external
// actor. Orthogonal to status; read and written independently.
func (c *Context) SetAwaitingAction(awaiting bool) {
	c.detail.Data.SetBool(job.KeyAwaitingAction, awaiting)
}
