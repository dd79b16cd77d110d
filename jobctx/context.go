package jobctx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xraph/stride"
	"github.com/xraph/stride/ext"
	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
	"github.com/xraph/stride/scheduler"
	"github.com/xraph/stride/trigger"
)

// Context is the execution context for one firing of one job. It is a
// stateless facade over the persisted job detail: reads and writes go
// to the detail's data map, and the scheduler manager is only touched
// on flush and teardown.
type Context struct {
	cfg     stride.Config
	firing  *scheduler.Firing
	detail  *job.Detail
	jobID   id.JobID
	trig    trigger.Handle
	manager scheduler.Manager

	extensions *ext.Registry
	logger     *slog.Logger
	now        func() time.Time

	initStep int
	maxStep  int
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the structured logger for the context.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithExtensions sets the extension registry lifecycle events are
// emitted through.
func WithExtensions(r *ext.Registry) Option {
	return func(c *Context) { c.extensions = r }
}

// WithClock overrides the time source. Test seam.
func WithClock(now func() time.Time) Option {
	return func(c *Context) { c.now = now }
}

// New constructs a Context for one firing. The manager is an explicit
// dependency so contexts stay independently testable.
//
// Construction fails fast on invariant violations of the surrounding
// scheduler: a nil firing, a firing without a job detail, or a firing
// without a trigger. None of these are recoverable for this firing.
func New(cfg stride.Config, firing *scheduler.Firing, manager scheduler.Manager, opts ...Option) (*Context, error) {
	if firing == nil {
		return nil, fmt.Errorf("jobctx: nil firing")
	}
	if firing.Detail == nil {
		return nil, stride.ErrMissingDetail
	}
	if firing.Trigger == nil {
		return nil, stride.ErrMissingTrigger
	}
	if manager == nil {
		return nil, fmt.Errorf("jobctx: nil scheduler manager")
	}

	detail := firing.Detail

	// The identity is re-derived each firing: the scheduler assigns the
	// key, the configuration supplies the cluster.
	jobID := id.NewJobID(cfg.ClusterName, detail.ID.Group, detail.ID.Name)

	c := &Context{
		cfg:      cfg,
		firing:   firing,
		detail:   detail,
		jobID:    jobID,
		trig:     firing.Trigger,
		manager:  manager,
		logger:   slog.Default(),
		now:      time.Now,
		initStep: cfg.InitStep,
		maxStep:  cfg.MaxStep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// JobID returns the identity of the job this firing executes.
func (c *Context) JobID() id.JobID { return c.jobID }

// Detail returns the durable job record backing this context.
func (c *Context) Detail() *job.Detail { return c.detail }

// Trigger returns the handle that caused this firing.
func (c *Context) Trigger() trigger.Handle { return c.trig }

// Recovering reports whether this firing is a post-crash recovery replay.
func (c *Context) Recovering() bool { return c.firing.Recovering }

// Summary returns the job's append-only audit record.
func (c *Context) Summary() *job.Summary { return c.detail.Summary }

// AddUpdate appends a status update to the job summary.
func (c *Context) AddUpdate(ctx context.Context, status stride.Status, message string) job.StatusUpdate {
	u := c.detail.Summary.AddUpdate(status, message)
	if c.extensions != nil {
		c.extensions.EmitUpdateAppended(ctx, c.jobID, u)
	}
	return u
}

// AddUpdateWithCause appends a status update whose message carries the
// formatted cause chain. A nil cause behaves like AddUpdate.
func (c *Context) AddUpdateWithCause(ctx context.Context, status stride.Status, message string, cause error) job.StatusUpdate {
	u := c.detail.Summary.AddUpdateWithCause(status, message, cause)
	if c.extensions != nil {
		c.extensions.EmitUpdateAppended(ctx, c.jobID, u)
	}
	return u
}

// ChildJobIDs returns the identities of child jobs recorded against the
// summary.
func (c *Context) ChildJobIDs() []id.JobID {
	return c.detail.Summary.ChildJobIDs()
}

// UpdateJobData flushes in-memory detail mutations back through the
// scheduler manager. Unlike teardown, flush failures are the caller's to
// handle: a failed flush mid-execution usually means the step just taken
// must not be considered durable.
func (c *Context) UpdateJobData(ctx context.Context) error {
	if err := c.manager.UpdateJobData(ctx, c.detail); err != nil {
		return fmt.Errorf("jobctx: update job data %s: %w", c.jobID, err)
	}
	return nil
}
