package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xraph/stride"
	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
	"github.com/xraph/stride/trigger"
)

// Local is an in-process Manager backed by a job.Store. It tracks which
// jobs are scheduled and which trigger owns each, persists details
// through the store, and builds Firing events for the engine.
type Local struct {
	store  job.Store
	logger *slog.Logger

	mu       sync.Mutex
	triggers map[string]trigger.Handle // keyed by JobID.String()
}

var _ Manager = (*Local)(nil)

// LocalOption configures a Local manager.
type LocalOption func(*Local)

// WithLogger sets the structured logger for the manager.
func WithLogger(l *slog.Logger) LocalOption {
	return func(m *Local) { m.logger = l }
}

// NewLocal creates a Local manager over the given store.
func NewLocal(store job.Store, opts ...LocalOption) *Local {
	m := &Local{
		store:    store,
		logger:   slog.Default(),
		triggers: make(map[string]trigger.Handle),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ScheduleJob persists the detail and registers its trigger. Returns
// stride.ErrAlreadyScheduled when the identity is already registered.
func (m *Local) ScheduleJob(ctx context.Context, detail *job.Detail, trig trigger.Handle) error {
	key := detail.ID.String()

	m.mu.Lock()
	if _, ok := m.triggers[key]; ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", stride.ErrAlreadyScheduled, key)
	}
	m.triggers[key] = trig
	m.mu.Unlock()

	if err := m.store.PutDetail(ctx, detail); err != nil {
		m.mu.Lock()
		delete(m.triggers, key)
		m.mu.Unlock()
		return fmt.Errorf("scheduler: schedule %s: %w", key, err)
	}

	m.logger.Info("job scheduled",
		slog.String("job_id", key),
		slog.String("trigger", trig.Key()),
	)
	return nil
}

// Fire loads the persisted detail and builds a Firing for the engine.
// Returns stride.ErrNotScheduled when the identity has no trigger.
func (m *Local) Fire(ctx context.Context, jobID id.JobID, recovering bool) (*Firing, error) {
	key := jobID.String()

	m.mu.Lock()
	trig, ok := m.triggers[key]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", stride.ErrNotScheduled, key)
	}

	detail, err := m.store.GetDetail(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("scheduler: fire %s: %w", key, err)
	}

	return &Firing{
		Detail:     detail,
		Trigger:    trig,
		Recovering: recovering,
		FiredAt:    time.Now().UTC(),
	}, nil
}

// UnscheduleJob implements Manager. It removes the trigger registration;
// the persisted detail stays, so a later firing attempt still observes
// the recorded terminal state. Unscheduling an unknown job is an error
// so callers can observe scheduler drift.
func (m *Local) UnscheduleJob(_ context.Context, jobID id.JobID) error {
	key := jobID.String()

	m.mu.Lock()
	_, ok := m.triggers[key]
	delete(m.triggers, key)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", stride.ErrNotScheduled, key)
	}
	m.logger.Info("job unscheduled", slog.String("job_id", key))
	return nil
}

// UpdateJobData implements Manager. It pushes the detail back to the
// persistence layer.
func (m *Local) UpdateJobData(ctx context.Context, detail *job.Detail) error {
	if err := m.store.PutDetail(ctx, detail); err != nil {
		return fmt.Errorf("scheduler: update job data %s: %w", detail.ID, err)
	}
	return nil
}

// Scheduled returns the identities of all currently scheduled jobs.
func (m *Local) Scheduled() []id.JobID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]id.JobID, 0, len(m.triggers))
	for key := range m.triggers {
		jobID, err := id.ParseJobID(key)
		if err != nil {
			continue
		}
		out = append(out, jobID)
	}
	return out
}

// Shutdown unschedules all jobs concurrently and waits for completion.
func (m *Local) Shutdown(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, jobID := range m.Scheduled() {
		g.Go(func() error {
			return m.UnscheduleJob(gctx, jobID)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("scheduler: shutdown: %w", err)
	}
	m.logger.Info("scheduler shut down")
	return nil
}
