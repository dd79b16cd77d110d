package ext

import (
	"context"
	"log/slog"

	"github.com/xraph/stride"
	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
)

// Named entry types pair a hook implementation with the extension name
// captured at registration time. This avoids type-asserting back to
// Extension inside the emit methods.
type statusChangedEntry struct {
	name string
	hook StatusChanged
}

type stepAdvancedEntry struct {
	name string
	hook StepAdvanced
}

type jobDoneEntry struct {
	name string
	hook JobDone
}

type updateAppendedEntry struct {
	name string
	hook UpdateAppended
}

type shutdownEntry struct {
	name string
	hook Shutdown
}

// Registry holds registered extensions and dispatches lifecycle events
// to them. It type-caches extensions at registration time so emit calls
// iterate only over extensions that implement the relevant hook.
type Registry struct {
	extensions []Extension
	logger     *slog.Logger

	// Type-cached slices for each lifecycle hook.
	statusChanged  []statusChangedEntry
	stepAdvanced   []stepAdvancedEntry
	jobDone        []jobDoneEntry
	updateAppended []updateAppendedEntry
	shutdown       []shutdownEntry
}

// NewRegistry creates an extension registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Register adds an extension and type-asserts it into all applicable
// hook caches. Extensions are notified in registration order.
func (r *Registry) Register(e Extension) {
	r.extensions = append(r.extensions, e)
	name := e.Name()

	if h, ok := e.(StatusChanged); ok {
		r.statusChanged = append(r.statusChanged, statusChangedEntry{name, h})
	}
	if h, ok := e.(StepAdvanced); ok {
		r.stepAdvanced = append(r.stepAdvanced, stepAdvancedEntry{name, h})
	}
	if h, ok := e.(JobDone); ok {
		r.jobDone = append(r.jobDone, jobDoneEntry{name, h})
	}
	if h, ok := e.(UpdateAppended); ok {
		r.updateAppended = append(r.updateAppended, updateAppendedEntry{name, h})
	}
	if h, ok := e.(Shutdown); ok {
		r.shutdown = append(r.shutdown, shutdownEntry{name, h})
	}
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []Extension { return r.extensions }

// EmitStatusChanged notifies all extensions that implement StatusChanged.
func (r *Registry) EmitStatusChanged(ctx context.Context, jobID id.JobID, from, to stride.Status) {
	for _, e := range r.statusChanged {
		if err := e.hook.OnStatusChanged(ctx, jobID, from, to); err != nil {
			r.logHookError("OnStatusChanged", e.name, err)
		}
	}
}

// EmitStepAdvanced notifies all extensions that implement StepAdvanced.
func (r *Registry) EmitStepAdvanced(ctx context.Context, jobID id.JobID, step int) {
	for _, e := range r.stepAdvanced {
		if err := e.hook.OnStepAdvanced(ctx, jobID, step); err != nil {
			r.logHookError("OnStepAdvanced", e.name, err)
		}
	}
}

// EmitJobDone notifies all extensions that implement JobDone.
func (r *Registry) EmitJobDone(ctx context.Context, jobID id.JobID, status stride.Status) {
	for _, e := range r.jobDone {
		if err := e.hook.OnJobDone(ctx, jobID, status); err != nil {
			r.logHookError("OnJobDone", e.name, err)
		}
	}
}

// EmitUpdateAppended notifies all extensions that implement UpdateAppended.
func (r *Registry) EmitUpdateAppended(ctx context.Context, jobID id.JobID, update job.StatusUpdate) {
	for _, e := range r.updateAppended {
		if err := e.hook.OnUpdateAppended(ctx, jobID, update); err != nil {
			r.logHookError("OnUpdateAppended", e.name, err)
		}
	}
}

// EmitShutdown notifies all extensions that implement Shutdown.
func (r *Registry) EmitShutdown(ctx context.Context) {
	for _, e := range r.shutdown {
		if err := e.hook.OnShutdown(ctx); err != nil {
			r.logHookError("OnShutdown", e.name, err)
		}
	}
}

func (r *Registry) logHookError(hook, extension string, err error) {
	r.logger.Error("extension hook error",
		slog.String("hook", hook),
		slog.String("extension", extension),
		slog.String("error", err.Error()),
	)
}
