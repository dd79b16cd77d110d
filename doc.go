// Package stride provides durable, re-entrant execution contexts for
// scheduler-driven jobs. A job may be fired many times (retries, crash
// recovery, multi-phase workflows) and stride tracks where execution
// left off so the engine can resume at the right step each time.
//
// Stride is a library, not a scheduler. The trigger/firing mechanism and
// the durability of the job state store are collaborator responsibilities;
// stride owns the logical state contract between them: job identity,
// the resumable step counter with configured bounds, the status state
// machine with its silent-fallback parse, the awaiting-action sub-state,
// and the completion controller that finalizes status and unschedules
// the job.
//
// # Quick Start
//
//	cfg := stride.DefaultConfig()
//	jc, err := jobctx.New(cfg, firing, manager)
//	if err != nil {
//	    return err // a firing without a trigger is not recoverable
//	}
//	step, err := jc.Step()
//	...
//	jc.SetStep(step + 1)
//	jc.Done(ctx, stride.StatusCompleted)
//
// # Architecture
//
// Stride follows a composable store pattern: the job package defines the
// persistence contract (job.Store) and a single backend implements it.
// Backends for memory, Redis, and Bun/PostgreSQL live under store/.
package stride
