// Package jobctx implements the per-firing execution context, the single
// entry point a job engine uses while one firing is running.
//
// A Context is constructed from the firing event and the persisted job
// detail, and is scoped to exactly that firing: it owns no durable state
// of its own and is discarded when the firing ends. Its mutation methods
// are not internally synchronized; the owning scheduler guarantees
// single-threaded execution per firing instance.
//
// The context's one hard failure surface is the step read: a persisted
// step that is non-numeric or outside the configured bounds means the
// durable state is corrupt, and the engine must stop that firing rather
// than resume at an undefined branch. Everything the context does during
// terminal teardown is best-effort by contrast; see Done.
package jobctx
