// Package ext defines the extension system for stride.
// Extensions are notified of execution-context lifecycle events (status
// changes, step advances, terminal completion, appended updates) and can
// react to them: logging, metrics, audit trails.
//
// Each lifecycle hook is a separate interface so extensions opt in only
// to the events they care about. Hook failures are logged, never
// propagated into the job's control flow.
package ext
