package stride

// Status represents the observed lifecycle status of a job. It is
// advisory: the context guarantees a durable round-trip for any defined
// value but enforces no transition graph, and an unparsable or missing
// stored value always reads back as StatusUnknown rather than failing.
type Status string

const (
	// StatusUnknown is the default and fallback status. Passing it to the
	// completion controller means "leave the current status unchanged".
	StatusUnknown Status = "unknown"
	// StatusSubmitted means the job has been scheduled but not yet fired.
	StatusSubmitted Status = "submitted"
	// StatusRunning means an engine is currently executing the job.
	StatusRunning Status = "running"
	// StatusPaused means execution is suspended by the engine.
	StatusPaused Status = "paused"
	// StatusAwaiting means the job is waiting on an external actor.
	StatusAwaiting Status = "awaiting"
	// StatusCancelInProgress means a cancel was requested and is underway.
	StatusCancelInProgress Status = "cancel_in_progress"
	// StatusCancelled means the job was cancelled and will not resume.
	StatusCancelled Status = "cancelled"
	// StatusWarning means the job completed with a non-fatal problem.
	StatusWarning Status = "warning"
	// StatusError means the job failed terminally.
	StatusError Status = "error"
	// StatusCompleted means the job finished successfully.
	StatusCompleted Status = "completed"
)

// statuses is the closed set of defined values, keyed by persisted name.
var statuses = map[string]Status{
	string(StatusUnknown):          StatusUnknown,
	string(StatusSubmitted):        StatusSubmitted,
	string(StatusRunning):          StatusRunning,
	string(StatusPaused):           StatusPaused,
	string(StatusAwaiting):         StatusAwaiting,
	string(StatusCancelInProgress): StatusCancelInProgress,
	string(StatusCancelled):        StatusCancelled,
	string(StatusWarning):          StatusWarning,
	string(StatusError):            StatusError,
	string(StatusCompleted):        StatusCompleted,
}

// ParseStatus parses a persisted status name. It is total: the second
// return value reports whether s named a defined status, and callers
// choose the fallback branch explicitly instead of relying on a caught
// parse failure.
func ParseStatus(s string) (Status, bool) {
	status, ok := statuses[s]
	return status, ok
}

// String returns the persisted name of the status.
func (s Status) String() string { return string(s) }

// Terminal reports whether no further firings are expected after this
// status.
func (s Status) Terminal() bool {
	switch s {
	case StatusCancelled, StatusWarning, StatusError, StatusCompleted:
		return true
	}
	return false
}
