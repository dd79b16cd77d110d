package stride

import (
	"errors"
	"strings"
)

var (
	// Construction errors. A firing that fails these checks must not run.
	ErrMissingTrigger = errors.New("stride: firing has no trigger")
	ErrMissingDetail  = errors.New("stride: firing has no job detail")

	// Step validation errors. Either one indicates corrupted persisted
	// state; the engine must treat the firing as a hard stop.
	ErrBadStep        = errors.New("stride: stored job step is not a number")
	ErrStepOutOfRange = errors.New("stride: stored job step is out of range")

	// Store errors.
	ErrNoStore     = errors.New("stride: no store configured")
	ErrJobNotFound = errors.New("stride: job not found")

	// Scheduling errors.
	ErrAlreadyScheduled = errors.New("stride: job already scheduled")
	ErrNotScheduled     = errors.New("stride: job not scheduled")
)

// FormatCause renders a diagnostic message followed by the cause chain of
// an error, one cause per line. A nil cause yields the message unchanged;
// an empty message yields only the chain. Used for persisted status
// messages, where the full failure trace must survive the process.
func FormatCause(message string, cause error) string {
	if cause == nil {
		return message
	}

	var b strings.Builder
	if message != "" {
		b.WriteString(message)
	}
	for err := cause; err != nil; err = errors.Unwrap(err) {
		if b.Len() > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}
