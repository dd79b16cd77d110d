package stride

import "time"

// Config holds the execution-context configuration shared by every firing.
// It is read once at context construction; changing it afterwards has no
// effect on live contexts.
type Config struct {
	// ClusterName qualifies job identities so that the same scheduler key
	// in two clusters maps to two distinct jobs.
	ClusterName string

	// InitStep is the lowest valid resumption step.
	InitStep int

	// MaxStep is the highest valid resumption step. A persisted step
	// outside [InitStep, MaxStep] is treated as state corruption.
	MaxStep int

	// DateFormat is the layout used when persisting timestamps into the
	// job data map.
	DateFormat string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ClusterName: "default",
		InitStep:    0,
		MaxStep:     100000,
		DateFormat:  time.RFC3339,
	}
}
