package job

import (
	"context"

	"github.com/xraph/stride/id"
)

// Store defines the persistence contract for job details. Backends must
// provide at least last-writer-wins semantics per job; stride never
// requires compare-and-swap.
type Store interface {
	// GetDetail retrieves a job detail by identity.
	// Returns stride.ErrJobNotFound when no record exists.
	GetDetail(ctx context.Context, jobID id.JobID) (*Detail, error)

	// PutDetail persists a job detail, creating or replacing the record.
	PutDetail(ctx context.Context, d *Detail) error

	// DeleteDetail removes a job detail by identity. Deleting a missing
	// record is not an error.
	DeleteDetail(ctx context.Context, jobID id.JobID) error

	// ListDetails returns all persisted job details.
	ListDetails(ctx context.Context) ([]*Detail, error)

	// Migrate prepares backend schema. No-op for schemaless backends.
	Migrate(ctx context.Context) error

	// Ping verifies connectivity to the backend.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
