// Package memory implements job.Store with in-process maps.
// Safe for concurrent access. Intended for unit testing and development.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/xraph/stride"
	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
)

var _ job.Store = (*Store)(nil)

// Store is a fully in-memory implementation of job.Store. Details are
// cloned on both read and write, so callers never alias the stored
// record and last-writer-wins applies per put.
type Store struct {
	mu      sync.RWMutex
	details map[string]*job.Detail
}

// New returns a new empty Store.
func New() *Store {
	return &Store{details: make(map[string]*job.Detail)}
}

// GetDetail retrieves a job detail by identity.
func (m *Store) GetDetail(_ context.Context, jobID id.JobID) (*job.Detail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.details[jobID.String()]
	if !ok {
		return nil, stride.ErrJobNotFound
	}
	return d.Clone(), nil
}

// PutDetail persists a job detail, creating or replacing the record.
func (m *Store) PutDetail(_ context.Context, d *job.Detail) error {
	m.mu.Lock()
	m.details[d.ID.String()] = d.Clone()
	m.mu.Unlock()
	return nil
}

// DeleteDetail removes a job detail by identity.
func (m *Store) DeleteDetail(_ context.Context, jobID id.JobID) error {
	m.mu.Lock()
	delete(m.details, jobID.String())
	m.mu.Unlock()
	return nil
}

// ListDetails returns all persisted job details, ordered by identity.
func (m *Store) ListDetails(_ context.Context) ([]*job.Detail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.details))
	for key := range m.details {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]*job.Detail, 0, len(keys))
	for _, key := range keys {
		out = append(out, m.details[key].Clone())
	}
	return out, nil
}

// Migrate is a no-op for the memory store.
func (m *Store) Migrate(_ context.Context) error { return nil }

// Ping always succeeds for the memory store.
func (m *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op for the memory store.
func (m *Store) Close() error { return nil }
