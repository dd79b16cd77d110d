package job

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/xraph/stride"
	"github.com/xraph/stride/id"
)

// StatusUpdate is one entry in a job's audit history.
type StatusUpdate struct {
	ID        id.UpdateID   `json:"id"`
	Status    stride.Status `json:"status"`
	Message   string        `json:"message,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Summary is the append-only audit record for a job: an ordered sequence
// of status updates plus the identities of any child jobs spawned on its
// behalf. History is never mutated, only appended to.
//
// Unlike the data map, a Summary may be observed outside the owning
// firing (dashboards, parent jobs), so it is safe for concurrent use.
type Summary struct {
	mu       sync.Mutex
	updates  []StatusUpdate
	children []id.JobID
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{}
}

// AddUpdate appends a status update and returns it.
func (s *Summary) AddUpdate(status stride.Status, message string) StatusUpdate {
	u := StatusUpdate{
		ID:        id.NewUpdateID(),
		Status:    status,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.updates = append(s.updates, u)
	s.mu.Unlock()
	return u
}

// AddUpdateWithCause appends a status update whose message carries the
// formatted cause chain. A nil cause behaves like AddUpdate.
func (s *Summary) AddUpdateWithCause(status stride.Status, message string, cause error) StatusUpdate {
	return s.AddUpdate(status, stride.FormatCause(message, cause))
}

// Updates returns a copy of the update history in append order.
func (s *Summary) Updates() []StatusUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StatusUpdate, len(s.updates))
	copy(out, s.updates)
	return out
}

// AddChildJob records the identity of a job spawned on behalf of this one.
func (s *Summary) AddChildJob(child id.JobID) {
	s.mu.Lock()
	s.children = append(s.children, child)
	s.mu.Unlock()
}

// ChildJobIDs returns a copy of the recorded child job identities.
func (s *Summary) ChildJobIDs() []id.JobID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]id.JobID, len(s.children))
	copy(out, s.children)
	return out
}

// Clone returns an independent copy of the summary.
func (s *Summary) Clone() *Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Summary{
		updates:  make([]StatusUpdate, len(s.updates)),
		children: make([]id.JobID, len(s.children)),
	}
	copy(c.updates, s.updates)
	copy(c.children, s.children)
	return c
}

// summaryJSON is the wire form shared by the Redis and Bun stores.
type summaryJSON struct {
	Updates  []StatusUpdate `json:"updates,omitempty"`
	Children []id.JobID     `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s *Summary) MarshalJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(summaryJSON{Updates: s.updates, Children: s.children})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Summary) UnmarshalJSON(b []byte) error {
	var wire summaryJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	s.mu.Lock()
	s.updates = wire.Updates
	s.children = wire.Children
	s.mu.Unlock()
	return nil
}
