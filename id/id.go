// Package id defines identity types for stride entities.
//
// JobID is a deterministic, structural identity derived from the
// scheduler-assigned key plus the cluster name. It is the key into the
// persisted job state store and the correlation token on every log line.
//
// UpdateID identifies one appended status update. Updates have no natural
// key, so they use TypeID: type-prefixed, K-sortable, UUIDv7-based
// identifiers in the format "upd_...".
package id

import (
	"fmt"
	"strings"

	"go.jetify.com/typeid/v2"
)

// JobID identifies one scheduled job within a cluster. It is an immutable
// value type; equality is structural.
type JobID struct {
	// Cluster is the name of the cluster the job was scheduled in.
	Cluster string
	// Group is the scheduler-assigned key group.
	Group string
	// Name is the scheduler-assigned key name, unique within its group.
	Name string
}

// NewJobID builds a JobID from a cluster name and a scheduler key.
func NewJobID(cluster, group, name string) JobID {
	return JobID{Cluster: cluster, Group: group, Name: name}
}

// String returns the canonical form "cluster/group/name".
func (j JobID) String() string {
	return j.Cluster + "/" + j.Group + "/" + j.Name
}

// IsZero reports whether the identity is the zero value.
func (j JobID) IsZero() bool {
	return j == JobID{}
}

// ParseJobID parses the canonical "cluster/group/name" form.
func ParseJobID(s string) (JobID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return JobID{}, fmt.Errorf("id: parse job id %q: want cluster/group/name", s)
	}
	return JobID{Cluster: parts[0], Group: parts[1], Name: parts[2]}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (j JobID) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *JobID) UnmarshalText(b []byte) error {
	parsed, err := ParseJobID(string(b))
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}

// updatePrefix is the TypeID prefix for status update identifiers.
const updatePrefix = "upd"

// UpdateID identifies a single status update appended to a job summary.
//
//nolint:recvcheck // Value receivers for read-only methods, pointer receiver for UnmarshalText.
type UpdateID struct {
	inner typeid.TypeID
	valid bool
}

// NilUpdateID is the zero-value UpdateID.
var NilUpdateID UpdateID

// NewUpdateID generates a new globally unique update identifier.
func NewUpdateID() UpdateID {
	tid, err := typeid.Generate(updatePrefix)
	if err != nil {
		panic(fmt.Sprintf("id: generate update id: %v", err))
	}
	return UpdateID{inner: tid, valid: true}
}

// ParseUpdateID parses an update identifier string (e.g.
// "upd_01h2xcejqtf2nbrexx3vqjhp41").
func ParseUpdateID(s string) (UpdateID, error) {
	if s == "" {
		return NilUpdateID, fmt.Errorf("id: parse update id: empty string")
	}
	tid, err := typeid.Parse(s)
	if err != nil {
		return NilUpdateID, fmt.Errorf("id: parse update id %q: %w", s, err)
	}
	if tid.Prefix() != updatePrefix {
		return NilUpdateID, fmt.Errorf("id: parse update id %q: expected prefix %q", s, updatePrefix)
	}
	return UpdateID{inner: tid, valid: true}, nil
}

// String returns the canonical TypeID form, or "" for the zero value.
func (u UpdateID) String() string {
	if !u.valid {
		return ""
	}
	return u.inner.String()
}

// IsZero reports whether the identifier is the zero value.
func (u UpdateID) IsZero() bool { return !u.valid }

// MarshalText implements encoding.TextMarshaler.
func (u UpdateID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UpdateID) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*u = NilUpdateID
		return nil
	}
	parsed, err := ParseUpdateID(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
