// Package trigger defines the scheduling handles a job context references.
// A trigger decides when its job fires next; that decision is owned by the
// scheduler and is out of scope here. The context only needs to read the
// handle and, on terminal completion, stop future firings through it.
package trigger

import "time"

// Handle is the read side of a trigger.
type Handle interface {
	// Key identifies the trigger within its scheduler.
	Key() string

	// NextFireTime returns the next planned firing, if one is scheduled.
	NextFireTime() (time.Time, bool)
}

// Mutable is implemented by handles that support scheduling control. The
// completion controller uses it to stop future firings in place; handles
// that do not implement it are logged and skipped, never failed on.
type Mutable interface {
	Handle

	// SetEndTime caps the trigger's effective schedule.
	SetEndTime(t time.Time)

	// ClearNextFireTime removes the pending firing.
	ClearNextFireTime()
}

// Simple is a plain mutable trigger handle. It carries scheduling
// bookkeeping only; computing firing times is the scheduler's concern.
type Simple struct {
	key      string
	nextFire *time.Time
	endTime  *time.Time
}

var _ Mutable = (*Simple)(nil)

// NewSimple creates a Simple handle with an initial next fire time.
func NewSimple(key string, nextFire time.Time) *Simple {
	nf := nextFire
	return &Simple{key: key, nextFire: &nf}
}

// Key implements Handle.
func (s *Simple) Key() string { return s.key }

// NextFireTime implements Handle.
func (s *Simple) NextFireTime() (time.Time, bool) {
	if s.nextFire == nil {
		return time.Time{}, false
	}
	return *s.nextFire, true
}

// SetNextFireTime records the next planned firing.
func (s *Simple) SetNextFireTime(t time.Time) {
	nf := t
	s.nextFire = &nf
}

// SetEndTime implements Mutable.
func (s *Simple) SetEndTime(t time.Time) {
	et := t
	s.endTime = &et
}

// EndTime returns the effective end of the schedule, if capped.
func (s *Simple) EndTime() (time.Time, bool) {
	if s.endTime == nil {
		return time.Time{}, false
	}
	return *s.endTime, true
}

// ClearNextFireTime implements Mutable.
func (s *Simple) ClearNextFireTime() {
	s.nextFire = nil
}

// Frozen is a read-only handle for schedules that cannot be stopped in
// place (externally owned triggers). The completion controller detects
// the missing Mutable implementation and falls through to unscheduling.
type Frozen struct {
	key      string
	nextFire *time.Time
}

var _ Handle = (*Frozen)(nil)

// NewFrozen creates a Frozen handle.
func NewFrozen(key string) *Frozen {
	return &Frozen{key: key}
}

// NewFrozenAt creates a Frozen handle with a fixed next fire time.
func NewFrozenAt(key string, nextFire time.Time) *Frozen {
	nf := nextFire
	return &Frozen{key: key, nextFire: &nf}
}

// Key implements Handle.
func (f *Frozen) Key() string { return f.key }

// NextFireTime implements Handle.
func (f *Frozen) NextFireTime() (time.Time, bool) {
	if f.nextFire == nil {
		return time.Time{}, false
	}
	return *f.nextFire, true
}
