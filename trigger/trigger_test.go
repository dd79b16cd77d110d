package trigger_test

import (
	"testing"
	"time"

	"github.com/xraph/stride/trigger"
)

func TestSimple_NextFireTime(t *testing.T) {
	fire := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := trigger.NewSimple("nightly", fire)

	if got := s.Key(); got != "nightly" {
		t.Errorf("Key() = %q, want %q", got, "nightly")
	}

	got, ok := s.NextFireTime()
	if !ok {
		t.Fatal("expected a pending firing")
	}
	if !got.Equal(fire) {
		t.Errorf("NextFireTime() = %v, want %v", got, fire)
	}
}

func TestSimple_ClearNextFireTime(t *testing.T) {
	s := trigger.NewSimple("nightly", time.Now())
	s.ClearNextFireTime()

	if _, ok := s.NextFireTime(); ok {
		t.Error("expected no pending firing after clear")
	}

	later := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.SetNextFireTime(later)
	got, ok := s.NextFireTime()
	if !ok || !got.Equal(later) {
		t.Errorf("NextFireTime() = %v, %v after reschedule, want %v, true", got, ok, later)
	}
}

func TestSimple_EndTime(t *testing.T) {
	s := trigger.NewSimple("nightly", time.Now())

	if _, ok := s.EndTime(); ok {
		t.Error("fresh trigger should have no end time")
	}

	end := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.SetEndTime(end)

	got, ok := s.EndTime()
	if !ok {
		t.Fatal("expected an end time after SetEndTime")
	}
	if !got.Equal(end) {
		t.Errorf("EndTime() = %v, want %v", got, end)
	}
}

func TestSimple_IsMutable(t *testing.T) {
	var h trigger.Handle = trigger.NewSimple("nightly", time.Now())
	if _, ok := h.(trigger.Mutable); !ok {
		t.Error("Simple should implement Mutable")
	}
}

func TestFrozen_NotMutable(t *testing.T) {
	var h trigger.Handle = trigger.NewFrozen("external")
	if _, ok := h.(trigger.Mutable); ok {
		t.Error("Frozen must not implement Mutable")
	}
}

func TestFrozen_NextFireTime(t *testing.T) {
	if _, ok := trigger.NewFrozen("external").NextFireTime(); ok {
		t.Error("NewFrozen should have no fire time")
	}

	fire := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f := trigger.NewFrozenAt("external", fire)
	got, ok := f.NextFireTime()
	if !ok || !got.Equal(fire) {
		t.Errorf("NextFireTime() = %v, %v, want %v, true", got, ok, fire)
	}
}
