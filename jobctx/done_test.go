package jobctx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xraph/stride"
	"github.com/xraph/stride/jobctx"
	"github.com/xraph/stride/trigger"
)

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestDone_PersistsStatusAndEndDate(t *testing.T) {
	ctx := context.Background()
	c, mgr := newTestContext(t, jobctx.WithClock(fixedClock))

	out := c.Done(ctx, stride.StatusCompleted)

	if !out.Ok() {
		t.Errorf("Outcome not ok: trigger=%v unschedule=%v", out.TriggerErr, out.UnscheduleErr)
	}
	if got := c.Status(); got != stride.StatusCompleted {
		t.Errorf("Status() = %q, want completed", got)
	}
	if !out.EndedAt.Equal(fixedNow) {
		t.Errorf("EndedAt = %v, want %v", out.EndedAt, fixedNow)
	}

	end, ok := c.Detail().EndDate(stride.DefaultConfig().DateFormat)
	if !ok {
		t.Fatal("end date not recorded on detail")
	}
	if !end.Equal(fixedNow) {
		t.Errorf("recorded end date = %v, want %v", end, fixedNow)
	}

	if len(mgr.unscheduled) != 1 {
		t.Fatalf("manager unscheduled %d jobs, want 1", len(mgr.unscheduled))
	}
	if mgr.unscheduled[0] != c.JobID() {
		t.Errorf("unscheduled %v, want %v", mgr.unscheduled[0], c.JobID())
	}
}

func TestDone_StopsMutableTrigger(t *testing.T) {
	ctx := context.Background()
	firing := newFiring("nightly")
	trig := firing.Trigger.(*trigger.Simple)

	c, err := jobctx.New(stride.DefaultConfig(), firing, &fakeManager{}, jobctx.WithClock(fixedClock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out := c.Done(ctx, stride.StatusCompleted)

	if !out.TriggerStopped {
		t.Error("TriggerStopped = false for a mutable trigger")
	}
	if _, ok := trig.NextFireTime(); ok {
		t.Error("next fire time should be cleared")
	}
	end, ok := trig.EndTime()
	if !ok || !end.Equal(fixedNow) {
		t.Errorf("trigger end time = %v, %v, want %v, true", end, ok, fixedNow)
	}
}

func TestDone_FrozenTriggerStillUnschedules(t *testing.T) {
	ctx := context.Background()
	firing := newFiring("nightly")
	firing.Trigger = trigger.NewFrozen("external")

	mgr := &fakeManager{}
	c, err := jobctx.New(stride.DefaultConfig(), firing, mgr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out := c.Done(ctx, stride.StatusCompleted)

	if out.TriggerStopped {
		t.Error("TriggerStopped = true for a read-only trigger")
	}
	if out.TriggerErr == nil {
		t.Error("expected TriggerErr for a read-only trigger")
	}
	if len(mgr.unscheduled) != 1 {
		t.Error("trigger failure must not skip unscheduling")
	}
	if got := c.Status(); got != stride.StatusCompleted {
		t.Errorf("Status() = %q, want completed despite trigger failure", got)
	}
}

func TestDone_UnknownLeavesStatus(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestContext(t)

	c.SetStatus(ctx, stride.StatusRunning)
	out := c.Done(ctx, stride.StatusUnknown)

	if got := c.Status(); got != stride.StatusRunning {
		t.Errorf("Status() = %q, want prior status preserved", got)
	}
	if _, ok := c.Detail().EndDate(stride.DefaultConfig().DateFormat); !ok {
		t.Error("end date should be recorded even when status is left unchanged")
	}
	if !out.Ok() {
		t.Errorf("Outcome not ok: trigger=%v unschedule=%v", out.TriggerErr, out.UnscheduleErr)
	}
}

func TestDone_UnscheduleFailureAbsorbed(t *testing.T) {
	ctx := context.Background()
	mgr := &fakeManager{unscheduleErr: errors.New("scheduler unavailable")}

	c, err := jobctx.New(stride.DefaultConfig(), newFiring("nightly"), mgr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out := c.Done(ctx, stride.StatusCompleted)

	if out.UnscheduleErr == nil {
		t.Error("expected UnscheduleErr in the outcome")
	}
	if out.Ok() {
		t.Error("Outcome should not be ok when unscheduling failed")
	}
	// The terminal state is still durably recorded.
	if got := c.Status(); got != stride.StatusCompleted {
		t.Errorf("Status() = %q, want completed", got)
	}
	if _, ok := c.Detail().EndDate(stride.DefaultConfig().DateFormat); !ok {
		t.Error("end date should be recorded despite unschedule failure")
	}
}

func TestDone_IdempotentRerun(t *testing.T) {
	ctx := context.Background()
	c, mgr := newTestContext(t, jobctx.WithClock(fixedClock))

	first := c.Done(ctx, stride.StatusCompleted)
	second := c.Done(ctx, stride.StatusCompleted)

	if got := c.Status(); got != stride.StatusCompleted {
		t.Errorf("Status() = %q after re-run, want completed", got)
	}
	if !first.EndedAt.Equal(second.EndedAt) {
		t.Errorf("re-run changed EndedAt: %v then %v", first.EndedAt, second.EndedAt)
	}
	if len(mgr.unscheduled) != 2 {
		t.Errorf("manager unscheduled %d times, want one per Done call", len(mgr.unscheduled))
	}
}

func TestSetError(t *testing.T) {
	ctx := context.Background()
	c, mgr := newTestContext(t)

	out := c.SetError(ctx)

	if out.Status != stride.StatusError {
		t.Errorf("Outcome.Status = %q, want error", out.Status)
	}
	if got := c.Status(); got != stride.StatusError {
		t.Errorf("Status() = %q, want error", got)
	}
	if _, ok := c.Detail().EndDate(stride.DefaultConfig().DateFormat); !ok {
		t.Error("end date should be recorded")
	}
	if len(mgr.unscheduled) != 1 {
		t.Errorf("manager unscheduled %d jobs, want 1", len(mgr.unscheduled))
	}
}

func TestDone_OutcomeStatusEcho(t *testing.T) {
	c, _ := newTestContext(t)
	out := c.Done(context.Background(), stride.StatusWarning)
	if out.Status != stride.StatusWarning {
		t.Errorf("Outcome.Status = %q, want warning", out.Status)
	}
}
