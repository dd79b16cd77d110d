package jobctx_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/xraph/stride"
	"github.com/xraph/stride/job"
)

func TestStatus_Fresh(t *testing.T) {
	c, _ := newTestContext(t)
	if got := c.Status(); got != stride.StatusUnknown {
		t.Errorf("Status() = %q, want %q", got, stride.StatusUnknown)
	}
}

func TestStatus_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestContext(t)

	for _, s := range []stride.Status{
		stride.StatusSubmitted,
		stride.StatusRunning,
		stride.StatusPaused,
		stride.StatusAwaiting,
		stride.StatusCancelInProgress,
		stride.StatusCancelled,
		stride.StatusWarning,
		stride.StatusError,
		stride.StatusCompleted,
	} {
		c.SetStatus(ctx, s)
		if got := c.Status(); got != s {
			t.Errorf("Status() = %q after SetStatus(%q)", got, s)
		}
	}
}

func TestStatus_UnparsableDegradesToUnknown(t *testing.T) {
	c, _ := newTestContext(t)
	c.Detail().Data.Set(job.KeyStatus, "exploded")

	if got := c.Status(); got != stride.StatusUnknown {
		t.Errorf("Status() = %q for undefined stored value, want unknown", got)
	}
}

func TestStatusMessage_RoundTrip(t *testing.T) {
	c, _ := newTestContext(t)

	if got := c.StatusMessage(); got != "" {
		t.Errorf("fresh StatusMessage() = %q, want empty", got)
	}

	c.SetStatusMessage("retrying upstream fetch")
	if got := c.StatusMessage(); got != "retrying upstream fetch" {
		t.Errorf("StatusMessage() = %q", got)
	}
}

func TestSetStatusMessageCause(t *testing.T) {
	c, _ := newTestContext(t)

	inner := errors.New("dial tcp: connection refused")
	cause := fmt.Errorf("fetch upstream: %w", inner)
	c.SetStatusMessageCause("ingest failed", cause)

	msg := c.StatusMessage()
	if !strings.HasPrefix(msg, "ingest failed") {
		t.Errorf("message = %q, want human text first", msg)
	}
	if !strings.Contains(msg, "connection refused") {
		t.Errorf("message = %q, want the full cause chain", msg)
	}
	if !strings.Contains(msg, "\r\n") {
		t.Errorf("message = %q, want CRLF-separated chain", msg)
	}
}

func TestSetStatusMessageCause_NilCause(t *testing.T) {
	c, _ := newTestContext(t)

	c.SetStatusMessageCause("just a note", nil)
	if got := c.StatusMessage(); got != "just a note" {
		t.Errorf("StatusMessage() = %q, want the bare message", got)
	}
}

func TestAwaitingAction(t *testing.T) {
	c, _ := newTestContext(t)

	if c.AwaitingAction() {
		t.Error("fresh context should not be awaiting action")
	}

	c.SetAwaitingAction(true)
	if !c.AwaitingAction() {
		t.Error("AwaitingAction() = false after SetAwaitingAction(true)")
	}

	c.SetAwaitingAction(false)
	if c.AwaitingAction() {
		t.Error("AwaitingAction() = true after SetAwaitingAction(false)")
	}
}

func TestAwaitingAction_UnparsableReadsFalse(t *testing.T) {
	c, _ := newTestContext(t)
	c.Detail().Data.Set(job.KeyAwaitingAction, "maybe")

	if c.AwaitingAction() {
		t.Error("unparsable stored flag should read as false")
	}
}

func TestAwaitingAction_IndependentOfStatus(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestContext(t)

	c.SetAwaitingAction(true)
	c.SetStatus(ctx, stride.StatusRunning)

	if !c.AwaitingAction() {
		t.Error("status write must not disturb the awaiting flag")
	}
	if got := c.Status(); got != stride.StatusRunning {
		t.Errorf("Status() = %q, want running", got)
	}
}
