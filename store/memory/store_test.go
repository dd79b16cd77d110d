package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/stride"
	"github.com/xraph/stride/id"
	"github.com/xraph/stride/job"
	"github.com/xraph/stride/store/memory"
)

func TestStore_GetMissing(t *testing.T) {
	s := memory.New()

	_, err := s.GetDetail(context.Background(), id.NewJobID("c", "g", "missing"))
	if !errors.Is(err, stride.ErrJobNotFound) {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	d := job.NewDetail(id.NewJobID("c", "g", "n"))
	d.Data.Set("k", "v")
	d.Summary.AddUpdate(stride.StatusRunning, "started")

	if err := s.PutDetail(ctx, d); err != nil {
		t.Fatalf("PutDetail: %v", err)
	}

	got, err := s.GetDetail(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if got.ID != d.ID {
		t.Errorf("ID = %v, want %v", got.ID, d.ID)
	}
	if v := got.Data.GetString("k"); v != "v" {
		t.Errorf("Data[k] = %q, want %q", v, "v")
	}
	if n := len(got.Summary.Updates()); n != 1 {
		t.Errorf("summary has %d updates, want 1", n)
	}
}

func TestStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	jobID := id.NewJobID("c", "g", "n")

	first := job.NewDetail(jobID)
	first.Data.Set("k", "old")
	if err := s.PutDetail(ctx, first); err != nil {
		t.Fatalf("PutDetail: %v", err)
	}

	second := job.NewDetail(jobID)
	second.Data.Set("k", "new")
	if err := s.PutDetail(ctx, second); err != nil {
		t.Fatalf("PutDetail: %v", err)
	}

	got, err := s.GetDetail(ctx, jobID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if v := got.Data.GetString("k"); v != "new" {
		t.Errorf("Data[k] = %q, want last write", v)
	}
}

func TestStore_NoAliasing(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	d := job.NewDetail(id.NewJobID("c", "g", "n"))
	d.Data.Set("k", "v")
	if err := s.PutDetail(ctx, d); err != nil {
		t.Fatalf("PutDetail: %v", err)
	}

	// Mutating the caller's copy must not reach the stored record.
	d.Data.Set("k", "mutated")

	got, err := s.GetDetail(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if v := got.Data.GetString("k"); v != "v" {
		t.Errorf("stored Data[k] = %q, want %q", v, "v")
	}

	// Nor must mutating a read copy.
	got.Data.Set("k", "mutated-read")
	again, err := s.GetDetail(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if v := again.Data.GetString("k"); v != "v" {
		t.Errorf("stored Data[k] = %q after read mutation, want %q", v, "v")
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	d := job.NewDetail(id.NewJobID("c", "g", "n"))
	if err := s.PutDetail(ctx, d); err != nil {
		t.Fatalf("PutDetail: %v", err)
	}
	if err := s.DeleteDetail(ctx, d.ID); err != nil {
		t.Fatalf("DeleteDetail: %v", err)
	}
	if _, err := s.GetDetail(ctx, d.ID); !errors.Is(err, stride.ErrJobNotFound) {
		t.Errorf("err = %v after delete, want ErrJobNotFound", err)
	}

	// Deleting a missing record is not an error.
	if err := s.DeleteDetail(ctx, d.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestStore_ListOrdered(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if err := s.PutDetail(ctx, job.NewDetail(id.NewJobID("c", "g", name))); err != nil {
			t.Fatalf("PutDetail %s: %v", name, err)
		}
	}

	details, err := s.ListDetails(ctx)
	if err != nil {
		t.Fatalf("ListDetails: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("listed %d details, want 3", len(details))
	}
	for i, want := range []string{"alpha", "bravo", "charlie"} {
		if details[i].ID.Name != want {
			t.Errorf("details[%d].Name = %q, want %q", i, details[i].ID.Name, want)
		}
	}
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	if err := s.Migrate(ctx); err != nil {
		t.Errorf("Migrate: %v", err)
	}
	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
