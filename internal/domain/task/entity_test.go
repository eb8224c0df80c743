package task

import (
	"testing"
	"time"
)

func TestApplyStatusStampsOnce(t *testing.T) {
	t0 := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)

	tk := Task{Status: StatusPending}

	tk.ApplyStatus(StatusInProgress, t0)
	if tk.StartedAt == nil || !tk.StartedAt.Equal(t0) {
		t.Fatalf("StartedAt = %v, want %v", tk.StartedAt, t0)
	}
	if tk.CompletedAt != nil {
		t.Fatalf("CompletedAt = %v, want nil before completion", tk.CompletedAt)
	}

	tk.ApplyStatus(StatusCompleted, t1)
	if tk.CompletedAt == nil || !tk.CompletedAt.Equal(t1) {
		t.Fatalf("CompletedAt = %v, want %v", tk.CompletedAt, t1)
	}

	// Reopening and re-completing must not move either stamp.
	tk.ApplyStatus(StatusInProgress, t2)
	tk.ApplyStatus(StatusCompleted, t2)
	if !tk.StartedAt.Equal(t0) {
		t.Errorf("StartedAt moved to %v after reopen, want %v", tk.StartedAt, t0)
	}
	if !tk.CompletedAt.Equal(t1) {
		t.Errorf("CompletedAt moved to %v after re-complete, want %v", tk.CompletedAt, t1)
	}
}

func TestApplyStatusSkipsInProgress(t *testing.T) {
	now := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)

	tk := Task{Status: StatusPending}
	tk.ApplyStatus(StatusCompleted, now)

	if tk.Status != StatusCompleted {
		t.Errorf("Status = %s, want %s", tk.Status, StatusCompleted)
	}
	if tk.StartedAt != nil {
		t.Errorf("StartedAt = %v, want nil when IN_PROGRESS was never entered", tk.StartedAt)
	}
	if tk.CompletedAt == nil || !tk.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", tk.CompletedAt, now)
	}
}

func TestApplyStatusCancelled(t *testing.T) {
	now := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)

	tk := Task{Status: StatusPending}
	tk.ApplyStatus(StatusCancelled, now)

	if tk.Status != StatusCancelled {
		t.Errorf("Status = %s, want %s", tk.Status, StatusCancelled)
	}
	if tk.StartedAt != nil || tk.CompletedAt != nil {
		t.Errorf("cancellation must not stamp timestamps, got StartedAt=%v CompletedAt=%v", tk.StartedAt, tk.CompletedAt)
	}
}
