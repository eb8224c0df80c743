package project

import (
	"testing"
	"time"
)

func TestComputeProgressEmpty(t *testing.T) {
	p := ComputeProgress(nil)
	if p.CompletionPercentage != 0 || p.CompletedAssignments != 0 || p.TotalAssignments != 0 {
		t.Errorf("ComputeProgress(nil) = %+v, want all zero", p)
	}
}

func TestComputeProgress(t *testing.T) {
	cases := []struct {
		name          string
		percentages   []int
		wantPct       int
		wantCompleted int
	}{
		{"single incomplete", []int{40}, 40, 0},
		{"single complete", []int{100}, 100, 1},
		{"mixed", []int{0, 50, 100}, 50, 1},
		{"all complete", []int{100, 100}, 100, 2},
		{"rounds half up", []int{50, 51}, 51, 0}, // mean 50.5
		{"rounds down below half", []int{33, 33, 34}, 33, 0},
		{"ninety-nine is not completed", []int{99, 99}, 99, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assignments := make([]Assignment, len(c.percentages))
			for i, pct := range c.percentages {
				assignments[i] = Assignment{CompletionPercentage: pct}
			}
			p := ComputeProgress(assignments)
			if p.CompletionPercentage != c.wantPct {
				t.Errorf("CompletionPercentage = %d, want %d", p.CompletionPercentage, c.wantPct)
			}
			if p.CompletedAssignments != c.wantCompleted {
				t.Errorf("CompletedAssignments = %d, want %d", p.CompletedAssignments, c.wantCompleted)
			}
			if p.TotalAssignments != len(c.percentages) {
				t.Errorf("TotalAssignments = %d, want %d", p.TotalAssignments, len(c.percentages))
			}
		})
	}
}

func TestSetProgressCompletedAt(t *testing.T) {
	t0 := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	a := Assignment{CompletionPercentage: 40}

	a.SetProgress(99, t0)
	if a.CompletedAt != nil {
		t.Fatalf("CompletedAt = %v at 99%%, want nil", a.CompletedAt)
	}

	a.SetProgress(100, t0)
	if a.CompletedAt == nil || !a.CompletedAt.Equal(t0) {
		t.Fatalf("CompletedAt = %v at 100%%, want %v", a.CompletedAt, t0)
	}

	// A repeat write of 100 keeps the original stamp.
	a.SetProgress(100, t1)
	if !a.CompletedAt.Equal(t0) {
		t.Errorf("CompletedAt moved to %v on repeat write, want %v", a.CompletedAt, t0)
	}

	// Regressing below 100 clears the stamp; re-completing stamps anew.
	a.SetProgress(80, t1)
	if a.CompletedAt != nil {
		t.Errorf("CompletedAt = %v after regression, want nil", a.CompletedAt)
	}
	a.SetProgress(100, t1)
	if a.CompletedAt == nil || !a.CompletedAt.Equal(t1) {
		t.Errorf("CompletedAt = %v after re-completion, want %v", a.CompletedAt, t1)
	}
}
