package project

import "math"

// Progress holds derived completion figures for a project. They are never
// stored; every read path recomputes them from the assignment rows so there is
// no second source of truth to drift.
type Progress struct {
	CompletionPercentage int
	CompletedAssignments int
	TotalAssignments     int
}

// ComputeProgress derives the completion figures from a project's assignments.
// A project with no assignments is 0% complete. Otherwise the percentage is
// the arithmetic mean of assignment percentages rounded half up to the nearest
// integer. An assignment counts as completed only at exactly 100.
func ComputeProgress(assignments []Assignment) Progress {
	p := Progress{TotalAssignments: len(assignments)}
	if len(assignments) == 0 {
		return p
	}

	sum := 0
	for _, a := range assignments {
		sum += a.CompletionPercentage
		if a.CompletionPercentage == 100 {
			p.CompletedAssignments++
		}
	}

	mean := float64(sum) / float64(len(assignments))
	p.CompletionPercentage = int(math.Floor(mean + 0.5))
	return p
}
