package manager

import "time"

type Manager struct {
	ID         string
	Name       string
	Email      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Aggregated counts joined on list reads
	EmployeeCount int64
	ProjectCount  int64
}
