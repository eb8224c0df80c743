package project

import "time"

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusOnHold    Status = "ON_HOLD"
)

type Project struct {
	ID          string
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     *time.Time
	Status      Status
	ManagerID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	ManagerName *string
	Assignments []Assignment
}

// Assignment links one employee to one project. CompletedAt is non-nil iff
// CompletionPercentage is exactly 100; the service maintains that on every
// progress write, including clearing it when progress regresses.
type Assignment struct {
	ID                   string
	ProjectID            string
	EmployeeID           string
	CompletionPercentage int
	TaskDescription      *string
	AssignedAt           time.Time
	CompletedAt          *time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeSAPID *string
}

// SetProgress updates the percentage and maintains CompletedAt: stamped when
// the assignment first reaches 100, kept on a repeat write of 100, and
// cleared when progress drops back below.
func (a *Assignment) SetProgress(percentage int, now time.Time) {
	a.CompletionPercentage = percentage
	if percentage == 100 {
		if a.CompletedAt == nil {
			a.CompletedAt = &now
		}
		return
	}
	a.CompletedAt = nil
}
