package task

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// ParseStatus reports whether s names a known task status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ParsePriority reports whether s names a known priority.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), true
	}
	return "", false
}

// Task is assigned to one employee by another employee. StartedAt and
// CompletedAt are stamped on the first transition into IN_PROGRESS and
// COMPLETED respectively and never overwritten by repeat transitions.
type Task struct {
	ID           string
	EmployeeID   string
	AssignedByID string
	Title        string
	Description  string
	Priority     Priority
	Status       Status
	DueDate      *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	Comments     *string
	Attachments  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeSAPID  *string
	AssignedByName *string
}

// ApplyStatus transitions the task and maintains the lifecycle timestamps.
// StartedAt and CompletedAt are stamped on the first entry into their status
// only; moving a task back and forth keeps the original stamps.
func (t *Task) ApplyStatus(status Status, now time.Time) {
	t.Status = status
	if status == StatusInProgress && t.StartedAt == nil {
		t.StartedAt = &now
	}
	if status == StatusCompleted && t.CompletedAt == nil {
		t.CompletedAt = &now
	}
}
