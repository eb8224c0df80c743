package employee

import "time"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusOnLeave  Status = "ON_LEAVE"
)

// ParseStatus reports whether s names a known employee status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusOnLeave:
		return Status(s), true
	}
	return "", false
}

type Employee struct {
	ID         string
	SAPID      string
	Name       string
	Email      string
	Department string
	Position   string
	Role       string
	Status     Status
	UserID     *string
	ManagerID  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	ManagerName *string
}
