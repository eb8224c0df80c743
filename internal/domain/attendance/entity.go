package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHalfDay Status = "HALF_DAY"
)

// Attendance is one row per employee per calendar date. The (employee, date)
// pair is unique at the storage layer; racing check-ins surface as a conflict
// instead of duplicate rows.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time // calendar date, time part zero
	CheckInTime  time.Time
	CheckOutTime *time.Time // nil until checkout
	Status       Status
	IsLate       bool
	Location     *string
	DeviceInfo   *string
	IPAddress    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeSAPID *string
}

// IsLateAt reports whether a check-in at t is late relative to the daily
// cutoff (cutoffHour:cutoffMinute in t's location). A check-in at exactly the
// cutoff is not late.
func IsLateAt(t time.Time, cutoffHour, cutoffMinute int) bool {
	cutoff := time.Date(t.Year(), t.Month(), t.Day(), cutoffHour, cutoffMinute, 0, 0, t.Location())
	return t.After(cutoff)
}
