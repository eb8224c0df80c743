package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrNoActiveCheckIn  = errors.New("no active check-in found for today")
	ErrNotOwnAttendance = errors.New("not authorized for this employee's attendance")
)
