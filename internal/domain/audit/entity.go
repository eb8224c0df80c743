package audit

import "time"

type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)

// Action tags for every mutating procedure.
const (
	ActionEmployeeCreated           = "EMPLOYEE_CREATED"
	ActionEmployeeUpdated           = "EMPLOYEE_UPDATED"
	ActionEmployeeDeleted           = "EMPLOYEE_DELETED"
	ActionManagerCreated            = "MANAGER_CREATED"
	ActionProjectCreated            = "PROJECT_CREATED"
	ActionProjectAssigned           = "PROJECT_ASSIGNED"
	ActionAssignmentProgressUpdated = "ASSIGNMENT_PROGRESS_UPDATED"
	ActionAttendanceCheckIn         = "ATTENDANCE_CHECKIN"
	ActionAttendanceCheckOut        = "ATTENDANCE_CHECKOUT"
	ActionTaskCreated               = "TASK_CREATED"
	ActionTaskStatusUpdated         = "TASK_STATUS_UPDATED"
	ActionTaskDeleted               = "TASK_DELETED"
	ActionSalaryCalculated          = "SALARY_CALCULATED"
	ActionSalaryMarkedPaid          = "SALARY_MARKED_PAID"
)

// Entry is one immutable audit record. The application only ever inserts;
// nothing updates or deletes rows in this table.
type Entry struct {
	ID        string
	UserID    string
	UserName  string
	Action    string
	Entity    string
	EntityID  *string
	IPAddress *string
	Metadata  map[string]any
	Outcome   Outcome
	CreatedAt time.Time
}
