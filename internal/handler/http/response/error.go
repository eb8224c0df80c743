package response

import (
	"errors"
	"net/http"

	"github.com/tipl/employee-monitoring/internal/domain/attendance"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/employee"
	"github.com/tipl/employee-monitoring/internal/domain/manager"
	"github.com/tipl/employee-monitoring/internal/domain/project"
	"github.com/tipl/employee-monitoring/internal/domain/salary"
	"github.com/tipl/employee-monitoring/internal/domain/task"
	"github.com/tipl/employee-monitoring/internal/domain/user"
	"github.com/tipl/employee-monitoring/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager or admin access required")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSAPIDExists):
		Conflict(w, "SAP ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeHasDependents):
		Conflict(w, "Employee has attendance, task, or salary history and cannot be deleted")

	// Manager domain errors
	case errors.Is(err, manager.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, manager.ErrEmailExists):
		Conflict(w, "Manager email already registered")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrAssignmentNotFound):
		NotFound(w, "Project assignment not found")
	case errors.Is(err, project.ErrAlreadyAssigned):
		Conflict(w, "Employee already assigned to this project")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		BadRequest(w, "No active check-in found for today", nil)
	case errors.Is(err, attendance.ErrNotOwnAttendance):
		Forbidden(w, "Cannot access another employee's attendance")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrNotAuthorized):
		Forbidden(w, "Not authorized for this task")
	case errors.Is(err, task.ErrNoAssignerProfile):
		Forbidden(w, "Account has no employee profile to assign tasks from")

	// Salary domain errors
	case errors.Is(err, salary.ErrRecordNotFound):
		NotFound(w, "Salary record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
