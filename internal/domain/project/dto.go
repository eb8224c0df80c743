package project

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	ManagerID   string  `json:"manager_id"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		}
	}

	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_id",
			Message: "manager_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignEmployeeRequest struct {
	ProjectID       string  `json:"project_id"`
	EmployeeID      string  `json:"employee_id"`
	TaskDescription *string `json:"task_description,omitempty"`
}

func (r *AssignEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProgressRequest struct {
	AssignmentID         string `json:"assignment_id"`
	CompletionPercentage int    `json:"completion_percentage"`
}

func (r *UpdateProgressRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignment_id",
			Message: "assignment_id is required",
		})
	}

	if r.CompletionPercentage < 0 || r.CompletionPercentage > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "completion_percentage",
			Message: "completion_percentage must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID                   string  `json:"id"`
	ProjectID            string  `json:"project_id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         *string `json:"employee_name,omitempty"`
	EmployeeSAPID        *string `json:"employee_sap_id,omitempty"`
	CompletionPercentage int     `json:"completion_percentage"`
	TaskDescription      *string `json:"task_description,omitempty"`
	AssignedAt           string  `json:"assigned_at"`
	CompletedAt          *string `json:"completed_at,omitempty"`
}

type ProjectResponse struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Description          *string              `json:"description,omitempty"`
	StartDate            string               `json:"start_date"`
	EndDate              *string              `json:"end_date,omitempty"`
	Status               string               `json:"status"`
	ManagerID            string               `json:"manager_id"`
	ManagerName          *string              `json:"manager_name,omitempty"`
	CompletionPercentage int                  `json:"completion_percentage"`
	CompletedAssignments int                  `json:"completed_assignments"`
	Assignments          []AssignmentResponse `json:"assignments"`
}

// ProjectDetailResponse additionally splits assignments by completion.
type ProjectDetailResponse struct {
	ProjectResponse
	Completed []AssignmentResponse `json:"completed"`
	Pending   []AssignmentResponse `json:"pending"`
}

// ProjectService defines business logic for project administration and
// progress tracking.
type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	List(ctx context.Context) ([]ProjectResponse, error)
	GetDetail(ctx context.Context, id string) (ProjectDetailResponse, error)
	AssignEmployee(ctx context.Context, req AssignEmployeeRequest) (AssignmentResponse, error)
	UpdateProgress(ctx context.Context, req UpdateProgressRequest) (AssignmentResponse, error)
}
