package task

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/pkg/validator"
)

type CreateTaskRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 200 characters",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	} else if _, ok := ParsePriority(r.Priority); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of LOW, MEDIUM, HIGH, URGENT",
		})
	}

	if r.DueDate != nil {
		if _, ok := validator.IsValidDateTime(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	TaskID      string   `json:"task_id"`
	Status      string   `json:"status"`
	Comments    *string  `json:"comments,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id is required",
		})
	}

	if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Status   *string
	Priority *string
	Limit    int
}

type StatsFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
}

func (f *StatsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a YYYY-MM-DD date",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	EmployeeSAPID  *string  `json:"employee_sap_id,omitempty"`
	AssignedByID   string   `json:"assigned_by_id"`
	AssignedByName *string  `json:"assigned_by_name,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	Status         string   `json:"status"`
	DueDate        *string  `json:"due_date,omitempty"`
	StartedAt      *string  `json:"started_at,omitempty"`
	CompletedAt    *string  `json:"completed_at,omitempty"`
	Comments       *string  `json:"comments,omitempty"`
	Attachments    []string `json:"attachments,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type StatsResponse struct {
	TotalPending    int     `json:"total_pending"`
	TotalInProgress int     `json:"total_in_progress"`
	TotalCompleted  int     `json:"total_completed"`
	Total           int     `json:"total"`
	CompletionRate  float64 `json:"completion_rate"`
}

// TaskService defines business logic for the task lifecycle.
type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)

	// UpdateStatus transitions a task. Only the assignee, the assigner, or a
	// manager/admin may call it.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (TaskResponse, error)

	GetByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]TaskResponse, error)
	List(ctx context.Context, filter ListFilter) ([]TaskResponse, error)
	GetStats(ctx context.Context, filter StatsFilter) (StatsResponse, error)
	Delete(ctx context.Context, id string) error
}
