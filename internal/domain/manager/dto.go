package manager

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/pkg/validator"
)

type CreateManagerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (r *CreateManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ManagerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	EmployeeCount int64  `json:"employee_count"`
	ProjectCount  int64  `json:"project_count"`
	CreatedAt     string `json:"created_at"`
}

// ManagerService defines business logic for manager administration.
type ManagerService interface {
	Create(ctx context.Context, req CreateManagerRequest) (ManagerResponse, error)
	List(ctx context.Context) ([]ManagerResponse, error)
}
