package employee

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/domain/user"
	"github.com/tipl/employee-monitoring/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	SAPID      string  `json:"sap_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Role       string  `json:"role"`
	ManagerID  *string `json:"manager_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SAPID) {
		errs = append(errs, validator.ValidationError{
			Field:   "sap_id",
			Message: "sap_id is required",
		})
	} else if !validator.IsValidSAPID(r.SAPID) {
		errs = append(errs, validator.ValidationError{
			Field:   "sap_id",
			Message: "sap_id must look like SAP-0001",
		})
	}

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

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if r.Role == "" {
		r.Role = string(user.RoleEmployee)
	} else if _, ok := user.ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of ADMIN, MANAGER, EMPLOYEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest applies a partial update; nil fields are untouched.
type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Role       *string `json:"role,omitempty"`
	Status     *string `json:"status,omitempty"`
	ManagerID  *string `json:"manager_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.Role != nil {
		if _, ok := user.ParseRole(*r.Role); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of ADMIN, MANAGER, EMPLOYEE",
			})
		}
	}

	if r.Status != nil {
		if _, ok := ParseStatus(*r.Status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of ACTIVE, INACTIVE, ON_LEAVE",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Status     *string
	Department *string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	SAPID       string  `json:"sap_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Department  string  `json:"department"`
	Position    string  `json:"position"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	UserID      *string `json:"user_id,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName *string `json:"manager_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ListEmployeesResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
}

// EmployeeService defines business logic for employee administration.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter ListFilter) (ListEmployeesResponse, error)
	Search(ctx context.Context, query string, limit int) ([]EmployeeResponse, error)
}
