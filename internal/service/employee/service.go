package employee

import (
	"context"
	"fmt"

	"github.com/tipl/employee-monitoring/internal/domain/audit"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/employee"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	auditRepo    audit.AuditRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	auditRepo audit.AuditRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		auditRepo:    auditRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetBySAPIDOrEmail(ctx, req.SAPID, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check for existing employee: %w", err)
	}
	if existing != nil {
		if existing.SAPID == req.SAPID {
			return employee.EmployeeResponse{}, employee.ErrSAPIDExists
		}
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			SAPID:      req.SAPID,
			Name:       req.Name,
			Email:      req.Email,
			Department: req.Department,
			Position:   req.Position,
			Role:       req.Role,
			Status:     employee.StatusActive,
			ManagerID:  req.ManagerID,
		})
		if err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionEmployeeCreated,
			Entity:   "Employee",
			EntityID: &created.ID,
			Metadata: map[string]any{
				"sap_id": req.SAPID,
				"name":   req.Name,
				"email":  req.Email,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Apply partial update, capturing only the fields that changed for the
	// audit trail.
	changes := map[string]any{}
	if req.Name != nil && *req.Name != current.Name {
		current.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Email != nil && *req.Email != current.Email {
		current.Email = *req.Email
		changes["email"] = *req.Email
	}
	if req.Department != nil && *req.Department != current.Department {
		current.Department = *req.Department
		changes["department"] = *req.Department
	}
	if req.Position != nil && *req.Position != current.Position {
		current.Position = *req.Position
		changes["position"] = *req.Position
	}
	if req.Role != nil && *req.Role != current.Role {
		current.Role = *req.Role
		changes["role"] = *req.Role
	}
	if req.Status != nil && employee.Status(*req.Status) != current.Status {
		current.Status = employee.Status(*req.Status)
		changes["status"] = *req.Status
	}
	if req.ManagerID != nil {
		current.ManagerID = req.ManagerID
		changes["manager_id"] = *req.ManagerID
	}

	if len(changes) == 0 {
		return mapEmployeeToResponse(current), nil
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, current); err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionEmployeeUpdated,
			Entity:   "Employee",
			EntityID: &current.ID,
			Metadata: map[string]any{"changes": changes},
			Outcome:  audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(current), nil
}

// Delete implements employee.EmployeeService. Deletion is restricted while
// dependent attendance, task, assignment or salary rows exist; deactivate the
// employee instead (status INACTIVE) to keep history intact.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	dependents, err := s.employeeRepo.CountDependents(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count dependents: %w", err)
	}
	if dependents > 0 {
		return employee.ErrEmployeeHasDependents
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Delete(txCtx, id); err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionEmployeeDeleted,
			Entity:   "Employee",
			EntityID: &id,
			Metadata: map[string]any{
				"sap_id": current.SAPID,
				"name":   current.Name,
				"email":  current.Email,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeesResponse, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
		TotalItems: total,
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, mapEmployeeToResponse(e))
	}

	return resp, nil
}

// Search implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Search(ctx context.Context, query string, limit int) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, mapEmployeeToResponse(e))
	}

	return result, nil
}

func mapEmployeeToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          e.ID,
		SAPID:       e.SAPID,
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.Department,
		Position:    e.Position,
		Role:        e.Role,
		Status:      string(e.Status),
		UserID:      e.UserID,
		ManagerID:   e.ManagerID,
		ManagerName: e.ManagerName,
		CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
