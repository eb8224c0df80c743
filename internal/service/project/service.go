package project

import (
	"context"
	"time"

	"github.com/tipl/employee-monitoring/internal/domain/audit"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/employee"
	"github.com/tipl/employee-monitoring/internal/domain/manager"
	"github.com/tipl/employee-monitoring/internal/domain/project"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/pkg/validator"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

type ProjectServiceImpl struct {
	db             *database.DB
	projectRepo    project.ProjectRepository
	assignmentRepo project.AssignmentRepository
	managerRepo    manager.ManagerRepository
	employeeRepo   employee.EmployeeRepository
	auditRepo      audit.AuditRepository

	now func() time.Time
}

func NewProjectService(
	db *database.DB,
	projectRepo project.ProjectRepository,
	assignmentRepo project.AssignmentRepository,
	managerRepo manager.ManagerRepository,
	employeeRepo employee.EmployeeRepository,
	auditRepo audit.AuditRepository,
) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		db:             db,
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		managerRepo:    managerRepo,
		employeeRepo:   employeeRepo,
		auditRepo:      auditRepo,
		now:            time.Now,
	}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if _, err := s.managerRepo.GetByID(ctx, req.ManagerID); err != nil {
		return project.ProjectResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := validator.IsValidDate(*req.EndDate)
		endDate = &parsed
	}

	var created project.Project
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.projectRepo.Create(txCtx, project.Project{
			Name:        req.Name,
			Description: req.Description,
			StartDate:   startDate,
			EndDate:     endDate,
			Status:      project.StatusActive,
			ManagerID:   req.ManagerID,
		})
		if err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionProjectCreated,
			Entity:   "Project",
			EntityID: &created.ID,
			Metadata: map[string]any{
				"name":       req.Name,
				"manager_id": req.ManagerID,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return mapProjectToResponse(created), nil
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, mapProjectToResponse(p))
	}
	return result, nil
}

// GetDetail implements project.ProjectService.
func (s *ProjectServiceImpl) GetDetail(ctx context.Context, id string) (project.ProjectDetailResponse, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectDetailResponse{}, err
	}

	detail := project.ProjectDetailResponse{
		ProjectResponse: mapProjectToResponse(p),
		Completed:       []project.AssignmentResponse{},
		Pending:         []project.AssignmentResponse{},
	}
	for _, a := range p.Assignments {
		resp := mapAssignmentToResponse(a)
		if a.CompletionPercentage == 100 {
			detail.Completed = append(detail.Completed, resp)
		} else {
			detail.Pending = append(detail.Pending, resp)
		}
	}

	return detail, nil
}

// AssignEmployee implements project.ProjectService. New assignments start at
// 0% regardless of the employee's other projects.
func (s *ProjectServiceImpl) AssignEmployee(ctx context.Context, req project.AssignEmployeeRequest) (project.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return project.AssignmentResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return project.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return project.AssignmentResponse{}, err
	}

	var created project.Assignment
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.assignmentRepo.Create(txCtx, project.Assignment{
			ProjectID:            req.ProjectID,
			EmployeeID:           req.EmployeeID,
			CompletionPercentage: 0,
			TaskDescription:      req.TaskDescription,
		})
		if err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionProjectAssigned,
			Entity:   "ProjectAssignment",
			EntityID: &created.ID,
			Metadata: map[string]any{
				"project_id":  req.ProjectID,
				"employee_id": req.EmployeeID,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	return mapAssignmentToResponse(created), nil
}

// UpdateProgress implements project.ProjectService. CompletedAt is set on
// reaching exactly 100 and cleared if progress drops back below.
func (s *ProjectServiceImpl) UpdateProgress(ctx context.Context, req project.UpdateProgressRequest) (project.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return project.AssignmentResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	a, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	oldPercentage := a.CompletionPercentage
	a.SetProgress(req.CompletionPercentage, s.now())

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.assignmentRepo.UpdateProgress(txCtx, a); err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionAssignmentProgressUpdated,
			Entity:   "ProjectAssignment",
			EntityID: &a.ID,
			Metadata: map[string]any{
				"project_id":     a.ProjectID,
				"employee_id":    a.EmployeeID,
				"old_percentage": oldPercentage,
				"new_percentage": req.CompletionPercentage,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return project.AssignmentResponse{}, err
	}

	return mapAssignmentToResponse(a), nil
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func mapAssignmentToResponse(a project.Assignment) project.AssignmentResponse {
	return project.AssignmentResponse{
		ID:                   a.ID,
		ProjectID:            a.ProjectID,
		EmployeeID:           a.EmployeeID,
		EmployeeName:         a.EmployeeName,
		EmployeeSAPID:        a.EmployeeSAPID,
		CompletionPercentage: a.CompletionPercentage,
		TaskDescription:      a.TaskDescription,
		AssignedAt:           a.AssignedAt.Format("2006-01-02 15:04:05"),
		CompletedAt:          timePtrToString(a.CompletedAt),
	}
}

func mapProjectToResponse(p project.Project) project.ProjectResponse {
	progress := project.ComputeProgress(p.Assignments)

	assignments := make([]project.AssignmentResponse, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		assignments = append(assignments, mapAssignmentToResponse(a))
	}

	return project.ProjectResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		StartDate:            p.StartDate.Format("2006-01-02"),
		EndDate:              datePtrToString(p.EndDate),
		Status:               string(p.Status),
		ManagerID:            p.ManagerID,
		ManagerName:          p.ManagerName,
		CompletionPercentage: progress.CompletionPercentage,
		CompletedAssignments: progress.CompletedAssignments,
		Assignments:          assignments,
	}
}
