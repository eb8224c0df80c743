package manager

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/domain/audit"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/manager"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

type ManagerServiceImpl struct {
	db          *database.DB
	managerRepo manager.ManagerRepository
	auditRepo   audit.AuditRepository
}

func NewManagerService(db *database.DB, managerRepo manager.ManagerRepository, auditRepo audit.AuditRepository) manager.ManagerService {
	return &ManagerServiceImpl{
		db:          db,
		managerRepo: managerRepo,
		auditRepo:   auditRepo,
	}
}

// Create implements manager.ManagerService.
func (s *ManagerServiceImpl) Create(ctx context.Context, req manager.CreateManagerRequest) (manager.ManagerResponse, error) {
	if err := req.Validate(); err != nil {
		return manager.ManagerResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return manager.ManagerResponse{}, err
	}

	var created manager.Manager
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.managerRepo.Create(txCtx, manager.Manager{
			Name:       req.Name,
			Email:      req.Email,
			Department: req.Department,
		})
		if err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionManagerCreated,
			Entity:   "Manager",
			EntityID: &created.ID,
			Metadata: map[string]any{
				"name":       req.Name,
				"email":      req.Email,
				"department": req.Department,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return manager.ManagerResponse{}, err
	}

	return mapManagerToResponse(created), nil
}

// List implements manager.ManagerService.
func (s *ManagerServiceImpl) List(ctx context.Context) ([]manager.ManagerResponse, error) {
	managers, err := s.managerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]manager.ManagerResponse, 0, len(managers))
	for _, m := range managers {
		result = append(result, mapManagerToResponse(m))
	}

	return result, nil
}

func mapManagerToResponse(m manager.Manager) manager.ManagerResponse {
	return manager.ManagerResponse{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Department:    m.Department,
		EmployeeCount: m.EmployeeCount,
		ProjectCount:  m.ProjectCount,
		CreatedAt:     m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
