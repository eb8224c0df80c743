package task

import (
	"context"
	"time"

	"github.com/tipl/employee-monitoring/internal/domain/audit"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/employee"
	"github.com/tipl/employee-monitoring/internal/domain/task"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/pkg/validator"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

type TaskServiceImpl struct {
	db           *database.DB
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
	auditRepo    audit.AuditRepository

	now func() time.Time
}

func NewTaskService(
	db *database.DB,
	taskRepo task.TaskRepository,
	employeeRepo employee.EmployeeRepository,
	auditRepo audit.AuditRepository,
) *TaskServiceImpl {
	return &TaskServiceImpl{
		db:           db,
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		auditRepo:    auditRepo,
		now:          time.Now,
	}
}

// Create implements task.TaskService. The assigner is the caller's own
// employee profile; accounts without one cannot create tasks.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if session.EmployeeID == nil {
		return task.TaskResponse{}, task.ErrNoAssignerProfile
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return task.TaskResponse{}, err
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, _ := validator.IsValidDateTime(*req.DueDate)
		dueDate = &parsed
	}

	var created task.Task
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.taskRepo.Create(txCtx, task.Task{
			EmployeeID:   req.EmployeeID,
			AssignedByID: *session.EmployeeID,
			Title:        req.Title,
			Description:  req.Description,
			Priority:     task.Priority(req.Priority),
			Status:       task.StatusPending,
			DueDate:      dueDate,
			Attachments:  []string{},
		})
		if err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionTaskCreated,
			Entity:   "Task",
			EntityID: &created.ID,
			Metadata: map[string]any{
				"employee_id": req.EmployeeID,
				"title":       req.Title,
				"priority":    req.Priority,
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return mapTaskToResponse(created), nil
}

// UpdateStatus implements task.TaskService. StartedAt and CompletedAt are
// stamped on the first transition into their status only, so replays and
// back-and-forth transitions keep the original timestamps.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if !session.OwnsEmployee(t.EmployeeID) && !session.OwnsEmployee(t.AssignedByID) && !session.IsManager() {
		return task.TaskResponse{}, task.ErrNotAuthorized
	}

	oldStatus := t.Status
	newStatus := task.Status(req.Status)

	t.ApplyStatus(newStatus, s.now())
	if req.Comments != nil {
		t.Comments = req.Comments
	}
	if req.Attachments != nil {
		t.Attachments = append(t.Attachments, req.Attachments...)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.taskRepo.Update(txCtx, t); err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionTaskStatusUpdated,
			Entity:   "Task",
			EntityID: &t.ID,
			Metadata: map[string]any{
				"old_status": string(oldStatus),
				"new_status": string(newStatus),
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return mapTaskToResponse(t), nil
}

// GetByEmployee implements task.TaskService.
func (s *TaskServiceImpl) GetByEmployee(ctx context.Context, employeeID string, filter task.ListFilter) ([]task.TaskResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !session.OwnsEmployee(employeeID) && !session.IsManager() {
		return nil, task.ErrNotAuthorized
	}

	tasks, err := s.taskRepo.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}

	return mapTasksToResponses(tasks), nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.ListFilter) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapTasksToResponses(tasks), nil
}

// GetStats implements task.TaskService.
func (s *TaskServiceImpl) GetStats(ctx context.Context, filter task.StatsFilter) (task.StatsResponse, error) {
	if err := filter.Validate(); err != nil {
		return task.StatsResponse{}, err
	}

	tasks, err := s.taskRepo.ListForStats(ctx, filter)
	if err != nil {
		return task.StatsResponse{}, err
	}

	var stats task.StatsResponse
	for _, t := range tasks {
		switch t.Status {
		case task.StatusPending:
			stats.TotalPending++
		case task.StatusInProgress:
			stats.TotalInProgress++
		case task.StatusCompleted:
			stats.TotalCompleted++
		}
	}
	stats.Total = len(tasks)
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.TotalCompleted) / float64(stats.Total) * 100
	}

	return stats, nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.taskRepo.Delete(txCtx, id); err != nil {
			return err
		}

		return s.auditRepo.Record(txCtx, audit.Entry{
			UserID:   session.UserID,
			UserName: session.Name,
			Action:   audit.ActionTaskDeleted,
			Entity:   "Task",
			EntityID: &t.ID,
			Metadata: map[string]any{
				"employee_id": t.EmployeeID,
				"title":       t.Title,
				"status":      string(t.Status),
			},
			Outcome: audit.OutcomeSuccess,
		})
	})
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func mapTaskToResponse(t task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:             t.ID,
		EmployeeID:     t.EmployeeID,
		EmployeeName:   t.EmployeeName,
		EmployeeSAPID:  t.EmployeeSAPID,
		AssignedByID:   t.AssignedByID,
		AssignedByName: t.AssignedByName,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		DueDate:        timePtrToString(t.DueDate),
		StartedAt:      timePtrToString(t.StartedAt),
		CompletedAt:    timePtrToString(t.CompletedAt),
		Comments:       t.Comments,
		Attachments:    t.Attachments,
		CreatedAt:      t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapTasksToResponses(tasks []task.Task) []task.TaskResponse {
	result := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, mapTaskToResponse(t))
	}
	return result
}
