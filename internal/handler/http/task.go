package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tipl/employee-monitoring/internal/domain/task"
	"github.com/tipl/employee-monitoring/internal/handler/http/response"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{
		taskService: taskService,
	}
}

// Create implements TaskHandler.
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", created)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTaskStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TaskID = chi.URLParam(r, "id")

	updated, err := h.taskService.UpdateStatus(r.Context(), req)
	if err != nil {
		slog.Error("UpdateTaskStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", updated)
}

// GetByEmployee implements TaskHandler.
func (h *taskHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	tasks, err := h.taskService.GetByEmployee(r.Context(), employeeID, listFilterFromQuery(r))
	if err != nil {
		slog.Error("GetTasksByEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context(), listFilterFromQuery(r))
	if err != nil {
		slog.Error("ListTasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// GetStats implements TaskHandler.
func (h *taskHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	var filter task.StatsFilter
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	stats, err := h.taskService.GetStats(r.Context(), filter)
	if err != nil {
		slog.Error("GetTaskStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Delete implements TaskHandler.
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}

func listFilterFromQuery(r *http.Request) task.ListFilter {
	filter := task.ListFilter{
		Limit: parseIntQuery(r, "limit", 50),
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("priority"); v != "" {
		filter.Priority = &v
	}
	return filter
}
