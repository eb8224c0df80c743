package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tipl/employee-monitoring/internal/domain/project"
	"github.com/tipl/employee-monitoring/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetDetail(w http.ResponseWriter, r *http.Request)
	AssignEmployee(w http.ResponseWriter, r *http.Request)
	UpdateProgress(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// Create implements ProjectHandler.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created", created)
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		slog.Error("ListProjects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// GetDetail implements ProjectHandler.
func (h *projectHandlerImpl) GetDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.projectService.GetDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// AssignEmployee implements ProjectHandler.
func (h *projectHandlerImpl) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	var req project.AssignEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	assignment, err := h.projectService.AssignEmployee(r.Context(), req)
	if err != nil {
		slog.Error("AssignEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee assigned", assignment)
}

// UpdateProgress implements ProjectHandler.
func (h *projectHandlerImpl) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req project.UpdateProgressRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProgress decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AssignmentID = chi.URLParam(r, "assignmentID")

	assignment, err := h.projectService.UpdateProgress(r.Context(), req)
	if err != nil {
		slog.Error("UpdateProgress service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Progress updated", assignment)
}
