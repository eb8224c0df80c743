package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tipl/employee-monitoring/internal/domain/manager"
	"github.com/tipl/employee-monitoring/internal/handler/http/response"
)

type ManagerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type managerHandlerImpl struct {
	managerService manager.ManagerService
}

func NewManagerHandler(managerService manager.ManagerService) ManagerHandler {
	return &managerHandlerImpl{
		managerService: managerService,
	}
}

// Create implements ManagerHandler.
func (h *managerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req manager.CreateManagerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateManager decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.managerService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateManager service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manager created", created)
}

// List implements ManagerHandler.
func (h *managerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	managers, err := h.managerService.List(r.Context())
	if err != nil {
		slog.Error("ListManagers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, managers)
}
