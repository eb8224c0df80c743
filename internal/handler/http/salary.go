package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tipl/employee-monitoring/internal/domain/salary"
	"github.com/tipl/employee-monitoring/internal/handler/http/response"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
	}
}

// Calculate implements SalaryHandler.
func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req salary.CalculateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CalculateSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.salaryService.Calculate(r.Context(), req)
	if err != nil {
		slog.Error("CalculateSalary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary calculated", record)
}

// MarkPaid implements SalaryHandler.
func (h *salaryHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.salaryService.MarkPaid(r.Context(), id)
	if err != nil {
		slog.Error("MarkSalaryPaid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary marked as paid", record)
}

// GetOverview implements SalaryHandler.
func (h *salaryHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.salaryService.GetOverview(r.Context())
	if err != nil {
		slog.Error("GetSalaryOverview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
