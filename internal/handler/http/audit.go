package http

import (
	"log/slog"
	"net/http"

	"github.com/tipl/employee-monitoring/internal/domain/audit"
	"github.com/tipl/employee-monitoring/internal/handler/http/response"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandlerImpl{
		auditService: auditService,
	}
}

// List implements AuditHandler.
func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 100)

	entries, err := h.auditService.List(r.Context(), limit)
	if err != nil {
		slog.Error("ListAuditLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
