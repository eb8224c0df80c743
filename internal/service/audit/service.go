package audit

import (
	"context"

	"github.com/tipl/employee-monitoring/internal/domain/audit"
)

const defaultListLimit = 100

type AuditServiceImpl struct {
	auditRepo audit.AuditRepository
}

func NewAuditService(auditRepo audit.AuditRepository) *AuditServiceImpl {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

// List implements audit.AuditService.
func (s *AuditServiceImpl) List(ctx context.Context, limit int) ([]audit.EntryResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultListLimit
	}

	entries, err := s.auditRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, audit.EntryResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			UserName:  e.UserName,
			Action:    e.Action,
			Entity:    e.Entity,
			EntityID:  e.EntityID,
			IPAddress: e.IPAddress,
			Metadata:  e.Metadata,
			Outcome:   string(e.Outcome),
			CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return result, nil
}
