package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tipl/employee-monitoring/internal/domain/audit"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

// Record implements audit.AuditRepository. Insert only; there is no update or
// delete path for audit rows anywhere in the application.
func (r *auditRepository) Record(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	var metadata []byte
	if entry.Metadata != nil {
		var err error
		metadata, err = json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
	}

	query := `
		INSERT INTO audit_logs (user_id, user_name, action, entity, entity_id, ip_address, metadata, outcome)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		entry.UserID, entry.UserName, entry.Action, entry.Entity, entry.EntityID,
		entry.IPAddress, metadata, entry.Outcome,
	)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}

// List implements audit.AuditRepository.
func (r *auditRepository) List(ctx context.Context, limit int) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, user_id, user_name, action, entity, entity_id, ip_address, metadata, outcome, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var entry audit.Entry
		var metadata []byte
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.UserName, &entry.Action, &entry.Entity,
			&entry.EntityID, &entry.IPAddress, &metadata, &entry.Outcome, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit metadata: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
