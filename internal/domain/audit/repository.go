package audit

import "context"

// AuditRepository is the append-only sink for audit entries. Record is called
// inside the same transaction as the domain write it describes, so a mutation
// can never commit without its audit row.
type AuditRepository interface {
	Record(ctx context.Context, entry Entry) error

	// List returns entries newest first, for the admin read endpoint.
	List(ctx context.Context, limit int) ([]Entry, error)
}
