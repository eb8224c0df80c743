package audit

import "context"

type EntryResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	UserName  string         `json:"user_name"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  *string        `json:"entity_id,omitempty"`
	IPAddress *string        `json:"ip_address,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Outcome   string         `json:"outcome"`
	CreatedAt string         `json:"created_at"`
}

// AuditService exposes the read side of the audit trail.
type AuditService interface {
	List(ctx context.Context, limit int) ([]EntryResponse, error)
}
