package salary

import "context"

// SalaryRepository defines data access methods for salary records.
type SalaryRepository interface {
	// Upsert inserts or overwrites the record keyed by (employee_id, month,
	// year). On conflict the components and total are replaced; is_paid keeps
	// its stored value.
	Upsert(ctx context.Context, record Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// MarkPaid sets is_paid = true. Calling on an already-paid record is a
	// no-op that still succeeds.
	MarkPaid(ctx context.Context, id string) error

	// List returns all records, most recent period first, employee joined.
	List(ctx context.Context) ([]Record, error)
}
