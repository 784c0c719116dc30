package salary

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalaryRepository defines data access methods for salary records and
// their custom field values. All methods include userID to prevent
// cross-user data access.
type SalaryRepository interface {
	Create(ctx context.Context, record SalaryRecord) (SalaryRecord, error)
	GetByID(ctx context.Context, id string, userID string) (SalaryRecord, error)
	List(ctx context.Context, userID string, filter SalaryFilter) ([]SalaryRecord, error)
	ListByPersonID(ctx context.Context, personID string, userID string) ([]SalaryRecord, error)
	Update(ctx context.Context, userID string, req UpdateSalaryRequest) error
	Delete(ctx context.Context, id string, userID string) error

	// GetPayrollEntries batch-loads the custom field entries for a set of
	// records in a single query, keyed by record id. Entries whose field
	// definition is inactive are excluded.
	GetPayrollEntries(ctx context.Context, recordIDs []string) (map[string][]PayrollEntry, error)

	// ReplaceCustomValues rewrites the custom values of one record from a
	// field_key -> amount map. Keys without an active definition owned by
	// userID and zero amounts are dropped.
	ReplaceCustomValues(ctx context.Context, recordID string, userID string, values map[string]decimal.Decimal) error
}
