package salaryfield

import (
	"time"

	"github.com/salarium/salarium-backend-go/internal/domain/salary"
)

// SalaryField - User-defined income/deduction line item beyond the
// fixed schema. IsNonCash only matters for income fields. Inactive
// definitions are excluded from every computation.
type SalaryField struct {
	ID        string
	UserID    string
	FieldKey  string
	Name      string
	Type      salary.FieldType
	Category  *string
	IsNonCash bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
