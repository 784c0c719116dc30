package person

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person - A family member whose salary records are tracked.
// The three history balances are contributions made before this system
// started tracking; they are added to every all-time cumulative total.
type Person struct {
	ID                 string
	UserID             string
	Name               string
	PensionHistory     decimal.Decimal
	MedicalHistory     decimal.Decimal
	HousingFundHistory decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
