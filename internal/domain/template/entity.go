package template

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryTemplate - Per-person defaults used to pre-fill a new monthly
// record. One template per person.
type SalaryTemplate struct {
	ID       string
	PersonID string

	BaseSalary               decimal.Decimal
	PerformanceSalary        decimal.Decimal
	PensionInsurance         decimal.Decimal
	MedicalInsurance         decimal.Decimal
	UnemploymentInsurance    decimal.Decimal
	CriticalIllnessInsurance decimal.Decimal
	EnterpriseAnnuity        decimal.Decimal
	HousingFund              decimal.Decimal
	Tax                      decimal.Decimal

	Note         *string
	CustomFields map[string]decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
