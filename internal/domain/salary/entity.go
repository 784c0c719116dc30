package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// FieldType enum for custom salary fields
type FieldType string

const (
	FieldTypeIncome    FieldType = "income"
	FieldTypeDeduction FieldType = "deduction"
)

// SalaryRecord - One person's salary for one month. Unique per
// (person, year, month). Older rows may predate the extended columns;
// the repository scans those with COALESCE so absent values are zero.
type SalaryRecord struct {
	ID       string
	PersonID string
	Year     int
	Month    int

	BaseSalary        decimal.Decimal
	PerformanceSalary decimal.Decimal

	// Fixed deductions
	PensionInsurance         decimal.Decimal
	MedicalInsurance         decimal.Decimal
	UnemploymentInsurance    decimal.Decimal
	CriticalIllnessInsurance decimal.Decimal
	EnterpriseAnnuity        decimal.Decimal
	HousingFund              decimal.Decimal
	Tax                      decimal.Decimal
	OtherDeductions          decimal.Decimal
	LaborUnionFee            decimal.Decimal
	PerformanceDeduction     decimal.Decimal

	// Allowances
	HighTempAllowance      decimal.Decimal
	LowTempAllowance       decimal.Decimal
	MealAllowance          decimal.Decimal
	ComputerAllowance      decimal.Decimal
	CommunicationAllowance decimal.Decimal
	ComprehensiveAllowance decimal.Decimal

	// Festival welfare
	MidAutumnBenefit      decimal.Decimal
	DragonBoatBenefit     decimal.Decimal
	SpringFestivalBenefit decimal.Decimal

	OtherIncome decimal.Decimal

	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomValue - The stored amount of one custom field on one record.
// Zero amounts are never persisted; a missing row reads as zero.
type CustomValue struct {
	ID             string
	SalaryRecordID string
	SalaryFieldID  string
	Amount         decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PayrollEntry - A custom value joined with its field definition, the
// shape the calculator and aggregator consume. Entries are pre-filtered
// to the owning user's active field definitions.
type PayrollEntry struct {
	FieldKey  string
	Label     string
	Type      FieldType
	IsNonCash bool
	Amount    decimal.Decimal
}
