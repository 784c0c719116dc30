package salary

import (
	"github.com/salarium/salarium-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Breakdown - Derived totals for a single record, all exact decimals.
// gross_income repeats total_income; the split exists because the stats
// views carry a different gross definition and both are part of the
// output contract.
type Breakdown struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	GrossIncome     decimal.Decimal `json:"gross_income"`
	NetIncome       decimal.Decimal `json:"net_income"`
	NonCashBenefits decimal.Decimal `json:"non_cash_benefits"`
	ActualTakeHome  decimal.Decimal `json:"actual_take_home"`
}

type CreateSalaryRequest struct {
	PersonID string `json:"-"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`

	BaseSalary        decimal.Decimal `json:"base_salary"`
	PerformanceSalary decimal.Decimal `json:"performance_salary"`

	PensionInsurance         decimal.Decimal `json:"pension_insurance"`
	MedicalInsurance         decimal.Decimal `json:"medical_insurance"`
	UnemploymentInsurance    decimal.Decimal `json:"unemployment_insurance"`
	CriticalIllnessInsurance decimal.Decimal `json:"critical_illness_insurance"`
	EnterpriseAnnuity        decimal.Decimal `json:"enterprise_annuity"`
	HousingFund              decimal.Decimal `json:"housing_fund"`
	Tax                      decimal.Decimal `json:"tax"`
	OtherDeductions          decimal.Decimal `json:"other_deductions"`
	LaborUnionFee            decimal.Decimal `json:"labor_union_fee"`
	PerformanceDeduction     decimal.Decimal `json:"performance_deduction"`

	HighTempAllowance      decimal.Decimal `json:"high_temp_allowance"`
	LowTempAllowance       decimal.Decimal `json:"low_temp_allowance"`
	MealAllowance          decimal.Decimal `json:"meal_allowance"`
	ComputerAllowance      decimal.Decimal `json:"computer_allowance"`
	CommunicationAllowance decimal.Decimal `json:"communication_allowance"`
	ComprehensiveAllowance decimal.Decimal `json:"comprehensive_allowance"`

	MidAutumnBenefit      decimal.Decimal `json:"mid_autumn_benefit"`
	DragonBoatBenefit     decimal.Decimal `json:"dragon_boat_benefit"`
	SpringFestivalBenefit decimal.Decimal `json:"spring_festival_benefit"`

	OtherIncome decimal.Decimal `json:"other_income"`

	Note         *string                    `json:"note,omitempty"`
	CustomFields map[string]decimal.Decimal `json:"custom_fields,omitempty"`
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 1900 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a four digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	ID string

	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
	PerformanceSalary *decimal.Decimal `json:"performance_salary,omitempty"`

	PensionInsurance         *decimal.Decimal `json:"pension_insurance,omitempty"`
	MedicalInsurance         *decimal.Decimal `json:"medical_insurance,omitempty"`
	UnemploymentInsurance    *decimal.Decimal `json:"unemployment_insurance,omitempty"`
	CriticalIllnessInsurance *decimal.Decimal `json:"critical_illness_insurance,omitempty"`
	EnterpriseAnnuity        *decimal.Decimal `json:"enterprise_annuity,omitempty"`
	HousingFund              *decimal.Decimal `json:"housing_fund,omitempty"`
	Tax                      *decimal.Decimal `json:"tax,omitempty"`
	OtherDeductions          *decimal.Decimal `json:"other_deductions,omitempty"`
	LaborUnionFee            *decimal.Decimal `json:"labor_union_fee,omitempty"`
	PerformanceDeduction     *decimal.Decimal `json:"performance_deduction,omitempty"`

	HighTempAllowance      *decimal.Decimal `json:"high_temp_allowance,omitempty"`
	LowTempAllowance       *decimal.Decimal `json:"low_temp_allowance,omitempty"`
	MealAllowance          *decimal.Decimal `json:"meal_allowance,omitempty"`
	ComputerAllowance      *decimal.Decimal `json:"computer_allowance,omitempty"`
	CommunicationAllowance *decimal.Decimal `json:"communication_allowance,omitempty"`
	ComprehensiveAllowance *decimal.Decimal `json:"comprehensive_allowance,omitempty"`

	MidAutumnBenefit      *decimal.Decimal `json:"mid_autumn_benefit,omitempty"`
	DragonBoatBenefit     *decimal.Decimal `json:"dragon_boat_benefit,omitempty"`
	SpringFestivalBenefit *decimal.Decimal `json:"spring_festival_benefit,omitempty"`

	OtherIncome *decimal.Decimal `json:"other_income,omitempty"`

	Note *string `json:"note,omitempty"`

	// nil leaves custom values untouched; an empty map clears them.
	CustomFields *map[string]decimal.Decimal `json:"custom_fields,omitempty"`
}

type SalaryFilter struct {
	PersonID *string
	Year     *int
	Month    *int
}

type SalaryResponse struct {
	ID       string `json:"id"`
	PersonID string `json:"person_id"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`

	BaseSalary        decimal.Decimal `json:"base_salary"`
	PerformanceSalary decimal.Decimal `json:"performance_salary"`

	PensionInsurance         decimal.Decimal `json:"pension_insurance"`
	MedicalInsurance         decimal.Decimal `json:"medical_insurance"`
	UnemploymentInsurance    decimal.Decimal `json:"unemployment_insurance"`
	CriticalIllnessInsurance decimal.Decimal `json:"critical_illness_insurance"`
	EnterpriseAnnuity        decimal.Decimal `json:"enterprise_annuity"`
	HousingFund              decimal.Decimal `json:"housing_fund"`
	Tax                      decimal.Decimal `json:"tax"`
	OtherDeductions          decimal.Decimal `json:"other_deductions"`
	LaborUnionFee            decimal.Decimal `json:"labor_union_fee"`
	PerformanceDeduction     decimal.Decimal `json:"performance_deduction"`

	HighTempAllowance      decimal.Decimal `json:"high_temp_allowance"`
	LowTempAllowance       decimal.Decimal `json:"low_temp_allowance"`
	MealAllowance          decimal.Decimal `json:"meal_allowance"`
	ComputerAllowance      decimal.Decimal `json:"computer_allowance"`
	CommunicationAllowance decimal.Decimal `json:"communication_allowance"`
	ComprehensiveAllowance decimal.Decimal `json:"comprehensive_allowance"`

	MidAutumnBenefit      decimal.Decimal `json:"mid_autumn_benefit"`
	DragonBoatBenefit     decimal.Decimal `json:"dragon_boat_benefit"`
	SpringFestivalBenefit decimal.Decimal `json:"spring_festival_benefit"`

	OtherIncome decimal.Decimal `json:"other_income"`

	Breakdown

	Note         *string                    `json:"note,omitempty"`
	CustomFields map[string]decimal.Decimal `json:"custom_fields"`
}
