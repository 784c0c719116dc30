package template

import "github.com/shopspring/decimal"

type UpsertTemplateRequest struct {
	PersonID string `json:"-"`

	BaseSalary               decimal.Decimal `json:"base_salary"`
	PerformanceSalary        decimal.Decimal `json:"performance_salary"`
	PensionInsurance         decimal.Decimal `json:"pension_insurance"`
	MedicalInsurance         decimal.Decimal `json:"medical_insurance"`
	UnemploymentInsurance    decimal.Decimal `json:"unemployment_insurance"`
	CriticalIllnessInsurance decimal.Decimal `json:"critical_illness_insurance"`
	EnterpriseAnnuity        decimal.Decimal `json:"enterprise_annuity"`
	HousingFund              decimal.Decimal `json:"housing_fund"`
	Tax                      decimal.Decimal `json:"tax"`

	Note         *string                    `json:"note,omitempty"`
	CustomFields map[string]decimal.Decimal `json:"custom_fields,omitempty"`
}

type TemplateResponse struct {
	PersonID string `json:"person_id"`

	BaseSalary               decimal.Decimal `json:"base_salary"`
	PerformanceSalary        decimal.Decimal `json:"performance_salary"`
	PensionInsurance         decimal.Decimal `json:"pension_insurance"`
	MedicalInsurance         decimal.Decimal `json:"medical_insurance"`
	UnemploymentInsurance    decimal.Decimal `json:"unemployment_insurance"`
	CriticalIllnessInsurance decimal.Decimal `json:"critical_illness_insurance"`
	EnterpriseAnnuity        decimal.Decimal `json:"enterprise_annuity"`
	HousingFund              decimal.Decimal `json:"housing_fund"`
	Tax                      decimal.Decimal `json:"tax"`

	Note         *string                    `json:"note,omitempty"`
	CustomFields map[string]decimal.Decimal `json:"custom_fields"`
}
