package stats

// Stats views convert to float64 at this boundary; everything upstream
// of these DTOs is computed with exact decimals.

type MonthlyStats struct {
	PersonID        string  `json:"person_id"`
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	BaseSalary      float64 `json:"base_salary"`
	Performance     float64 `json:"performance"`
	AllowancesTotal float64 `json:"allowances_total"`
	BonusesTotal    float64 `json:"bonuses_total"`
	InsuranceTotal  float64 `json:"insurance_total"`
	Tax             float64 `json:"tax"`
	GrossIncome     float64 `json:"gross_income"`
	NetIncome       float64 `json:"net_income"`
	ActualTakeHome  float64 `json:"actual_take_home"`
	NonCashBenefits float64 `json:"non_cash_benefits"`
}

type YearlyStats struct {
	PersonID             string  `json:"person_id"`
	Year                 int     `json:"year"`
	Months               int     `json:"months"`
	TotalGross           float64 `json:"total_gross"`
	TotalNet             float64 `json:"total_net"`
	AvgNet               float64 `json:"avg_net"`
	InsuranceTotal       float64 `json:"insurance_total"`
	TaxTotal             float64 `json:"tax_total"`
	AllowancesTotal      float64 `json:"allowances_total"`
	BonusesTotal         float64 `json:"bonuses_total"`
	TotalActualTakeHome  float64 `json:"total_actual_take_home"`
	TotalNonCashBenefits float64 `json:"total_non_cash_benefits"`
}

type FamilySummary struct {
	Year           int                `json:"year"`
	Persons        []string           `json:"persons"`
	TotalGross     float64            `json:"total_gross"`
	TotalNet       float64            `json:"total_net"`
	InsuranceTotal float64            `json:"insurance_total"`
	TaxTotal       float64            `json:"tax_total"`
	ByPerson       map[string]float64 `json:"by_person"`
}

type PersonCumulativeInsurance struct {
	PersonID           string  `json:"person_id"`
	PersonName         string  `json:"person_name"`
	PensionHistory     float64 `json:"pension_history"`
	MedicalHistory     float64 `json:"medical_history"`
	HousingFundHistory float64 `json:"housing_fund_history"`
	PensionSystem      float64 `json:"pension_system"`
	MedicalSystem      float64 `json:"medical_system"`
	HousingFundSystem  float64 `json:"housing_fund_system"`
	PensionTotal       float64 `json:"pension_total"`
	MedicalTotal       float64 `json:"medical_total"`
	HousingFundTotal   float64 `json:"housing_fund_total"`
}

// BreakdownItem - One custom income line listed individually in the
// income composition view.
type BreakdownItem struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type IncomeComposition struct {
	PersonID string `json:"person_id"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`

	BaseSalary             float64 `json:"base_salary"`
	PerformanceSalary      float64 `json:"performance_salary"`
	HighTempAllowance      float64 `json:"high_temp_allowance"`
	LowTempAllowance       float64 `json:"low_temp_allowance"`
	ComputerAllowance      float64 `json:"computer_allowance"`
	CommunicationAllowance float64 `json:"communication_allowance"`
	ComprehensiveAllowance float64 `json:"comprehensive_allowance"`
	MealAllowance          float64 `json:"meal_allowance"`
	MidAutumnBenefit       float64 `json:"mid_autumn_benefit"`
	DragonBoatBenefit      float64 `json:"dragon_boat_benefit"`
	SpringFestivalBenefit  float64 `json:"spring_festival_benefit"`

	OtherIncome     float64 `json:"other_income"`
	OtherIncomeBase float64 `json:"other_income_base"`
	NonCashBenefits float64 `json:"non_cash_benefits"`

	CustomIncomeItems  []BreakdownItem `json:"custom_income_items"`
	CustomNonCashItems []BreakdownItem `json:"custom_non_cash_items"`

	TotalIncome        float64 `json:"total_income"`
	BaseSalaryPercent  float64 `json:"base_salary_percent"`
	PerformancePercent float64 `json:"performance_percent"`
	AllowancesPercent  float64 `json:"allowances_percent"`
	BenefitsPercent    float64 `json:"benefits_percent"`
	OtherPercent       float64 `json:"other_percent"`
}

type DeductionsBreakdownItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

type DeductionsMonthly struct {
	Year                     int     `json:"year"`
	Month                    int     `json:"month"`
	PensionInsurance         float64 `json:"pension_insurance"`
	MedicalInsurance         float64 `json:"medical_insurance"`
	UnemploymentInsurance    float64 `json:"unemployment_insurance"`
	CriticalIllnessInsurance float64 `json:"critical_illness_insurance"`
	EnterpriseAnnuity        float64 `json:"enterprise_annuity"`
	HousingFund              float64 `json:"housing_fund"`
	OtherDeductions          float64 `json:"other_deductions"`
	LaborUnionFee            float64 `json:"labor_union_fee"`
	PerformanceDeduction     float64 `json:"performance_deduction"`
	Total                    float64 `json:"total"`
}

type DeductionsBreakdown struct {
	Summary []DeductionsBreakdownItem `json:"summary"`
	Monthly []DeductionsMonthly       `json:"monthly"`
}

type ContributionsCumulativePoint struct {
	Year                  int     `json:"year"`
	Month                 int     `json:"month"`
	PensionCumulative     float64 `json:"pension_cumulative"`
	MedicalCumulative     float64 `json:"medical_cumulative"`
	HousingFundCumulative float64 `json:"housing_fund_cumulative"`
}

type ContributionsCumulative struct {
	PersonID               string                         `json:"person_id"`
	PersonName             string                         `json:"person_name"`
	PensionHistory         float64                        `json:"pension_history"`
	MedicalHistory         float64                        `json:"medical_history"`
	HousingFundHistory     float64                        `json:"housing_fund_history"`
	Points                 []ContributionsCumulativePoint `json:"points"`
	PensionSystemTotal     float64                        `json:"pension_system_total"`
	MedicalSystemTotal     float64                        `json:"medical_system_total"`
	HousingFundSystemTotal float64                        `json:"housing_fund_system_total"`
	PensionTotal           float64                        `json:"pension_total"`
	MedicalTotal           float64                        `json:"medical_total"`
	HousingFundTotal       float64                        `json:"housing_fund_total"`
}
