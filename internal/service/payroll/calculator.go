package payroll

import (
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// Calculator derives per-record payroll totals. It is pure: no I/O, no
// state, safe for concurrent use.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute turns one record's raw fields plus its custom field entries
// into derived totals, all in exact decimal arithmetic.
//
// total_income counts every custom income entry, cash or not;
// actual_take_home then backs the non-cash portion out again so it is
// the cash actually received. The stats views use a different gross
// base on purpose; see the stats service.
func (c *Calculator) Compute(rec salary.SalaryRecord, entries []salary.PayrollEntry) salary.Breakdown {
	customIncome := decimal.Zero
	customDeduction := decimal.Zero
	nonCash := decimal.Zero

	for _, e := range entries {
		switch e.Type {
		case salary.FieldTypeIncome:
			customIncome = customIncome.Add(e.Amount)
			if e.IsNonCash {
				nonCash = nonCash.Add(e.Amount)
			}
		case salary.FieldTypeDeduction:
			customDeduction = customDeduction.Add(e.Amount)
		}
	}

	totalIncome := rec.BaseSalary.
		Add(rec.PerformanceSalary).
		Add(customIncome)

	totalDeductions := rec.PensionInsurance.
		Add(rec.MedicalInsurance).
		Add(rec.UnemploymentInsurance).
		Add(rec.CriticalIllnessInsurance).
		Add(rec.EnterpriseAnnuity).
		Add(rec.HousingFund).
		Add(customDeduction)

	netIncome := totalIncome.Sub(totalDeductions).Sub(rec.Tax)

	return salary.Breakdown{
		TotalIncome:     totalIncome,
		TotalDeductions: totalDeductions,
		GrossIncome:     totalIncome,
		NetIncome:       netIncome,
		NonCashBenefits: nonCash,
		ActualTakeHome:  netIncome.Sub(nonCash),
	}
}
