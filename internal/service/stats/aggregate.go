package stats

import (
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/salarium/salarium-backend-go/internal/domain/stats"
	"github.com/shopspring/decimal"
)

// Category grouping rules shared by the stats views. Two allowance sums
// exist on purpose: the net/take-home base excludes the meal allowance,
// the composition/gross base includes it.

func allowancesNet(r salary.SalaryRecord) decimal.Decimal {
	return r.HighTempAllowance.
		Add(r.LowTempAllowance).
		Add(r.ComputerAllowance).
		Add(r.CommunicationAllowance).
		Add(r.ComprehensiveAllowance)
}

func allowancesFull(r salary.SalaryRecord) decimal.Decimal {
	return allowancesNet(r).Add(r.MealAllowance)
}

// benefitsSum is festival welfare only. Custom non-cash income is
// tracked separately and added alongside at the call sites.
func benefitsSum(r salary.SalaryRecord) decimal.Decimal {
	return r.MidAutumnBenefit.
		Add(r.DragonBoatBenefit).
		Add(r.SpringFestivalBenefit)
}

func insuranceSum(r salary.SalaryRecord) decimal.Decimal {
	return r.PensionInsurance.
		Add(r.MedicalInsurance).
		Add(r.UnemploymentInsurance).
		Add(r.CriticalIllnessInsurance).
		Add(r.EnterpriseAnnuity).
		Add(r.HousingFund)
}

func deductionsSum(r salary.SalaryRecord) decimal.Decimal {
	return insuranceSum(r).
		Add(r.OtherDeductions).
		Add(r.LaborUnionFee).
		Add(r.PerformanceDeduction)
}

type customSums struct {
	cash      decimal.Decimal
	nonCash   decimal.Decimal
	deduction decimal.Decimal
}

func sumCustom(entries []salary.PayrollEntry) customSums {
	s := customSums{cash: decimal.Zero, nonCash: decimal.Zero, deduction: decimal.Zero}
	for _, e := range entries {
		switch e.Type {
		case salary.FieldTypeIncome:
			if e.IsNonCash {
				s.nonCash = s.nonCash.Add(e.Amount)
			} else {
				s.cash = s.cash.Add(e.Amount)
			}
		case salary.FieldTypeDeduction:
			s.deduction = s.deduction.Add(e.Amount)
		}
	}
	return s
}

// cashIncome is the gross base of the monthly/yearly/family views:
// festival benefits and non-cash custom income are excluded here and
// reported as non_cash_benefits instead. The per-record calculator's
// total_income counts them; the two definitions diverge on purpose.
func cashIncome(r salary.SalaryRecord, custom customSums) decimal.Decimal {
	return r.BaseSalary.
		Add(r.PerformanceSalary).
		Add(allowancesFull(r)).
		Add(r.OtherIncome).
		Add(custom.cash)
}

// monthlyRow computes one row of the monthly view.
func monthlyRow(r salary.SalaryRecord, entries []salary.PayrollEntry) stats.MonthlyStats {
	custom := sumCustom(entries)

	cash := cashIncome(r, custom)
	deductions := deductionsSum(r).Add(custom.deduction)
	takeHome := cash.Sub(deductions).Sub(r.Tax)

	return stats.MonthlyStats{
		PersonID:        r.PersonID,
		Year:            r.Year,
		Month:           r.Month,
		BaseSalary:      r.BaseSalary.InexactFloat64(),
		Performance:     r.PerformanceSalary.InexactFloat64(),
		AllowancesTotal: allowancesNet(r).InexactFloat64(),
		BonusesTotal:    0,
		InsuranceTotal:  insuranceSum(r).InexactFloat64(),
		Tax:             r.Tax.InexactFloat64(),
		GrossIncome:     cash.InexactFloat64(),
		NetIncome:       takeHome.InexactFloat64(),
		ActualTakeHome:  takeHome.InexactFloat64(),
		NonCashBenefits: benefitsSum(r).Add(custom.nonCash).InexactFloat64(),
	}
}

// percentOf returns part/total*100, or 0 when the total is not positive.
func percentOf(part, total decimal.Decimal) float64 {
	if total.Sign() <= 0 {
		return 0
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// composeRecord computes one row of the income composition view.
func composeRecord(r salary.SalaryRecord, entries []salary.PayrollEntry) stats.IncomeComposition {
	customCash := decimal.Zero
	customNonCash := decimal.Zero
	var cashItems, nonCashItems []stats.BreakdownItem

	for _, e := range entries {
		if e.Type != salary.FieldTypeIncome {
			continue
		}
		if e.IsNonCash {
			customNonCash = customNonCash.Add(e.Amount)
			if !e.Amount.IsZero() {
				nonCashItems = append(nonCashItems, stats.BreakdownItem{
					Key:    e.FieldKey,
					Label:  entryLabel(e),
					Amount: e.Amount.InexactFloat64(),
				})
			}
		} else {
			customCash = customCash.Add(e.Amount)
			if !e.Amount.IsZero() {
				cashItems = append(cashItems, stats.BreakdownItem{
					Key:    e.FieldKey,
					Label:  entryLabel(e),
					Amount: e.Amount.InexactFloat64(),
				})
			}
		}
	}

	allowances := allowancesFull(r)
	benefits := benefitsSum(r).Add(customNonCash)
	other := r.OtherIncome.Add(customCash)
	totalIncome := r.BaseSalary.
		Add(r.PerformanceSalary).
		Add(allowances).
		Add(benefits).
		Add(other)

	return stats.IncomeComposition{
		PersonID: r.PersonID,
		Year:     r.Year,
		Month:    r.Month,

		BaseSalary:             r.BaseSalary.InexactFloat64(),
		PerformanceSalary:      r.PerformanceSalary.InexactFloat64(),
		HighTempAllowance:      r.HighTempAllowance.InexactFloat64(),
		LowTempAllowance:       r.LowTempAllowance.InexactFloat64(),
		ComputerAllowance:      r.ComputerAllowance.InexactFloat64(),
		CommunicationAllowance: r.CommunicationAllowance.InexactFloat64(),
		ComprehensiveAllowance: r.ComprehensiveAllowance.InexactFloat64(),
		MealAllowance:          r.MealAllowance.InexactFloat64(),
		MidAutumnBenefit:       r.MidAutumnBenefit.InexactFloat64(),
		DragonBoatBenefit:      r.DragonBoatBenefit.InexactFloat64(),
		SpringFestivalBenefit:  r.SpringFestivalBenefit.InexactFloat64(),

		OtherIncome:     other.InexactFloat64(),
		OtherIncomeBase: r.OtherIncome.InexactFloat64(),
		NonCashBenefits: benefits.InexactFloat64(),

		CustomIncomeItems:  cashItems,
		CustomNonCashItems: nonCashItems,

		TotalIncome:        totalIncome.InexactFloat64(),
		BaseSalaryPercent:  percentOf(r.BaseSalary, totalIncome),
		PerformancePercent: percentOf(r.PerformanceSalary, totalIncome),
		AllowancesPercent:  percentOf(allowances, totalIncome),
		BenefitsPercent:    percentOf(benefits, totalIncome),
		OtherPercent:       percentOf(other, totalIncome),
	}
}

func entryLabel(e salary.PayrollEntry) string {
	if e.Label != "" {
		return e.Label
	}
	return e.FieldKey
}

// deductionCategories is the fixed breakdown order. Custom deduction
// entries are folded into Other Deductions, never a bucket of their own.
type deductionCategory struct {
	label string
	value func(r salary.SalaryRecord, customDeduction decimal.Decimal) decimal.Decimal
}

var deductionCategories = []deductionCategory{
	{"Pension Insurance", func(r salary.SalaryRecord, _ decimal.Decimal) decimal.Decimal { return r.PensionInsurance }},
	{"Medical Insurance", func(r salary.SalaryRecord, _ decimal.Decimal) decimal.Decimal { return r.MedicalInsurance }},
	{"Unemployment Insurance", func(r salary.SalaryRecord, _ decimal.Decimal) decimal.Decimal { return r.UnemploymentInsurance }},
	{"Critical Illness Insurance", func(r salary.SalaryRecord, _ decimal.Decimal) decimal.Decimal { return r.CriticalIllnessInsurance }},
	{"Enterprise Annuity", func(r salary.SalaryRecord, _ decimal.Decimal) decimal.Decimal { return r.EnterpriseAnnuity }},
	{"Housing Fund", func(r salary.SalaryRecord, _ decimal.Decimal) decimal.Decimal { return r.HousingFund }},
	{"Other Deductions", func(r salary.SalaryRecord, custom decimal.Decimal) decimal.Decimal {
		return r.OtherDeductions.Add(custom)
	}},
	{"Labor Union Fee", func(r salary.SalaryRecord, _ decimal.Decimal) decimal.Decimal { return r.LaborUnionFee }},
	{"Performance Deduction", func(r salary.SalaryRecord, _ decimal.Decimal) decimal.Decimal { return r.PerformanceDeduction }},
}
