package stats

import (
	"testing"

	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func sampleRecord() salary.SalaryRecord {
	return salary.SalaryRecord{
		ID:                "rec-1",
		PersonID:          "person-1",
		Year:              2024,
		Month:             3,
		BaseSalary:        d("10000"),
		PerformanceSalary: d("2000"),

		PensionInsurance:         d("800"),
		MedicalInsurance:         d("200"),
		UnemploymentInsurance:    d("50"),
		CriticalIllnessInsurance: d("10"),
		EnterpriseAnnuity:        d("400"),
		HousingFund:              d("1200"),
		Tax:                      d("345.67"),
		OtherDeductions:          d("30"),
		LaborUnionFee:            d("20"),
		PerformanceDeduction:     d("100"),

		HighTempAllowance:      d("150"),
		LowTempAllowance:       d("0"),
		MealAllowance:          d("400"),
		ComputerAllowance:      d("100"),
		CommunicationAllowance: d("50"),
		ComprehensiveAllowance: d("300"),

		MidAutumnBenefit:      d("500"),
		DragonBoatBenefit:     d("0"),
		SpringFestivalBenefit: d("0"),

		OtherIncome: d("123.45"),
	}
}

func TestMonthlyRowZeroRecord(t *testing.T) {
	row := monthlyRow(salary.SalaryRecord{PersonID: "p", Year: 2024, Month: 1}, nil)

	assert.Equal(t, float64(0), row.GrossIncome)
	assert.Equal(t, float64(0), row.NetIncome)
	assert.Equal(t, float64(0), row.ActualTakeHome)
	assert.Equal(t, float64(0), row.NonCashBenefits)
	assert.Equal(t, float64(0), row.InsuranceTotal)
}

func TestMonthlyRowGrossExcludesBenefits(t *testing.T) {
	rec := sampleRecord()
	row := monthlyRow(rec, nil)

	// base + performance + all six allowances + other income
	wantGross := d("10000").Add(d("2000")).Add(d("1000")).Add(d("123.45"))
	assert.InDelta(t, wantGross.InexactFloat64(), row.GrossIncome, 1e-9)

	// festival welfare shows up as non-cash, never in gross
	assert.InDelta(t, 500, row.NonCashBenefits, 1e-9)

	wantDeductions := d("800").Add(d("200")).Add(d("50")).Add(d("10")).
		Add(d("400")).Add(d("1200")).Add(d("30")).Add(d("20")).Add(d("100"))
	wantNet := wantGross.Sub(wantDeductions).Sub(d("345.67"))
	assert.InDelta(t, wantNet.InexactFloat64(), row.NetIncome, 1e-9)
	assert.Equal(t, row.NetIncome, row.ActualTakeHome)
}

func TestMonthlyRowCustomEntries(t *testing.T) {
	rec := sampleRecord()
	entries := []salary.PayrollEntry{
		{FieldKey: "stock_grant", Label: "Stock Grant", Type: salary.FieldTypeIncome, IsNonCash: true, Amount: d("1000")},
		{FieldKey: "referral_bonus", Label: "Referral Bonus", Type: salary.FieldTypeIncome, Amount: d("300")},
		{FieldKey: "parking", Label: "Parking", Type: salary.FieldTypeDeduction, Amount: d("80")},
	}

	base := monthlyRow(rec, nil)
	row := monthlyRow(rec, entries)

	assert.InDelta(t, base.GrossIncome+300, row.GrossIncome, 1e-9)
	assert.InDelta(t, base.NetIncome+300-80, row.NetIncome, 1e-9)
	assert.InDelta(t, base.NonCashBenefits+1000, row.NonCashBenefits, 1e-9)
}

func TestMonthlyRowIsDeterministic(t *testing.T) {
	rec := sampleRecord()
	entries := []salary.PayrollEntry{
		{FieldKey: "a", Type: salary.FieldTypeIncome, Amount: d("1.1")},
		{FieldKey: "b", Type: salary.FieldTypeDeduction, Amount: d("2.2")},
	}
	first := monthlyRow(rec, entries)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, monthlyRow(rec, entries))
	}
}

func TestComposeRecordPercentsSumToHundred(t *testing.T) {
	rec := sampleRecord()
	entries := []salary.PayrollEntry{
		{FieldKey: "stock_grant", Label: "Stock Grant", Type: salary.FieldTypeIncome, IsNonCash: true, Amount: d("750")},
		{FieldKey: "referral_bonus", Label: "Referral Bonus", Type: salary.FieldTypeIncome, Amount: d("250")},
	}

	comp := composeRecord(rec, entries)

	sum := comp.BaseSalaryPercent + comp.PerformancePercent +
		comp.AllowancesPercent + comp.BenefitsPercent + comp.OtherPercent
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestComposeRecordZeroIncome(t *testing.T) {
	comp := composeRecord(salary.SalaryRecord{PersonID: "p", Year: 2024, Month: 1}, nil)

	assert.Equal(t, float64(0), comp.TotalIncome)
	assert.Equal(t, float64(0), comp.BaseSalaryPercent)
	assert.Equal(t, float64(0), comp.AllowancesPercent)
	assert.Equal(t, float64(0), comp.BenefitsPercent)
}

func TestComposeRecordListsNonZeroCustomItems(t *testing.T) {
	rec := sampleRecord()
	entries := []salary.PayrollEntry{
		{FieldKey: "referral_bonus", Label: "Referral Bonus", Type: salary.FieldTypeIncome, Amount: d("250")},
		{FieldKey: "empty", Label: "Empty", Type: salary.FieldTypeIncome, Amount: decimal.Zero},
		{FieldKey: "unnamed", Type: salary.FieldTypeIncome, IsNonCash: true, Amount: d("40")},
		{FieldKey: "parking", Label: "Parking", Type: salary.FieldTypeDeduction, Amount: d("80")},
	}

	comp := composeRecord(rec, entries)

	require.Len(t, comp.CustomIncomeItems, 1)
	assert.Equal(t, "referral_bonus", comp.CustomIncomeItems[0].Key)
	assert.Equal(t, "Referral Bonus", comp.CustomIncomeItems[0].Label)

	require.Len(t, comp.CustomNonCashItems, 1)
	// label falls back to the field key when the definition has none
	assert.Equal(t, "unnamed", comp.CustomNonCashItems[0].Label)
}

func TestPercentOf(t *testing.T) {
	assert.InDelta(t, 25, percentOf(d("1"), d("4")), 1e-9)
	assert.Equal(t, float64(0), percentOf(d("1"), decimal.Zero))
	assert.Equal(t, float64(0), percentOf(d("1"), d("-4")))
}

func TestDeductionCategoriesFoldCustomIntoOther(t *testing.T) {
	rec := sampleRecord()
	custom := d("80")

	total := decimal.Zero
	var other decimal.Decimal
	for _, cat := range deductionCategories {
		amount := cat.value(rec, custom)
		total = total.Add(amount)
		if cat.label == "Other Deductions" {
			other = amount
		}
	}

	assert.True(t, other.Equal(d("110")), "other deductions should include the custom amount")
	assert.True(t, total.Equal(deductionsSum(rec).Add(custom)))
}
