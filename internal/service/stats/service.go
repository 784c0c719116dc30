package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/salarium/salarium-backend-go/internal/domain/stats"
	"github.com/salarium/salarium-backend-go/internal/pkg/jwt"
	"github.com/salarium/salarium-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

type StatsServiceImpl struct {
	personRepo person.PersonRepository
	salaryRepo salary.SalaryRepository
}

func NewStatsService(
	personRepo person.PersonRepository,
	salaryRepo salary.SalaryRepository,
) stats.StatsService {
	return &StatsServiceImpl{
		personRepo: personRepo,
		salaryRepo: salaryRepo,
	}
}

// loadRecords fetches the scoped records plus their custom field
// entries. The entries come back in one batched query, never one query
// per record.
func (s *StatsServiceImpl) loadRecords(
	ctx context.Context,
	userID string,
	filter salary.SalaryFilter,
	rangeStr string,
) ([]salary.SalaryRecord, map[string][]salary.PayrollEntry, error) {
	recs, err := s.salaryRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	recs = applyRange(recs, rangeStr)

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	entries, err := s.salaryRepo.GetPayrollEntries(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load custom field entries: %w", err)
	}
	return recs, entries, nil
}

func applyRange(recs []salary.SalaryRecord, rangeStr string) []salary.SalaryRecord {
	if rangeStr == "" {
		return recs
	}
	window := period.ParseRange(rangeStr)
	kept := make([]salary.SalaryRecord, 0, len(recs))
	for _, r := range recs {
		if window.Contains(period.New(r.Year, r.Month)) {
			kept = append(kept, r)
		}
	}
	return kept
}

func statsToSalaryFilter(f stats.StatsFilter) salary.SalaryFilter {
	return salary.SalaryFilter{PersonID: f.PersonID, Year: f.Year, Month: f.Month}
}

func (s *StatsServiceImpl) Monthly(ctx context.Context, filter stats.StatsFilter) ([]stats.MonthlyStats, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	recs, entries, err := s.loadRecords(ctx, userID, statsToSalaryFilter(filter), filter.Range)
	if err != nil {
		return nil, err
	}

	result := make([]stats.MonthlyStats, 0, len(recs))
	for _, r := range recs {
		result = append(result, monthlyRow(r, entries[r.ID]))
	}
	return result, nil
}

func (s *StatsServiceImpl) Yearly(ctx context.Context, personID *string, year int) ([]stats.YearlyStats, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if personID != nil {
		if _, err := s.personRepo.GetByID(ctx, *personID, userID); err != nil {
			return nil, err
		}
	}

	recs, entries, err := s.loadRecords(ctx, userID, salary.SalaryFilter{PersonID: personID, Year: &year}, "")
	if err != nil {
		return nil, err
	}

	type yearlyAcc struct {
		months          int
		gross           decimal.Decimal
		net             decimal.Decimal
		insurance       decimal.Decimal
		tax             decimal.Decimal
		allowances      decimal.Decimal
		bonuses         decimal.Decimal
		nonCashBenefits decimal.Decimal
	}

	accs := make(map[string]*yearlyAcc)
	for _, r := range recs {
		custom := sumCustom(entries[r.ID])

		cash := cashIncome(r, custom)
		deductions := deductionsSum(r).Add(custom.deduction)
		takeHome := cash.Sub(deductions).Sub(r.Tax)
		bonuses := benefitsSum(r).Add(r.OtherIncome)

		acc, ok := accs[r.PersonID]
		if !ok {
			acc = &yearlyAcc{}
			accs[r.PersonID] = acc
		}
		acc.months++
		acc.gross = acc.gross.Add(cash)
		acc.net = acc.net.Add(takeHome)
		acc.insurance = acc.insurance.Add(insuranceSum(r))
		acc.tax = acc.tax.Add(r.Tax)
		acc.allowances = acc.allowances.Add(allowancesNet(r))
		acc.bonuses = acc.bonuses.Add(bonuses)
		acc.nonCashBenefits = acc.nonCashBenefits.Add(benefitsSum(r).Add(custom.nonCash))
	}

	ids := make([]string, 0, len(accs))
	for id := range accs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]stats.YearlyStats, 0, len(ids))
	for _, id := range ids {
		acc := accs[id]
		avgNet := decimal.Zero
		if acc.months > 0 {
			avgNet = acc.net.Div(decimal.NewFromInt(int64(acc.months)))
		}
		result = append(result, stats.YearlyStats{
			PersonID:             id,
			Year:                 year,
			Months:               acc.months,
			TotalGross:           acc.gross.InexactFloat64(),
			TotalNet:             acc.net.InexactFloat64(),
			AvgNet:               avgNet.InexactFloat64(),
			InsuranceTotal:       acc.insurance.InexactFloat64(),
			TaxTotal:             acc.tax.InexactFloat64(),
			AllowancesTotal:      acc.allowances.InexactFloat64(),
			BonusesTotal:         acc.bonuses.InexactFloat64(),
			TotalActualTakeHome:  acc.net.InexactFloat64(),
			TotalNonCashBenefits: acc.nonCashBenefits.InexactFloat64(),
		})
	}
	return result, nil
}

func (s *StatsServiceImpl) Family(ctx context.Context, year int) (stats.FamilySummary, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return stats.FamilySummary{}, err
	}

	persons, err := s.personRepo.GetByUserID(ctx, userID)
	if err != nil {
		return stats.FamilySummary{}, err
	}

	recs, entries, err := s.loadRecords(ctx, userID, salary.SalaryFilter{Year: &year}, "")
	if err != nil {
		return stats.FamilySummary{}, err
	}

	personIDs := make([]string, 0, len(persons))
	byPerson := make(map[string]decimal.Decimal, len(persons))
	for _, p := range persons {
		personIDs = append(personIDs, p.ID)
		byPerson[p.ID] = decimal.Zero
	}

	totalGross := decimal.Zero
	totalNet := decimal.Zero
	insuranceTotal := decimal.Zero
	taxTotal := decimal.Zero

	for _, r := range recs {
		custom := sumCustom(entries[r.ID])

		cash := cashIncome(r, custom)
		deductions := deductionsSum(r).Add(custom.deduction)
		takeHome := cash.Sub(deductions).Sub(r.Tax)

		byPerson[r.PersonID] = byPerson[r.PersonID].Add(takeHome)
		totalGross = totalGross.Add(cash)
		totalNet = totalNet.Add(takeHome)
		insuranceTotal = insuranceTotal.Add(insuranceSum(r))
		taxTotal = taxTotal.Add(r.Tax)
	}

	byPersonOut := make(map[string]float64, len(byPerson))
	for id, total := range byPerson {
		byPersonOut[id] = total.InexactFloat64()
	}

	return stats.FamilySummary{
		Year:           year,
		Persons:        personIDs,
		TotalGross:     totalGross.InexactFloat64(),
		TotalNet:       totalNet.InexactFloat64(),
		InsuranceTotal: insuranceTotal.InexactFloat64(),
		TaxTotal:       taxTotal.InexactFloat64(),
		ByPerson:       byPersonOut,
	}, nil
}

func (s *StatsServiceImpl) CumulativeInsurance(ctx context.Context) ([]stats.PersonCumulativeInsurance, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	persons, err := s.personRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]stats.PersonCumulativeInsurance, 0, len(persons))
	for _, p := range persons {
		recs, err := s.salaryRepo.ListByPersonID(ctx, p.ID, userID)
		if err != nil {
			return nil, err
		}

		pensionSystem := decimal.Zero
		medicalSystem := decimal.Zero
		housingSystem := decimal.Zero
		for _, r := range recs {
			pensionSystem = pensionSystem.Add(r.PensionInsurance)
			medicalSystem = medicalSystem.Add(r.MedicalInsurance)
			housingSystem = housingSystem.Add(r.HousingFund)
		}

		result = append(result, stats.PersonCumulativeInsurance{
			PersonID:           p.ID,
			PersonName:         p.Name,
			PensionHistory:     p.PensionHistory.InexactFloat64(),
			MedicalHistory:     p.MedicalHistory.InexactFloat64(),
			HousingFundHistory: p.HousingFundHistory.InexactFloat64(),
			PensionSystem:      pensionSystem.InexactFloat64(),
			MedicalSystem:      medicalSystem.InexactFloat64(),
			HousingFundSystem:  housingSystem.InexactFloat64(),
			PensionTotal:       p.PensionHistory.Add(pensionSystem).InexactFloat64(),
			MedicalTotal:       p.MedicalHistory.Add(medicalSystem).InexactFloat64(),
			HousingFundTotal:   p.HousingFundHistory.Add(housingSystem).InexactFloat64(),
		})
	}
	return result, nil
}

func (s *StatsServiceImpl) IncomeComposition(ctx context.Context, filter stats.StatsFilter) ([]stats.IncomeComposition, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	recs, entries, err := s.loadRecords(ctx, userID, statsToSalaryFilter(filter), filter.Range)
	if err != nil {
		return nil, err
	}

	result := make([]stats.IncomeComposition, 0, len(recs))
	for _, r := range recs {
		result = append(result, composeRecord(r, entries[r.ID]))
	}
	return result, nil
}

func (s *StatsServiceImpl) DeductionsBreakdown(ctx context.Context, filter stats.StatsFilter) (stats.DeductionsBreakdown, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return stats.DeductionsBreakdown{}, err
	}

	recs, entries, err := s.loadRecords(ctx, userID, statsToSalaryFilter(filter), filter.Range)
	if err != nil {
		return stats.DeductionsBreakdown{}, err
	}

	customDeductionOf := func(r salary.SalaryRecord) decimal.Decimal {
		return sumCustom(entries[r.ID]).deduction
	}

	// Summary totals by category
	totals := make([]decimal.Decimal, len(deductionCategories))
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, r := range recs {
		custom := customDeductionOf(r)
		for i, cat := range deductionCategories {
			totals[i] = totals[i].Add(cat.value(r, custom))
		}
	}

	grandTotal := decimal.Zero
	for _, amount := range totals {
		grandTotal = grandTotal.Add(amount)
	}

	summary := make([]stats.DeductionsBreakdownItem, 0, len(deductionCategories))
	for i, cat := range deductionCategories {
		summary = append(summary, stats.DeductionsBreakdownItem{
			Category: cat.label,
			Amount:   totals[i].InexactFloat64(),
			Percent:  percentOf(totals[i], grandTotal),
		})
	}

	// Monthly series, one point per distinct month, ascending.
	monthTotals := make(map[period.YearMonth][]decimal.Decimal)
	for _, r := range recs {
		ym := period.New(r.Year, r.Month)
		row, ok := monthTotals[ym]
		if !ok {
			row = make([]decimal.Decimal, len(deductionCategories))
			for i := range row {
				row[i] = decimal.Zero
			}
			monthTotals[ym] = row
		}
		custom := customDeductionOf(r)
		for i, cat := range deductionCategories {
			row[i] = row[i].Add(cat.value(r, custom))
		}
	}

	months := make([]period.YearMonth, 0, len(monthTotals))
	for ym := range monthTotals {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	monthly := make([]stats.DeductionsMonthly, 0, len(months))
	for _, ym := range months {
		row := monthTotals[ym]
		rowTotal := decimal.Zero
		for _, amount := range row {
			rowTotal = rowTotal.Add(amount)
		}
		monthly = append(monthly, stats.DeductionsMonthly{
			Year:                     ym.Year(),
			Month:                    ym.Month(),
			PensionInsurance:         row[0].InexactFloat64(),
			MedicalInsurance:         row[1].InexactFloat64(),
			UnemploymentInsurance:    row[2].InexactFloat64(),
			CriticalIllnessInsurance: row[3].InexactFloat64(),
			EnterpriseAnnuity:        row[4].InexactFloat64(),
			HousingFund:              row[5].InexactFloat64(),
			OtherDeductions:          row[6].InexactFloat64(),
			LaborUnionFee:            row[7].InexactFloat64(),
			PerformanceDeduction:     row[8].InexactFloat64(),
			Total:                    rowTotal.InexactFloat64(),
		})
	}

	return stats.DeductionsBreakdown{Summary: summary, Monthly: monthly}, nil
}

func (s *StatsServiceImpl) ContributionsCumulative(ctx context.Context, personID string, rangeStr string) (stats.ContributionsCumulative, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return stats.ContributionsCumulative{}, err
	}

	p, err := s.personRepo.GetByID(ctx, personID, userID)
	if err != nil {
		return stats.ContributionsCumulative{}, err
	}

	allRecs, err := s.salaryRepo.ListByPersonID(ctx, personID, userID)
	if err != nil {
		return stats.ContributionsCumulative{}, err
	}
	sort.Slice(allRecs, func(i, j int) bool {
		return period.New(allRecs[i].Year, allRecs[i].Month) < period.New(allRecs[j].Year, allRecs[j].Month)
	})

	window := period.Unbounded()
	if rangeStr != "" {
		window = period.ParseRange(rangeStr)
	}

	// The series base is the history balance plus every contribution
	// strictly before the window, so it continues seamlessly from the
	// as-of point.
	curPension := p.PensionHistory
	curMedical := p.MedicalHistory
	curHousing := p.HousingFundHistory
	for _, r := range allRecs {
		if period.New(r.Year, r.Month) < window.Start {
			curPension = curPension.Add(r.PensionInsurance)
			curMedical = curMedical.Add(r.MedicalInsurance)
			curHousing = curHousing.Add(r.HousingFund)
		}
	}

	var points []stats.ContributionsCumulativePoint
	for _, r := range allRecs {
		if !window.Contains(period.New(r.Year, r.Month)) {
			continue
		}
		curPension = curPension.Add(r.PensionInsurance)
		curMedical = curMedical.Add(r.MedicalInsurance)
		curHousing = curHousing.Add(r.HousingFund)
		points = append(points, stats.ContributionsCumulativePoint{
			Year:                  r.Year,
			Month:                 r.Month,
			PensionCumulative:     curPension.InexactFloat64(),
			MedicalCumulative:     curMedical.InexactFloat64(),
			HousingFundCumulative: curHousing.InexactFloat64(),
		})
	}

	// All-time totals ignore the window entirely.
	pensionSystem := decimal.Zero
	medicalSystem := decimal.Zero
	housingSystem := decimal.Zero
	for _, r := range allRecs {
		pensionSystem = pensionSystem.Add(r.PensionInsurance)
		medicalSystem = medicalSystem.Add(r.MedicalInsurance)
		housingSystem = housingSystem.Add(r.HousingFund)
	}

	return stats.ContributionsCumulative{
		PersonID:               p.ID,
		PersonName:             p.Name,
		PensionHistory:         p.PensionHistory.InexactFloat64(),
		MedicalHistory:         p.MedicalHistory.InexactFloat64(),
		HousingFundHistory:     p.HousingFundHistory.InexactFloat64(),
		Points:                 points,
		PensionSystemTotal:     pensionSystem.InexactFloat64(),
		MedicalSystemTotal:     medicalSystem.InexactFloat64(),
		HousingFundSystemTotal: housingSystem.InexactFloat64(),
		PensionTotal:           p.PensionHistory.Add(pensionSystem).InexactFloat64(),
		MedicalTotal:           p.MedicalHistory.Add(medicalSystem).InexactFloat64(),
		HousingFundTotal:       p.HousingFundHistory.Add(housingSystem).InexactFloat64(),
	}, nil
}
