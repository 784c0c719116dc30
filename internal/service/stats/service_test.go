package stats

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/salarium/salarium-backend-go/internal/domain/person"
	"github.com/salarium/salarium-backend-go/internal/domain/salary"
	"github.com/salarium/salarium-backend-go/internal/domain/stats"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

func authedContext(t *testing.T) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": testUserID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakePersonRepo struct {
	persons []person.Person
}

func (f *fakePersonRepo) Create(ctx context.Context, p person.Person) (person.Person, error) {
	f.persons = append(f.persons, p)
	return p, nil
}

func (f *fakePersonRepo) GetByID(ctx context.Context, id string, userID string) (person.Person, error) {
	for _, p := range f.persons {
		if p.ID == id && p.UserID == userID {
			return p, nil
		}
	}
	return person.Person{}, person.ErrPersonNotFound
}

func (f *fakePersonRepo) GetByUserID(ctx context.Context, userID string) ([]person.Person, error) {
	var out []person.Person
	for _, p := range f.persons {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonRepo) Update(ctx context.Context, userID string, req person.UpdatePersonRequest) error {
	return nil
}

func (f *fakePersonRepo) Delete(ctx context.Context, id string, userID string) error {
	return nil
}

type fakeSalaryRepo struct {
	records []salary.SalaryRecord
	entries map[string][]salary.PayrollEntry
	owner   map[string]string
}

func (f *fakeSalaryRepo) Create(ctx context.Context, record salary.SalaryRecord) (salary.SalaryRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeSalaryRepo) GetByID(ctx context.Context, id string, userID string) (salary.SalaryRecord, error) {
	for _, r := range f.records {
		if r.ID == id && f.owner[r.PersonID] == userID {
			return r, nil
		}
	}
	return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
}

func (f *fakeSalaryRepo) List(ctx context.Context, userID string, filter salary.SalaryFilter) ([]salary.SalaryRecord, error) {
	var out []salary.SalaryRecord
	for _, r := range f.records {
		if f.owner[r.PersonID] != userID {
			continue
		}
		if filter.PersonID != nil && r.PersonID != *filter.PersonID {
			continue
		}
		if filter.Year != nil && r.Year != *filter.Year {
			continue
		}
		if filter.Month != nil && r.Month != *filter.Month {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeSalaryRepo) ListByPersonID(ctx context.Context, personID string, userID string) ([]salary.SalaryRecord, error) {
	pid := personID
	return f.List(ctx, userID, salary.SalaryFilter{PersonID: &pid})
}

func (f *fakeSalaryRepo) Update(ctx context.Context, userID string, req salary.UpdateSalaryRequest) error {
	return nil
}

func (f *fakeSalaryRepo) Delete(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeSalaryRepo) GetPayrollEntries(ctx context.Context, recordIDs []string) (map[string][]salary.PayrollEntry, error) {
	out := make(map[string][]salary.PayrollEntry)
	for _, id := range recordIDs {
		if entries, ok := f.entries[id]; ok {
			out[id] = entries
		}
	}
	return out, nil
}

func (f *fakeSalaryRepo) ReplaceCustomValues(ctx context.Context, recordID string, userID string, values map[string]decimal.Decimal) error {
	return nil
}

func newFixture() (*fakePersonRepo, *fakeSalaryRepo, stats.StatsService) {
	personRepo := &fakePersonRepo{
		persons: []person.Person{
			{
				ID: "person-1", UserID: testUserID, Name: "Alice",
				PensionHistory:     d("100"),
				MedicalHistory:     d("50"),
				HousingFundHistory: d("200"),
			},
			{
				ID: "person-2", UserID: testUserID, Name: "Bob",
			},
			{
				ID: "person-9", UserID: "someone-else", Name: "Stranger",
			},
		},
	}
	salaryRepo := &fakeSalaryRepo{
		entries: map[string][]salary.PayrollEntry{},
		owner: map[string]string{
			"person-1": testUserID,
			"person-2": testUserID,
			"person-9": "someone-else",
		},
	}
	svc := NewStatsService(personRepo, salaryRepo)
	return personRepo, salaryRepo, svc
}

func record(id, personID string, year, month int, base string) salary.SalaryRecord {
	return salary.SalaryRecord{
		ID:         id,
		PersonID:   personID,
		Year:       year,
		Month:      month,
		BaseSalary: d(base),
	}
}

func TestMonthlyRequiresAuth(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Monthly(context.Background(), stats.StatsFilter{})
	assert.Error(t, err)
}

func TestMonthlyNoRecords(t *testing.T) {
	_, _, svc := newFixture()

	result, err := svc.Monthly(authedContext(t), stats.StatsFilter{})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestMonthlyRangeFilter(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	salaryRepo.records = []salary.SalaryRecord{
		record("r1", "person-1", 2023, 12, "1000"),
		record("r2", "person-1", 2024, 1, "1100"),
		record("r3", "person-1", 2024, 6, "1200"),
		record("r4", "person-1", 2025, 1, "1300"),
	}

	result, err := svc.Monthly(authedContext(t), stats.StatsFilter{Range: "2024"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].Month)
	assert.Equal(t, 6, result[1].Month)
}

func TestMonthlyExcludesOtherUsers(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	salaryRepo.records = []salary.SalaryRecord{
		record("r1", "person-1", 2024, 1, "1000"),
		record("r9", "person-9", 2024, 1, "9999"),
	}

	result, err := svc.Monthly(authedContext(t), stats.StatsFilter{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "person-1", result[0].PersonID)
}

func TestYearlyAveragesAndSorting(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	salaryRepo.records = []salary.SalaryRecord{
		record("r1", "person-2", 2024, 1, "500"),
		record("r2", "person-1", 2024, 1, "100"),
		record("r3", "person-1", 2024, 2, "200"),
		record("r4", "person-1", 2024, 3, "300"),
		record("r5", "person-1", 2023, 1, "9999"),
	}

	result, err := svc.Yearly(authedContext(t), nil, 2024)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// person ids sort ascending regardless of record order
	assert.Equal(t, "person-1", result[0].PersonID)
	assert.Equal(t, "person-2", result[1].PersonID)

	assert.Equal(t, 3, result[0].Months)
	assert.InDelta(t, 600, result[0].TotalNet, 1e-9)
	assert.InDelta(t, 200, result[0].AvgNet, 1e-9)
	assert.Equal(t, result[0].TotalNet, result[0].TotalActualTakeHome)
}

func TestYearlyUnknownPerson(t *testing.T) {
	_, _, svc := newFixture()

	missing := "no-such-person"
	_, err := svc.Yearly(authedContext(t), &missing, 2024)
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestYearlyOtherUsersPerson(t *testing.T) {
	_, _, svc := newFixture()

	other := "person-9"
	_, err := svc.Yearly(authedContext(t), &other, 2024)
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestFamilySummaryTotals(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	salaryRepo.records = []salary.SalaryRecord{
		record("r1", "person-1", 2024, 1, "1000"),
		record("r2", "person-1", 2024, 2, "1000"),
		record("r3", "person-2", 2024, 1, "2000"),
	}

	result, err := svc.Family(authedContext(t), 2024)
	require.NoError(t, err)

	assert.Equal(t, 2024, result.Year)
	assert.ElementsMatch(t, []string{"person-1", "person-2"}, result.Persons)
	assert.InDelta(t, 4000, result.TotalNet, 1e-9)

	// total_net equals the sum over by_person
	sum := 0.0
	for _, v := range result.ByPerson {
		sum += v
	}
	assert.InDelta(t, result.TotalNet, sum, 1e-9)

	// every person appears in by_person, even with no records
	assert.Contains(t, result.ByPerson, "person-2")
	assert.Len(t, result.ByPerson, 2)
}

func TestCumulativeInsuranceAddsHistory(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	r1 := record("r1", "person-1", 2024, 1, "0")
	r1.PensionInsurance = d("10")
	r1.MedicalInsurance = d("5")
	r1.HousingFund = d("20")
	r2 := record("r2", "person-1", 2024, 2, "0")
	r2.PensionInsurance = d("10")
	salaryRepo.records = []salary.SalaryRecord{r1, r2}

	result, err := svc.CumulativeInsurance(authedContext(t))
	require.NoError(t, err)
	require.Len(t, result, 2)

	alice := result[0]
	assert.Equal(t, "Alice", alice.PersonName)
	assert.InDelta(t, 20, alice.PensionSystem, 1e-9)
	assert.InDelta(t, 120, alice.PensionTotal, 1e-9)
	assert.InDelta(t, 55, alice.MedicalTotal, 1e-9)
	assert.InDelta(t, 220, alice.HousingFundTotal, 1e-9)

	bob := result[1]
	assert.Equal(t, float64(0), bob.PensionTotal)
}

func TestContributionsCumulativeSeries(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	r1 := record("r1", "person-1", 2024, 1, "0")
	r1.PensionInsurance = d("10")
	r2 := record("r2", "person-1", 2024, 2, "0")
	r2.PensionInsurance = d("20")
	// stored out of order on purpose
	salaryRepo.records = []salary.SalaryRecord{r2, r1}

	result, err := svc.ContributionsCumulative(authedContext(t), "person-1", "")
	require.NoError(t, err)

	require.Len(t, result.Points, 2)
	assert.Equal(t, 1, result.Points[0].Month)
	assert.InDelta(t, 110, result.Points[0].PensionCumulative, 1e-9)
	assert.InDelta(t, 130, result.Points[1].PensionCumulative, 1e-9)
	assert.InDelta(t, 30, result.PensionSystemTotal, 1e-9)
	assert.InDelta(t, 130, result.PensionTotal, 1e-9)
}

func TestContributionsCumulativeRangeBase(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	r1 := record("r1", "person-1", 2023, 12, "0")
	r1.PensionInsurance = d("40")
	r2 := record("r2", "person-1", 2024, 1, "0")
	r2.PensionInsurance = d("10")
	r3 := record("r3", "person-1", 2024, 2, "0")
	r3.PensionInsurance = d("20")
	salaryRepo.records = []salary.SalaryRecord{r1, r2, r3}

	result, err := svc.ContributionsCumulative(authedContext(t), "person-1", "2024")
	require.NoError(t, err)

	// pre-range contribution (40) joins the history base (100)
	require.Len(t, result.Points, 2)
	assert.InDelta(t, 150, result.Points[0].PensionCumulative, 1e-9)
	assert.InDelta(t, 170, result.Points[1].PensionCumulative, 1e-9)

	// the all-time totals ignore the window
	assert.InDelta(t, 70, result.PensionSystemTotal, 1e-9)
	assert.InDelta(t, 170, result.PensionTotal, 1e-9)
}

func TestDeductionsBreakdownSummaryAndMonthly(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	r1 := record("r1", "person-1", 2024, 1, "0")
	r1.PensionInsurance = d("100")
	r1.OtherDeductions = d("20")
	r2 := record("r2", "person-1", 2024, 2, "0")
	r2.PensionInsurance = d("100")
	salaryRepo.records = []salary.SalaryRecord{r1, r2}
	salaryRepo.entries["r1"] = []salary.PayrollEntry{
		{FieldKey: "parking", Label: "Parking", Type: salary.FieldTypeDeduction, Amount: d("30")},
	}

	result, err := svc.DeductionsBreakdown(authedContext(t), stats.StatsFilter{})
	require.NoError(t, err)

	require.Len(t, result.Summary, 9)
	byCategory := make(map[string]stats.DeductionsBreakdownItem)
	percentSum := 0.0
	for _, item := range result.Summary {
		byCategory[item.Category] = item
		percentSum += item.Percent
	}
	assert.InDelta(t, 200, byCategory["Pension Insurance"].Amount, 1e-9)
	// custom deductions fold into Other Deductions
	assert.InDelta(t, 50, byCategory["Other Deductions"].Amount, 1e-9)
	assert.InDelta(t, 100, percentSum, 1e-9)

	require.Len(t, result.Monthly, 2)
	assert.Equal(t, 1, result.Monthly[0].Month)
	assert.InDelta(t, 150, result.Monthly[0].Total, 1e-9)
	assert.InDelta(t, 100, result.Monthly[1].Total, 1e-9)
}

func TestIncomeCompositionRange(t *testing.T) {
	_, salaryRepo, svc := newFixture()
	salaryRepo.records = []salary.SalaryRecord{
		record("r1", "person-1", 2024, 1, "1000"),
		record("r2", "person-1", 2024, 2, "1000"),
		record("r3", "person-1", 2024, 3, "1000"),
	}

	result, err := svc.IncomeComposition(authedContext(t), stats.StatsFilter{Range: "2024-01..2024-02"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.InDelta(t, 100, result[0].BaseSalaryPercent, 1e-9)
}
