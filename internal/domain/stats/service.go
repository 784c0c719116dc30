package stats

import "context"

// StatsFilter scopes a stats query. The owning user always comes from
// the request context.
type StatsFilter struct {
	PersonID *string
	Year     *int
	Month    *int
	Range    string
}

type StatsService interface {
	Monthly(ctx context.Context, filter StatsFilter) ([]MonthlyStats, error)
	Yearly(ctx context.Context, personID *string, year int) ([]YearlyStats, error)
	Family(ctx context.Context, year int) (FamilySummary, error)
	CumulativeInsurance(ctx context.Context) ([]PersonCumulativeInsurance, error)
	IncomeComposition(ctx context.Context, filter StatsFilter) ([]IncomeComposition, error)
	DeductionsBreakdown(ctx context.Context, filter StatsFilter) (DeductionsBreakdown, error)
	ContributionsCumulative(ctx context.Context, personID string, rangeStr string) (ContributionsCumulative, error)
}
