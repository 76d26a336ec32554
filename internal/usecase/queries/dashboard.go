package queries

import (
	"context"
	"math"

	"offer-console/internal/infra/api"
	"offer-console/internal/pkg/errs"
)

// FilterThisWeek is the only period the dashboard currently requests.
const FilterThisWeek = "this-week"

type DashboardGateway interface {
	GetDashboardSummary(ctx context.Context, filter string) (*api.DashboardSummary, error)
	GetDashboardStat(ctx context.Context, filter string) (*api.DashboardStat, error)
}

type DashboardQueries interface {
	SummaryCards(ctx context.Context, filter string) ([]SummaryCard, error)
	WeeklyStat(ctx context.Context, filter string) (*api.DashboardStat, error)
}

type dashboardQueriesImpl struct {
	gateway DashboardGateway
}

func NewDashboardQueries(gateway DashboardGateway) DashboardQueries {
	return &dashboardQueriesImpl{gateway: gateway}
}

func (q *dashboardQueriesImpl) SummaryCards(ctx context.Context, filter string) ([]SummaryCard, error) {
	summary, err := q.gateway.GetDashboardSummary(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSummaryFetchFailed)
	}

	return []SummaryCard{
		newSummaryCard("Total active users", summary.Current.ActiveUsers, summary.Previous.ActiveUsers),
		newSummaryCard("Total clicks", summary.Current.Clicks, summary.Previous.Clicks),
		newSummaryCard("Total appearances", summary.Current.Appearance, summary.Previous.Appearance),
	}, nil
}

func (q *dashboardQueriesImpl) WeeklyStat(ctx context.Context, filter string) (*api.DashboardStat, error) {
	stat, err := q.gateway.GetDashboardStat(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStatFetchFailed)
	}
	return stat, nil
}

// Counts render in thousands; the delta is rounded to whole percent. A zero
// previous value reports 0% instead of dividing by zero.
func newSummaryCard(title string, current, previous int64) SummaryCard {
	percentage := 0
	if previous != 0 {
		percentage = int(math.Round(float64(current-previous) / float64(previous) * 100))
	}
	return SummaryCard{
		Title:      title,
		CountK:     float64(current) / 1000,
		Percentage: percentage,
	}
}
