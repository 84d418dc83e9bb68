package queries

import (
	"errors"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

// DefaultRevenueDays is the span of the dashboard revenue chart.
const (
	DefaultRevenueDays = 7
	MaxRevenueDays     = 92
)

var ErrGetRevenueSeriesQueryIsNotConstructed = errors.New(
	"GetRevenueSeriesQuery must be created via NewGetRevenueSeriesQuery constructor",
)

// GetRevenueSeriesQuery buckets paid revenue by the calendar day the order
// was opened, ending with the day containing today.
type GetRevenueSeriesQuery struct {
	first time.Time
	days  int

	guard guard.ConstructorGuard
}

// NewGetRevenueSeriesQuery uses today's location for the day boundaries. A
// days value of 0 means DefaultRevenueDays.
func NewGetRevenueSeriesQuery(today time.Time, days int) (GetRevenueSeriesQuery, error) {
	if today.IsZero() {
		return GetRevenueSeriesQuery{}, errs.NewValueIsRequiredError("today")
	}
	if days == 0 {
		days = DefaultRevenueDays
	}
	if days < 1 || days > MaxRevenueDays {
		return GetRevenueSeriesQuery{}, errs.NewValueIsOutOfRangeError("days", days, 1, MaxRevenueDays)
	}

	last := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return GetRevenueSeriesQuery{
		first: last.AddDate(0, 0, 1-days),
		days:  days,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetRevenueSeriesQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueSeriesQueryIsNotConstructed)
}

// Start is midnight of the first day.
func (q GetRevenueSeriesQuery) Start() time.Time {
	return q.first
}

// End is midnight after the last day.
func (q GetRevenueSeriesQuery) End() time.Time {
	return q.first.AddDate(0, 0, q.days)
}

func (q GetRevenueSeriesQuery) Days() int {
	return q.days
}

// RevenuePoint is one day of the series. Days without sales are present with
// zero revenue.
type RevenuePoint struct {
	Day        time.Time
	PaidOrders int
	Revenue    kernel.Money
}
