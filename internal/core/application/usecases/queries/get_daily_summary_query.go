package queries

import (
	"errors"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDailySummaryQueryIsNotConstructed = errors.New(
	"GetDailySummaryQuery must be created via NewGetDailySummaryQuery constructor",
)

// GetDailySummaryQuery is the cashier's end of day report.
type GetDailySummaryQuery struct {
	start time.Time

	guard guard.ConstructorGuard
}

// NewGetDailySummaryQuery covers the calendar day containing day, in day's location.
func NewGetDailySummaryQuery(day time.Time) (GetDailySummaryQuery, error) {
	if day.IsZero() {
		return GetDailySummaryQuery{}, errs.NewValueIsRequiredError("day")
	}

	return GetDailySummaryQuery{
		start: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDailySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySummaryQueryIsNotConstructed)
}

func (q GetDailySummaryQuery) Start() time.Time {
	return q.start
}

func (q GetDailySummaryQuery) End() time.Time {
	return q.start.AddDate(0, 0, 1)
}

// DailySummary reports paid revenue against logged expenses. Net is a plain
// decimal because a slow day can end below zero.
type DailySummary struct {
	Day        time.Time
	PaidOrders int
	Revenue    kernel.Money
	Commission kernel.Money
	Expenses   kernel.Money
	Net        decimal.Decimal
}
