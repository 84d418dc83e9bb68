package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrGetPayrollQueryIsNotConstructed = errors.New(
	"GetPayrollQuery must be created via NewGetPayrollQuery constructor",
)

// GetPayrollQuery totals washer commissions for orders paid in [from, to).
//
// Example:
//
//	query, _ := NewCurrentMonthPayrollQuery(time.Now())
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	top := report.Washers[0] // highest commission first
type GetPayrollQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

func NewGetPayrollQuery(from, to time.Time) (GetPayrollQuery, error) {
	if from.IsZero() || to.IsZero() {
		return GetPayrollQuery{}, errs.NewValueIsRequiredError("payroll period")
	}
	if !from.Before(to) {
		return GetPayrollQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"payroll period",
			fmt.Errorf("from %s is not before to %s", from.Format(time.RFC3339), to.Format(time.RFC3339)),
		)
	}

	return GetPayrollQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewCurrentMonthPayrollQuery covers the calendar month containing now, in
// now's location. The washer leaderboard uses it.
func NewCurrentMonthPayrollQuery(now time.Time) (GetPayrollQuery, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return NewGetPayrollQuery(start, start.AddDate(0, 1, 0))
}

func (q GetPayrollQuery) Validate() error {
	return q.guard.Validate(ErrGetPayrollQueryIsNotConstructed)
}

func (q GetPayrollQuery) From() time.Time {
	return q.from
}

func (q GetPayrollQuery) To() time.Time {
	return q.to
}

type WasherPayroll struct {
	Name       string
	Jobs       int
	Sales      kernel.Money
	Commission kernel.Money
}

// PayrollReport lists washers by commission, highest first.
type PayrollReport struct {
	From            time.Time
	To              time.Time
	Washers         []WasherPayroll
	TotalJobs       int
	TotalSales      kernel.Money
	TotalCommission kernel.Money
}
