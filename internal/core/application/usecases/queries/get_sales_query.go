package queries

import (
	"errors"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

const (
	DefaultSalesLimit = 100
	MaxSalesLimit     = 1000
)

var ErrGetSalesQueryIsNotConstructed = errors.New(
	"GetSalesQuery must be created via NewGetSalesQuery constructor",
)

// GetSalesQuery is the transaction history: paid orders, newest payment first.
// The totals cover every paid order, not only the returned page.
type GetSalesQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetSalesQuery treats a limit of 0 as DefaultSalesLimit.
func NewGetSalesQuery(limit int) (GetSalesQuery, error) {
	if limit == 0 {
		limit = DefaultSalesLimit
	}
	if limit < 1 || limit > MaxSalesLimit {
		return GetSalesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxSalesLimit)
	}

	return GetSalesQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetSalesQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesQueryIsNotConstructed)
}

func (q GetSalesQuery) Limit() int {
	return q.limit
}

type SalesReport struct {
	Sales      []Sale
	PaidOrders int
	Revenue    kernel.Money
}

// Sale is one paid order. VehicleType is empty when the type was deleted.
type Sale struct {
	ID           kernel.UUID
	TokenNumber  int
	CustomerName string
	PlateNumber  string
	ServiceName  string
	VehicleType  string
	WasherName   string
	ClosedBy     string
	TotalAmount  kernel.Money
	PaidAt       time.Time
}
