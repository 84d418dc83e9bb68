package queries

import (
	"errors"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists orders on the floor, oldest first. It backs the
// barista grid, the greeter's token widget and the public queue display.
//
// Example:
//
//	query, _ := NewGetActiveOrdersQuery(order.Working, order.Ready)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load the bay board: %w", err)
//	}
type GetActiveOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery filters by statuses. With none it returns every
// order that still holds its token.
func NewGetActiveOrdersQuery(statuses ...order.Status) (GetActiveOrdersQuery, error) {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
	}
	if len(statuses) == 0 {
		statuses = order.LiveStatuses()
	}

	return GetActiveOrdersQuery{
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// ActiveOrder is one row of the order boards. VehicleType is empty for a kiosk
// order that has not been verified yet.
type ActiveOrder struct {
	ID           kernel.UUID
	TokenNumber  int
	CustomerName string
	PlateNumber  string
	ServiceName  string
	VehicleType  string
	Status       order.Status
	Source       order.Source
	IsVerified   bool
	TotalAmount  kernel.Money
	CreatedAt    time.Time
}
