package ports

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their lines.
type OrderRepository interface {
	// Add persists a new order together with its initial lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists order fields and synchronises lines: new lines are
	// inserted, changed quantities updated and removed lines deleted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	// Mutating commands load through it so concurrent taps on one order serialise.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListItems returns the lines of an order.
	ListItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)

	// GetAllActive returns orders in the given statuses, or in any live status
	// when none are given, oldest first.
	GetAllActive(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)

	// GetLiveByTokenNumber returns the live orders carrying a token number.
	GetLiveByTokenNumber(ctx context.Context, number int) ([]*order.Order, error)
}
