package queries

import (
	"errors"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with its lines for the token details and
// payment screens.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type OrderDetails struct {
	ActiveOrder

	VehicleTypeID    *kernel.UUID
	ServiceID        kernel.UUID
	WasherName       string
	CommissionAmount kernel.Money
	CreatedBy        string
	ClosedBy         string
	PaidAt           *time.Time
	Items            []OrderLine

	// RunningTotal is the sum of the live lines. It differs from TotalAmount
	// only while a write is in flight.
	RunningTotal kernel.Money
}

type OrderLine struct {
	ID        kernel.UUID
	Type      order.ItemType
	CatalogID kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Subtotal  kernel.Money
}
