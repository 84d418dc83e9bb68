package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrCreateStaffOrderCommandIsNotConstructed = errors.New(
	"CreateStaffOrderCommand must be created via NewCreateStaffOrderCommand constructor",
)

// CreateStaffOrderCommand represents a greeter checking a vehicle in at the gate.
// The price is the one shown on the greeter's screen when the service was picked.
//
// Example:
//
//	cmd, err := NewCreateStaffOrderCommand(session, kernel.NewUUID(), 7,
//	    order.Customer{Name: "Ana", PlateNumber: "ABC 123"},
//	    suvID, premiumWashID, kernel.MustMoney("250"))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateStaffOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, token.ErrTokenUnavailable) {
//	    // ask for another token
//	}
type CreateStaffOrderCommand struct { //nolint:recvcheck //using for validation
	session       staff.Session
	orderID       kernel.UUID
	tokenNumber   int
	customer      order.Customer
	vehicleTypeID kernel.UUID
	serviceID     kernel.UUID
	price         kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateStaffOrderCommand(
	session staff.Session,
	orderID kernel.UUID,
	tokenNumber int,
	customer order.Customer,
	vehicleTypeID kernel.UUID,
	serviceID kernel.UUID,
	price kernel.Money,
) (CreateStaffOrderCommand, error) {
	command := CreateStaffOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSession(session),
		command.setOrderID(orderID),
		command.setTokenNumber(tokenNumber),
		command.setVehicleTypeID(vehicleTypeID),
		command.setServiceID(serviceID),
		command.setPrice(price),
	); err != nil {
		return CreateStaffOrderCommand{}, err
	}

	return command, nil
}

func (c CreateStaffOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffOrderCommandIsNotConstructed)
}

func (c CreateStaffOrderCommand) Session() staff.Session {
	return c.session
}

func (c CreateStaffOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateStaffOrderCommand) TokenNumber() int {
	return c.tokenNumber
}

func (c CreateStaffOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateStaffOrderCommand) VehicleTypeID() kernel.UUID {
	return c.vehicleTypeID
}

func (c CreateStaffOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Price is the service price at the time of selection.
func (c CreateStaffOrderCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateStaffOrderCommand) setSession(session staff.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}

	c.session = session
	return nil
}

func (c *CreateStaffOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateStaffOrderCommand) setTokenNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsOutOfRangeError("token number", number, 1, "pool size")
	}

	c.tokenNumber = number
	return nil
}

func (c *CreateStaffOrderCommand) setVehicleTypeID(vehicleTypeID kernel.UUID) error {
	if err := vehicleTypeID.Validate(); err != nil {
		return err
	}

	c.vehicleTypeID = vehicleTypeID
	return nil
}

func (c *CreateStaffOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	c.serviceID = serviceID
	return nil
}

func (c *CreateStaffOrderCommand) setPrice(price kernel.Money) error {
	if price.IsZero() {
		return errs.NewValueIsRequiredError("price")
	}

	c.price = price
	return nil
}
