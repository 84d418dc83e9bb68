package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrCreateKioskOrderCommandIsNotConstructed = errors.New(
	"CreateKioskOrderCommand must be created via NewCreateKioskOrderCommand constructor",
)

// CreateKioskOrderCommand is a customer taking a token at the self-service kiosk.
// No staff session is involved; the order waits for a greeter to verify it.
type CreateKioskOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	tokenNumber int
	serviceID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateKioskOrderCommand(orderID kernel.UUID, tokenNumber int, serviceID kernel.UUID) (CreateKioskOrderCommand, error) {
	command := CreateKioskOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTokenNumber(tokenNumber),
		command.setServiceID(serviceID),
	); err != nil {
		return CreateKioskOrderCommand{}, err
	}

	return command, nil
}

func (c CreateKioskOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateKioskOrderCommandIsNotConstructed)
}

func (c CreateKioskOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateKioskOrderCommand) TokenNumber() int {
	return c.tokenNumber
}

func (c CreateKioskOrderCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c *CreateKioskOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateKioskOrderCommand) setTokenNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsOutOfRangeError("token number", number, 1, "pool size")
	}

	c.tokenNumber = number
	return nil
}

func (c *CreateKioskOrderCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	c.serviceID = serviceID
	return nil
}
