package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand closes any live order. Its token is freed and no commission is earned.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	session staff.Session
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(session staff.Session, orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(
		validateSession(session),
		orderID.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		session: session,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Session() staff.Session {
	return c.session
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
