package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves a wash forward on the bay board.
//
// Example:
//
//	cmd, _ := NewAdvanceOrderCommand(session, orderID, order.Working)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // the order already moved on, refresh the board
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	session staff.Session
	orderID kernel.UUID
	to      order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(session staff.Session, orderID kernel.UUID, to order.Status) (AdvanceOrderCommand, error) {
	if err := errors.Join(
		validateSession(session),
		orderID.Validate(),
		to.Validate(),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		session: session,
		orderID: orderID,
		to:      to,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) Session() staff.Session {
	return c.session
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderCommand) To() order.Status {
	return c.to
}
