package commands

import (
	"errors"
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand settles an order at the cashier and credits the washer.
//
// Example:
//
//	cmd, err := NewMarkOrderPaidCommand(session, orderID, "Pedro")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment failed: %w", err)
//	}
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	session    staff.Session
	orderID    kernel.UUID
	washerName string

	guard guard.ConstructorGuard
}

func NewMarkOrderPaidCommand(session staff.Session, orderID kernel.UUID, washerName string) (MarkOrderPaidCommand, error) {
	command := MarkOrderPaidCommand{
		session: session,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateSession(session),
		orderID.Validate(),
		command.setWasherName(washerName),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return command, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) Session() staff.Session {
	return c.session
}

func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkOrderPaidCommand) WasherName() string {
	return c.washerName
}

func (c *MarkOrderPaidCommand) setWasherName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("washer name")
	}

	c.washerName = name
	return nil
}
