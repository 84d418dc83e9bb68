package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrRemoveConsumableCommandIsNotConstructed = errors.New(
	"RemoveConsumableCommand must be created via NewRemoveConsumableCommand constructor",
)

// RemoveConsumableCommand drops an inventory line from a live order.
type RemoveConsumableCommand struct { //nolint:recvcheck //using for validation
	session staff.Session
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveConsumableCommand(session staff.Session, orderID, itemID kernel.UUID) (RemoveConsumableCommand, error) {
	if err := errors.Join(
		validateSession(session),
		orderID.Validate(),
		itemID.Validate(),
	); err != nil {
		return RemoveConsumableCommand{}, err
	}

	return RemoveConsumableCommand{
		session: session,
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveConsumableCommand) Validate() error {
	return c.guard.Validate(ErrRemoveConsumableCommandIsNotConstructed)
}

func (c RemoveConsumableCommand) Session() staff.Session {
	return c.session
}

func (c RemoveConsumableCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID is the order line, not the catalog item.
func (c RemoveConsumableCommand) ItemID() kernel.UUID {
	return c.itemID
}
