package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrAddConsumableCommandIsNotConstructed = errors.New(
	"AddConsumableCommand must be created via NewAddConsumableCommand constructor",
)

// AddConsumableCommand sells an inventory item (a drink, a snack, an air
// freshener) on a live order. Repeating it for the same item adds to the
// existing line.
type AddConsumableCommand struct { //nolint:recvcheck //using for validation
	session         staff.Session
	orderID         kernel.UUID
	inventoryItemID kernel.UUID
	quantity        int

	guard guard.ConstructorGuard
}

// NewAddConsumableCommand builds the command. A quantity of 0 means one unit.
func NewAddConsumableCommand(
	session staff.Session,
	orderID kernel.UUID,
	inventoryItemID kernel.UUID,
	quantity int,
) (AddConsumableCommand, error) {
	command := AddConsumableCommand{
		session:         session,
		orderID:         orderID,
		inventoryItemID: inventoryItemID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateSession(session),
		orderID.Validate(),
		inventoryItemID.Validate(),
		command.setQuantity(quantity),
	); err != nil {
		return AddConsumableCommand{}, err
	}

	return command, nil
}

func (c AddConsumableCommand) Validate() error {
	return c.guard.Validate(ErrAddConsumableCommandIsNotConstructed)
}

func (c AddConsumableCommand) Session() staff.Session {
	return c.session
}

func (c AddConsumableCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddConsumableCommand) InventoryItemID() kernel.UUID {
	return c.inventoryItemID
}

func (c AddConsumableCommand) Quantity() int {
	return c.quantity
}

func (c *AddConsumableCommand) setQuantity(quantity int) error {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 || quantity > order.MaxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, order.MaxLineQuantity)
	}

	c.quantity = quantity
	return nil
}
