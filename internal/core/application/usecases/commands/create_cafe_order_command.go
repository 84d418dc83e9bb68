package commands

import (
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

// MaxCafeLines bounds one cafe checkout.
const MaxCafeLines = 20

var ErrCreateCafeOrderCommandIsNotConstructed = errors.New(
	"CreateCafeOrderCommand must be created via NewCreateCafeOrderCommand constructor",
)

// CafeLine is one entry of a customer's cart.
type CafeLine struct {
	InventoryItemID kernel.UUID
	Quantity        int
}

// CreateCafeOrderCommand is a customer ordering from the cafe menu while
// their car is washed. The cart is charged to the order holding the token.
// No staff session is involved.
type CreateCafeOrderCommand struct { //nolint:recvcheck //using for validation
	tokenNumber int
	lines       []CafeLine

	guard guard.ConstructorGuard
}

func NewCreateCafeOrderCommand(tokenNumber int, lines []CafeLine) (CreateCafeOrderCommand, error) {
	command := CreateCafeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTokenNumber(tokenNumber),
		command.setLines(lines),
	); err != nil {
		return CreateCafeOrderCommand{}, err
	}

	return command, nil
}

func (c CreateCafeOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCafeOrderCommandIsNotConstructed)
}

func (c CreateCafeOrderCommand) TokenNumber() int {
	return c.tokenNumber
}

func (c CreateCafeOrderCommand) Lines() []CafeLine {
	return c.lines
}

func (c *CreateCafeOrderCommand) setTokenNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsOutOfRangeError("token number", number, 1, "pool size")
	}

	c.tokenNumber = number
	return nil
}

func (c *CreateCafeOrderCommand) setLines(lines []CafeLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}
	if len(lines) > MaxCafeLines {
		return errs.NewValueIsOutOfRangeError("cart lines", len(lines), 1, MaxCafeLines)
	}

	var err error
	for i, line := range lines {
		if idErr := line.InventoryItemID.Validate(); idErr != nil {
			err = errors.Join(err, fmt.Errorf("line %d: %w", i+1, idErr))
		}
		if line.Quantity < 1 || line.Quantity > order.MaxLineQuantity {
			err = errors.Join(err, fmt.Errorf("line %d: %w", i+1,
				errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, order.MaxLineQuantity)))
		}
	}
	if err != nil {
		return err
	}

	c.lines = append([]CafeLine(nil), lines...)
	return nil
}
