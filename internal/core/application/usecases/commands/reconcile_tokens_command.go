package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrReconcileTokensCommandIsNotConstructed = errors.New(
	"ReconcileTokensCommand must be created via NewReconcileTokensCommand constructor",
)

// ReconcileTokensCommand checks tokens against the orders that reference them.
// With no numbers the whole pool is checked.
type ReconcileTokensCommand struct {
	numbers []int

	guard guard.ConstructorGuard
}

func NewReconcileTokensCommand(numbers ...int) (ReconcileTokensCommand, error) {
	for _, n := range numbers {
		if n < 1 {
			return ReconcileTokensCommand{}, errs.NewValueIsOutOfRangeError("token number", n, 1, "pool size")
		}
	}

	return ReconcileTokensCommand{
		numbers: numbers,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileTokensCommand) Validate() error {
	return c.guard.Validate(ErrReconcileTokensCommandIsNotConstructed)
}

func (c ReconcileTokensCommand) Numbers() []int {
	return c.numbers
}
