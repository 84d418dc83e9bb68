package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrLogExpenseCommandIsNotConstructed = errors.New(
	"LogExpenseCommand must be created via NewLogExpenseCommand constructor",
)

// LogExpenseCommand records cash taken out of the till, e.g. for soap or lunch.
type LogExpenseCommand struct { //nolint:recvcheck //using for validation
	session     staff.Session
	expenseID   kernel.UUID
	description string
	amount      kernel.Money

	guard guard.ConstructorGuard
}

func NewLogExpenseCommand(session staff.Session, expenseID kernel.UUID, description string, amount kernel.Money) (LogExpenseCommand, error) {
	command := LogExpenseCommand{
		session:     session,
		expenseID:   expenseID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateSession(session),
		expenseID.Validate(),
		command.setAmount(amount),
	); err != nil {
		return LogExpenseCommand{}, err
	}

	return command, nil
}

func (c LogExpenseCommand) Validate() error {
	return c.guard.Validate(ErrLogExpenseCommandIsNotConstructed)
}

func (c LogExpenseCommand) Session() staff.Session {
	return c.session
}

func (c LogExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

func (c LogExpenseCommand) Description() string {
	return c.description
}

func (c LogExpenseCommand) Amount() kernel.Money {
	return c.amount
}

func (c *LogExpenseCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("amount")
	}

	c.amount = amount
	return nil
}
