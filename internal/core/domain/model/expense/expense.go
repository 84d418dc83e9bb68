// Package expense records cash paid out of the till, which the daily summary
// subtracts from revenue.
package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewExpense constructor")

type Expense struct {
	id          kernel.UUID
	description string
	amount      kernel.Money
	loggedBy    string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

func NewExpense(id kernel.UUID, description string, amount kernel.Money, loggedBy string, createdAt time.Time) (*Expense, error) {
	e := &Expense{
		amount:    amount,
		loggedBy:  strings.TrimSpace(loggedBy),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	e.id = id

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	e.description = description

	if amount.IsZero() {
		return nil, errs.NewValueIsRequiredError("amount")
	}

	return e, nil
}

func (e *Expense) ID() kernel.UUID {
	return e.id
}

func (e *Expense) Description() string {
	return e.description
}

func (e *Expense) Amount() kernel.Money {
	return e.amount
}

func (e *Expense) LoggedBy() string {
	return e.loggedBy
}

func (e *Expense) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Expense) Validate() error {
	if e == nil {
		return ErrExpenseIsNotConstructed
	}
	return e.guard.Validate(ErrExpenseIsNotConstructed)
}
