package commands

import (
	"context"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/expense"
)

// LogExpenseCommandHandler stores an expense against the logged-in cashier.
type LogExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
}

func NewLogExpenseCommandHandler(uowFactory ExpenseUoWFactory) LogExpenseCommandHandler {
	return LogExpenseCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h LogExpenseCommandHandler) Handle(ctx context.Context, command LogExpenseCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(cashierRoles...); err != nil {
		return err
	}

	e, err := expense.NewExpense(
		command.ExpenseID(),
		command.Description(),
		command.Amount(),
		command.Session().Name,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ExpenseRepository().Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
