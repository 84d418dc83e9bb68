package ports

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/expense"
)

type ExpenseRepository interface {
	Add(ctx context.Context, e *expense.Expense) error
}
