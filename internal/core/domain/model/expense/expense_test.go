package expense_test

import (
	"testing"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/expense"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	at := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	e, err := expense.NewExpense(kernel.NewUUID(), " Soap refill ", kernel.MustMoney("320.5"), "Cass", at)
	require.NoError(t, err)
	require.NoError(t, e.Validate())
	assert.Equal(t, "Soap refill", e.Description())
	assert.Equal(t, "320.50", e.Amount().String())
	assert.Equal(t, at, e.CreatedAt())

	_, err = expense.NewExpense(kernel.NewUUID(), "", kernel.MustMoney("1"), "Cass", at)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = expense.NewExpense(kernel.NewUUID(), "Soap", kernel.ZeroMoney(), "Cass", at)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
