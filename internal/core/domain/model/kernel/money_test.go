package kernel_test

import (
	"testing"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())

		m, err := kernel.NewMoney(decimal.NewFromInt(250))
		require.NoError(t, err)
		assert.Equal(t, "250.00", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rounds to two places", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})
}

func TestMoneyFromString(t *testing.T) {
	_, err := kernel.MoneyFromString("twelve")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	m, err := kernel.MoneyFromString("87.5")
	require.NoError(t, err)
	assert.True(t, m.IsEqual(kernel.MustMoney("87.50")))
}

func TestMoney_Arithmetic(t *testing.T) {
	wash := kernel.MustMoney("250")
	coke := kernel.MustMoney("25")

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "275.00", wash.Add(coke).String())
	})

	t.Run("times quantity", func(t *testing.T) {
		assert.Equal(t, "75.00", coke.Times(3).String())
	})

	t.Run("share applies rate", func(t *testing.T) {
		assert.Equal(t, "87.50", wash.Share(decimal.New(35, -2)).String())
		assert.Equal(t, "0.35", kernel.MustMoney("1").Share(decimal.New(35, -2)).String())
		assert.Equal(t, "0.04", kernel.MustMoney("0.11").Share(decimal.New(35, -2)).String())
	})

	t.Run("zero money", func(t *testing.T) {
		assert.True(t, kernel.ZeroMoney().IsZero())
		assert.True(t, kernel.ZeroMoney().Add(coke).IsEqual(coke))
	})
}

func TestMustMoney_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { kernel.MustMoney("-5") })
}
