package commands_test

import (
	"testing"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateStaffOrderCommand(t *testing.T) {
	t.Run("should keep the selection", func(t *testing.T) {
		orderID, vehicleTypeID, serviceID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		cmd, err := commands.NewCreateStaffOrderCommand(
			greeter, orderID, 7, order.Customer{Name: "Ana"}, vehicleTypeID, serviceID, kernel.MustMoney("250"),
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, 7, cmd.TokenNumber())
		assert.Equal(t, vehicleTypeID, cmd.VehicleTypeID())
		assert.Equal(t, serviceID, cmd.ServiceID())
		assert.Equal(t, "250.00", cmd.Price().String())
		assert.Equal(t, "Greta", cmd.Session().Name)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := commands.NewCreateStaffOrderCommand(
			staff.Session{}, kernel.UUID{}, 0, order.Customer{}, kernel.NewUUID(), kernel.NewUUID(), kernel.ZeroMoney(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewCreateKioskOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateKioskOrderCommand(kernel.NewUUID(), -1, kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAddConsumableCommand_Quantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
		wantErr  error
	}{
		{name: "defaults to one unit", quantity: 0, want: 1},
		{name: "keeps an explicit quantity", quantity: 3, want: 3},
		{name: "rejects negative quantities", quantity: -2, wantErr: errs.ErrValueIsOutOfRange},
		{name: "rejects more than a line holds", quantity: order.MaxLineQuantity + 1, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewAddConsumableCommand(barista, kernel.NewUUID(), kernel.NewUUID(), tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Quantity())
		})
	}
}

func TestNewMarkOrderPaidCommand_WasherRequired(t *testing.T) {
	_, err := commands.NewMarkOrderPaidCommand(cashier, kernel.NewUUID(), "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.True(t, errs.IsValidation(err))
}

func TestNewAdvanceOrderCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewAdvanceOrderCommand(greeter, kernel.NewUUID(), order.Status(42))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewReconcileTokensCommand_InvalidNumber(t *testing.T) {
	_, err := commands.NewReconcileTokensCommand(3, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCommands_ZeroValuesFailValidation(t *testing.T) {
	assert.ErrorIs(t, commands.CreateKioskOrderCommand{}.Validate(), commands.ErrCreateKioskOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.VerifyKioskOrderCommand{}.Validate(), commands.ErrVerifyKioskOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RejectKioskOrderCommand{}.Validate(), commands.ErrRejectKioskOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.AddConsumableCommand{}.Validate(), commands.ErrAddConsumableCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RemoveConsumableCommand{}.Validate(), commands.ErrRemoveConsumableCommandIsNotConstructed)
	assert.ErrorIs(t, commands.AdvanceOrderCommand{}.Validate(), commands.ErrAdvanceOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.MarkOrderPaidCommand{}.Validate(), commands.ErrMarkOrderPaidCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RelayChangesCommand{}.Validate(), commands.ErrRelayChangesCommandIsNotConstructed)
}
