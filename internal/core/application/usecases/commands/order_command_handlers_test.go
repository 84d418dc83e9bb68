package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddConsumableCommandHandler_Handle_AccumulatesSameItem(t *testing.T) {
	ctx := context.Background()
	o := newQueuedOrder(t, 7, newService(t, "Premium Wash"), "250")
	coke := newInventoryItem(t, "Coke", "25")

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Twice()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Twice()
	r.catalog.On("GetInventoryItem", ctx, coke.ID()).Return(coke, nil).Twice()
	r.orders.On("Update", ctx, o).Return(nil).Twice()
	r.uow.On("Commit", ctx).Return(nil).Twice()
	r.uow.On("Rollback", ctx).Return(nil).Twice()

	h := commands.NewAddConsumableCommandHandler(r.orderFactory())
	for i := 0; i < 2; i++ {
		cmd, err := commands.NewAddConsumableCommand(barista, o.ID(), coke.ID(), 1)
		require.NoError(t, err)
		require.NoError(t, h.Handle(ctx, cmd))
	}
	r.assertExpectations(t)

	items := o.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Coke", items[1].Name())
	assert.Equal(t, 2, items[1].Quantity())
	assert.Equal(t, "300.00", o.TotalAmount().String())
}

func TestAddConsumableCommandHandler_Handle_PaidOrder(t *testing.T) {
	ctx := context.Background()
	o := newQueuedOrder(t, 7, newService(t, "Basic Wash"), "150")
	require.NoError(t, o.MarkPaid("Pedro", "Carla", o.CreatedAt()))
	coke := newInventoryItem(t, "Coke", "25")

	cmd, err := commands.NewAddConsumableCommand(cashier, o.ID(), coke.ID(), 1)
	require.NoError(t, err)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	r.catalog.On("GetInventoryItem", ctx, coke.ID()).Return(coke, nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAddConsumableCommandHandler(r.orderFactory())
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrOrderIsClosed)
	r.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestRemoveConsumableCommandHandler_Handle(t *testing.T) {
	t.Run("should remove an inventory line", func(t *testing.T) {
		ctx := context.Background()
		o := newQueuedOrder(t, 7, newService(t, "Basic Wash"), "150")
		line, err := o.AddConsumable(kernel.NewUUID(), consumable(t, "Chips", "40"), 1)
		require.NoError(t, err)

		cmd, err := commands.NewRemoveConsumableCommand(barista, o.ID(), line.ID())
		require.NoError(t, err)

		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		r.orders.On("Update", ctx, o).Return(nil).Once()
		r.uow.On("Commit", ctx).Return(nil).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewRemoveConsumableCommandHandler(r.orderFactory())
		require.NoError(t, h.Handle(ctx, cmd))
		r.assertExpectations(t)

		assert.Len(t, o.Items(), 1)
		assert.Equal(t, "150.00", o.TotalAmount().String())
	})

	t.Run("should refuse to remove the service line", func(t *testing.T) {
		ctx := context.Background()
		o := newQueuedOrder(t, 7, newService(t, "Basic Wash"), "150")

		cmd, err := commands.NewRemoveConsumableCommand(cashier, o.ID(), o.Items()[0].ID())
		require.NoError(t, err)

		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewRemoveConsumableCommandHandler(r.orderFactory())
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, errs.IsValidation(err))
		r.assertExpectations(t)
	})
}

func TestAdvanceOrderCommandHandler_Handle_ForwardOnly(t *testing.T) {
	ctx := context.Background()
	o := newQueuedOrder(t, 7, newService(t, "Basic Wash"), "150")

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Twice()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Twice()
	r.orders.On("Update", ctx, o).Return(nil).Once()
	r.uow.On("Commit", ctx).Return(nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Twice()

	h := commands.NewAdvanceOrderCommandHandler(r.orderFactory())

	toWorking, err := commands.NewAdvanceOrderCommand(greeter, o.ID(), order.Working)
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, toWorking))
	assert.Equal(t, order.Working, o.Status())

	backToQueued, err := commands.NewAdvanceOrderCommand(greeter, o.ID(), order.Queued)
	require.NoError(t, err)
	err = h.Handle(ctx, backToQueued)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	var transitionErr *order.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Working, transitionErr.From)
	assert.Equal(t, order.Working, o.Status())
	r.assertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_PremiumWashWithCoke(t *testing.T) {
	ctx := context.Background()
	o := newQueuedOrder(t, 7, newService(t, "Premium Wash"), "250")
	_, err := o.AddConsumable(kernel.NewUUID(), consumable(t, "Coke", "25"), 1)
	require.NoError(t, err)
	pedro := newWasher(t, "Pedro")

	cmd, err := commands.NewMarkOrderPaidCommand(cashier, o.ID(), " Pedro ")
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.staff.On("GetActiveByName", ctx, "Pedro").Return(pedro, nil).Once(),
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		r.orders.On("Update", ctx, o).Return(nil).Once(),
		r.tokens.On("Release", ctx, 7, o.ID()).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMarkOrderPaidCommandHandler(r.orderFactory())
	require.NoError(t, h.Handle(ctx, cmd))
	r.assertExpectations(t)

	assert.Equal(t, order.Paid, o.Status())
	assert.Equal(t, "275.00", o.TotalAmount().String())
	assert.Equal(t, "87.50", o.CommissionAmount().String())
	assert.Equal(t, "Pedro", o.WasherName())
	assert.Equal(t, "Carla", o.ClosedBy())
	assert.NotNil(t, o.PaidAt())
}

func TestMarkOrderPaidCommandHandler_Handle_UnknownWasher(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewMarkOrderPaidCommand(cashier, orderID, "Ghost")
	require.NoError(t, err)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.staff.On("GetActiveByName", ctx, "Ghost").Return(nil, errs.NewObjectNotFoundError("staff", "Ghost")).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewMarkOrderPaidCommandHandler(r.orderFactory())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	r.orders.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_TokenNoLongerHeld(t *testing.T) {
	ctx := context.Background()
	o := newQueuedOrder(t, 7, newService(t, "Basic Wash"), "150")
	cmd, err := commands.NewMarkOrderPaidCommand(cashier, o.ID(), "Pedro")
	require.NoError(t, err)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.staff.On("GetActiveByName", ctx, "Pedro").Return(newWasher(t, "Pedro"), nil).Once()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	r.orders.On("Update", ctx, o).Return(nil).Once()
	r.tokens.On("Release", ctx, 7, o.ID()).Return(token.ErrTokenNotHeld).Once()
	r.uow.On("Commit", ctx).Return(nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewMarkOrderPaidCommandHandler(r.orderFactory())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Paid, o.Status())
	r.assertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_CommitFails(t *testing.T) {
	ctx := context.Background()
	o := newQueuedOrder(t, 7, newService(t, "Basic Wash"), "150")
	cmd, err := commands.NewMarkOrderPaidCommand(cashier, o.ID(), "Pedro")
	require.NoError(t, err)
	commitErr := errors.New("connection reset")

	r := newRepos()
	r.uow.On("Begin", mock.Anything).Return(nil).Twice()
	r.staff.On("GetActiveByName", ctx, "Pedro").Return(newWasher(t, "Pedro"), nil).Once()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	r.orders.On("Update", ctx, o).Return(nil).Once()
	r.tokens.On("Release", ctx, 7, o.ID()).Return(nil).Once()
	r.uow.On("Commit", mock.Anything).Return(commitErr).Once()

	// The order row landed paid but the token still points at it.
	r.tokens.On("GetForUpdate", mock.Anything, 7).Return(newActiveToken(t, 7, o.ID()), nil).Once()
	r.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	r.orders.On("GetLiveByTokenNumber", mock.Anything, 7).Return([]*order.Order{}, nil).Once()
	r.tokens.On("Update", mock.Anything, mock.MatchedBy(func(tk *token.Token) bool {
		return tk.Number() == 7 && tk.IsAvailable()
	})).Return(nil).Once()
	r.uow.On("Commit", mock.Anything).Return(nil).Once()
	r.uow.On("Rollback", mock.Anything).Return(nil)

	h := commands.NewMarkOrderPaidCommandHandler(r.orderFactory())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPartialWriteFailure)
	require.ErrorIs(t, err, commitErr)
	r.assertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_Forbidden(t *testing.T) {
	cmd, err := commands.NewMarkOrderPaidCommand(washer, kernel.NewUUID(), "Pedro")
	require.NoError(t, err)

	h := commands.NewMarkOrderPaidCommandHandler(new(MockOrderUoWFactory))
	require.ErrorIs(t, h.Handle(context.Background(), cmd), staff.ErrForbidden)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel a working order and free its token", func(t *testing.T) {
		ctx := context.Background()
		o := newQueuedOrder(t, 9, newService(t, "Basic Wash"), "150")
		require.NoError(t, o.Advance(order.Working))
		cmd, err := commands.NewCancelOrderCommand(cashier, o.ID())
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			r.orders.On("Update", ctx, o).Return(nil).Once(),
			r.tokens.On("Release", ctx, 9, o.ID()).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewCancelOrderCommandHandler(r.orderFactory())
		require.NoError(t, h.Handle(ctx, cmd))
		r.assertExpectations(t)

		assert.Equal(t, order.Cancelled, o.Status())
		assert.True(t, o.CommissionAmount().IsZero())
	})

	t.Run("should reject cancelling a paid order", func(t *testing.T) {
		ctx := context.Background()
		o := newQueuedOrder(t, 9, newService(t, "Basic Wash"), "150")
		require.NoError(t, o.MarkPaid("Pedro", "Carla", o.CreatedAt()))
		cmd, err := commands.NewCancelOrderCommand(admin, o.ID())
		require.NoError(t, err)

		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewCancelOrderCommandHandler(r.orderFactory())
		require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrInvalidTransition)
		r.assertExpectations(t)
	})
}

func TestCancelOrderCommandHandler_Handle_CommitFails(t *testing.T) {
	ctx := context.Background()
	o := newQueuedOrder(t, 9, newService(t, "Basic Wash"), "150")
	cmd, err := commands.NewCancelOrderCommand(cashier, o.ID())
	require.NoError(t, err)
	commitErr := errors.New("connection reset")

	r := newRepos()
	r.uow.On("Begin", mock.Anything).Return(nil).Twice()
	r.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	r.orders.On("Update", ctx, o).Return(nil).Once()
	r.tokens.On("Release", ctx, 9, o.ID()).Return(nil).Once()
	r.uow.On("Commit", mock.Anything).Return(commitErr).Once()

	r.tokens.On("GetForUpdate", mock.Anything, 9).Return(newActiveToken(t, 9, o.ID()), nil).Once()
	r.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	r.orders.On("GetLiveByTokenNumber", mock.Anything, 9).Return([]*order.Order{}, nil).Once()
	r.tokens.On("Update", mock.Anything, mock.MatchedBy(func(tk *token.Token) bool {
		return tk.Number() == 9 && tk.IsAvailable()
	})).Return(nil).Once()
	r.uow.On("Commit", mock.Anything).Return(nil).Once()
	r.uow.On("Rollback", mock.Anything).Return(nil)

	h := commands.NewCancelOrderCommandHandler(r.orderFactory())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPartialWriteFailure)
	require.ErrorIs(t, err, commitErr)
	assert.Equal(t, order.Cancelled, o.Status())
	r.assertExpectations(t)
}

func consumable(t *testing.T, name, price string) order.Consumable {
	t.Helper()
	item := newInventoryItem(t, name, price)
	return order.Consumable{ItemID: item.ID(), Name: item.Name(), Price: item.Price()}
}
