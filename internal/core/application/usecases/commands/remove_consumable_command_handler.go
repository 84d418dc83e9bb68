package commands

import (
	"context"
)

// RemoveConsumableCommandHandler deletes an inventory line. The service line
// cannot be removed; the order has to be cancelled instead.
type RemoveConsumableCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveConsumableCommandHandler(uowFactory OrderUoWFactory) RemoveConsumableCommandHandler {
	return RemoveConsumableCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveConsumableCommandHandler) Handle(ctx context.Context, command RemoveConsumableCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(counterRoles...); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = o.RemoveConsumable(command.ItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
