package commands

import (
	"context"
)

// CancelOrderCommandHandler abandons a live order. Cancelled orders are
// excluded from revenue and payroll.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	repairer   tokenRepairer
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		repairer:   newTokenRepairer(orderTokenUoWFactory{orders: uowFactory}),
	}
}

// Handle moves the order to cancelled and releases its token in one transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(cashierRoles...); err != nil {
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

	if err = o.Cancel(command.Session().Name); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = releaseToken(ctx, uow.TokenRepository(), o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return h.repairer.partialWriteFailure(ctx, o.TokenNumber(), err)
	}

	return nil
}
