package commands

import (
	"context"
)

type RejectKioskOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	repairer   tokenRepairer
}

func NewRejectKioskOrderCommandHandler(uowFactory OrderUoWFactory) RejectKioskOrderCommandHandler {
	return RejectKioskOrderCommandHandler{
		uowFactory: uowFactory,
		repairer:   newTokenRepairer(orderTokenUoWFactory{orders: uowFactory}),
	}
}

// Handle fails with order.ErrInvalidTransition once the order has been verified;
// a queued order is cancelled instead.
func (h RejectKioskOrderCommandHandler) Handle(ctx context.Context, command RejectKioskOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(frontDeskRoles...); err != nil {
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

	if err = o.Reject(command.Session().Name); err != nil {
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
