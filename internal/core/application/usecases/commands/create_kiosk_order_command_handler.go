package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
)

// CreateKioskOrderCommandHandler opens an unverified order from the kiosk.
// It follows the same claim-then-insert sequence as staff orders.
type CreateKioskOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	repairer   tokenRepairer
}

func NewCreateKioskOrderCommandHandler(uowFactory OrderUoWFactory) CreateKioskOrderCommandHandler {
	return CreateKioskOrderCommandHandler{
		uowFactory: uowFactory,
		repairer:   newTokenRepairer(orderTokenUoWFactory{orders: uowFactory}),
	}
}

func (h CreateKioskOrderCommandHandler) Handle(ctx context.Context, command CreateKioskOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tokenRepo := uow.TokenRepository()

	tk, err := tokenRepo.Get(ctx, command.TokenNumber())
	if err != nil {
		return err
	}
	if !tk.IsAvailable() {
		return fmt.Errorf("%w: token %d", token.ErrTokenUnavailable, tk.Number())
	}

	service, err := uow.CatalogRepository().GetService(ctx, command.ServiceID())
	if err != nil {
		return err
	}

	o, err := order.NewKioskOrder(command.OrderID(), tk.Number(), service.ID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = tokenRepo.CompareAndSwapStatus(ctx, tk.Number(), token.Available, token.Active, o.ID().Ptr()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return h.repairer.partialWriteFailure(ctx, tk.Number(), err)
	}

	return nil
}
