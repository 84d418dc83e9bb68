package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
)

// CreateStaffOrderCommandHandler opens an order on a token for a staff terminal.
// The token claim and the order insert commit together or not at all.
type CreateStaffOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	repairer   tokenRepairer
}

func NewCreateStaffOrderCommandHandler(uowFactory OrderUoWFactory) CreateStaffOrderCommandHandler {
	return CreateStaffOrderCommandHandler{
		uowFactory: uowFactory,
		repairer:   newTokenRepairer(orderTokenUoWFactory{orders: uowFactory}),
	}
}

// Handle rejects an unavailable token before writing anything, resolves the
// service and vehicle type, then claims the token and inserts the order. If
// another terminal claims the token first, token.ErrTokenUnavailable is
// returned and no order is left behind.
func (h CreateStaffOrderCommandHandler) Handle(ctx context.Context, command CreateStaffOrderCommand) error {
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

	tokenRepo := uow.TokenRepository()
	catalogRepo := uow.CatalogRepository()

	tk, err := tokenRepo.Get(ctx, command.TokenNumber())
	if err != nil {
		return err
	}
	if !tk.IsAvailable() {
		return fmt.Errorf("%w: token %d", token.ErrTokenUnavailable, tk.Number())
	}

	service, err := catalogRepo.GetService(ctx, command.ServiceID())
	if err != nil {
		return err
	}
	vehicleType, err := catalogRepo.GetVehicleType(ctx, command.VehicleTypeID())
	if err != nil {
		return err
	}

	o, err := order.NewStaffOrder(
		command.OrderID(),
		tk.Number(),
		vehicleType.ID(),
		command.Customer(),
		order.ServiceSelection{ServiceID: service.ID(), Name: service.Name(), Price: command.Price()},
		command.Session().Name,
		time.Now().UTC(),
	)
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
