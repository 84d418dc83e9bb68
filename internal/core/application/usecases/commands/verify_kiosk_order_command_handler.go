package commands

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
)

// VerifyKioskOrderCommandHandler prices a kiosk order from the service price
// matrix and queues it. A missing matrix cell is an errs.ObjectNotFoundError;
// a wash is never queued at zero.
type VerifyKioskOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewVerifyKioskOrderCommandHandler(uowFactory OrderUoWFactory) VerifyKioskOrderCommandHandler {
	return VerifyKioskOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h VerifyKioskOrderCommandHandler) Handle(ctx context.Context, command VerifyKioskOrderCommand) error {
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
	catalogRepo := uow.CatalogRepository()

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	vehicleType, err := catalogRepo.GetVehicleType(ctx, command.VehicleTypeID())
	if err != nil {
		return err
	}
	service, err := catalogRepo.GetService(ctx, o.ServiceID())
	if err != nil {
		return err
	}
	price, err := catalogRepo.GetServicePrice(ctx, service.ID(), vehicleType.ID())
	if err != nil {
		return err
	}

	err = o.Verify(vehicleType.ID(), order.ServiceSelection{
		ServiceID: service.ID(),
		Name:      service.Name(),
		Price:     price.Price(),
	})
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
