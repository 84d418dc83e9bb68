package commands

import (
	"context"
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"
)

// CatalogCommandHandler runs the admin catalog operations. Each is a single
// row write, so one handler serves all of them.
type CatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCatalogCommandHandler(uowFactory CatalogUoWFactory) CatalogCommandHandler {
	return CatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CatalogCommandHandler) HandleCreateVehicleType(ctx context.Context, command CreateVehicleTypeCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	return h.inTx(ctx, func(repo ports.CatalogRepository) error {
		return repo.AddVehicleType(ctx, command.VehicleType())
	})
}

func (h CatalogCommandHandler) HandleCreateService(ctx context.Context, command CreateServiceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	return h.inTx(ctx, func(repo ports.CatalogRepository) error {
		return repo.AddService(ctx, command.Service())
	})
}

// HandleSetServicePrice fails with errs.ObjectNotFoundError when the service
// or vehicle type does not exist.
func (h CatalogCommandHandler) HandleSetServicePrice(ctx context.Context, command SetServicePriceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	price := command.ServicePrice()
	return h.inTx(ctx, func(repo ports.CatalogRepository) error {
		_, serviceErr := repo.GetService(ctx, price.ServiceID())
		_, vehicleErr := repo.GetVehicleType(ctx, price.VehicleTypeID())
		if err := errors.Join(serviceErr, vehicleErr); err != nil {
			return err
		}
		return repo.SetServicePrice(ctx, price)
	})
}

func (h CatalogCommandHandler) HandleCreateInventoryItem(ctx context.Context, command CreateInventoryItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	return h.inTx(ctx, func(repo ports.CatalogRepository) error {
		return repo.AddInventoryItem(ctx, command.InventoryItem())
	})
}

// HandleUpdateService fails with errs.ObjectAlreadyExistsError when another
// service already has the name.
func (h CatalogCommandHandler) HandleUpdateService(ctx context.Context, command UpdateServiceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	return h.inTx(ctx, func(repo ports.CatalogRepository) error {
		service, err := repo.GetService(ctx, command.ServiceID())
		if err != nil {
			return err
		}
		if err = service.Rename(command.Name()); err != nil {
			return err
		}
		service.Describe(command.Description())
		return repo.UpdateService(ctx, service)
	})
}

func (h CatalogCommandHandler) HandleUpdateInventoryItem(ctx context.Context, command UpdateInventoryItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	return h.inTx(ctx, func(repo ports.CatalogRepository) error {
		item, err := repo.GetInventoryItem(ctx, command.ItemID())
		if err != nil {
			return err
		}
		if err = item.Update(command.Name(), command.Price(), command.StockQty(), command.Category()); err != nil {
			return err
		}
		return repo.UpdateInventoryItem(ctx, item)
	})
}

func (h CatalogCommandHandler) inTx(ctx context.Context, fn func(repo ports.CatalogRepository) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow.CatalogRepository()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
