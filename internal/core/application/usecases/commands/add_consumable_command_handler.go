package commands

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
)

// AddConsumableCommandHandler snapshots the catalog name and price of an
// inventory item onto an order. The order row is locked while its lines
// change, so two baristas tapping the same drink end with one line of
// quantity 2.
type AddConsumableCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddConsumableCommandHandler(uowFactory OrderUoWFactory) AddConsumableCommandHandler {
	return AddConsumableCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddConsumableCommandHandler) Handle(ctx context.Context, command AddConsumableCommand) error {
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

	item, err := uow.CatalogRepository().GetInventoryItem(ctx, command.InventoryItemID())
	if err != nil {
		return err
	}

	consumable := order.Consumable{ItemID: item.ID(), Name: item.Name(), Price: item.Price()}
	if _, err = o.AddConsumable(kernel.NewUUID(), consumable, command.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
