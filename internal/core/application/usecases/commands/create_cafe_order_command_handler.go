package commands

import (
	"context"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
)

// CreateCafeOrderCommandHandler adds a cafe cart to the live order behind a
// token. The whole cart lands or none of it does. Stock is checked but never
// decremented.
type CreateCafeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateCafeOrderCommandHandler(uowFactory OrderUoWFactory) CreateCafeOrderCommandHandler {
	return CreateCafeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order the cart was charged to. It fails with
// token.ErrTokenIdle when the token holds no order and with
// catalog.ErrOutOfStock when an item has no stock left.
func (h CreateCafeOrderCommandHandler) Handle(ctx context.Context, command CreateCafeOrderCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tk, err := uow.TokenRepository().Get(ctx, command.TokenNumber())
	if err != nil {
		return kernel.UUID{}, err
	}
	jobID := tk.CurrentJobID()
	if tk.Status() != token.Active || jobID == nil {
		return kernel.UUID{}, fmt.Errorf("%w: token %d", token.ErrTokenIdle, tk.Number())
	}

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, *jobID)
	if err != nil {
		return kernel.UUID{}, err
	}
	if o.TokenNumber() != tk.Number() || !o.Status().IsLive() {
		return kernel.UUID{}, fmt.Errorf("%w: token %d", token.ErrTokenIdle, tk.Number())
	}

	catalogRepo := uow.CatalogRepository()
	for _, line := range command.Lines() {
		item, err := catalogRepo.GetInventoryItem(ctx, line.InventoryItemID)
		if err != nil {
			return kernel.UUID{}, err
		}
		if !item.InStock() {
			return kernel.UUID{}, fmt.Errorf("%w: %s", catalog.ErrOutOfStock, item.Name())
		}

		consumable := order.Consumable{ItemID: item.ID(), Name: item.Name(), Price: item.Price()}
		if _, err = o.AddConsumable(kernel.NewUUID(), consumable, line.Quantity); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return o.ID(), nil
}
