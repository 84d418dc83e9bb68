package ports

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
)

// CatalogRepository persists vehicle types, services, the price matrix and inventory.
type CatalogRepository interface {
	AddVehicleType(ctx context.Context, v *catalog.VehicleType) error
	GetVehicleType(ctx context.Context, id kernel.UUID) (*catalog.VehicleType, error)

	AddService(ctx context.Context, s *catalog.Service) error
	GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error)
	UpdateService(ctx context.Context, s *catalog.Service) error

	// SetServicePrice inserts or replaces a cell of the price matrix.
	SetServicePrice(ctx context.Context, p *catalog.ServicePrice) error

	// GetServicePrice returns an errs.ObjectNotFoundError when the service has
	// no price for the vehicle type.
	GetServicePrice(ctx context.Context, serviceID, vehicleTypeID kernel.UUID) (*catalog.ServicePrice, error)

	AddInventoryItem(ctx context.Context, i *catalog.InventoryItem) error
	GetInventoryItem(ctx context.Context, id kernel.UUID) (*catalog.InventoryItem, error)

	// UpdateInventoryItem overwrites name, price, stock and category. Stock is
	// only ever set here; a sale does not decrement it.
	UpdateInventoryItem(ctx context.Context, i *catalog.InventoryItem) error
}
