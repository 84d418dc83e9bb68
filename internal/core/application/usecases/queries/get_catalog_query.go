package queries

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery reads everything a terminal needs to take an order: vehicle
// types, services, the price matrix and the consumables on sale.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

type Catalog struct {
	VehicleTypes []VehicleTypeEntry
	Services     []ServiceEntry
	Prices       []PriceEntry
	Inventory    []InventoryEntry
}

type VehicleTypeEntry struct {
	ID        kernel.UUID
	Name      string
	SortOrder int
}

type ServiceEntry struct {
	ID          kernel.UUID
	Name        string
	Description string
}

type PriceEntry struct {
	ServiceID     kernel.UUID
	VehicleTypeID kernel.UUID
	Price         kernel.Money
}

type InventoryEntry struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	StockQty int
	Category catalog.Category
}
