package catalog

import (
	"errors"
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var (
	ErrCatalogEntryIsNotConstructed = errors.New("catalog entry must be created via its constructor")
	ErrOutOfStock                   = errors.New("inventory item is out of stock")
)

// VehicleType is a size class such as sedan or SUV. SortOrder drives the
// column order of the price matrix.
type VehicleType struct {
	id        kernel.UUID
	name      string
	sortOrder int

	guard guard.ConstructorGuard
}

func NewVehicleType(id kernel.UUID, name string, sortOrder int) (*VehicleType, error) {
	v := &VehicleType{sortOrder: sortOrder, guard: guard.NewConstructorGuard()}

	if err := errors.Join(setID(&v.id, id), setName(&v.name, "vehicle type name", name)); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *VehicleType) ID() kernel.UUID { return v.id }
func (v *VehicleType) Name() string    { return v.name }
func (v *VehicleType) SortOrder() int  { return v.sortOrder }

func (v *VehicleType) Validate() error {
	if v == nil {
		return ErrCatalogEntryIsNotConstructed
	}
	return v.guard.Validate(ErrCatalogEntryIsNotConstructed)
}

// Service is a wash package. Its price depends on the vehicle type, see ServicePrice.
type Service struct {
	id          kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

func NewService(id kernel.UUID, name, description string) (*Service, error) {
	s := &Service{description: strings.TrimSpace(description), guard: guard.NewConstructorGuard()}

	if err := errors.Join(setID(&s.id, id), setName(&s.name, "service name", name)); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) ID() kernel.UUID     { return s.id }
func (s *Service) Name() string        { return s.name }
func (s *Service) Description() string { return s.description }

// Rename changes the display name. Orders keep the name they were rung up with.
func (s *Service) Rename(name string) error {
	return setName(&s.name, "service name", name)
}

func (s *Service) Describe(description string) {
	s.description = strings.TrimSpace(description)
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrCatalogEntryIsNotConstructed
	}
	return s.guard.Validate(ErrCatalogEntryIsNotConstructed)
}

// ServicePrice is one cell of the price matrix.
type ServicePrice struct {
	serviceID     kernel.UUID
	vehicleTypeID kernel.UUID
	price         kernel.Money

	guard guard.ConstructorGuard
}

func NewServicePrice(serviceID, vehicleTypeID kernel.UUID, price kernel.Money) (*ServicePrice, error) {
	p := &ServicePrice{price: price, guard: guard.NewConstructorGuard()}

	if err := errors.Join(setID(&p.serviceID, serviceID), setID(&p.vehicleTypeID, vehicleTypeID)); err != nil {
		return nil, err
	}
	if price.IsZero() {
		return nil, errs.NewValueIsRequiredError("service price")
	}
	return p, nil
}

func (p *ServicePrice) ServiceID() kernel.UUID     { return p.serviceID }
func (p *ServicePrice) VehicleTypeID() kernel.UUID { return p.vehicleTypeID }
func (p *ServicePrice) Price() kernel.Money        { return p.price }

func (p *ServicePrice) Validate() error {
	if p == nil {
		return ErrCatalogEntryIsNotConstructed
	}
	return p.guard.Validate(ErrCatalogEntryIsNotConstructed)
}

// InventoryItem is a consumable sold by the barista: drinks, snacks, car care products.
type InventoryItem struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	stockQty int
	category Category

	guard guard.ConstructorGuard
}

func NewInventoryItem(id kernel.UUID, name string, price kernel.Money, stockQty int, category Category) (*InventoryItem, error) {
	i := &InventoryItem{price: price, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setID(&i.id, id),
		setName(&i.name, "inventory item name", name),
		category.Validate(),
	); err != nil {
		return nil, err
	}
	if stockQty < 0 {
		return nil, errs.NewValueIsOutOfRangeError("stock quantity", stockQty, 0, "unbounded")
	}

	i.stockQty = stockQty
	i.category = category
	return i, nil
}

func (i *InventoryItem) ID() kernel.UUID     { return i.id }
func (i *InventoryItem) Name() string        { return i.name }
func (i *InventoryItem) Price() kernel.Money { return i.price }
func (i *InventoryItem) StockQty() int       { return i.stockQty }
func (i *InventoryItem) Category() Category  { return i.category }

// InStock reports whether the item can be sold from the cafe menu.
func (i *InventoryItem) InStock() bool {
	return i.stockQty > 0
}

// Update replaces the editable fields. Nothing changes when any of them is invalid.
func (i *InventoryItem) Update(name string, price kernel.Money, stockQty int, category Category) error {
	updated, err := NewInventoryItem(i.id, name, price, stockQty, category)
	if err != nil {
		return err
	}

	i.name = updated.name
	i.price = updated.price
	i.stockQty = updated.stockQty
	i.category = updated.category
	return nil
}

func (i *InventoryItem) Validate() error {
	if i == nil {
		return ErrCatalogEntryIsNotConstructed
	}
	return i.guard.Validate(ErrCatalogEntryIsNotConstructed)
}

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func setName(dst *string, param, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = name
	return nil
}
