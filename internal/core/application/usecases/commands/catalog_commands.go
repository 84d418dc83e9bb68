package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var (
	ErrCreateVehicleTypeCommandIsNotConstructed = errors.New(
		"CreateVehicleTypeCommand must be created via NewCreateVehicleTypeCommand constructor",
	)
	ErrCreateServiceCommandIsNotConstructed = errors.New(
		"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
	)
	ErrSetServicePriceCommandIsNotConstructed = errors.New(
		"SetServicePriceCommand must be created via NewSetServicePriceCommand constructor",
	)
	ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
		"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
	)
	ErrUpdateServiceCommandIsNotConstructed = errors.New(
		"UpdateServiceCommand must be created via NewUpdateServiceCommand constructor",
	)
	ErrUpdateInventoryItemCommandIsNotConstructed = errors.New(
		"UpdateInventoryItemCommand must be created via NewUpdateInventoryItemCommand constructor",
	)
)

// CreateVehicleTypeCommand adds a row to the vehicle size list (sedan, SUV, ...).
type CreateVehicleTypeCommand struct {
	session     staff.Session
	vehicleType *catalog.VehicleType

	guard guard.ConstructorGuard
}

func NewCreateVehicleTypeCommand(session staff.Session, id kernel.UUID, name string, sortOrder int) (CreateVehicleTypeCommand, error) {
	if err := validateSession(session); err != nil {
		return CreateVehicleTypeCommand{}, err
	}
	vehicleType, err := catalog.NewVehicleType(id, name, sortOrder)
	if err != nil {
		return CreateVehicleTypeCommand{}, err
	}

	return CreateVehicleTypeCommand{
		session:     session,
		vehicleType: vehicleType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVehicleTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleTypeCommandIsNotConstructed)
}

func (c CreateVehicleTypeCommand) Session() staff.Session            { return c.session }
func (c CreateVehicleTypeCommand) VehicleType() *catalog.VehicleType { return c.vehicleType }

// CreateServiceCommand adds a wash service. Its prices are set per vehicle type.
type CreateServiceCommand struct {
	session staff.Session
	service *catalog.Service

	guard guard.ConstructorGuard
}

func NewCreateServiceCommand(session staff.Session, id kernel.UUID, name, description string) (CreateServiceCommand, error) {
	if err := validateSession(session); err != nil {
		return CreateServiceCommand{}, err
	}
	service, err := catalog.NewService(id, name, description)
	if err != nil {
		return CreateServiceCommand{}, err
	}

	return CreateServiceCommand{
		session: session,
		service: service,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

func (c CreateServiceCommand) Session() staff.Session    { return c.session }
func (c CreateServiceCommand) Service() *catalog.Service { return c.service }

// SetServicePriceCommand sets one cell of the price matrix.
type SetServicePriceCommand struct {
	session staff.Session
	price   *catalog.ServicePrice

	guard guard.ConstructorGuard
}

func NewSetServicePriceCommand(
	session staff.Session,
	serviceID kernel.UUID,
	vehicleTypeID kernel.UUID,
	price kernel.Money,
) (SetServicePriceCommand, error) {
	if err := validateSession(session); err != nil {
		return SetServicePriceCommand{}, err
	}
	servicePrice, err := catalog.NewServicePrice(serviceID, vehicleTypeID, price)
	if err != nil {
		return SetServicePriceCommand{}, err
	}

	return SetServicePriceCommand{
		session: session,
		price:   servicePrice,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetServicePriceCommand) Validate() error {
	return c.guard.Validate(ErrSetServicePriceCommandIsNotConstructed)
}

func (c SetServicePriceCommand) Session() staff.Session              { return c.session }
func (c SetServicePriceCommand) ServicePrice() *catalog.ServicePrice { return c.price }

// CreateInventoryItemCommand adds a product sold at the counter.
type CreateInventoryItemCommand struct {
	session staff.Session
	item    *catalog.InventoryItem

	guard guard.ConstructorGuard
}

func NewCreateInventoryItemCommand(
	session staff.Session,
	id kernel.UUID,
	name string,
	price kernel.Money,
	stockQty int,
	category catalog.Category,
) (CreateInventoryItemCommand, error) {
	if err := validateSession(session); err != nil {
		return CreateInventoryItemCommand{}, err
	}
	item, err := catalog.NewInventoryItem(id, name, price, stockQty, category)
	if err != nil {
		return CreateInventoryItemCommand{}, err
	}

	return CreateInventoryItemCommand{
		session: session,
		item:    item,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

func (c CreateInventoryItemCommand) Session() staff.Session                { return c.session }
func (c CreateInventoryItemCommand) InventoryItem() *catalog.InventoryItem { return c.item }

// UpdateServiceCommand renames a service. Existing orders keep the name on
// their service line.
type UpdateServiceCommand struct {
	session staff.Session
	edited  *catalog.Service

	guard guard.ConstructorGuard
}

func NewUpdateServiceCommand(session staff.Session, id kernel.UUID, name, description string) (UpdateServiceCommand, error) {
	if err := validateSession(session); err != nil {
		return UpdateServiceCommand{}, err
	}
	edited, err := catalog.NewService(id, name, description)
	if err != nil {
		return UpdateServiceCommand{}, err
	}

	return UpdateServiceCommand{
		session: session,
		edited:  edited,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateServiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceCommandIsNotConstructed)
}

func (c UpdateServiceCommand) Session() staff.Session { return c.session }
func (c UpdateServiceCommand) ServiceID() kernel.UUID { return c.edited.ID() }
func (c UpdateServiceCommand) Name() string           { return c.edited.Name() }
func (c UpdateServiceCommand) Description() string    { return c.edited.Description() }

// UpdateInventoryItemCommand is the admin inventory editor. It is the only
// write that changes stock.
type UpdateInventoryItemCommand struct {
	session staff.Session
	edited  *catalog.InventoryItem

	guard guard.ConstructorGuard
}

func NewUpdateInventoryItemCommand(
	session staff.Session,
	id kernel.UUID,
	name string,
	price kernel.Money,
	stockQty int,
	category catalog.Category,
) (UpdateInventoryItemCommand, error) {
	if err := validateSession(session); err != nil {
		return UpdateInventoryItemCommand{}, err
	}
	edited, err := catalog.NewInventoryItem(id, name, price, stockQty, category)
	if err != nil {
		return UpdateInventoryItemCommand{}, err
	}

	return UpdateInventoryItemCommand{
		session: session,
		edited:  edited,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryItemCommandIsNotConstructed)
}

func (c UpdateInventoryItemCommand) Session() staff.Session     { return c.session }
func (c UpdateInventoryItemCommand) ItemID() kernel.UUID        { return c.edited.ID() }
func (c UpdateInventoryItemCommand) Name() string               { return c.edited.Name() }
func (c UpdateInventoryItemCommand) Price() kernel.Money        { return c.edited.Price() }
func (c UpdateInventoryItemCommand) StockQty() int              { return c.edited.StockQty() }
func (c UpdateInventoryItemCommand) Category() catalog.Category { return c.edited.Category() }
