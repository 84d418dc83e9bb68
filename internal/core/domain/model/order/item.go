package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

// MaxLineQuantity caps how many units of one consumable a single line can carry.
const MaxLineQuantity = 99

var ErrItemIsNotConstructed = errors.New("Item must be created via an order item constructor")

// ItemType tells whether a line is the wash itself or something sold alongside it.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypeService
	ItemTypeInventory
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeService:
		return "service"
	case ItemTypeInventory:
		return "inventory"
	default:
		return "unknown"
	}
}

func (t ItemType) Validate() error {
	if t != ItemTypeService && t != ItemTypeInventory {
		return errs.NewValueIsInvalidErrorWithCause("item type", fmt.Errorf("%d is not a valid item type", t))
	}
	return nil
}

func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "service":
		return ItemTypeService, nil
	case "inventory":
		return ItemTypeInventory, nil
	default:
		return ItemTypeUnknown, errs.NewValueIsInvalidErrorWithCause("item type", fmt.Errorf("%q is not a valid item type", s))
	}
}

// Item is one line on an order. The unit price is a snapshot taken when the
// line was added; later catalog price changes never reach it.
type Item struct {
	id        kernel.UUID
	itemType  ItemType
	catalogID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// RestoreItem rebuilds a line from storage.
func RestoreItem(
	id kernel.UUID,
	itemType ItemType,
	catalogID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
) (*Item, error) {
	return newItem(id, itemType, catalogID, name, unitPrice, quantity)
}

func newItem(
	id kernel.UUID,
	itemType ItemType,
	catalogID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
) (*Item, error) {
	i := &Item{
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setItemType(itemType),
		i.setCatalogID(catalogID),
		i.setName(name),
		i.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if itemType == ItemTypeService && quantity != 1 {
		return nil, errs.NewValueIsOutOfRangeError("service line quantity", quantity, 1, 1)
	}

	return i, nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Type() ItemType {
	return i.itemType
}

// CatalogID is the service id or inventory item id the line was sold from.
func (i *Item) CatalogID() kernel.UUID {
	return i.catalogID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *Item) Quantity() int {
	return i.quantity
}

// LineTotal is unit price times quantity.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) addQuantity(quantity int) error {
	return i.setQuantity(i.quantity + quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setItemType(itemType ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	i.itemType = itemType
	return nil
}

func (i *Item) setCatalogID(catalogID kernel.UUID) error {
	if err := catalogID.Validate(); err != nil {
		return err
	}
	i.catalogID = catalogID
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
	}
	i.quantity = quantity
	return nil
}
