package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

// ServiceCommissionRate is the washer's share of the service lines of a paid order.
var ServiceCommissionRate = decimal.New(35, -2)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// one of its constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewStaffOrder, NewKioskOrder or RestoreOrder")

	// ErrServiceLineIsNotRemovable is returned when a service line is removed from an order.
	ErrServiceLineIsNotRemovable = errs.NewValueIsInvalidErrorWithCause(
		"order item",
		errors.New("the service line cannot be removed, cancel the order instead"),
	)
)

// Customer identifies the vehicle being washed.
type Customer struct {
	Name        string
	PlateNumber string
}

// ServiceSelection is a wash service with the price shown when it was chosen.
type ServiceSelection struct {
	ServiceID kernel.UUID
	Name      string
	Price     kernel.Money
}

// Consumable is an inventory item as it is priced at the moment of sale.
type Consumable struct {
	ItemID kernel.UUID
	Name   string
	Price  kernel.Money
}

// Snapshot carries every stored field of an order, used by RestoreOrder.
type Snapshot struct {
	ID               kernel.UUID
	TokenNumber      int
	ServiceID        kernel.UUID
	VehicleTypeID    *kernel.UUID
	Customer         Customer
	WasherName       string
	TotalAmount      kernel.Money
	CommissionAmount kernel.Money
	Status           Status
	Source           Source
	IsVerified       bool
	CreatedBy        string
	ClosedBy         string
	CreatedAt        time.Time
	PaidAt           *time.Time
	Items            []*Item
}

// Order is one vehicle's visit, from token hand-out to payment or cancellation.
// It owns its lines and keeps totalAmount equal to the sum of the lines.
//
// Order follows these invariants:
//   - A verified order has exactly one service line
//   - There is at most one line per inventory item; repeated sales accumulate quantity
//   - Lines can change only while the order is live
//   - At Paid, commission equals ServiceCommissionRate times the service lines, rounded to cents
//
// The token claim is not part of the aggregate. Handlers coordinate it with
// the token repository in the same unit of work.
type Order struct {
	id            kernel.UUID
	tokenNumber   int
	serviceID     kernel.UUID
	vehicleTypeID *kernel.UUID
	customer      Customer
	washerName    string

	totalAmount      kernel.Money
	commissionAmount kernel.Money

	status     Status
	source     Source
	isVerified bool

	createdBy string
	closedBy  string
	createdAt time.Time
	paidAt    *time.Time

	items []*Item

	isConstructed bool
}

// NewStaffOrder creates a queued, verified order with its service line, as a
// greeter does at the gate. The price is the one the greeter saw when selecting.
//
// Example:
//
//	o, err := order.NewStaffOrder(kernel.NewUUID(), 12, sedanID,
//	    order.Customer{Name: "Ana", PlateNumber: "ABC 123"},
//	    order.ServiceSelection{ServiceID: washID, Name: "Basic Wash", Price: kernel.MustMoney("250")},
//	    "Greta", time.Now())
func NewStaffOrder(
	id kernel.UUID,
	tokenNumber int,
	vehicleTypeID kernel.UUID,
	customer Customer,
	service ServiceSelection,
	createdBy string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		customer:      normalizeCustomer(customer),
		status:        Queued,
		source:        SourceStaff,
		isVerified:    true,
		createdBy:     strings.TrimSpace(createdBy),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTokenNumber(tokenNumber),
		o.setServiceID(service.ServiceID),
		o.setVehicleTypeID(vehicleTypeID),
	); err != nil {
		return nil, err
	}

	if err := o.addServiceLine(service); err != nil {
		return nil, err
	}

	return o, nil
}

// NewKioskOrder creates a self-service order. It has no lines and no price
// until staff verify the vehicle type.
func NewKioskOrder(id kernel.UUID, tokenNumber int, serviceID kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        PendingVerification,
		source:        SourceKiosk,
		createdAt:     createdAt,
		totalAmount:   kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTokenNumber(tokenNumber),
		o.setServiceID(serviceID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage without re-running lifecycle rules.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		customer:         s.Customer,
		washerName:       s.WasherName,
		totalAmount:      s.TotalAmount,
		commissionAmount: s.CommissionAmount,
		isVerified:       s.IsVerified,
		createdBy:        s.CreatedBy,
		closedBy:         s.ClosedBy,
		createdAt:        s.CreatedAt,
		paidAt:           s.PaidAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setTokenNumber(s.TokenNumber),
		o.setServiceID(s.ServiceID),
		s.Status.Validate(),
		s.Source.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = s.Status
	o.source = s.Source

	if s.VehicleTypeID != nil {
		if err := o.setVehicleTypeID(*s.VehicleTypeID); err != nil {
			return nil, err
		}
	}

	for _, item := range s.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		o.items = append(o.items, item)
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// TokenNumber is the physical token the order was opened with. It stays as a
// label after the token is released.
func (o *Order) TokenNumber() int {
	return o.tokenNumber
}

func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// VehicleTypeID is nil until a kiosk order is verified.
func (o *Order) VehicleTypeID() *kernel.UUID {
	return o.vehicleTypeID
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) WasherName() string {
	return o.washerName
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) CommissionAmount() kernel.Money {
	return o.commissionAmount
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Source() Source {
	return o.source
}

func (o *Order) IsVerified() bool {
	return o.isVerified
}

func (o *Order) CreatedBy() string {
	return o.createdBy
}

func (o *Order) ClosedBy() string {
	return o.closedBy
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// Items returns the order lines. The slice is a copy; the lines are shared.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item finds a line by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

// RunningTotal sums the current lines.
func (o *Order) RunningTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ServiceSubtotal sums the service lines only; it is the commission base.
func (o *Order) ServiceSubtotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		if item.Type() == ItemTypeService {
			total = total.Add(item.LineTotal())
		}
	}
	return total
}

// Verify prices a kiosk order for the confirmed vehicle type and puts it in the queue.
// The selection must be the service the customer picked at the kiosk.
func (o *Order) Verify(vehicleTypeID kernel.UUID, service ServiceSelection) error {
	if !service.ServiceID.IsEqual(o.serviceID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"service",
			fmt.Errorf("order was placed for service %s, got %s", o.serviceID, service.ServiceID),
		)
	}

	newStatus, err := o.status.Verify()
	if err != nil {
		return err
	}

	if err := o.setVehicleTypeID(vehicleTypeID); err != nil {
		return err
	}
	if err := o.addServiceLine(service); err != nil {
		return err
	}

	o.status = newStatus
	o.isVerified = true
	return nil
}

// Reject cancels an unverified kiosk order.
func (o *Order) Reject(closedBy string) error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.closedBy = strings.TrimSpace(closedBy)
	return nil
}

// AddConsumable sells quantity units of an inventory item on this order. A
// repeated item accumulates onto its existing line and keeps that line's
// original price snapshot. lineID is used only when a new line is created.
//
// It returns the line that now carries the item.
func (o *Order) AddConsumable(lineID kernel.UUID, consumable Consumable, quantity int) (*Item, error) {
	if err := o.status.ValidateEditable(); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		if item.Type() == ItemTypeInventory && item.CatalogID().IsEqual(consumable.ItemID) {
			if quantity < 1 {
				return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
			}
			if err := item.addQuantity(quantity); err != nil {
				return nil, err
			}
			o.recalculate()
			return item, nil
		}
	}

	item, err := newItem(lineID, ItemTypeInventory, consumable.ItemID, consumable.Name, consumable.Price, quantity)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	o.recalculate()
	return item, nil
}

// RemoveConsumable drops an inventory line.
func (o *Order) RemoveConsumable(itemID kernel.UUID) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}

	for i, item := range o.items {
		if !item.ID().IsEqual(itemID) {
			continue
		}
		if item.Type() == ItemTypeService {
			return ErrServiceLineIsNotRemovable
		}
		o.items = append(o.items[:i], o.items[i+1:]...)
		o.recalculate()
		return nil
	}

	return errs.NewObjectNotFoundError("order item", itemID)
}

// Advance moves the wash forward to Working or Ready.
func (o *Order) Advance(to Status) error {
	newStatus, err := o.status.Advance(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPaid settles the order. Totals are recomputed from the live lines so that
// consumables added after the last cached total are charged.
func (o *Order) MarkPaid(washerName, closedBy string, at time.Time) error {
	washerName = strings.TrimSpace(washerName)
	if washerName == "" {
		return errs.NewValueIsRequiredError("washer name")
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.recalculate()
	o.commissionAmount = o.ServiceSubtotal().Share(ServiceCommissionRate)
	o.washerName = washerName
	o.closedBy = strings.TrimSpace(closedBy)
	o.paidAt = &at
	o.status = newStatus
	return nil
}

// Cancel abandons a live order. Cancelled orders earn no commission.
func (o *Order) Cancel(closedBy string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.commissionAmount = kernel.ZeroMoney()
	o.closedBy = strings.TrimSpace(closedBy)
	return nil
}

func (o *Order) addServiceLine(service ServiceSelection) error {
	for _, item := range o.items {
		if item.Type() == ItemTypeService {
			return errs.NewValueIsInvalidErrorWithCause("order item", errors.New("order already has a service line"))
		}
	}

	item, err := newItem(kernel.NewUUID(), ItemTypeService, service.ServiceID, service.Name, service.Price, 1)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalculate()
	return nil
}

func (o *Order) recalculate() {
	o.totalAmount = o.RunningTotal()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTokenNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsInvalidErrorWithCause("token number", fmt.Errorf("%d is not greater than 0", number))
	}
	o.tokenNumber = number
	return nil
}

func (o *Order) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	o.serviceID = serviceID
	return nil
}

func (o *Order) setVehicleTypeID(vehicleTypeID kernel.UUID) error {
	if err := vehicleTypeID.Validate(); err != nil {
		return err
	}
	o.vehicleTypeID = &vehicleTypeID
	return nil
}

func normalizeCustomer(c Customer) Customer {
	return Customer{
		Name:        strings.TrimSpace(c.Name),
		PlateNumber: strings.ToUpper(strings.TrimSpace(c.PlateNumber)),
	}
}
