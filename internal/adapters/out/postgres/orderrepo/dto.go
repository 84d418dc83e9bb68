// Package orderrepo persists order aggregates and their lines with GORM,
// handling the conversion between domain entities and database rows.
package orderrepo

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// lineIndex backs the one-line-per-catalog-entry rule for order lines.
	lineIndex = "idx_order_items_line"

	// liveTokenIndex allows one live order per token number.
	liveTokenIndex = "idx_orders_live_token"
)

// LiveTokenIndexDDL creates liveTokenIndex. Gorm tags cannot declare a
// partial index, so the migration runs this after AutoMigrate.
func LiveTokenIndexDDL() string {
	live := order.LiveStatuses()
	quoted := make([]string, len(live))
	for i, s := range live {
		quoted[i] = "'" + s.String() + "'"
	}
	return fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON orders (token_number) WHERE status IN (%s)",
		liveTokenIndex, strings.Join(quoted, ","),
	)
}

// OrderDTO is a row of the orders table. The token number is a plain label,
// not a foreign key, so history survives pool resizing.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TokenNumber      int             `gorm:"not null;index" json:"token_number"`
	ServiceID        uuid.UUID       `gorm:"type:uuid;not null" json:"service_id"`
	VehicleTypeID    *uuid.UUID      `gorm:"type:uuid" json:"vehicle_type_id"`
	CustomerName     string          `gorm:"type:varchar(128);not null;default:''" json:"customer_name"`
	PlateNumber      string          `gorm:"type:varchar(32);not null;default:''" json:"plate_number"`
	WasherName       string          `gorm:"type:varchar(128);not null;default:'';index" json:"washer_name"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total_amount"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"commission_amount"`
	Status           string          `gorm:"type:varchar(32);not null;index" json:"status"`
	Source           string          `gorm:"type:varchar(16);not null" json:"source"`
	IsVerified       bool            `gorm:"not null;default:false" json:"is_verified"`
	CreatedBy        string          `gorm:"type:varchar(128);not null;default:''" json:"created_by"`
	ClosedBy         string          `gorm:"type:varchar(128);not null;default:''" json:"closed_by"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"created_at"`
	PaidAt           *time.Time      `gorm:"index" json:"paid_at"`
	Items            []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of the order_items table.
type OrderItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_line,priority:1" json:"order_id"`
	ItemType      string          `gorm:"type:varchar(16);not null;uniqueIndex:idx_order_items_line,priority:2" json:"item_type"`
	ItemID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_line,priority:3" json:"item_id"`
	ItemName      string          `gorm:"type:varchar(128);not null" json:"item_name"`
	PriceSnapshot decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price_snapshot"`
	Quantity      int             `gorm:"not null;check:chk_order_items_quantity,quantity >= 1" json:"quantity"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var vehicleTypeID *uuid.UUID
	if id := o.VehicleTypeID(); id != nil {
		raw := id.Bytes()
		vehicleTypeID = &raw
	}

	dto := OrderDTO{
		ID:               o.ID().Bytes(),
		TokenNumber:      o.TokenNumber(),
		ServiceID:        o.ServiceID().Bytes(),
		VehicleTypeID:    vehicleTypeID,
		CustomerName:     o.Customer().Name,
		PlateNumber:      o.Customer().PlateNumber,
		WasherName:       o.WasherName(),
		TotalAmount:      o.TotalAmount().Amount(),
		CommissionAmount: o.CommissionAmount().Amount(),
		Status:           o.Status().String(),
		Source:           o.Source().String(),
		IsVerified:       o.IsVerified(),
		CreatedBy:        o.CreatedBy(),
		ClosedBy:         o.ClosedBy(),
		CreatedAt:        o.CreatedAt(),
		PaidAt:           o.PaidAt(),
	}

	for _, item := range o.Items() {
		dto.Items = append(dto.Items, itemFromDomain(o.ID(), item))
	}

	return dto
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:            item.ID().Bytes(),
		OrderID:       orderID.Bytes(),
		ItemType:      item.Type().String(),
		ItemID:        item.CatalogID().Bytes(),
		ItemName:      item.Name(),
		PriceSnapshot: item.UnitPrice().Amount(),
		Quantity:      item.Quantity(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	var vehicleTypeID *kernel.UUID
	if dto.VehicleTypeID != nil {
		vID, vErr := kernel.UUIDFromBytes((*dto.VehicleTypeID)[:])
		if vErr != nil {
			return nil, vErr
		}
		vehicleTypeID = &vID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	source, err := order.ParseSource(dto.Source)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	commission, err := kernel.NewMoney(dto.CommissionAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:               id,
		TokenNumber:      dto.TokenNumber,
		ServiceID:        serviceID,
		VehicleTypeID:    vehicleTypeID,
		Customer:         order.Customer{Name: dto.CustomerName, PlateNumber: dto.PlateNumber},
		WasherName:       dto.WasherName,
		TotalAmount:      total,
		CommissionAmount: commission,
		Status:           status,
		Source:           source,
		IsVerified:       dto.IsVerified,
		CreatedBy:        dto.CreatedBy,
		ClosedBy:         dto.ClosedBy,
		CreatedAt:        dto.CreatedAt,
		PaidAt:           dto.PaidAt,
		Items:            items,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	catalogID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	itemType, err := order.ParseItemType(dto.ItemType)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceSnapshot)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, itemType, catalogID, dto.ItemName, price, dto.Quantity)
}
