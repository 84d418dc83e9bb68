// Package catalogrepo persists vehicle types, services, the service price matrix
// and inventory items with GORM.
package catalogrepo

import (
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleTypeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
}

func (VehicleTypeDTO) TableName() string {
	return "vehicle_types"
}

type ServiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
}

func (ServiceDTO) TableName() string {
	return "services"
}

// ServicePriceDTO is one cell of the price matrix, keyed by service and vehicle type.
type ServicePriceDTO struct {
	ServiceID     uuid.UUID       `gorm:"type:uuid;primaryKey" json:"service_id"`
	VehicleTypeID uuid.UUID       `gorm:"type:uuid;primaryKey" json:"vehicle_type_id"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	Service     ServiceDTO     `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"-"`
	VehicleType VehicleTypeDTO `gorm:"foreignKey:VehicleTypeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ServicePriceDTO) TableName() string {
	return "service_prices"
}

type InventoryItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string          `gorm:"type:varchar(128);not null;uniqueIndex" json:"name"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	StockQty int             `gorm:"not null;default:0" json:"stock_qty"`
	Category string          `gorm:"type:varchar(16);not null;index" json:"category"`
}

func (InventoryItemDTO) TableName() string {
	return "inventory_items"
}

func vehicleTypeToDomain(dto VehicleTypeDTO) (*catalog.VehicleType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewVehicleType(id, dto.Name, dto.SortOrder)
}

func serviceToDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewService(id, dto.Name, dto.Description)
}

func servicePriceToDomain(dto ServicePriceDTO) (*catalog.ServicePrice, error) {
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}
	vehicleTypeID, err := kernel.UUIDFromBytes(dto.VehicleTypeID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewServicePrice(serviceID, vehicleTypeID, price)
}

func inventoryItemToDomain(dto InventoryItemDTO) (*catalog.InventoryItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	category, err := catalog.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	return catalog.NewInventoryItem(id, dto.Name, price, dto.StockQty, category)
}
