package queries

import (
	"context"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCatalogQueryHandler struct {
	db *gorm.DB
}

func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle reads the four catalog tables in one read-only transaction so the
// price matrix always matches the types and services returned with it.
func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) (Catalog, error) {
	if err := query.Validate(); err != nil {
		return Catalog{}, err
	}

	var result Catalog
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET TRANSACTION READ ONLY").Error; err != nil {
			return err
		}

		var err error
		if result.VehicleTypes, err = vehicleTypes(tx); err != nil {
			return fmt.Errorf("vehicle types: %w", err)
		}
		if result.Services, err = services(tx); err != nil {
			return fmt.Errorf("services: %w", err)
		}
		if result.Prices, err = prices(tx); err != nil {
			return fmt.Errorf("prices: %w", err)
		}
		if result.Inventory, err = inventory(tx, false); err != nil {
			return fmt.Errorf("inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return Catalog{}, err
	}

	return result, nil
}

func vehicleTypes(tx *gorm.DB) ([]VehicleTypeEntry, error) {
	entries := make([]VehicleTypeEntry, 0)

	rows, err := tx.Raw(`SELECT id, name, sort_order FROM vehicle_types ORDER BY sort_order, name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry VehicleTypeEntry
			id    uuid.UUID
		)
		if err = rows.Scan(&id, &entry.Name, &entry.SortOrder); err != nil {
			return nil, err
		}
		if entry.ID, err = scannedUUID(id); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func services(tx *gorm.DB) ([]ServiceEntry, error) {
	entries := make([]ServiceEntry, 0)

	rows, err := tx.Raw(`SELECT id, name, description FROM services ORDER BY name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry ServiceEntry
			id    uuid.UUID
		)
		if err = rows.Scan(&id, &entry.Name, &entry.Description); err != nil {
			return nil, err
		}
		if entry.ID, err = scannedUUID(id); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func prices(tx *gorm.DB) ([]PriceEntry, error) {
	entries := make([]PriceEntry, 0)

	rows, err := tx.Raw(`SELECT service_id, vehicle_type_id, price FROM service_prices ORDER BY service_id, vehicle_type_id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry                    PriceEntry
			serviceID, vehicleTypeID uuid.UUID
			price                    decimal.Decimal
		)
		if err = rows.Scan(&serviceID, &vehicleTypeID, &price); err != nil {
			return nil, err
		}
		if entry.ServiceID, err = scannedUUID(serviceID); err != nil {
			return nil, err
		}
		if entry.VehicleTypeID, err = scannedUUID(vehicleTypeID); err != nil {
			return nil, err
		}
		if entry.Price, err = scannedMoney(price); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func inventory(tx *gorm.DB, inStockOnly bool) ([]InventoryEntry, error) {
	entries := make([]InventoryEntry, 0)

	stmt := tx.Table("inventory_items").Select("id, name, price, stock_qty, category").Order("category, name")
	if inStockOnly {
		stmt = stmt.Where("stock_qty > 0")
	}

	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry    InventoryEntry
			id       uuid.UUID
			price    decimal.Decimal
			category string
		)
		if err = rows.Scan(&id, &entry.Name, &price, &entry.StockQty, &category); err != nil {
			return nil, err
		}
		if entry.ID, err = scannedUUID(id); err != nil {
			return nil, err
		}
		if entry.Price, err = scannedMoney(price); err != nil {
			return nil, err
		}
		if entry.Category, err = catalog.ParseCategory(category); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
