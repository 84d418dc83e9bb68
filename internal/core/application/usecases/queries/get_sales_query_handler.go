package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetSalesQueryHandler struct {
	db *gorm.DB
}

func NewGetSalesQueryHandler(db *gorm.DB) GetSalesQueryHandler {
	return GetSalesQueryHandler{db: db}
}

func (h GetSalesQueryHandler) Handle(ctx context.Context, query GetSalesQuery) (SalesReport, error) {
	if err := query.Validate(); err != nil {
		return SalesReport{}, err
	}

	var report SalesReport
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET TRANSACTION READ ONLY").Error; err != nil {
			return err
		}

		var totals struct {
			PaidOrders int
			Revenue    decimal.Decimal
		}
		if err := tx.Raw(`
			SELECT COUNT(*) AS paid_orders, COALESCE(SUM(total_amount), 0) AS revenue
			FROM orders
			WHERE status = ?
		`, order.Paid.String()).Scan(&totals).Error; err != nil {
			return fmt.Errorf("sum sales: %w", err)
		}

		var err error
		report.PaidOrders = totals.PaidOrders
		if report.Revenue, err = scannedMoney(totals.Revenue); err != nil {
			return err
		}

		report.Sales, err = sales(tx, query.Limit())
		return err
	})
	if err != nil {
		return SalesReport{}, err
	}

	return report, nil
}

func sales(tx *gorm.DB, limit int) ([]Sale, error) {
	entries := make([]Sale, 0)

	rows, err := tx.Raw(`
		SELECT o.id, o.token_number, o.customer_name, o.plate_number,
		       COALESCE(s.name, ''), COALESCE(v.name, ''),
		       o.washer_name, o.closed_by, o.total_amount, o.paid_at
		FROM orders o
		LEFT JOIN services s ON s.id = o.service_id
		LEFT JOIN vehicle_types v ON v.id = o.vehicle_type_id
		WHERE o.status = ?
		ORDER BY o.paid_at DESC, o.id
		LIMIT ?
	`, order.Paid.String(), limit).Rows()
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sale   Sale
			id     uuid.UUID
			total  decimal.Decimal
			paidAt time.Time
		)
		if err = rows.Scan(
			&id, &sale.TokenNumber, &sale.CustomerName, &sale.PlateNumber,
			&sale.ServiceName, &sale.VehicleType,
			&sale.WasherName, &sale.ClosedBy, &total, &paidAt,
		); err != nil {
			return nil, err
		}
		if sale.ID, err = scannedUUID(id); err != nil {
			return nil, err
		}
		if sale.TotalAmount, err = scannedMoney(total); err != nil {
			return nil, err
		}
		sale.PaidAt = paidAt
		entries = append(entries, sale)
	}

	return entries, rows.Err()
}
