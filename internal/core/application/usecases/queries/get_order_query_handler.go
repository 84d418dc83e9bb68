package queries

import (
	"context"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when no order has the requested ID.
// The service line comes first, then consumables in the order they were added.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	details, found, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}
	if !found {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	details.Items, err = h.loadLines(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}

	details.RunningTotal = kernel.ZeroMoney()
	for _, line := range details.Items {
		details.RunningTotal = details.RunningTotal.Add(line.Subtotal)
	}

	return details, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, id kernel.UUID) (OrderDetails, bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.token_number,
			o.customer_name,
			o.plate_number,
			o.service_id,
			COALESCE(s.name, ''),
			o.vehicle_type_id,
			COALESCE(v.name, ''),
			o.status,
			o.source,
			o.is_verified,
			o.washer_name,
			o.total_amount,
			o.commission_amount,
			o.created_by,
			o.closed_by,
			o.created_at,
			o.paid_at
		FROM orders o
		LEFT JOIN services s ON s.id = o.service_id
		LEFT JOIN vehicle_types v ON v.id = o.vehicle_type_id
		WHERE o.id = ?
	`, id.Bytes()).Rows()
	if err != nil {
		return OrderDetails{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return OrderDetails{}, false, rows.Err()
	}

	var (
		details            OrderDetails
		orderID, serviceID uuid.UUID
		vehicleTypeID      uuid.NullUUID
		status, source     string
		total, commission  decimal.Decimal
		createdAt          time.Time
		paidAt             *time.Time
	)

	if err = rows.Scan(
		&orderID,
		&details.TokenNumber,
		&details.CustomerName,
		&details.PlateNumber,
		&serviceID,
		&details.ServiceName,
		&vehicleTypeID,
		&details.VehicleType,
		&status,
		&source,
		&details.IsVerified,
		&details.WasherName,
		&total,
		&commission,
		&details.CreatedBy,
		&details.ClosedBy,
		&createdAt,
		&paidAt,
	); err != nil {
		return OrderDetails{}, false, err
	}

	if details.ID, err = scannedUUID(orderID); err != nil {
		return OrderDetails{}, false, err
	}
	if details.ServiceID, err = scannedUUID(serviceID); err != nil {
		return OrderDetails{}, false, err
	}
	if details.VehicleTypeID, err = scannedNullUUID(vehicleTypeID); err != nil {
		return OrderDetails{}, false, err
	}
	if details.Status, err = order.ParseStatus(status); err != nil {
		return OrderDetails{}, false, err
	}
	if details.Source, err = order.ParseSource(source); err != nil {
		return OrderDetails{}, false, err
	}
	if details.TotalAmount, err = scannedMoney(total); err != nil {
		return OrderDetails{}, false, err
	}
	if details.CommissionAmount, err = scannedMoney(commission); err != nil {
		return OrderDetails{}, false, err
	}
	details.CreatedAt = createdAt.UTC()
	if paidAt != nil {
		utc := paidAt.UTC()
		details.PaidAt = &utc
	}

	return details, true, rows.Err()
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLine, error) {
	lines := make([]OrderLine, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, item_type, item_id, item_name, price_snapshot, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY item_type DESC, created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line          OrderLine
			id, catalogID uuid.UUID
			itemType      string
			price         decimal.Decimal
		)

		if err = rows.Scan(&id, &itemType, &catalogID, &line.Name, &price, &line.Quantity); err != nil {
			return nil, err
		}

		if line.ID, err = scannedUUID(id); err != nil {
			return nil, err
		}
		if line.CatalogID, err = scannedUUID(catalogID); err != nil {
			return nil, err
		}
		if line.Type, err = order.ParseItemType(itemType); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = scannedMoney(price); err != nil {
			return nil, err
		}
		line.Subtotal = line.UnitPrice.Times(line.Quantity)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
