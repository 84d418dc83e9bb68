package queries

import (
	"context"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns matching orders ordered by creation time, then ID.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]ActiveOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ActiveOrder, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.token_number,
			o.customer_name,
			o.plate_number,
			COALESCE(s.name, ''),
			COALESCE(v.name, ''),
			o.status,
			o.source,
			o.is_verified,
			o.total_amount,
			o.created_at
		FROM orders o
		LEFT JOIN services s ON s.id = o.service_id
		LEFT JOIN vehicle_types v ON v.id = o.vehicle_type_id
		WHERE o.status IN ?
		ORDER BY o.created_at, o.id
	`, statusNames(query.Statuses())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp           ActiveOrder
			id             uuid.UUID
			status, source string
			total          decimal.Decimal
			createdAt      time.Time
		)

		if err = rows.Scan(
			&id,
			&resp.TokenNumber,
			&resp.CustomerName,
			&resp.PlateNumber,
			&resp.ServiceName,
			&resp.VehicleType,
			&status,
			&source,
			&resp.IsVerified,
			&total,
			&createdAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = scannedUUID(id); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if resp.Source, err = order.ParseSource(source); err != nil {
			return nil, err
		}
		if resp.TotalAmount, err = scannedMoney(total); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
