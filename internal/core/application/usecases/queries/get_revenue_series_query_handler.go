package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetRevenueSeriesQueryHandler struct {
	db *gorm.DB
}

func NewGetRevenueSeriesQueryHandler(db *gorm.DB) GetRevenueSeriesQueryHandler {
	return GetRevenueSeriesQueryHandler{db: db}
}

// Handle buckets orders by day in the query's location, not the database
// session time zone.
func (h GetRevenueSeriesQueryHandler) Handle(ctx context.Context, query GetRevenueSeriesQuery) ([]RevenuePoint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	location := query.Start().Location()
	points := make([]RevenuePoint, query.Days())
	sums := make([]decimal.Decimal, query.Days())
	for i := range points {
		points[i].Day = query.Start().AddDate(0, 0, i)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT created_at, total_amount
		FROM orders
		WHERE status = ? AND created_at >= ? AND created_at < ?
	`, order.Paid.String(), query.Start().UTC(), query.End().UTC()).Rows()
	if err != nil {
		return nil, fmt.Errorf("read paid orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			createdAt time.Time
			total     decimal.Decimal
		)
		if err = rows.Scan(&createdAt, &total); err != nil {
			return nil, err
		}

		i := dayIndex(query.Start(), createdAt.In(location))
		if i < 0 || i >= len(points) {
			continue
		}
		points[i].PaidOrders++
		sums[i] = sums[i].Add(total)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range points {
		if points[i].Revenue, err = kernel.NewMoney(sums[i]); err != nil {
			return nil, err
		}
	}
	return points, nil
}

// dayIndex counts calendar days from first to at. Both dates are moved to UTC
// midnight first so a DST day still counts as one.
func dayIndex(first, at time.Time) int {
	from := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
