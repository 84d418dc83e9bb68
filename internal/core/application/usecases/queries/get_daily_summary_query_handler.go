package queries

import (
	"context"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetDailySummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetDailySummaryQueryHandler(db *gorm.DB) GetDailySummaryQueryHandler {
	return GetDailySummaryQueryHandler{db: db}
}

func (h GetDailySummaryQueryHandler) Handle(ctx context.Context, query GetDailySummaryQuery) (DailySummary, error) {
	if err := query.Validate(); err != nil {
		return DailySummary{}, err
	}

	start, end := query.Start().UTC(), query.End().UTC()
	db := h.db.WithContext(ctx)

	var sales struct {
		PaidOrders int
		Revenue    decimal.Decimal
		Commission decimal.Decimal
	}
	if err := db.Raw(`
		SELECT
			COUNT(*) AS paid_orders,
			COALESCE(SUM(total_amount), 0) AS revenue,
			COALESCE(SUM(commission_amount), 0) AS commission
		FROM orders
		WHERE status = ? AND paid_at >= ? AND paid_at < ?
	`, order.Paid.String(), start, end).Scan(&sales).Error; err != nil {
		return DailySummary{}, fmt.Errorf("sum paid orders: %w", err)
	}

	var spent struct {
		Expenses decimal.Decimal
	}
	if err := db.Raw(`
		SELECT COALESCE(SUM(amount), 0) AS expenses
		FROM `+change.TableExpenses+`
		WHERE created_at >= ? AND created_at < ?
	`, start, end).Scan(&spent).Error; err != nil {
		return DailySummary{}, fmt.Errorf("sum expenses: %w", err)
	}

	summary := DailySummary{
		Day:        query.Start(),
		PaidOrders: sales.PaidOrders,
		Net:        sales.Revenue.Sub(spent.Expenses).Round(kernel.MoneyScale),
	}

	var err error
	if summary.Revenue, err = scannedMoney(sales.Revenue); err != nil {
		return DailySummary{}, err
	}
	if summary.Commission, err = scannedMoney(sales.Commission); err != nil {
		return DailySummary{}, err
	}
	if summary.Expenses, err = scannedMoney(spent.Expenses); err != nil {
		return DailySummary{}, err
	}

	return summary, nil
}
