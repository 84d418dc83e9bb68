package queries

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPayrollQueryHandler struct {
	db *gorm.DB
}

func NewGetPayrollQueryHandler(db *gorm.DB) GetPayrollQueryHandler {
	return GetPayrollQueryHandler{db: db}
}

// Handle groups paid orders by washer. Cancelled orders never appear, so they
// earn nothing.
func (h GetPayrollQueryHandler) Handle(ctx context.Context, query GetPayrollQuery) (PayrollReport, error) {
	if err := query.Validate(); err != nil {
		return PayrollReport{}, err
	}

	report := PayrollReport{
		From:            query.From(),
		To:              query.To(),
		Washers:         make([]WasherPayroll, 0),
		TotalSales:      kernel.ZeroMoney(),
		TotalCommission: kernel.ZeroMoney(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			washer_name,
			COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(commission_amount), 0)
		FROM orders
		WHERE status = ? AND paid_at >= ? AND paid_at < ?
		GROUP BY washer_name
		ORDER BY 4 DESC, washer_name
	`, order.Paid.String(), query.From().UTC(), query.To().UTC()).Rows()
	if err != nil {
		return PayrollReport{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			washer            WasherPayroll
			sales, commission decimal.Decimal
		)

		if err = rows.Scan(&washer.Name, &washer.Jobs, &sales, &commission); err != nil {
			return PayrollReport{}, err
		}
		if washer.Sales, err = scannedMoney(sales); err != nil {
			return PayrollReport{}, err
		}
		if washer.Commission, err = scannedMoney(commission); err != nil {
			return PayrollReport{}, err
		}

		report.Washers = append(report.Washers, washer)
		report.TotalJobs += washer.Jobs
		report.TotalSales = report.TotalSales.Add(washer.Sales)
		report.TotalCommission = report.TotalCommission.Add(washer.Commission)
	}

	if err = rows.Err(); err != nil {
		return PayrollReport{}, err
	}

	return report, nil
}
