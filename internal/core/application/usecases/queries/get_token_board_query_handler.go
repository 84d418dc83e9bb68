package queries

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetTokenBoardQueryHandler struct {
	db *gorm.DB
}

func NewGetTokenBoardQueryHandler(db *gorm.DB) GetTokenBoardQueryHandler {
	return GetTokenBoardQueryHandler{db: db}
}

func (h GetTokenBoardQueryHandler) Handle(ctx context.Context, query GetTokenBoardQuery) ([]TokenBoardEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]TokenBoardEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.status,
			t.current_job_id,
			o.status,
			COALESCE(o.customer_name, ''),
			COALESCE(o.plate_number, '')
		FROM tokens t
		LEFT JOIN orders o ON o.id = t.current_job_id
		ORDER BY t.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry       TokenBoardEntry
			status      string
			jobID       uuid.NullUUID
			orderStatus *string
		)

		if err = rows.Scan(&entry.Number, &status, &jobID, &orderStatus, &entry.CustomerName, &entry.PlateNumber); err != nil {
			return nil, err
		}

		if entry.Status, err = token.ParseStatus(status); err != nil {
			return nil, err
		}
		if entry.OrderID, err = scannedNullUUID(jobID); err != nil {
			return nil, err
		}
		if orderStatus != nil {
			if entry.OrderStatus, err = order.ParseStatus(*orderStatus); err != nil {
				return nil, err
			}
		}

		board = append(board, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
