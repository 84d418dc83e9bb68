package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetCafeMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetCafeMenuQueryHandler(db *gorm.DB) GetCafeMenuQueryHandler {
	return GetCafeMenuQueryHandler{db: db}
}

func (h GetCafeMenuQueryHandler) Handle(ctx context.Context, query GetCafeMenuQuery) ([]InventoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return inventory(h.db.WithContext(ctx), true)
}
