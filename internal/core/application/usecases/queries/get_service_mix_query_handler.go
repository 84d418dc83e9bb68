package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetServiceMixQueryHandler struct {
	db *gorm.DB
}

func NewGetServiceMixQueryHandler(db *gorm.DB) GetServiceMixQueryHandler {
	return GetServiceMixQueryHandler{db: db}
}

func (h GetServiceMixQueryHandler) Handle(ctx context.Context, query GetServiceMixQuery) ([]ServiceMixEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]ServiceMixEntry, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(s.name, 'Unknown') AS service_name, COUNT(*) AS orders
		FROM orders o
		LEFT JOIN services s ON s.id = o.service_id
		GROUP BY 1
		ORDER BY orders DESC, service_name
	`).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
