package queries

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"

	"gorm.io/gorm"
)

type ListSettingsQueryHandler struct {
	db *gorm.DB
}

func NewListSettingsQueryHandler(db *gorm.DB) ListSettingsQueryHandler {
	return ListSettingsQueryHandler{db: db}
}

// Handle returns every setting ordered by key.
func (h ListSettingsQueryHandler) Handle(ctx context.Context, query ListSettingsQuery) ([]SettingEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]SettingEntry, 0)
	err := h.db.WithContext(ctx).
		Table(change.TableSettings).
		Select("key, value, description").
		Order("key").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
