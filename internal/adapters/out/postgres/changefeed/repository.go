package changefeed

import (
	"context"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormChangeFeedRepository implements ports.ChangeFeedRepository using GORM.
type GormChangeFeedRepository struct {
	db *gorm.DB
}

func NewGormChangeFeedRepository(db *gorm.DB) *GormChangeFeedRepository {
	return &GormChangeFeedRepository{db: db}
}

// Append writes events to the outbox and raises the notification. Both take
// effect only when the surrounding transaction commits.
func (r *GormChangeFeedRepository) Append(ctx context.Context, events []change.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]RowChangeDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, fromDomain(e))
	}

	db := r.db.WithContext(ctx)
	if err := db.Create(&dtos).Error; err != nil {
		return err
	}

	return db.Exec("SELECT pg_notify(?, '')", Channel).Error
}

// LockUnpublished selects pending events with FOR UPDATE SKIP LOCKED so that
// several relays can drain the outbox without handing out the same row twice
// in parallel.
func (r *GormChangeFeedRepository) LockUnpublished(ctx context.Context, limit int) ([]change.Event, error) {
	var dtos []RowChangeDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]change.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}

func (r *GormChangeFeedRepository) MarkPublished(ctx context.Context, events []change.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID.Bytes())
	}

	return r.db.WithContext(ctx).
		Model(&RowChangeDTO{}).
		Where("id IN ?", ids).
		Update("published_at", time.Now().UTC()).Error
}

// PurgePublished deletes delivered events older than before.
func (r *GormChangeFeedRepository) PurgePublished(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL AND published_at < ?", before).
		Delete(&RowChangeDTO{})
	return result.RowsAffected, result.Error
}
