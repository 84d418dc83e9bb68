// Package changefeed stores row change events in the row_changes outbox table
// and listens for the notification the unit of work raises on commit.
package changefeed

import (
	"encoding/json"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Channel is the NOTIFY channel raised when new changes are committed.
const Channel = "row_changes"

// RowChangeDTO is an outbox entry. PublishedAt stays NULL until a relay has
// handed the event to every publisher.
type RowChangeDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Table       string         `gorm:"column:table_name;type:varchar(64);not null"`
	EventType   string         `gorm:"type:varchar(8);not null"`
	Row         datatypes.JSON `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time      `gorm:"not null;index:idx_row_changes_pending,priority:2"`
	PublishedAt *time.Time     `gorm:"index:idx_row_changes_pending,priority:1"`
}

func (RowChangeDTO) TableName() string {
	return "row_changes"
}

func fromDomain(e change.Event) RowChangeDTO {
	return RowChangeDTO{
		ID:         e.ID.Bytes(),
		Table:      e.Table,
		EventType:  string(e.EventType),
		Row:        datatypes.JSON(e.Row),
		OccurredAt: e.OccurredAt,
	}
}

func toDomain(dto RowChangeDTO) (change.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return change.Event{}, err
	}

	return change.Event{
		ID:         id,
		Table:      dto.Table,
		EventType:  change.Kind(dto.EventType),
		Row:        json.RawMessage(dto.Row),
		OccurredAt: dto.OccurredAt,
	}, nil
}
