package ports

import (
	"context"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
)

// ChangeTracker collects row changes made inside a unit of work. The unit of
// work writes them to the outbox in the same transaction on Commit.
type ChangeTracker interface {
	Track(kind change.Kind, table string, row any)
}

// ChangeFeedRepository reads and acknowledges outbox entries.
type ChangeFeedRepository interface {
	// LockUnpublished returns up to limit unpublished events, oldest first,
	// locked so that concurrent relays skip them.
	LockUnpublished(ctx context.Context, limit int) ([]change.Event, error)

	// MarkPublished flags events as delivered.
	MarkPublished(ctx context.Context, events []change.Event) error

	// PurgePublished deletes delivered events older than before.
	PurgePublished(ctx context.Context, before time.Time) (int64, error)
}

// ChangePublisher pushes change events to subscribers. Delivery is at least once.
type ChangePublisher interface {
	Publish(ctx context.Context, event change.Event) error
}
