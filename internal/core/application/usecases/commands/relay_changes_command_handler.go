package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"
)

// RelayChangesCommandHandler publishes outbox rows and marks them delivered.
// Rows are locked with SKIP LOCKED, so several relays can run at once without
// sending the same row twice. A publish failure rolls the batch back and it is
// retried by the next relay; subscribers may therefore see an event more than
// once.
type RelayChangesCommandHandler struct {
	uowFactory ChangeFeedUoWFactory
	publisher  ports.ChangePublisher
}

func NewRelayChangesCommandHandler(uowFactory ChangeFeedUoWFactory, publisher ports.ChangePublisher) RelayChangesCommandHandler {
	return RelayChangesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of events published.
func (h RelayChangesCommandHandler) Handle(ctx context.Context, command RelayChangesCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	feed := uow.ChangeFeedRepository()

	events, err := feed.LockUnpublished(ctx, command.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	for _, event := range events {
		if err = h.publisher.Publish(ctx, event); err != nil {
			return 0, fmt.Errorf("publish change %s: %w", event.ID, err)
		}
	}

	if err = feed.MarkPublished(ctx, events); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(events), nil
}

// PurgeChangesCommandHandler keeps the outbox table small.
type PurgeChangesCommandHandler struct {
	uowFactory ChangeFeedUoWFactory
}

func NewPurgeChangesCommandHandler(uowFactory ChangeFeedUoWFactory) PurgeChangesCommandHandler {
	return PurgeChangesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of rows deleted.
func (h PurgeChangesCommandHandler) Handle(ctx context.Context, command PurgeChangesCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.ChangeFeedRepository().PurgePublished(ctx, time.Now().Add(-command.Retention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
