// Package fanout sends each change event to several publishers.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"
)

// Target is one downstream publisher. A failing required target fails the
// publish, so the relay retries the batch. Optional targets are logged and
// skipped.
type Target struct {
	Name      string
	Publisher ports.ChangePublisher
	Required  bool
}

type Publisher struct {
	targets []Target
	logger  *slog.Logger
}

func NewPublisher(logger *slog.Logger, targets ...Target) (*Publisher, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	kept := make([]Target, 0, len(targets))
	for _, t := range targets {
		if t.Publisher == nil {
			return nil, fmt.Errorf("target %q has no publisher", t.Name)
		}
		kept = append(kept, t)
	}

	return &Publisher{
		targets: kept,
		logger:  logger.With("component", "change_fanout"),
	}, nil
}

// Publish tries every target even after a failure and joins the required
// targets' errors.
func (p *Publisher) Publish(ctx context.Context, event change.Event) error {
	var errs []error
	for _, t := range p.targets {
		err := t.Publisher.Publish(ctx, event)
		if err == nil {
			continue
		}
		if t.Required {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, err))
			continue
		}
		p.logger.Warn("Optional change target failed",
			"target", t.Name,
			"event_id", event.ID.String(),
			"error", err)
	}
	return errors.Join(errs...)
}

func (p *Publisher) Targets() []string {
	names := make([]string, 0, len(p.targets))
	for _, t := range p.targets {
		names = append(names, t.Name)
	}
	return names
}
