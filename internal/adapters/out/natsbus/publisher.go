// Package natsbus publishes row changes to a NATS JetStream stream.
package natsbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	StreamName    = "CARWASH_CHANGES"
	SubjectPrefix = "carwash.changes"
)

type Config struct {
	URL string

	// MaxAge is how long the stream keeps events.
	MaxAge time.Duration

	// DuplicateWindow is how long JetStream remembers message IDs. A relay
	// replay inside the window is dropped by the server.
	DuplicateWindow time.Duration
}

func DefaultConfig(url string) Config {
	return Config{
		URL:             url,
		MaxAge:          24 * time.Hour,
		DuplicateWindow: 10 * time.Minute,
	}
}

// Publisher implements ports.ChangePublisher. Each event goes to
// carwash.changes.<table> with the event ID as Nats-Msg-Id.
type Publisher struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// NewPublisher connects and creates or updates the stream.
func NewPublisher(ctx context.Context, cfg Config) (*Publisher, error) {
	conn, err := nats.Connect(cfg.URL, nats.Name("carwash-change-relay"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if _, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       StreamName,
		Subjects:   []string{SubjectPrefix + ".>"},
		MaxAge:     cfg.MaxAge,
		Duplicates: cfg.DuplicateWindow,
	}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create/update stream %s: %w", StreamName, err)
	}

	return &Publisher{conn: conn, js: js}, nil
}

// Subject returns the subject events of table are published on.
func Subject(table string) string {
	return SubjectPrefix + "." + table
}

func (p *Publisher) Publish(ctx context.Context, event change.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode change %s: %w", event.ID, err)
	}

	if _, err = p.js.Publish(ctx, Subject(event.Table), data, jetstream.WithMsgID(event.ID.String())); err != nil {
		return fmt.Errorf("failed to publish to stream: %w", err)
	}
	return nil
}

// Stream exposes the stream for consumers and health checks.
func (p *Publisher) Stream(ctx context.Context) (jetstream.Stream, error) {
	return p.js.Stream(ctx, StreamName)
}

func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
