// Package rabbitmq publishes row changes to a RabbitMQ topic exchange with
// publisher confirms.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange is the durable topic exchange all changes are published to.
const Exchange = "carwash.changes"

var (
	ErrPublishNacked = errors.New("rabbitmq: broker refused the message")
	ErrChannelClosed = errors.New("rabbitmq: channel closed")
)

// Publisher implements ports.ChangePublisher. Publish waits for the broker's
// confirm, so a returned nil means the message is safely queued.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	confirms <-chan amqp.Confirmation

	mu      sync.Mutex // serialises publish and confirm
	nextTag uint64
}

func Dial(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// RoutingKey is <table>.<event type>, for example "orders.update".
func RoutingKey(event change.Event) string {
	return event.Table + "." + strings.ToLower(string(event.EventType))
}

func (p *Publisher) Publish(ctx context.Context, event change.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode change %s: %w", event.ID, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ch.PublishWithContext(ctx, Exchange, RoutingKey(event), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    event.ID.String(),
		Type:         string(event.EventType),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish change %s: %w", event.ID, err)
	}
	p.nextTag++

	return p.awaitConfirm(ctx, p.nextTag)
}

// awaitConfirm skips confirms left over from publishes whose caller gave up.
func (p *Publisher) awaitConfirm(ctx context.Context, tag uint64) error {
	for {
		select {
		case confirm, ok := <-p.confirms:
			if !ok {
				return ErrChannelClosed
			}
			if confirm.DeliveryTag < tag {
				continue
			}
			if !confirm.Ack {
				return fmt.Errorf("%w (delivery tag %d)", ErrPublishNacked, tag)
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
