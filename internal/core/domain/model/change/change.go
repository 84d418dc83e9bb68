// Package change describes row-level change notifications. Screens treat an
// event only as a hint to re-read; events may repeat or arrive out of order.
package change

import (
	"encoding/json"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
)

// Kind is the SQL operation that produced a change.
type Kind string

const (
	Insert Kind = "INSERT"
	Update Kind = "UPDATE"
	Delete Kind = "DELETE"
)

// Table names carried on events. They are the store's table names.
const (
	TableTokens     = "tokens"
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TableExpenses   = "expenses"
	TableSettings   = "system_settings"
)

// Event is one recorded row change.
type Event struct {
	ID         kernel.UUID     `json:"id"`
	Table      string          `json:"table"`
	EventType  Kind            `json:"event_type"`
	Row        json.RawMessage `json:"row"`
	OccurredAt time.Time       `json:"occurred_at"`
}
