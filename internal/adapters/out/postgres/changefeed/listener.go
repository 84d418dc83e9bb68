package changefeed

import (
	"context"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 2 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Listener waits for row_changes notifications on a dedicated connection.
// gorm's pgx pool has no LISTEN support, so this uses lib/pq.
type Listener struct {
	dsn    string
	logger *slog.Logger
}

func NewListener(dsn string, logger *slog.Logger) *Listener {
	return &Listener{
		dsn:    dsn,
		logger: logger.With("component", "changefeed-listener"),
	}
}

// Listen calls onChange after every notification and after every reconnect,
// since notifications sent while disconnected are lost. It returns when ctx ends.
func (l *Listener) Listen(ctx context.Context, onChange func()) error {
	listener := pq.NewListener(l.dsn, minReconnectInterval, maxReconnectInterval, l.logEvent)
	defer listener.Close()

	if err := listener.Listen(Channel); err != nil {
		return err
	}
	l.logger.Info("listening for row changes", "channel", Channel)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-listener.Notify:
			// A nil notification means the connection was re-established.
			onChange()
		case <-ticker.C:
			go func() {
				if err := listener.Ping(); err != nil {
					l.logger.Warn("listener ping failed", "error", err)
				}
			}()
		}
	}
}

func (l *Listener) logEvent(event pq.ListenerEventType, err error) {
	switch event {
	case pq.ListenerEventConnected:
		l.logger.Debug("listener connected")
	case pq.ListenerEventDisconnected:
		l.logger.Warn("listener disconnected", "error", err)
	case pq.ListenerEventReconnected:
		l.logger.Info("listener reconnected")
	case pq.ListenerEventConnectionAttemptFailed:
		l.logger.Warn("listener connection attempt failed", "error", err)
	}
}
