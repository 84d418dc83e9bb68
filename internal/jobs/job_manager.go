package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the cron expressions (with a seconds field) and limits for
// the background jobs.
type Config struct {
	RelaySchedule     string
	RelayBatchSize    int
	ReconcileSchedule string
	PurgeSchedule     string
	ChangeRetention   time.Duration
}

// DefaultConfig relays every five seconds, reconciles every minute and purges
// hourly, keeping a day of published changes.
func DefaultConfig() Config {
	return Config{
		RelaySchedule:     "*/5 * * * * *",
		RelayBatchSize:    100,
		ReconcileSchedule: "0 * * * * *",
		PurgeSchedule:     "0 0 * * * *",
		ChangeRetention:   24 * time.Hour,
	}
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	changeRelayJob         *ChangeRelayJob
	tokenReconciliationJob *TokenReconciliationJob
	changePurgeJob         *ChangePurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	relayHandler changeRelayer,
	reconcileHandler tokenReconciler,
	purgeHandler changePurger,
	config Config,
	logger *slog.Logger,
) (*JobManager, error) {
	relay, err := NewChangeRelayJob(relayHandler, config.RelaySchedule, config.RelayBatchSize, logger)
	if err != nil {
		return nil, fmt.Errorf("change relay job: %w", err)
	}

	purge, err := NewChangePurgeJob(purgeHandler, config.PurgeSchedule, config.ChangeRetention, logger)
	if err != nil {
		return nil, fmt.Errorf("change purge job: %w", err)
	}

	return &JobManager{
		changeRelayJob:         relay,
		tokenReconciliationJob: NewTokenReconciliationJob(reconcileHandler, config.ReconcileSchedule, logger),
		changePurgeJob:         purge,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.changeRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start change relay job: %w", err)
	}

	if err := jm.tokenReconciliationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.changeRelayJob.Stop()
		return fmt.Errorf("failed to start token reconciliation job: %w", err)
	}

	if err := jm.changePurgeJob.Start(); err != nil {
		jm.tokenReconciliationJob.Stop()
		jm.changeRelayJob.Stop()
		return fmt.Errorf("failed to start change purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully, waiting for running passes.
func (jm *JobManager) StopAll() {
	jm.changePurgeJob.Stop()
	jm.tokenReconciliationJob.Stop()
	jm.changeRelayJob.Stop()
}

// RelayNow asks the relay job for an immediate pass. The change listener
// calls it on every notification.
func (jm *JobManager) RelayNow() {
	jm.changeRelayJob.Trigger()
}
