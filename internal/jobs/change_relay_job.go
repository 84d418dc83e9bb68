package jobs

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type changeRelayer interface {
	Handle(ctx context.Context, command commands.RelayChangesCommand) (int, error)
}

// ChangeRelayJob moves outbox rows to the change publishers. The cron schedule
// is a fallback poll; Trigger runs it as soon as the database reports a change.
type ChangeRelayJob struct {
	handler  changeRelayer
	command  commands.RelayChangesCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	running sync.Mutex
	pending atomic.Bool
}

func NewChangeRelayJob(handler changeRelayer, schedule string, batchSize int, logger *slog.Logger) (*ChangeRelayJob, error) {
	command, err := commands.NewRelayChangesCommand(batchSize)
	if err != nil {
		return nil, err
	}

	return &ChangeRelayJob{
		handler:  handler,
		command:  command,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "change_relay_job"),
	}, nil
}

func (j *ChangeRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Change relay job started", "schedule", j.schedule)
	return nil
}

func (j *ChangeRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Change relay job stopped")
}

// Trigger requests a relay without blocking the caller.
func (j *ChangeRelayJob) Trigger() {
	go j.RunOnce(context.Background())
}

// RunOnce drains the outbox. A call that arrives while another pass is running
// returns at once and the running pass goes round again, so no request is lost.
func (j *ChangeRelayJob) RunOnce(ctx context.Context) {
	j.pending.Store(true)
	for j.pending.Load() {
		if !j.running.TryLock() {
			return
		}
		j.pending.Store(false)
		j.drain(ctx)
		j.running.Unlock()
	}
}

func (j *ChangeRelayJob) drain(ctx context.Context) {
	total := 0
	defer func() {
		if total > 0 {
			j.logger.DebugContext(ctx, "Relayed row changes", "count", total)
		}
	}()

	for {
		n, err := j.handler.Handle(ctx, j.command)
		total += n
		if err != nil {
			j.logger.ErrorContext(ctx, "Change relay failed", "error", err)
			return
		}
		if n < j.command.BatchSize() {
			return
		}
	}
}
