package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type changePurger interface {
	Handle(ctx context.Context, command commands.PurgeChangesCommand) (int64, error)
}

// ChangePurgeJob deletes published outbox rows older than the retention.
type ChangePurgeJob struct {
	handler  changePurger
	command  commands.PurgeChangesCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewChangePurgeJob(handler changePurger, schedule string, retention time.Duration, logger *slog.Logger) (*ChangePurgeJob, error) {
	command, err := commands.NewPurgeChangesCommand(retention)
	if err != nil {
		return nil, err
	}

	return &ChangePurgeJob{
		handler:  handler,
		command:  command,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "change_purge_job"),
	}, nil
}

func (j *ChangePurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Change purge job started", "schedule", j.schedule)
	return nil
}

func (j *ChangePurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Change purge job stopped")
}

func (j *ChangePurgeJob) Run(ctx context.Context) {
	purged, err := j.handler.Handle(ctx, j.command)
	if err != nil {
		j.logger.ErrorContext(ctx, "Change purge job failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Purged published row changes", "count", purged)
	}
}
