package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

type tokenReconciler interface {
	Handle(ctx context.Context, command commands.ReconcileTokensCommand) ([]commands.TokenRepairResult, error)
}

// TokenReconciliationJob walks the whole token pool and repairs tokens whose
// state disagrees with their orders.
type TokenReconciliationJob struct {
	handler  tokenReconciler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewTokenReconciliationJob(handler tokenReconciler, schedule string, logger *slog.Logger) *TokenReconciliationJob {
	return &TokenReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "token_reconciliation_job"),
	}
}

func (j *TokenReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Token reconciliation job started", "schedule", j.schedule)
	return nil
}

func (j *TokenReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Token reconciliation job stopped")
}

// Run reconciles the pool once. Every repair is logged since each one means a
// write was lost or interrupted.
func (j *TokenReconciliationJob) Run(ctx context.Context) {
	cmd, err := commands.NewReconcileTokensCommand()
	if err != nil {
		j.logger.ErrorContext(ctx, "Token reconciliation job failed", "error", err)
		return
	}

	results, err := j.handler.Handle(ctx, cmd)
	for _, r := range results {
		j.logger.WarnContext(ctx, "Token repaired", "token", r.Number, "repair", r.Repair.String())
	}

	switch {
	case err == nil:
	case errors.Is(err, services.ErrAmbiguousTokenOwnership):
		j.logger.WarnContext(ctx, "Token reconciliation needs attention", "error", err)
	default:
		j.logger.ErrorContext(ctx, "Token reconciliation job failed", "error", err)
	}
}
