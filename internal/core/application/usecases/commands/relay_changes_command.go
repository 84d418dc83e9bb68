package commands

import (
	"errors"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

// MaxRelayBatchSize bounds how many outbox rows one relay locks.
const MaxRelayBatchSize = 1000

var (
	ErrRelayChangesCommandIsNotConstructed = errors.New(
		"RelayChangesCommand must be created via NewRelayChangesCommand constructor",
	)
	ErrPurgeChangesCommandIsNotConstructed = errors.New(
		"PurgeChangesCommand must be created via NewPurgeChangesCommand constructor",
	)
)

// RelayChangesCommand moves up to batchSize outbox rows to the change publishers.
type RelayChangesCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayChangesCommand(batchSize int) (RelayChangesCommand, error) {
	if batchSize < 1 || batchSize > MaxRelayBatchSize {
		return RelayChangesCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, MaxRelayBatchSize)
	}

	return RelayChangesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayChangesCommand) Validate() error {
	return c.guard.Validate(ErrRelayChangesCommandIsNotConstructed)
}

func (c RelayChangesCommand) BatchSize() int {
	return c.batchSize
}

// PurgeChangesCommand deletes published outbox rows older than retention.
type PurgeChangesCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeChangesCommand(retention time.Duration) (PurgeChangesCommand, error) {
	if retention <= 0 {
		return PurgeChangesCommand{}, errs.NewValueIsRequiredError("retention")
	}

	return PurgeChangesCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeChangesCommand) Validate() error {
	return c.guard.Validate(ErrPurgeChangesCommandIsNotConstructed)
}

func (c PurgeChangesCommand) Retention() time.Duration {
	return c.retention
}
