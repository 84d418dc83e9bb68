package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/services"
)

// TokenRepairResult reports what reconciliation did to one token.
type TokenRepairResult struct {
	Number int
	Repair services.Repair
}

// ReconcileTokensCommandHandler restores the token/order invariant. Each token
// is repaired in its own transaction so one failure does not hold back the rest.
//
// Example:
//
//	cmd, _ := NewReconcileTokensCommand()
//	results, err := handler.Handle(ctx, cmd)
//	for _, r := range results {
//	    log.Printf("token %d: %s", r.Number, r.Repair)
//	}
type ReconcileTokensCommandHandler struct {
	uowFactory TokenUoWFactory
	repairer   tokenRepairer
}

func NewReconcileTokensCommandHandler(uowFactory TokenUoWFactory) ReconcileTokensCommandHandler {
	return ReconcileTokensCommandHandler{
		uowFactory: uowFactory,
		repairer:   newTokenRepairer(uowFactory),
	}
}

// Handle returns the tokens that were changed. Ambiguous tokens are reported
// as services.ErrAmbiguousTokenOwnership in the joined error and left as they are.
func (h ReconcileTokensCommandHandler) Handle(ctx context.Context, command ReconcileTokensCommand) ([]TokenRepairResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	numbers := command.Numbers()
	if len(numbers) == 0 {
		var err error
		if numbers, err = h.poolNumbers(ctx); err != nil {
			return nil, err
		}
	}

	var (
		results []TokenRepairResult
		failed  error
	)
	for _, number := range numbers {
		repair, err := h.repairer.repair(ctx, number)
		if err != nil {
			failed = errors.Join(failed, fmt.Errorf("token %d: %w", number, err))
			continue
		}
		if repair != services.RepairNone {
			results = append(results, TokenRepairResult{Number: number, Repair: repair})
		}
	}

	return results, failed
}

func (h ReconcileTokensCommandHandler) poolNumbers(ctx context.Context) ([]int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tokens, err := uow.TokenRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, len(tokens))
	for _, tk := range tokens {
		numbers = append(numbers, tk.Number())
	}
	return numbers, nil
}
