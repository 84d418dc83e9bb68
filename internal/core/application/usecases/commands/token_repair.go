package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/services"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

// ErrPartialWriteFailure is returned when committing an order change together
// with its token failed and the outcome is unknown. The token has been
// reconciled against fresh state before the error is returned; the caller
// should re-read the order.
var ErrPartialWriteFailure = errors.New("order and token writes did not complete together")

// tokenRepairer runs the reconciliation procedure for one token in its own
// transaction.
type tokenRepairer struct {
	uowFactory TokenUoWFactory
	reconciler services.TokenReconciler
}

func newTokenRepairer(uowFactory TokenUoWFactory) tokenRepairer {
	return tokenRepairer{
		uowFactory: uowFactory,
		reconciler: services.NewTokenReconciler(),
	}
}

func (r tokenRepairer) repair(ctx context.Context, number int) (services.Repair, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.RepairNone, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tokenRepo := uow.TokenRepository()
	orderRepo := uow.OrderRepository()

	tk, err := tokenRepo.GetForUpdate(ctx, number)
	if err != nil {
		return services.RepairNone, err
	}

	var holder *order.Order
	if jobID := tk.CurrentJobID(); jobID != nil {
		holder, err = orderRepo.Get(ctx, *jobID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			holder, err = nil, nil
		}
		if err != nil {
			return services.RepairNone, err
		}
	}

	live, err := orderRepo.GetLiveByTokenNumber(ctx, number)
	if err != nil {
		return services.RepairNone, err
	}

	repair, err := r.reconciler.Reconcile(tk, holder, live)
	if err != nil || repair == services.RepairNone {
		return repair, err
	}

	if err = tokenRepo.Update(ctx, tk); err != nil {
		return services.RepairNone, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.RepairNone, err
	}

	return repair, nil
}

// partialWriteFailure reconciles the token after an ambiguous commit and
// reports the commit error together with any repair error.
func (r tokenRepairer) partialWriteFailure(ctx context.Context, number int, commitErr error) error {
	_, repairErr := r.repair(context.WithoutCancel(ctx), number)
	if repairErr != nil {
		repairErr = fmt.Errorf("reconcile token %d: %w", number, repairErr)
	}
	return errors.Join(ErrPartialWriteFailure, commitErr, repairErr)
}

// orderTokenUoWFactory lets lifecycle handlers run repairs through the
// factory they were built with.
type orderTokenUoWFactory struct {
	orders OrderUoWFactory
}

func (f orderTokenUoWFactory) Create() TokenUoW {
	return f.orders.Create()
}

// releaseToken frees the token held by a closed order. A token that is no
// longer held by the order is left alone; the order's own transition still
// commits.
func releaseToken(ctx context.Context, tokenRepo ports.TokenRepository, o *order.Order) error {
	err := tokenRepo.Release(ctx, o.TokenNumber(), o.ID())
	if errors.Is(err, token.ErrTokenNotHeld) || errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
