package commands

import (
	"context"
	"errors"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

// MarkOrderPaidCommandHandler closes an order as paid. Totals and the washer
// commission are recomputed from the order lines, and the token goes back to
// the pool in the same transaction.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	repairer   tokenRepairer
}

func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		repairer:   newTokenRepairer(orderTokenUoWFactory{orders: uowFactory}),
	}
}

// Handle fails with a value error when the washer is not an active staff
// member, before anything is written.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, command MarkOrderPaidCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(cashierRoles...); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	washer, err := uow.StaffRepository().GetActiveByName(ctx, command.WasherName())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause("washer name", err)
	}
	if err != nil {
		return err
	}

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = o.MarkPaid(washer.Name(), command.Session().Name, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = releaseToken(ctx, uow.TokenRepository(), o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return h.repairer.partialWriteFailure(ctx, o.TokenNumber(), err)
	}

	return nil
}
