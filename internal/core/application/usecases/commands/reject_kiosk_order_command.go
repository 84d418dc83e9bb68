package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrRejectKioskOrderCommandIsNotConstructed = errors.New(
	"RejectKioskOrderCommand must be created via NewRejectKioskOrderCommand constructor",
)

// RejectKioskOrderCommand closes an unverified kiosk order. Its token is freed.
type RejectKioskOrderCommand struct { //nolint:recvcheck //using for validation
	session staff.Session
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRejectKioskOrderCommand(session staff.Session, orderID kernel.UUID) (RejectKioskOrderCommand, error) {
	if err := errors.Join(
		validateSession(session),
		orderID.Validate(),
	); err != nil {
		return RejectKioskOrderCommand{}, err
	}

	return RejectKioskOrderCommand{
		session: session,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RejectKioskOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectKioskOrderCommandIsNotConstructed)
}

func (c RejectKioskOrderCommand) Session() staff.Session {
	return c.session
}

func (c RejectKioskOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
