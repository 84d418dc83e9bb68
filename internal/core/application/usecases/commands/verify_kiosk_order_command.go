package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrVerifyKioskOrderCommandIsNotConstructed = errors.New(
	"VerifyKioskOrderCommand must be created via NewVerifyKioskOrderCommand constructor",
)

// VerifyKioskOrderCommand confirms the vehicle type of a kiosk order so it can be priced.
type VerifyKioskOrderCommand struct { //nolint:recvcheck //using for validation
	session       staff.Session
	orderID       kernel.UUID
	vehicleTypeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewVerifyKioskOrderCommand(session staff.Session, orderID, vehicleTypeID kernel.UUID) (VerifyKioskOrderCommand, error) {
	command := VerifyKioskOrderCommand{
		session: session,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateSession(session),
		orderID.Validate(),
		vehicleTypeID.Validate(),
	); err != nil {
		return VerifyKioskOrderCommand{}, err
	}

	command.vehicleTypeID = vehicleTypeID
	return command, nil
}

func (c VerifyKioskOrderCommand) Validate() error {
	return c.guard.Validate(ErrVerifyKioskOrderCommandIsNotConstructed)
}

func (c VerifyKioskOrderCommand) Session() staff.Session {
	return c.session
}

func (c VerifyKioskOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c VerifyKioskOrderCommand) VehicleTypeID() kernel.UUID {
	return c.vehicleTypeID
}
