package queries

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrAuthenticateStaffQueryIsNotConstructed = errors.New(
	"AuthenticateStaffQuery must be created via NewAuthenticateStaffQuery constructor",
)

// AuthenticateStaffQuery resolves a terminal PIN to a staff session.
type AuthenticateStaffQuery struct {
	pin string

	guard guard.ConstructorGuard
}

func NewAuthenticateStaffQuery(pin string) (AuthenticateStaffQuery, error) {
	if pin == "" {
		return AuthenticateStaffQuery{}, errs.NewValueIsRequiredError("pin")
	}
	return AuthenticateStaffQuery{pin: pin, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateStaffQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateStaffQueryIsNotConstructed)
}

func (q AuthenticateStaffQuery) PIN() string {
	return q.pin
}
