package staff

import (
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

// Role decides which terminal screens a staff member can use.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleCashier
	RoleGreeter
	RoleBarista
	RoleWasher
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleAdmin:   "admin",
		RoleCashier: "cashier",
		RoleGreeter: "greeter",
		RoleBarista: "barista",
		RoleWasher:  "washer",
	}
}

func ParseRole(s string) (Role, error) {
	for r, name := range getRoleStrings() {
		if name == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
