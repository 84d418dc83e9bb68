package staff

import (
	"fmt"
	"slices"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
)

// Session is who is acting on a terminal. Handlers record Session.Name on the
// orders they create and close.
type Session struct {
	StaffID kernel.UUID
	Name    string
	Role    Role
}

// KioskSession is used for self-service orders, which have no staff member behind them.
var KioskSession = Session{Name: "kiosk"}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Require fails with ErrForbidden unless the session has one of roles. Admin
// passes every check.
func (s Session) Require(roles ...Role) error {
	if s.IsAdmin() || slices.Contains(roles, s.Role) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrForbidden, s.Role)
}
