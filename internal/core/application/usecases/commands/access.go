package commands

import (
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

// Roles allowed to run each group of operations. Admin passes every check.
var (
	frontDeskRoles = []staff.Role{staff.RoleGreeter, staff.RoleCashier}
	counterRoles   = []staff.Role{staff.RoleGreeter, staff.RoleCashier, staff.RoleBarista}
	cashierRoles   = []staff.Role{staff.RoleCashier}
	adminRoles     = []staff.Role{staff.RoleAdmin}
)

func validateSession(session staff.Session) error {
	if strings.TrimSpace(session.Name) == "" {
		return errs.NewValueIsRequiredError("session")
	}
	return nil
}
