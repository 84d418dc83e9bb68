package queries

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrListStaffQueryIsNotConstructed = errors.New(
	"ListStaffQuery must be created via NewListStaffQuery constructor",
)

// ListStaffQuery lists staff by name. The payment modal uses the active
// washers as its picker.
type ListStaffQuery struct {
	activeOnly bool
	roles      []staff.Role

	guard guard.ConstructorGuard
}

func NewListStaffQuery(activeOnly bool, roles ...staff.Role) (ListStaffQuery, error) {
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return ListStaffQuery{}, err
		}
	}

	return ListStaffQuery{
		activeOnly: activeOnly,
		roles:      roles,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

func (q ListStaffQuery) ActiveOnly() bool {
	return q.activeOnly
}

func (q ListStaffQuery) Roles() []staff.Role {
	return q.roles
}

// StaffMember never carries the PIN hash.
type StaffMember struct {
	ID     kernel.UUID
	Name   string
	Role   staff.Role
	Active bool
	HasPIN bool
}
