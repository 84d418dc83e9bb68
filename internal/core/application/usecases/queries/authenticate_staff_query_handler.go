package queries

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"
)

type AuthenticateStaffQueryHandler struct {
	staffRepo ports.StaffRepository
}

func NewAuthenticateStaffQueryHandler(staffRepo ports.StaffRepository) AuthenticateStaffQueryHandler {
	return AuthenticateStaffQueryHandler{staffRepo: staffRepo}
}

// Handle compares the PIN against every active member that has one. PINs are
// hashed, so there is no index to look them up by. It fails with
// staff.ErrPINMismatch when nobody matches and staff.ErrPINNotUnique when
// more than one member does.
func (h AuthenticateStaffQueryHandler) Handle(ctx context.Context, query AuthenticateStaffQuery) (staff.Session, error) {
	if err := query.Validate(); err != nil {
		return staff.Session{}, err
	}

	members, err := h.staffRepo.GetAllActiveWithPIN(ctx)
	if err != nil {
		return staff.Session{}, err
	}

	member, err := staff.FindByPIN(members, query.PIN())
	if err != nil {
		return staff.Session{}, err
	}

	return member.Session(), nil
}
