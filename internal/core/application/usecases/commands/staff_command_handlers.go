package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
)

// CreateStaffCommandHandler registers a member. A PIN already held by another
// member, active or not, is rejected with errs.ErrObjectAlreadyExists.
type CreateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewCreateStaffCommandHandler(uowFactory StaffUoWFactory) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateStaffCommandHandler) Handle(ctx context.Context, command CreateStaffCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()

	if command.PIN() != "" {
		members, err := staffRepo.GetAllWithPIN(ctx)
		if err != nil {
			return err
		}
		if err = staff.EnsurePINAvailable(members, command.Staff().ID(), command.PIN()); err != nil {
			return err
		}
	}

	if err := staffRepo.Add(ctx, command.Staff()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// SetStaffActiveCommandHandler enables or disables a member. A disabled
// member keeps their PIN reserved, so enabling them again cannot make a PIN
// ambiguous.
type SetStaffActiveCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewSetStaffActiveCommandHandler(uowFactory StaffUoWFactory) SetStaffActiveCommandHandler {
	return SetStaffActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetStaffActiveCommandHandler) Handle(ctx context.Context, command SetStaffActiveCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()

	member, err := staffRepo.Get(ctx, command.StaffID())
	if err != nil {
		return err
	}

	if command.Active() {
		member.Activate()
	} else {
		member.Deactivate()
	}

	if err = staffRepo.Update(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewUpdateStaffCommandHandler(uowFactory StaffUoWFactory) UpdateStaffCommandHandler {
	return UpdateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateStaffCommandHandler) Handle(ctx context.Context, command UpdateStaffCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()

	member, err := staffRepo.Get(ctx, command.StaffID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		member.Rename(command.Name()),
		member.ChangeRole(command.Role()),
	); err != nil {
		return err
	}

	if command.PIN() != "" {
		members, err := staffRepo.GetAllWithPIN(ctx)
		if err != nil {
			return err
		}
		if err = staff.EnsurePINAvailable(members, member.ID(), command.PIN()); err != nil {
			return err
		}
		if err = member.SetPIN(command.PIN()); err != nil {
			return err
		}
	}

	if err = staffRepo.Update(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewDeleteStaffCommandHandler(uowFactory StaffUoWFactory) DeleteStaffCommandHandler {
	return DeleteStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle refuses to delete the member the session belongs to.
func (h DeleteStaffCommandHandler) Handle(ctx context.Context, command DeleteStaffCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}
	if command.Session().StaffID.IsEqual(command.StaffID()) {
		return fmt.Errorf("%w: cannot delete your own account", staff.ErrForbidden)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.StaffRepository().Remove(ctx, command.StaffID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
