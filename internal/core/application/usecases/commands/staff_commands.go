package commands

import (
	"errors"
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var (
	ErrCreateStaffCommandIsNotConstructed = errors.New(
		"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
	)
	ErrSetStaffActiveCommandIsNotConstructed = errors.New(
		"SetStaffActiveCommand must be created via NewSetStaffActiveCommand constructor",
	)
	ErrUpdateStaffCommandIsNotConstructed = errors.New(
		"UpdateStaffCommand must be created via NewUpdateStaffCommand constructor",
	)
	ErrDeleteStaffCommandIsNotConstructed = errors.New(
		"DeleteStaffCommand must be created via NewDeleteStaffCommand constructor",
	)
)

// CreateStaffCommand registers a staff member. pin may be empty for washers,
// who never log in.
type CreateStaffCommand struct {
	session staff.Session
	member  *staff.Staff
	pin     string

	guard guard.ConstructorGuard
}

func NewCreateStaffCommand(session staff.Session, id kernel.UUID, name string, role staff.Role, pin string) (CreateStaffCommand, error) {
	if err := validateSession(session); err != nil {
		return CreateStaffCommand{}, err
	}
	member, err := staff.NewStaff(id, name, role, pin)
	if err != nil {
		return CreateStaffCommand{}, err
	}

	return CreateStaffCommand{
		session: session,
		member:  member,
		pin:     pin,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

func (c CreateStaffCommand) Session() staff.Session { return c.session }
func (c CreateStaffCommand) Staff() *staff.Staff    { return c.member }

// PIN is the plaintext PIN, kept so the handler can check it against the
// hashes of the other members.
func (c CreateStaffCommand) PIN() string { return c.pin }

// SetStaffActiveCommand enables or disables a staff member. Inactive members
// cannot log in and cannot be credited as washers.
type SetStaffActiveCommand struct {
	session staff.Session
	staffID kernel.UUID
	active  bool

	guard guard.ConstructorGuard
}

func NewSetStaffActiveCommand(session staff.Session, staffID kernel.UUID, active bool) (SetStaffActiveCommand, error) {
	if err := errors.Join(
		validateSession(session),
		staffID.Validate(),
	); err != nil {
		return SetStaffActiveCommand{}, err
	}

	return SetStaffActiveCommand{
		session: session,
		staffID: staffID,
		active:  active,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetStaffActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetStaffActiveCommandIsNotConstructed)
}

func (c SetStaffActiveCommand) Session() staff.Session { return c.session }
func (c SetStaffActiveCommand) StaffID() kernel.UUID   { return c.staffID }
func (c SetStaffActiveCommand) Active() bool           { return c.active }

// UpdateStaffCommand edits a member's name and role. An empty pin keeps the
// current one.
type UpdateStaffCommand struct {
	session staff.Session
	staffID kernel.UUID
	name    string
	role    staff.Role
	pin     string

	guard guard.ConstructorGuard
}

func NewUpdateStaffCommand(
	session staff.Session,
	staffID kernel.UUID,
	name string,
	role staff.Role,
	pin string,
) (UpdateStaffCommand, error) {
	var nameErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("staff name")
	}

	if err := errors.Join(
		validateSession(session),
		staffID.Validate(),
		nameErr,
		role.Validate(),
	); err != nil {
		return UpdateStaffCommand{}, err
	}

	return UpdateStaffCommand{
		session: session,
		staffID: staffID,
		name:    name,
		role:    role,
		pin:     pin,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStaffCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStaffCommandIsNotConstructed)
}

func (c UpdateStaffCommand) Session() staff.Session { return c.session }
func (c UpdateStaffCommand) StaffID() kernel.UUID   { return c.staffID }
func (c UpdateStaffCommand) Name() string           { return c.name }
func (c UpdateStaffCommand) Role() staff.Role       { return c.role }
func (c UpdateStaffCommand) PIN() string            { return c.pin }

// DeleteStaffCommand removes a member for good. Orders keep the washer name
// they were paid under.
type DeleteStaffCommand struct {
	session staff.Session
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteStaffCommand(session staff.Session, staffID kernel.UUID) (DeleteStaffCommand, error) {
	if err := errors.Join(
		validateSession(session),
		staffID.Validate(),
	); err != nil {
		return DeleteStaffCommand{}, err
	}

	return DeleteStaffCommand{
		session: session,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteStaffCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStaffCommandIsNotConstructed)
}

func (c DeleteStaffCommand) Session() staff.Session { return c.session }
func (c DeleteStaffCommand) StaffID() kernel.UUID   { return c.staffID }
