package staff

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var (
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff constructor")

	// ErrPINMismatch is returned when a PIN does not match the stored hash.
	ErrPINMismatch = errors.New("pin does not match")

	// ErrForbidden is returned when a session's role may not run an operation.
	ErrForbidden = errors.New("operation is not allowed for this role")

	pinPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// Staff is a person who works the terminals or the wash bay. Washers usually
// have no PIN; they are only picked by name at payment.
type Staff struct {
	id      kernel.UUID
	name    string
	role    Role
	pinHash string
	active  bool

	guard guard.ConstructorGuard
}

// NewStaff creates an active staff member. An empty pin leaves the member
// unable to log in.
func NewStaff(id kernel.UUID, name string, role Role, pin string) (*Staff, error) {
	s := &Staff{active: true, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	if pin != "" {
		if err := s.SetPIN(pin); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func RestoreStaff(id kernel.UUID, name string, role Role, pinHash string, active bool) (*Staff, error) {
	s := &Staff{pinHash: pinHash, active: active, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Staff) ID() kernel.UUID { return s.id }
func (s *Staff) Name() string    { return s.name }
func (s *Staff) Role() Role      { return s.role }
func (s *Staff) PINHash() string { return s.pinHash }
func (s *Staff) IsActive() bool  { return s.active }
func (s *Staff) HasPIN() bool    { return s.pinHash != "" }
func (s *Staff) Activate()       { s.active = true }
func (s *Staff) Deactivate()     { s.active = false }

func (s *Staff) Rename(name string) error {
	return s.setName(name)
}

func (s *Staff) ChangeRole(role Role) error {
	return s.setRole(role)
}

// SetPIN stores a bcrypt hash of a four digit PIN.
func (s *Staff) SetPIN(pin string) error {
	if !pinPattern.MatchString(pin) {
		return errs.NewValueIsInvalidErrorWithCause("pin", errors.New("pin must be exactly 4 digits"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}

	s.pinHash = string(hash)
	return nil
}

// MatchesPIN reports whether pin unlocks this staff member.
func (s *Staff) MatchesPIN(pin string) bool {
	if s.pinHash == "" || !pinPattern.MatchString(pin) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)) == nil
}

// Session returns the identity a logged-in staff member acts under.
func (s *Staff) Session() Session {
	return Session{StaffID: s.id, Name: s.name, Role: s.role}
}

func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("staff name")
	}
	s.name = name
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
