package token

import (
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

// MaxPoolSize bounds the number of physical tokens an admin can print.
const MaxPoolSize = 999

var (
	// ErrTokenUnavailable is returned when a token is not in the state a claim
	// expects. Callers should ask the customer to pick another token.
	ErrTokenUnavailable = errors.New("token is not available, pick another token")

	// ErrTokenNotHeld is returned when releasing a token on behalf of an order
	// that no longer holds it.
	ErrTokenNotHeld = errors.New("token is not held by this order")

	// ErrTokenIdle is returned when something is charged to a token that is
	// not attached to a live order.
	ErrTokenIdle = errors.New("token is not on an active wash, ask staff")

	ErrTokenIsNotConstructed = errors.New("Token must be created via NewToken or RestoreToken constructor")
)

// Token is a reusable claim-check handed to a vehicle on arrival.
//
// Invariant: status is Active exactly when currentJobID is set. Only one live
// order can hold a token at a time; the repository enforces that across
// terminals with a conditional update.
type Token struct {
	number       int
	status       Status
	currentJobID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewToken creates an available token, as done when the pool is initialised or grown.
func NewToken(number int) (*Token, error) {
	t := &Token{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := t.setNumber(number); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreToken rebuilds a token from storage and checks the status/job invariant.
func RestoreToken(number int, status Status, currentJobID *kernel.UUID) (*Token, error) {
	t := &Token{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setNumber(number),
		t.setState(status, currentJobID),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Token) Number() int {
	return t.number
}

func (t *Token) Status() Status {
	return t.status
}

// CurrentJobID is the order holding the token, nil while available.
func (t *Token) CurrentJobID() *kernel.UUID {
	return t.currentJobID
}

func (t *Token) IsAvailable() bool {
	return t.status == Available
}

// IsHeldBy reports whether orderID is the token's current job.
func (t *Token) IsHeldBy(orderID kernel.UUID) bool {
	return t.currentJobID != nil && t.currentJobID.IsEqual(orderID)
}

// Claim attaches the token to orderID.
func (t *Token) Claim(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if !t.IsAvailable() {
		return fmt.Errorf("%w: token %d is %s", ErrTokenUnavailable, t.number, t.status)
	}

	t.status = Active
	t.currentJobID = &orderID
	return nil
}

// Release frees the token if orderID still holds it.
func (t *Token) Release(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if !t.IsHeldBy(orderID) {
		return fmt.Errorf("%w: token %d, order %s", ErrTokenNotHeld, t.number, orderID)
	}

	t.status = Available
	t.currentJobID = nil
	return nil
}

// ForceRelease frees the token whatever holds it. Used only by reconciliation
// when the holder is gone or already closed.
func (t *Token) ForceRelease() {
	t.status = Available
	t.currentJobID = nil
}

func (t *Token) Validate() error {
	if t == nil {
		return ErrTokenIsNotConstructed
	}
	return t.guard.Validate(ErrTokenIsNotConstructed)
}

func (t *Token) setNumber(number int) error {
	if number < 1 || number > MaxPoolSize {
		return errs.NewValueIsOutOfRangeError("token number", number, 1, MaxPoolSize)
	}
	t.number = number
	return nil
}

func (t *Token) setState(status Status, currentJobID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if currentJobID != nil {
		if err := currentJobID.Validate(); err != nil {
			return err
		}
	}

	if (status == Active) != (currentJobID != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"token state",
			fmt.Errorf("status %s does not match current job presence %t", status, currentJobID != nil),
		)
	}

	t.status = status
	t.currentJobID = currentJobID
	return nil
}
