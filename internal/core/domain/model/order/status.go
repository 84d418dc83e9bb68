package order

import (
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is the kind shared by every rejected status change.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrOrderIsClosed is returned when a paid or cancelled order is modified.
	ErrOrderIsClosed = fmt.Errorf("%w: order is already closed", ErrInvalidTransition)
)

// Status is the position of an order in the wash lifecycle.
//
//	PendingVerification ──> Queued ──> Working ──> Ready ──> Paid
//	         │                │  └───────────────────^  ^
//	         │                └─────────────────────────┘ (pay from any open state)
//	         └──────────────> Cancelled <── (any open state)
//
// Paid is the only successful terminal state. The legacy name "completed" is
// accepted by ParseStatus as an alias of Paid and never produced.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// PendingVerification is a kiosk order waiting for staff to confirm the vehicle type.
	PendingVerification

	// Queued orders are priced and waiting for a washer.
	Queued

	// Working orders are being washed.
	Working

	// Ready orders are washed and waiting for collection.
	Ready

	// Paid orders are settled; their token is free again.
	Paid

	// Cancelled orders were abandoned or rejected; they never count as revenue.
	Cancelled
)

// legacyCompleted is the name some older screens used for Paid.
const legacyCompleted = "completed"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "unknown",
		PendingVerification: "pending_verification",
		Queued:              "queued",
		Working:             "working",
		Ready:               "ready",
		Paid:                "paid",
		Cancelled:           "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingVerification: "pending_verification",
		Queued:              "queued",
		Working:             "working",
		Ready:               "ready",
		Paid:                "paid",
		Cancelled:           "cancelled",
	}
}

// LiveStatuses lists the states in which an order holds its token.
func LiveStatuses() []Status {
	return []Status{PendingVerification, Queued, Working, Ready}
}

// ParseStatus maps a status name to a Status. "completed" collapses to Paid.
func ParseStatus(s string) (Status, error) {
	if s == legacyCompleted {
		return Paid, nil
	}
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// IsLive reports whether an order in this status holds its token.
func (s Status) IsLive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// ValidateEditable allows line changes only on open orders.
func (s Status) ValidateEditable() error {
	if !s.IsLive() {
		return fmt.Errorf("%w (status %s)", ErrOrderIsClosed, s)
	}
	return nil
}

// Verify moves a kiosk order into the queue.
func (s Status) Verify() (Status, error) {
	if s != PendingVerification {
		return s, newTransitionError(s, Queued)
	}
	return Queued, nil
}

// Advance moves work forward to Working or Ready. Unverified orders must be
// verified first and no step may go backwards.
func (s Status) Advance(to Status) (Status, error) {
	if to != Working && to != Ready {
		return s, newTransitionError(s, to)
	}
	if s != Queued && s != Working {
		return s, newTransitionError(s, to)
	}
	if to <= s {
		return s, newTransitionError(s, to)
	}
	return to, nil
}

// Pay settles any open order.
func (s Status) Pay() (Status, error) {
	if !s.IsLive() {
		return s, newTransitionError(s, Paid)
	}
	return Paid, nil
}

// Cancel abandons any open order.
func (s Status) Cancel() (Status, error) {
	if !s.IsLive() {
		return s, newTransitionError(s, Cancelled)
	}
	return Cancelled, nil
}

// Reject cancels a kiosk order that staff could not verify.
func (s Status) Reject() (Status, error) {
	if s != PendingVerification {
		return s, newTransitionError(s, Cancelled)
	}
	return Cancelled, nil
}

// TransitionError describes a rejected status change. It matches
// ErrInvalidTransition with errors.Is.
type TransitionError struct {
	From Status
	To   Status
}

func newTransitionError(from, to Status) *TransitionError {
	return &TransitionError{From: from, To: to}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move order from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
