package services

import (
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
)

// ErrAmbiguousTokenOwnership is returned when an available token is referenced
// by several live orders. Nothing is changed; staff must cancel the duplicates.
var ErrAmbiguousTokenOwnership = errors.New("several live orders reference the same token")

// Repair is the action taken on one token.
type Repair int

const (
	// RepairNone means the token and its orders already agree.
	RepairNone Repair = iota

	// RepairRelease frees an active token whose job is gone or closed.
	RepairRelease

	// RepairClaim attaches an available token to the single live order using it.
	RepairClaim

	// RepairRepoint moves an active token from a dead job to the live order using it.
	RepairRepoint
)

func (r Repair) String() string {
	switch r {
	case RepairRelease:
		return "release"
	case RepairClaim:
		return "claim"
	case RepairRepoint:
		return "repoint"
	default:
		return "none"
	}
}

// TokenReconciler restores the token/order invariant after a partial write:
// an active token points at a live order carrying its number, and an available
// token is carried by no live order.
//
// It only decides and applies the change to the token in memory. The caller
// loads fresh state and persists the token in one unit of work.
//
// Example usage:
//
//	repair, err := services.NewTokenReconciler().Reconcile(tk, holder, live)
//	if err != nil {
//	    // ambiguous ownership, leave for staff
//	}
//	if repair != services.RepairNone {
//	    // persist tk
//	}
type TokenReconciler struct{}

func NewTokenReconciler() TokenReconciler {
	return TokenReconciler{}
}

// Reconcile compares tk with holder, the order its current job points at (nil
// if missing), and live, the live orders carrying tk's number.
func (r TokenReconciler) Reconcile(tk *token.Token, holder *order.Order, live []*order.Order) (Repair, error) {
	if err := tk.Validate(); err != nil {
		return RepairNone, err
	}

	candidates := make([]*order.Order, 0, len(live))
	for _, o := range live {
		if err := o.Validate(); err != nil {
			return RepairNone, err
		}
		if o.Status().IsLive() && o.TokenNumber() == tk.Number() {
			candidates = append(candidates, o)
		}
	}

	if !tk.IsAvailable() {
		if r.holds(tk, holder) {
			return RepairNone, nil
		}

		tk.ForceRelease()
		if len(candidates) != 1 {
			return RepairRelease, nil
		}
		if err := tk.Claim(candidates[0].ID()); err != nil {
			return RepairNone, err
		}
		return RepairRepoint, nil
	}

	switch len(candidates) {
	case 0:
		return RepairNone, nil
	case 1:
		if err := tk.Claim(candidates[0].ID()); err != nil {
			return RepairNone, err
		}
		return RepairClaim, nil
	default:
		return RepairNone, fmt.Errorf("%w: token %d, orders %s", ErrAmbiguousTokenOwnership, tk.Number(), orderIDs(candidates))
	}
}

func (r TokenReconciler) holds(tk *token.Token, holder *order.Order) bool {
	return holder != nil &&
		tk.IsHeldBy(holder.ID()) &&
		holder.Status().IsLive() &&
		holder.TokenNumber() == tk.Number()
}

func orderIDs(orders []*order.Order) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}
