package staff

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

// ErrPINNotUnique is returned at login when the PIN unlocks more than one
// member. Login never picks one of them.
var ErrPINNotUnique = errors.New("pin is held by more than one staff member")

// FindByPIN returns the one member pin unlocks.
func FindByPIN(members []*Staff, pin string) (*Staff, error) {
	var found *Staff
	for _, m := range members {
		if !m.MatchesPIN(pin) {
			continue
		}
		if found != nil {
			return nil, ErrPINNotUnique
		}
		found = m
	}

	if found == nil {
		return nil, ErrPINMismatch
	}
	return found, nil
}

// EnsurePINAvailable fails with errs.ErrObjectAlreadyExists when pin unlocks
// any of members other than self. An empty pin is always available.
func EnsurePINAvailable(members []*Staff, self kernel.UUID, pin string) error {
	if pin == "" {
		return nil
	}
	for _, m := range members {
		if m.ID().IsEqual(self) {
			continue
		}
		if m.MatchesPIN(pin) {
			return errs.NewObjectAlreadyExistsError("staff pin", m.Name())
		}
	}
	return nil
}
