package queries

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrGetCafeMenuQueryIsNotConstructed = errors.New(
	"GetCafeMenuQuery must be created via NewGetCafeMenuQuery constructor",
)

// GetCafeMenuQuery lists what a customer can order from the cafe menu: the
// inventory items with stock left, by category and name.
type GetCafeMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCafeMenuQuery() GetCafeMenuQuery {
	return GetCafeMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCafeMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetCafeMenuQueryIsNotConstructed)
}
