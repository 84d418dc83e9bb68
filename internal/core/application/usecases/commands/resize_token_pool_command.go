package commands

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrResizeTokenPoolCommandIsNotConstructed = errors.New(
	"ResizeTokenPoolCommand must be created via NewResizeTokenPoolCommand constructor",
)

// ResizeTokenPoolCommand sets the number of physical tokens in circulation.
type ResizeTokenPoolCommand struct {
	session staff.Session
	size    int

	guard guard.ConstructorGuard
}

func NewResizeTokenPoolCommand(session staff.Session, size int) (ResizeTokenPoolCommand, error) {
	if err := validateSession(session); err != nil {
		return ResizeTokenPoolCommand{}, err
	}
	if size < 1 || size > token.MaxPoolSize {
		return ResizeTokenPoolCommand{}, errs.NewValueIsOutOfRangeError("pool size", size, 1, token.MaxPoolSize)
	}

	return ResizeTokenPoolCommand{
		session: session,
		size:    size,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ResizeTokenPoolCommand) Validate() error {
	return c.guard.Validate(ErrResizeTokenPoolCommandIsNotConstructed)
}

func (c ResizeTokenPoolCommand) Session() staff.Session {
	return c.session
}

func (c ResizeTokenPoolCommand) Size() int {
	return c.size
}
