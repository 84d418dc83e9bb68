package commands

import (
	"context"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
)

// ResizeTokenPoolCommandHandler creates tokens 1..size that are missing and
// removes tokens above size. The whole resize fails with
// token.ErrTokenUnavailable if a token to be removed is still active.
type ResizeTokenPoolCommandHandler struct {
	uowFactory TokenUoWFactory
}

func NewResizeTokenPoolCommandHandler(uowFactory TokenUoWFactory) ResizeTokenPoolCommandHandler {
	return ResizeTokenPoolCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ResizeTokenPoolCommandHandler) Handle(ctx context.Context, command ResizeTokenPoolCommand) error {
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

	tokenRepo := uow.TokenRepository()

	existing, err := tokenRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	present := make(map[int]bool, len(existing))
	for _, tk := range existing {
		present[tk.Number()] = true
		if tk.Number() <= command.Size() {
			continue
		}
		if err = tokenRepo.Remove(ctx, tk.Number()); err != nil {
			return fmt.Errorf("shrink pool to %d: %w", command.Size(), err)
		}
	}

	for number := 1; number <= command.Size(); number++ {
		if present[number] {
			continue
		}
		tk, err := token.NewToken(number)
		if err != nil {
			return err
		}
		if err = tokenRepo.Add(ctx, tk); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
