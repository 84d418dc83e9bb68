package queries

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrGetTokenBoardQueryIsNotConstructed = errors.New(
	"GetTokenBoardQuery must be created via NewGetTokenBoardQuery constructor",
)

// GetTokenBoardQuery reads the whole token pool for the live token board.
type GetTokenBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTokenBoardQuery() GetTokenBoardQuery {
	return GetTokenBoardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTokenBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetTokenBoardQueryIsNotConstructed)
}

// TokenBoardEntry is one physical token. The order fields are zero when the
// token is free or its job no longer exists.
type TokenBoardEntry struct {
	Number       int
	Status       token.Status
	OrderID      *kernel.UUID
	OrderStatus  order.Status
	CustomerName string
	PlateNumber  string
}
