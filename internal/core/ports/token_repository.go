package ports

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
)

// TokenRepository persists the physical token pool.
//
// Token state changes made on behalf of orders go through CompareAndSwapStatus
// or Release, never through Update, so that two terminals racing for the same
// token cannot both win.
type TokenRepository interface {
	// Add inserts a new token. Used when the pool grows.
	Add(ctx context.Context, tk *token.Token) error

	// Update overwrites a token unconditionally. Only reconciliation uses it,
	// after locking the row with GetForUpdate.
	Update(ctx context.Context, tk *token.Token) error

	// Remove deletes an available token. An active token is never deleted;
	// the call fails with token.ErrTokenUnavailable.
	Remove(ctx context.Context, number int) error

	// Get returns the token or an errs.ObjectNotFoundError.
	Get(ctx context.Context, number int) (*token.Token, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, number int) (*token.Token, error)

	// GetAll returns the pool ordered by number.
	GetAll(ctx context.Context) ([]*token.Token, error)

	// CompareAndSwapStatus sets status and current job only if the token is
	// still in expected status. A lost race returns token.ErrTokenUnavailable.
	//
	// Example:
	//
	//	err := repo.CompareAndSwapStatus(ctx, 12, token.Available, token.Active, orderID.Ptr())
	//	if errors.Is(err, token.ErrTokenUnavailable) {
	//	    // another terminal took token 12 first
	//	}
	CompareAndSwapStatus(ctx context.Context, number int, expected, next token.Status, jobID *kernel.UUID) error

	// Release frees the token only while jobID still holds it. Otherwise it
	// returns token.ErrTokenNotHeld and changes nothing.
	Release(ctx context.Context, number int, jobID kernel.UUID) error
}
