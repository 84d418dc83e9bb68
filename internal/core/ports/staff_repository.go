package ports

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
)

type StaffRepository interface {
	Add(ctx context.Context, s *staff.Staff) error
	Update(ctx context.Context, s *staff.Staff) error
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// Remove deletes a member or returns an errs.ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error

	// GetActiveByName resolves the washer picked at payment.
	GetActiveByName(ctx context.Context, name string) (*staff.Staff, error)

	// GetAllActiveWithPIN returns the members able to log in.
	GetAllActiveWithPIN(ctx context.Context) ([]*staff.Staff, error)

	// GetAllWithPIN includes inactive members. PINs stay reserved while a
	// member is disabled so reactivating them cannot clash at login.
	GetAllWithPIN(ctx context.Context) ([]*staff.Staff, error)
}
