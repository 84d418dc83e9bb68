// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
// They are all satisfied by the postgres unit of work.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	TokenRepoFactory interface {
		TokenRepository() ports.TokenRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	ExpenseRepoFactory interface {
		ExpenseRepository() ports.ExpenseRepository
	}

	SettingRepoFactory interface {
		SettingRepository() ports.SettingRepository
	}

	ChangeFeedRepoFactory interface {
		ChangeFeedRepository() ports.ChangeFeedRepository
	}

	// OrderUoW covers the order lifecycle: the order, the token it holds and
	// the catalog and staff lookups made while changing it.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.TokenRepository().CompareAndSwapStatus(ctx, 7, token.Available, token.Active, id.Ptr())
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		TokenRepoFactory
		OrderRepoFactory
		CatalogRepoFactory
		StaffRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TokenUoW manages the token pool and reads the orders holding tokens.
	TokenUoW interface {
		TxManager
		TokenRepoFactory
		OrderRepoFactory
	}

	TokenUoWFactory interface {
		Create() TokenUoW
	}

	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	ExpenseUoW interface {
		TxManager
		ExpenseRepoFactory
	}

	ExpenseUoWFactory interface {
		Create() ExpenseUoW
	}

	SettingUoW interface {
		TxManager
		SettingRepoFactory
	}

	SettingUoWFactory interface {
		Create() SettingUoW
	}

	// ChangeFeedUoW reads and acknowledges the outbox.
	ChangeFeedUoW interface {
		TxManager
		ChangeFeedRepoFactory
	}

	ChangeFeedUoWFactory interface {
		Create() ChangeFeedUoW
	}
)
