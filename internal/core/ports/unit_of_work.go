package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every repository it
// hands out is bound to the transaction started by Begin, and every change
// they make is recorded for the change feed on Commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes tracked changes to the outbox and commits the transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	TokenRepository() TokenRepository
	OrderRepository() OrderRepository
	CatalogRepository() CatalogRepository
	StaffRepository() StaffRepository
	ExpenseRepository() ExpenseRepository
	SettingRepository() SettingRepository
	ChangeFeedRepository() ChangeFeedRepository
}
