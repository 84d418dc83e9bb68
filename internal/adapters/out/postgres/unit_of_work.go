// Package postgres provides the GORM-based Unit of Work. Each unit of work owns
// one transaction, hands out repositories bound to it and, on commit, writes
// every row change they reported to the row_changes outbox in the same
// transaction.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.TokenRepository().CompareAndSwapStatus(ctx, n, token.Available, token.Active, id.Ptr()); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is for a single goroutine; concurrent commands use
// separate instances from the factory.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/catalogrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/changefeed"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/expenserepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/orderrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/settingrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/staffrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/tokenrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and change log.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		changes: make([]change.Event, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and collects the row
// changes reported by its repositories.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	changes  []change.Event
	trackErr error
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.changes = uow.changes[:0]
	uow.trackErr = nil
	return nil
}

// Commit appends the collected changes to the outbox, raises the row_changes
// notification and commits. A failure at any step leaves nothing written.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushChanges(ctx); err != nil {
		rollbackErr := uow.tx.Rollback().Error
		uow.tx = nil
		return errors.Join(err, rollbackErr)
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.changes = uow.changes[:0]
	return err
}

// Rollback discards the transaction and the collected changes. It returns
// gorm.ErrInvalidTransaction when nothing is open, so it is safe to defer
// after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.changes = uow.changes[:0]
	return err
}

func (uow *GormUnitOfWork) TokenRepository() ports.TokenRepository {
	return tokenrepo.NewGormTokenRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StaffRepository() ports.StaffRepository {
	return staffrepo.NewGormStaffRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ExpenseRepository() ports.ExpenseRepository {
	return expenserepo.NewGormExpenseRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SettingRepository() ports.SettingRepository {
	return settingrepo.NewGormSettingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ChangeFeedRepository() ports.ChangeFeedRepository {
	return changefeed.NewGormChangeFeedRepository(uow.conn())
}

// Track records a row change for the outbox. Repositories call it after each
// successful write. Changes made outside a transaction are not recorded.
func (uow *GormUnitOfWork) Track(kind change.Kind, table string, row any) {
	if uow.tx == nil {
		return
	}

	data, err := json.Marshal(row)
	if err != nil {
		uow.trackErr = errors.Join(uow.trackErr, fmt.Errorf("encode %s change: %w", table, err))
		return
	}

	uow.changes = append(uow.changes, change.Event{
		ID:         kernel.NewUUID(),
		Table:      table,
		EventType:  kind,
		Row:        data,
		OccurredAt: time.Now().UTC(),
	})
}

func (uow *GormUnitOfWork) flushChanges(ctx context.Context) error {
	if uow.trackErr != nil {
		return uow.trackErr
	}
	return changefeed.NewGormChangeFeedRepository(uow.tx).Append(ctx, uow.changes)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
