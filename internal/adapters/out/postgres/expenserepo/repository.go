// Package expenserepo persists the cashier's expense log with GORM.
package expenserepo

import (
	"context"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/expense"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	LoggedBy    string          `gorm:"type:varchar(128);not null;default:''" json:"logged_by"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
}

func (ExpenseDTO) TableName() string {
	return change.TableExpenses
}

// GormExpenseRepository implements ports.ExpenseRepository using GORM.
type GormExpenseRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

type changeTracker interface {
	Track(kind change.Kind, table string, row any)
}

func NewGormExpenseRepository(db *gorm.DB, tracker changeTracker) *GormExpenseRepository {
	return &GormExpenseRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormExpenseRepository) Add(ctx context.Context, e *expense.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := ExpenseDTO{
		ID:          e.ID().Bytes(),
		Description: e.Description(),
		Amount:      e.Amount().Amount(),
		LoggedBy:    e.LoggedBy(),
		CreatedAt:   e.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.Track(change.Insert, dto.TableName(), dto)
	return nil
}
