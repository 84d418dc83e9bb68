package tokenrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/pgerr"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTokenRepository implements ports.TokenRepository using GORM.
type GormTokenRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker receives every row this repository writes.
type changeTracker interface {
	Track(kind change.Kind, table string, row any)
}

func NewGormTokenRepository(db *gorm.DB, tracker changeTracker) *GormTokenRepository {
	return &GormTokenRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTokenRepository) Add(ctx context.Context, tk *token.Token) error {
	if err := tk.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tk)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("token", dto.ID, err)
		}
		return err
	}

	r.tracker.Track(change.Insert, change.TableTokens, dto)
	return nil
}

func (r *GormTokenRepository) Update(ctx context.Context, tk *token.Token) error {
	if err := tk.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tk)
	result := r.db.WithContext(ctx).
		Model(&TokenDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":         dto.Status,
			"current_job_id": dto.nullableJobID(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("token", dto.ID)
	}

	r.tracker.Track(change.Update, change.TableTokens, dto)
	return nil
}

func (r *GormTokenRepository) Remove(ctx context.Context, number int) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", number, token.Available.String()).
		Delete(&TokenDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if err := r.ensureExists(ctx, number); err != nil {
			return err
		}
		return fmt.Errorf("%w: token %d is in use", token.ErrTokenUnavailable, number)
	}

	r.tracker.Track(change.Delete, change.TableTokens, TokenDTO{ID: number})
	return nil
}

func (r *GormTokenRepository) Get(ctx context.Context, number int) (*token.Token, error) {
	return r.get(r.db.WithContext(ctx), number)
}

func (r *GormTokenRepository) GetForUpdate(ctx context.Context, number int) (*token.Token, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), number)
}

func (r *GormTokenRepository) GetAll(ctx context.Context) ([]*token.Token, error) {
	var dtos []TokenDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tokens := make([]*token.Token, 0, len(dtos))
	for _, dto := range dtos {
		tk, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tk)
	}

	return tokens, nil
}

// CompareAndSwapStatus issues
//
//	UPDATE tokens SET status = $next, current_job_id = $job WHERE id = $n AND status = $expected
//
// Under READ COMMITTED a concurrent claimer blocks on the row lock, re-checks
// the predicate after the winner commits and updates nothing.
func (r *GormTokenRepository) CompareAndSwapStatus(
	ctx context.Context,
	number int,
	expected, next token.Status,
	jobID *kernel.UUID,
) error {
	if err := expected.Validate(); err != nil {
		return err
	}

	target, err := token.RestoreToken(number, next, jobID)
	if err != nil {
		return err
	}

	dto := fromDomain(target)
	result := r.db.WithContext(ctx).
		Model(&TokenDTO{}).
		Where("id = ? AND status = ?", number, expected.String()).
		Updates(map[string]any{
			"status":         dto.Status,
			"current_job_id": dto.nullableJobID(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if err := r.ensureExists(ctx, number); err != nil {
			return err
		}
		return fmt.Errorf("%w: token %d is no longer %s", token.ErrTokenUnavailable, number, expected)
	}

	r.tracker.Track(change.Update, change.TableTokens, dto)
	return nil
}

// Release frees the token only while jobID holds it, so that closing an old
// order never frees a token already re-issued to a newer one.
func (r *GormTokenRepository) Release(ctx context.Context, number int, jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TokenDTO{}).
		Where("id = ? AND status = ? AND current_job_id = ?", number, token.Active.String(), jobID.Bytes()).
		Updates(map[string]any{
			"status":         token.Available.String(),
			"current_job_id": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if err := r.ensureExists(ctx, number); err != nil {
			return err
		}
		return fmt.Errorf("%w: token %d, order %s", token.ErrTokenNotHeld, number, jobID)
	}

	r.tracker.Track(change.Update, change.TableTokens, TokenDTO{ID: number, Status: token.Available.String()})
	return nil
}

func (r *GormTokenRepository) get(q *gorm.DB, number int) (*token.Token, error) {
	var dto TokenDTO
	if err := q.First(&dto, "id = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("token", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTokenRepository) ensureExists(ctx context.Context, number int) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&TokenDTO{}).Where("id = ?", number).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("token", number)
	}
	return nil
}
