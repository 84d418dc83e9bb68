package staffrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/pgerr"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements ports.StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

type changeTracker interface {
	Track(kind change.Kind, table string, row any)
}

func NewGormStaffRepository(db *gorm.DB, tracker changeTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStaffRepository) Add(ctx context.Context, s *staff.Staff) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("staff", s.Name(), err)
		}
		return err
	}

	r.tracker.Track(change.Insert, dto.TableName(), dto)
	return nil
}

func (r *GormStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	result := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("ID").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("staff", s.Name(), result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", s.ID())
	}

	r.tracker.Track(change.Update, dto.TableName(), dto)
	return nil
}

func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByName matches case-insensitively, as names are typed or picked at the till.
func (r *GormStaffRepository) GetActiveByName(ctx context.Context, name string) (*staff.Staff, error) {
	name = strings.TrimSpace(name)

	var dto StaffDTO
	err := r.db.WithContext(ctx).
		Where("active AND lower(name) = lower(?)", name).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormStaffRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&StaffDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", id)
	}

	dto := StaffDTO{ID: id.Bytes()}
	r.tracker.Track(change.Delete, dto.TableName(), dto)
	return nil
}

func (r *GormStaffRepository) GetAllActiveWithPIN(ctx context.Context) ([]*staff.Staff, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("active AND pin_hash <> ''"))
}

func (r *GormStaffRepository) GetAllWithPIN(ctx context.Context) ([]*staff.Staff, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("pin_hash <> ''"))
}

func (r *GormStaffRepository) find(_ context.Context, query *gorm.DB) ([]*staff.Staff, error) {
	var dtos []StaffDTO
	if err := query.Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]*staff.Staff, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}

	return members, nil
}
