// Package settingrepo persists admin-editable system settings with GORM.
package settingrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/setting"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingDTO struct {
	Key         string `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value       string `gorm:"type:text;not null" json:"value"`
	Description string `gorm:"type:text;not null;default:''" json:"description"`
}

func (SettingDTO) TableName() string {
	return change.TableSettings
}

// GormSettingRepository implements ports.SettingRepository using GORM.
type GormSettingRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

type changeTracker interface {
	Track(kind change.Kind, table string, row any)
}

func NewGormSettingRepository(db *gorm.DB, tracker changeTracker) *GormSettingRepository {
	return &GormSettingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	key = strings.TrimSpace(key)

	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("setting", key)
		}
		return nil, err
	}

	return setting.NewSetting(dto.Key, dto.Value, dto.Description)
}

func (r *GormSettingRepository) Update(ctx context.Context, s *setting.Setting) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	result := r.db.WithContext(ctx).
		Model(&SettingDTO{}).
		Where("key = ?", dto.Key).
		Update("value", dto.Value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("setting", dto.Key)
	}

	r.tracker.Track(change.Update, dto.TableName(), dto)
	return nil
}

func (r *GormSettingRepository) AddMissing(ctx context.Context, settings []*setting.Setting) (int, error) {
	inserted := 0
	for _, s := range settings {
		if err := s.Validate(); err != nil {
			return inserted, err
		}

		dto := fromDomain(s)
		result := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto)
		if result.Error != nil {
			return inserted, result.Error
		}
		if result.RowsAffected == 0 {
			continue
		}

		inserted++
		r.tracker.Track(change.Insert, dto.TableName(), dto)
	}
	return inserted, nil
}

func fromDomain(s *setting.Setting) SettingDTO {
	return SettingDTO{
		Key:         s.Key(),
		Value:       s.Value(),
		Description: s.Description(),
	}
}
