package ports

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/setting"
)

// SettingRepository persists the system_settings key/value table.
type SettingRepository interface {
	// Get returns the setting or an errs.ObjectNotFoundError for an unknown key.
	Get(ctx context.Context, key string) (*setting.Setting, error)

	// Update overwrites the value of an existing key.
	Update(ctx context.Context, s *setting.Setting) error

	// AddMissing inserts the settings whose keys are not stored yet and
	// reports how many were inserted. Stored values are left as they are.
	AddMissing(ctx context.Context, settings []*setting.Setting) (int, error)
}
