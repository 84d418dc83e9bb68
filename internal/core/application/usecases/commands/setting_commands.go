package commands

import (
	"errors"
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/setting"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var (
	ErrUpdateSettingCommandIsNotConstructed = errors.New(
		"UpdateSettingCommand must be created via NewUpdateSettingCommand constructor",
	)
	ErrSeedSettingsCommandIsNotConstructed = errors.New(
		"SeedSettingsCommand must be created via NewSeedSettingsCommand constructor",
	)
)

// UpdateSettingCommand changes the value of an existing setting. Keys are
// never created from the settings screen.
type UpdateSettingCommand struct {
	session staff.Session
	key     string
	value   string

	guard guard.ConstructorGuard
}

func NewUpdateSettingCommand(session staff.Session, key, value string) (UpdateSettingCommand, error) {
	var keyErr error
	key = strings.TrimSpace(key)
	if key == "" {
		keyErr = errs.NewValueIsRequiredError("setting key")
	}

	if err := errors.Join(validateSession(session), keyErr, setting.ValidateValue(value)); err != nil {
		return UpdateSettingCommand{}, err
	}

	return UpdateSettingCommand{
		session: session,
		key:     key,
		value:   strings.TrimSpace(value),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateSettingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingCommandIsNotConstructed)
}

func (c UpdateSettingCommand) Session() staff.Session { return c.session }
func (c UpdateSettingCommand) Key() string            { return c.key }
func (c UpdateSettingCommand) Value() string          { return c.value }

// SeedSettingsCommand stores the default settings that are missing.
type SeedSettingsCommand struct {
	session  staff.Session
	defaults []*setting.Setting

	guard guard.ConstructorGuard
}

func NewSeedSettingsCommand(session staff.Session, defaults []*setting.Setting) (SeedSettingsCommand, error) {
	if err := validateSession(session); err != nil {
		return SeedSettingsCommand{}, err
	}
	for _, s := range defaults {
		if err := s.Validate(); err != nil {
			return SeedSettingsCommand{}, err
		}
	}

	return SeedSettingsCommand{
		session:  session,
		defaults: defaults,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SeedSettingsCommand) Validate() error {
	return c.guard.Validate(ErrSeedSettingsCommandIsNotConstructed)
}

func (c SeedSettingsCommand) Session() staff.Session       { return c.session }
func (c SeedSettingsCommand) Defaults() []*setting.Setting { return c.defaults }
