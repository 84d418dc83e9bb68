// Package setting holds the admin-editable key/value configuration shown on
// the settings screen, such as the shop name printed on receipts.
package setting

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrSettingIsNotConstructed = errors.New("Setting must be created via NewSetting constructor")

var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// MaxValueLength bounds a value. Settings are labels and short numbers.
const MaxValueLength = 512

type Setting struct {
	key         string
	value       string
	description string

	guard guard.ConstructorGuard
}

func NewSetting(key, value, description string) (*Setting, error) {
	s := &Setting{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.setKey(key), s.setValue(value)); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Setting) Key() string {
	return s.key
}

func (s *Setting) Value() string {
	return s.value
}

func (s *Setting) Description() string {
	return s.description
}

// Change replaces the value. The key and description are fixed at seeding.
func (s *Setting) Change(value string) error {
	return s.setValue(value)
}

func (s *Setting) Validate() error {
	if s == nil {
		return ErrSettingIsNotConstructed
	}
	return s.guard.Validate(ErrSettingIsNotConstructed)
}

func (s *Setting) setKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("setting key")
	}
	if !keyPattern.MatchString(key) {
		return errs.NewValueIsInvalidErrorWithCause("setting key", fmt.Errorf("%q is not snake_case", key))
	}

	s.key = key
	return nil
}

func (s *Setting) setValue(value string) error {
	value = strings.TrimSpace(value)
	if err := ValidateValue(value); err != nil {
		return err
	}

	s.value = value
	return nil
}

// ValidateValue checks a value before its setting is loaded.
func ValidateValue(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError("setting value")
	}
	if len(value) > MaxValueLength {
		return errs.NewValueIsOutOfRangeError("setting value length", len(value), 1, MaxValueLength)
	}
	return nil
}
