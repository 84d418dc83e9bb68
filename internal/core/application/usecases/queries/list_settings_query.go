package queries

import (
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/guard"
)

var ErrListSettingsQueryIsNotConstructed = errors.New(
	"ListSettingsQuery must be created via NewListSettingsQuery constructor",
)

type ListSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewListSettingsQuery() ListSettingsQuery {
	return ListSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListSettingsQuery) Validate() error {
	return q.guard.Validate(ErrListSettingsQueryIsNotConstructed)
}

type SettingEntry struct {
	Key         string
	Value       string
	Description string
}
