package commands

import (
	"context"
)

type UpdateSettingCommandHandler struct {
	uowFactory SettingUoWFactory
}

func NewUpdateSettingCommandHandler(uowFactory SettingUoWFactory) UpdateSettingCommandHandler {
	return UpdateSettingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ObjectNotFoundError for a key that was never seeded.
func (h UpdateSettingCommandHandler) Handle(ctx context.Context, command UpdateSettingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SettingRepository()

	s, err := repo.Get(ctx, command.Key())
	if err != nil {
		return err
	}
	if err = s.Change(command.Value()); err != nil {
		return err
	}
	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type SeedSettingsCommandHandler struct {
	uowFactory SettingUoWFactory
}

func NewSeedSettingsCommandHandler(uowFactory SettingUoWFactory) SeedSettingsCommandHandler {
	return SeedSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many settings were added.
func (h SeedSettingsCommandHandler) Handle(ctx context.Context, command SeedSettingsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}
	if err := command.Session().Require(adminRoles...); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	added, err := uow.SettingRepository().AddMissing(ctx, command.Defaults())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return added, nil
}
