package commands_test

import (
	"context"
	"testing"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/application/usecases/commands"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/setting"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func settingFactory(r repos) *MockSettingUoWFactory {
	f := new(MockSettingUoWFactory)
	f.On("Create").Return(r.uow)
	return f
}

func TestUpdateSettingCommandHandler_Handle(t *testing.T) {
	t.Run("should change the value", func(t *testing.T) {
		ctx := context.Background()
		shopName, err := setting.NewSetting("shop_name", "JETZ Carwash", "Name on receipts")
		require.NoError(t, err)
		cmd, err := commands.NewUpdateSettingCommand(admin, "shop_name", " JETZ Makati ")
		require.NoError(t, err)

		r := newRepos()
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.settings.On("Get", ctx, "shop_name").Return(shopName, nil).Once(),
			r.settings.On("Update", ctx, shopName).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			r.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewUpdateSettingCommandHandler(settingFactory(r))
		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, "JETZ Makati", shopName.Value())
		assert.Equal(t, "Name on receipts", shopName.Description())
		r.assertExpectations(t)
	})

	t.Run("should not create an unknown key", func(t *testing.T) {
		ctx := context.Background()
		cmd, err := commands.NewUpdateSettingCommand(admin, "happy_hour", "5pm")
		require.NoError(t, err)

		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.settings.On("Get", ctx, "happy_hour").Return(nil, errs.NewObjectNotFoundError("setting", "happy_hour")).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewUpdateSettingCommandHandler(settingFactory(r))
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		r.settings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		r.assertExpectations(t)
	})

	t.Run("should be admin only", func(t *testing.T) {
		cmd, err := commands.NewUpdateSettingCommand(cashier, "shop_name", "Mine")
		require.NoError(t, err)

		h := commands.NewUpdateSettingCommandHandler(new(MockSettingUoWFactory))
		require.ErrorIs(t, h.Handle(context.Background(), cmd), staff.ErrForbidden)
	})
}

func TestUpdateSettingCommand_Validation(t *testing.T) {
	_, err := commands.NewUpdateSettingCommand(admin, " ", "x")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateSettingCommand(admin, "shop_name", "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateSettingCommand(staff.Session{}, "shop_name", "x")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.UpdateSettingCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrUpdateSettingCommandIsNotConstructed)
}

func TestSeedSettingsCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	defaults := setting.Defaults()
	cmd, err := commands.NewSeedSettingsCommand(admin, defaults)
	require.NoError(t, err)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.settings.On("AddMissing", ctx, defaults).Return(2, nil).Once()
	r.uow.On("Commit", ctx).Return(nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewSeedSettingsCommandHandler(settingFactory(r))
	added, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	r.assertExpectations(t)
}
