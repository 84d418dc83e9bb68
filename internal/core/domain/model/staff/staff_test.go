package staff_test

import (
	"testing"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	t.Run("hashes the pin", func(t *testing.T) {
		s, err := staff.NewStaff(kernel.NewUUID(), "Cass", staff.RoleCashier, "1234")

		require.NoError(t, err)
		assert.True(t, s.IsActive())
		assert.True(t, s.HasPIN())
		assert.NotEqual(t, "1234", s.PINHash())
		assert.True(t, s.MatchesPIN("1234"))
		assert.False(t, s.MatchesPIN("4321"))
	})

	t.Run("washer without pin cannot log in", func(t *testing.T) {
		s, err := staff.NewStaff(kernel.NewUUID(), "Wally", staff.RoleWasher, "")

		require.NoError(t, err)
		assert.False(t, s.HasPIN())
		assert.False(t, s.MatchesPIN(""))
	})

	t.Run("rejects malformed pins", func(t *testing.T) {
		for _, pin := range []string{"123", "12345", "abcd"} {
			_, err := staff.NewStaff(kernel.NewUUID(), "Cass", staff.RoleCashier, pin)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "pin %q", pin)
		}
	})

	t.Run("requires name and role", func(t *testing.T) {
		_, err := staff.NewStaff(kernel.NewUUID(), " ", staff.RoleUnknown, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreStaff(t *testing.T) {
	original, err := staff.NewStaff(kernel.NewUUID(), "Greta", staff.RoleGreeter, "0007")
	require.NoError(t, err)

	restored, err := staff.RestoreStaff(original.ID(), original.Name(), original.Role(), original.PINHash(), false)

	require.NoError(t, err)
	assert.False(t, restored.IsActive())
	assert.True(t, restored.MatchesPIN("0007"))

	restored.Activate()
	assert.True(t, restored.IsActive())
}

func TestSession_Require(t *testing.T) {
	cashier := staff.Session{StaffID: kernel.NewUUID(), Name: "Cass", Role: staff.RoleCashier}
	admin := staff.Session{StaffID: kernel.NewUUID(), Name: "Ada", Role: staff.RoleAdmin}

	require.NoError(t, cashier.Require(staff.RoleCashier, staff.RoleGreeter))
	require.ErrorIs(t, cashier.Require(staff.RoleAdmin), staff.ErrForbidden)
	require.NoError(t, admin.Require(staff.RoleBarista))
	require.ErrorIs(t, staff.KioskSession.Require(staff.RoleGreeter), staff.ErrForbidden)
}

func TestParseRole(t *testing.T) {
	for _, r := range []staff.Role{staff.RoleAdmin, staff.RoleCashier, staff.RoleGreeter, staff.RoleBarista, staff.RoleWasher} {
		got, err := staff.ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := staff.ParseRole("owner")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFindByPIN(t *testing.T) {
	aaron, err := staff.NewStaff(kernel.NewUUID(), "Aaron", staff.RoleAdmin, "4821")
	require.NoError(t, err)
	cass, err := staff.NewStaff(kernel.NewUUID(), "Cass", staff.RoleCashier, "1234")
	require.NoError(t, err)

	t.Run("returns the single holder", func(t *testing.T) {
		found, err := staff.FindByPIN([]*staff.Staff{aaron, cass}, "1234")
		require.NoError(t, err)
		assert.Equal(t, cass, found)
	})

	t.Run("unknown pin", func(t *testing.T) {
		_, err := staff.FindByPIN([]*staff.Staff{aaron, cass}, "0000")
		require.ErrorIs(t, err, staff.ErrPINMismatch)
	})

	t.Run("shared pin matches nobody", func(t *testing.T) {
		zed, err := staff.RestoreStaff(kernel.NewUUID(), "Zed", staff.RoleCashier, aaron.PINHash(), true)
		require.NoError(t, err)

		found, err := staff.FindByPIN([]*staff.Staff{aaron, cass, zed}, "4821")
		require.ErrorIs(t, err, staff.ErrPINNotUnique)
		assert.Nil(t, found)
	})
}

func TestEnsurePINAvailable(t *testing.T) {
	aaron, err := staff.NewStaff(kernel.NewUUID(), "Aaron", staff.RoleAdmin, "4821")
	require.NoError(t, err)
	members := []*staff.Staff{aaron}

	require.ErrorIs(t, staff.EnsurePINAvailable(members, kernel.NewUUID(), "4821"), errs.ErrObjectAlreadyExists)
	require.NoError(t, staff.EnsurePINAvailable(members, aaron.ID(), "4821"))
	require.NoError(t, staff.EnsurePINAvailable(members, kernel.NewUUID(), "1234"))
	require.NoError(t, staff.EnsurePINAvailable(members, kernel.NewUUID(), ""))
}

func TestStaff_RenameAndChangeRole(t *testing.T) {
	s, err := staff.NewStaff(kernel.NewUUID(), "Greta", staff.RoleGreeter, "")
	require.NoError(t, err)

	require.NoError(t, s.Rename("  Greta M "))
	require.NoError(t, s.ChangeRole(staff.RoleCashier))
	assert.Equal(t, "Greta M", s.Name())
	assert.Equal(t, staff.RoleCashier, s.Role())

	require.ErrorIs(t, s.Rename(""), errs.ErrValueIsRequired)
	require.ErrorIs(t, s.ChangeRole(staff.RoleUnknown), errs.ErrValueIsInvalid)
	assert.Equal(t, "Greta M", s.Name())
}
