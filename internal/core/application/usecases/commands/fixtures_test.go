package commands_test

import (
	"testing"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"

	"github.com/stretchr/testify/require"
)

var (
	greeter = session("Greta", staff.RoleGreeter)
	cashier = session("Carla", staff.RoleCashier)
	barista = session("Bea", staff.RoleBarista)
	admin   = session("Ada", staff.RoleAdmin)
	washer  = session("Pedro", staff.RoleWasher)
)

func newService(t *testing.T, name string) *catalog.Service {
	t.Helper()
	s, err := catalog.NewService(kernel.NewUUID(), name, "")
	require.NoError(t, err)
	return s
}

func newVehicleType(t *testing.T, name string) *catalog.VehicleType {
	t.Helper()
	v, err := catalog.NewVehicleType(kernel.NewUUID(), name, 1)
	require.NoError(t, err)
	return v
}

func newInventoryItem(t *testing.T, name, price string) *catalog.InventoryItem {
	t.Helper()
	i, err := catalog.NewInventoryItem(kernel.NewUUID(), name, kernel.MustMoney(price), 24, catalog.CategoryDrinks)
	require.NoError(t, err)
	return i
}

func newAvailableToken(t *testing.T, number int) *token.Token {
	t.Helper()
	tk, err := token.NewToken(number)
	require.NoError(t, err)
	return tk
}

func newActiveToken(t *testing.T, number int, jobID kernel.UUID) *token.Token {
	t.Helper()
	tk, err := token.RestoreToken(number, token.Active, jobID.Ptr())
	require.NoError(t, err)
	return tk
}

func newQueuedOrder(t *testing.T, tokenNumber int, service *catalog.Service, price string) *order.Order {
	t.Helper()
	o, err := order.NewStaffOrder(
		kernel.NewUUID(),
		tokenNumber,
		kernel.NewUUID(),
		order.Customer{Name: "Ana", PlateNumber: "ABC 123"},
		order.ServiceSelection{ServiceID: service.ID(), Name: service.Name(), Price: kernel.MustMoney(price)},
		greeter.Name,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func newWasher(t *testing.T, name string) *staff.Staff {
	t.Helper()
	s, err := staff.NewStaff(kernel.NewUUID(), name, staff.RoleWasher, "")
	require.NoError(t, err)
	return s
}
