package order_test

import (
	"testing"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func basicWash(price string) order.ServiceSelection {
	return order.ServiceSelection{
		ServiceID: kernel.NewUUID(),
		Name:      "Basic Wash",
		Price:     kernel.MustMoney(price),
	}
}

func newStaffOrder(t *testing.T, price string) *order.Order {
	t.Helper()

	o, err := order.NewStaffOrder(
		kernel.NewUUID(),
		12,
		kernel.NewUUID(),
		order.Customer{Name: " Ana ", PlateNumber: "abc 123"},
		basicWash(price),
		"Greta",
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewStaffOrder(t *testing.T) {
	t.Run("should create a queued verified order with one service line", func(t *testing.T) {
		o := newStaffOrder(t, "250")

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Queued, o.Status())
		assert.Equal(t, order.SourceStaff, o.Source())
		assert.True(t, o.IsVerified())
		assert.Equal(t, 12, o.TokenNumber())
		assert.Equal(t, "Ana", o.Customer().Name)
		assert.Equal(t, "ABC 123", o.Customer().PlateNumber)
		assert.Equal(t, "Greta", o.CreatedBy())
		assert.NotNil(t, o.VehicleTypeID())
		assert.Nil(t, o.PaidAt())
		assert.Equal(t, "250.00", o.TotalAmount().String())
		assert.True(t, o.CommissionAmount().IsZero())

		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, order.ItemTypeService, items[0].Type())
		assert.True(t, items[0].CatalogID().IsEqual(o.ServiceID()))
		assert.Equal(t, "Basic Wash", items[0].Name())
		assert.Equal(t, 1, items[0].Quantity())
	})

	t.Run("should join construction errors", func(t *testing.T) {
		var zeroID kernel.UUID

		o, err := order.NewStaffOrder(zeroID, 0, zeroID, order.Customer{}, order.ServiceSelection{}, "", now)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a service name", func(t *testing.T) {
		service := basicWash("250")
		service.Name = "  "

		_, err := order.NewStaffOrder(kernel.NewUUID(), 1, kernel.NewUUID(), order.Customer{}, service, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewKioskOrder(t *testing.T) {
	serviceID := kernel.NewUUID()

	o, err := order.NewKioskOrder(kernel.NewUUID(), 4, serviceID, now)

	require.NoError(t, err)
	assert.Equal(t, order.PendingVerification, o.Status())
	assert.Equal(t, order.SourceKiosk, o.Source())
	assert.False(t, o.IsVerified())
	assert.Nil(t, o.VehicleTypeID())
	assert.Empty(t, o.Items())
	assert.True(t, o.TotalAmount().IsZero())
	assert.True(t, o.ServiceID().IsEqual(serviceID))
}

func TestOrder_Verify(t *testing.T) {
	service := basicWash("150")

	t.Run("should price and queue a kiosk order", func(t *testing.T) {
		o, err := order.NewKioskOrder(kernel.NewUUID(), 4, service.ServiceID, now)
		require.NoError(t, err)
		vehicleTypeID := kernel.NewUUID()

		require.NoError(t, o.Verify(vehicleTypeID, service))

		assert.Equal(t, order.Queued, o.Status())
		assert.True(t, o.IsVerified())
		assert.True(t, o.VehicleTypeID().IsEqual(vehicleTypeID))
		assert.Equal(t, "150.00", o.TotalAmount().String())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "150.00", o.Items()[0].UnitPrice().String())
	})

	t.Run("should reject a different service", func(t *testing.T) {
		o, err := order.NewKioskOrder(kernel.NewUUID(), 4, service.ServiceID, now)
		require.NoError(t, err)

		err = o.Verify(kernel.NewUUID(), basicWash("150"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.PendingVerification, o.Status())
		assert.Empty(t, o.Items())
	})

	t.Run("should not verify twice", func(t *testing.T) {
		o, err := order.NewKioskOrder(kernel.NewUUID(), 4, service.ServiceID, now)
		require.NoError(t, err)
		require.NoError(t, o.Verify(kernel.NewUUID(), service))

		err = o.Verify(kernel.NewUUID(), service)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_Reject(t *testing.T) {
	o, err := order.NewKioskOrder(kernel.NewUUID(), 4, kernel.NewUUID(), now)
	require.NoError(t, err)

	require.NoError(t, o.Reject("Greta"))
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, "Greta", o.ClosedBy())

	staff := newStaffOrder(t, "250")
	require.ErrorIs(t, staff.Reject("Greta"), order.ErrInvalidTransition)
}

func TestOrder_AddConsumable(t *testing.T) {
	coffee := order.Consumable{ItemID: kernel.NewUUID(), Name: "Iced Coffee", Price: kernel.MustMoney("25")}

	t.Run("should add a new inventory line with a price snapshot", func(t *testing.T) {
		o := newStaffOrder(t, "250")

		item, err := o.AddConsumable(kernel.NewUUID(), coffee, 1)

		require.NoError(t, err)
		assert.Equal(t, order.ItemTypeInventory, item.Type())
		assert.Equal(t, "25.00", item.UnitPrice().String())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "275.00", o.TotalAmount().String())
	})

	t.Run("should accumulate quantity on the existing line", func(t *testing.T) {
		o := newStaffOrder(t, "250")
		first, err := o.AddConsumable(kernel.NewUUID(), coffee, 1)
		require.NoError(t, err)

		repriced := coffee
		repriced.Price = kernel.MustMoney("30")
		second, err := o.AddConsumable(kernel.NewUUID(), repriced, 2)

		require.NoError(t, err)
		assert.True(t, first.ID().IsEqual(second.ID()))
		assert.Equal(t, 3, second.Quantity())
		assert.Equal(t, "25.00", second.UnitPrice().String())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "325.00", o.TotalAmount().String())
	})

	t.Run("should reject a non positive quantity", func(t *testing.T) {
		o := newStaffOrder(t, "250")

		_, err := o.AddConsumable(kernel.NewUUID(), coffee, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = o.AddConsumable(kernel.NewUUID(), coffee, 1)
		require.NoError(t, err)
		_, err = o.AddConsumable(kernel.NewUUID(), coffee, -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should not touch a paid order", func(t *testing.T) {
		o := newStaffOrder(t, "250")
		require.NoError(t, o.MarkPaid("Wally", "Cass", now))

		_, err := o.AddConsumable(kernel.NewUUID(), coffee, 1)

		require.ErrorIs(t, err, order.ErrOrderIsClosed)
		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_RemoveConsumable(t *testing.T) {
	coffee := order.Consumable{ItemID: kernel.NewUUID(), Name: "Iced Coffee", Price: kernel.MustMoney("25")}

	t.Run("should remove an inventory line", func(t *testing.T) {
		o := newStaffOrder(t, "250")
		item, err := o.AddConsumable(kernel.NewUUID(), coffee, 2)
		require.NoError(t, err)

		require.NoError(t, o.RemoveConsumable(item.ID()))

		assert.Len(t, o.Items(), 1)
		assert.Equal(t, "250.00", o.TotalAmount().String())
	})

	t.Run("should refuse to remove the service line", func(t *testing.T) {
		o := newStaffOrder(t, "250")

		err := o.RemoveConsumable(o.Items()[0].ID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should report a missing line", func(t *testing.T) {
		o := newStaffOrder(t, "250")

		err := o.RemoveConsumable(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_Advance(t *testing.T) {
	o := newStaffOrder(t, "250")

	require.NoError(t, o.Advance(order.Working))
	require.ErrorIs(t, o.Advance(order.Working), order.ErrInvalidTransition)
	require.NoError(t, o.Advance(order.Ready))
	require.ErrorIs(t, o.Advance(order.Working), order.ErrInvalidTransition)
	assert.Equal(t, order.Ready, o.Status())

	kiosk, err := order.NewKioskOrder(kernel.NewUUID(), 2, kernel.NewUUID(), now)
	require.NoError(t, err)
	require.ErrorIs(t, kiosk.Advance(order.Working), order.ErrInvalidTransition)
}

func TestOrder_MarkPaid(t *testing.T) {
	coffee := order.Consumable{ItemID: kernel.NewUUID(), Name: "Iced Coffee", Price: kernel.MustMoney("25")}

	t.Run("should settle totals and commission from the lines", func(t *testing.T) {
		o := newStaffOrder(t, "250")
		_, err := o.AddConsumable(kernel.NewUUID(), coffee, 1)
		require.NoError(t, err)

		require.NoError(t, o.MarkPaid(" Wally ", "Cass", now))

		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "275.00", o.TotalAmount().String())
		assert.Equal(t, "87.50", o.CommissionAmount().String())
		assert.Equal(t, "Wally", o.WasherName())
		assert.Equal(t, "Cass", o.ClosedBy())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, now, *o.PaidAt())
	})

	t.Run("should round commission to cents", func(t *testing.T) {
		o := newStaffOrder(t, "99.99")

		require.NoError(t, o.MarkPaid("Wally", "Cass", now))

		assert.Equal(t, "35.00", o.CommissionAmount().String())
	})

	t.Run("should require a washer before changing anything", func(t *testing.T) {
		o := newStaffOrder(t, "250")

		err := o.MarkPaid("   ", "Cass", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Queued, o.Status())
		assert.Nil(t, o.PaidAt())
	})

	t.Run("should not pay twice", func(t *testing.T) {
		o := newStaffOrder(t, "250")
		require.NoError(t, o.MarkPaid("Wally", "Cass", now))

		require.ErrorIs(t, o.MarkPaid("Wally", "Cass", now), order.ErrInvalidTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	o := newStaffOrder(t, "250")
	require.NoError(t, o.Advance(order.Working))

	require.NoError(t, o.Cancel("Cass"))

	assert.Equal(t, order.Cancelled, o.Status())
	assert.True(t, o.CommissionAmount().IsZero())
	require.ErrorIs(t, o.Cancel("Cass"), order.ErrInvalidTransition)
	require.ErrorIs(t, o.MarkPaid("Wally", "Cass", now), order.ErrInvalidTransition)
}

func TestRestoreOrder(t *testing.T) {
	original := newStaffOrder(t, "250")

	restored, err := order.RestoreOrder(order.Snapshot{
		ID:            original.ID(),
		TokenNumber:   original.TokenNumber(),
		ServiceID:     original.ServiceID(),
		VehicleTypeID: original.VehicleTypeID(),
		Customer:      original.Customer(),
		TotalAmount:   original.TotalAmount(),
		Status:        original.Status(),
		Source:        original.Source(),
		IsVerified:    true,
		CreatedAt:     original.CreatedAt(),
		Items:         original.Items(),
	})

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))
	assert.True(t, original.RunningTotal().IsEqual(restored.RunningTotal()))

	_, err = order.RestoreOrder(order.Snapshot{ID: original.ID(), TokenNumber: 1, ServiceID: original.ServiceID()})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_ValidateZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}
