package order_test

import (
	"fmt"
	"testing"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep lifecycle order in enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Less(t, order.PendingVerification, order.Queued)
		assert.Less(t, order.Queued, order.Working)
		assert.Less(t, order.Working, order.Ready)
		assert.Less(t, order.Ready, order.Paid)
	})
}

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:             "unknown",
		order.PendingVerification: "pending_verification",
		order.Queued:              "queued",
		order.Working:             "working",
		order.Ready:               "ready",
		order.Paid:                "paid",
		order.Cancelled:           "cancelled",
		order.Status(42):          "unknown",
	}

	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid name", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingVerification, order.Queued, order.Working, order.Ready, order.Paid, order.Cancelled,
		} {
			got, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("should treat completed as paid", func(t *testing.T) {
		got, err := order.ParseStatus("completed")

		require.NoError(t, err)
		assert.Equal(t, order.Paid, got)
		assert.Equal(t, "paid", got.String())
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "PAID", "done"} {
			_, err := order.ParseStatus(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "name %q", s)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(-1).Validate())
	require.NoError(t, order.Queued.Validate())
}

func TestStatus_IsLive(t *testing.T) {
	for _, s := range order.LiveStatuses() {
		assert.True(t, s.IsLive(), s.String())
		assert.False(t, s.IsTerminal(), s.String())
	}
	for _, s := range []order.Status{order.Paid, order.Cancelled} {
		assert.False(t, s.IsLive(), s.String())
		assert.True(t, s.IsTerminal(), s.String())
	}
	assert.False(t, order.Unknown.IsLive())
}

func TestStatus_Advance(t *testing.T) {
	allowed := map[[2]order.Status]bool{
		{order.Queued, order.Working}: true,
		{order.Queued, order.Ready}:   true,
		{order.Working, order.Ready}:  true,
	}

	all := []order.Status{
		order.Unknown, order.PendingVerification, order.Queued, order.Working,
		order.Ready, order.Paid, order.Cancelled,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				got, err := from.Advance(to)

				if allowed[[2]order.Status{from, to}] {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					return
				}

				require.ErrorIs(t, err, order.ErrInvalidTransition)
				assert.Equal(t, from, got)

				var transitionErr *order.TransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, to, transitionErr.To)
			})
		}
	}
}

func TestStatus_Pay(t *testing.T) {
	for _, from := range order.LiveStatuses() {
		got, err := from.Pay()
		require.NoError(t, err, from.String())
		assert.Equal(t, order.Paid, got)
	}

	for _, from := range []order.Status{order.Unknown, order.Paid, order.Cancelled} {
		_, err := from.Pay()
		require.ErrorIs(t, err, order.ErrInvalidTransition, from.String())
	}
}

func TestStatus_Cancel(t *testing.T) {
	for _, from := range order.LiveStatuses() {
		got, err := from.Cancel()
		require.NoError(t, err, from.String())
		assert.Equal(t, order.Cancelled, got)
	}

	_, err := order.Paid.Cancel()
	require.ErrorIs(t, err, order.ErrInvalidTransition)

	_, err = order.Cancelled.Cancel()
	require.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestStatus_VerifyAndReject(t *testing.T) {
	got, err := order.PendingVerification.Verify()
	require.NoError(t, err)
	assert.Equal(t, order.Queued, got)

	got, err = order.PendingVerification.Reject()
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, got)

	for _, from := range []order.Status{order.Queued, order.Working, order.Ready, order.Paid, order.Cancelled} {
		_, err := from.Verify()
		require.ErrorIs(t, err, order.ErrInvalidTransition, from.String())

		_, err = from.Reject()
		require.ErrorIs(t, err, order.ErrInvalidTransition, from.String())
	}
}

func TestStatus_ValidateEditable(t *testing.T) {
	require.NoError(t, order.Ready.ValidateEditable())

	err := order.Paid.ValidateEditable()
	require.ErrorIs(t, err, order.ErrOrderIsClosed)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
}
