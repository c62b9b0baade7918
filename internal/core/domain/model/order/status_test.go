package order_test

import (
	"testing"

	"campusrun/internal/core/domain/model/order"
	"campusrun/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:    "unknown",
		order.Pending:    "pending",
		order.Accepted:   "accepted",
		order.Delivering: "delivering",
		order.Completed:  "completed",
		order.Cancelled:  "cancelled",
		order.Status(42): "unknown",
	}

	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every valid status", func(t *testing.T) {
		for _, name := range []string{"pending", "accepted", "delivering", "completed", "cancelled"} {
			status, err := order.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := order.StatusFromString("")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pending can be cancelled", func(t *testing.T) {
		next, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("all other states reject cancel with current status", func(t *testing.T) {
		for _, s := range []order.Status{order.Accepted, order.Delivering, order.Completed, order.Cancelled} {
			_, err := s.Cancel()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrStatusConflict)

			var conflict *errs.StatusConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, "cancel", conflict.Event)
			assert.Equal(t, s.String(), conflict.CurrentStatus)
		}
	})
}

func TestStatus_Restore(t *testing.T) {
	t.Run("cancelled can be restored", func(t *testing.T) {
		next, err := order.Cancelled.Restore()

		require.NoError(t, err)
		assert.Equal(t, order.Pending, next)
	})

	t.Run("all other states reject restore", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Accepted, order.Delivering, order.Completed} {
			_, err := s.Restore()

			require.ErrorIs(t, err, errs.ErrStatusConflict)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("pending can be completed", func(t *testing.T) {
		next, err := order.Pending.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("all other states reject complete", func(t *testing.T) {
		for _, s := range []order.Status{order.Accepted, order.Delivering, order.Completed, order.Cancelled} {
			_, err := s.Complete()

			require.ErrorIs(t, err, errs.ErrStatusConflict)
		}
	})
}

func TestStatus_AcceptAndDeliver(t *testing.T) {
	t.Run("pending can be accepted", func(t *testing.T) {
		next, err := order.Pending.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, next)
	})

	t.Run("accepted can start delivering", func(t *testing.T) {
		next, err := order.Accepted.StartDelivering()

		require.NoError(t, err)
		assert.Equal(t, order.Delivering, next)
	})

	t.Run("completed cannot be accepted", func(t *testing.T) {
		_, err := order.Completed.Accept()

		require.ErrorIs(t, err, errs.ErrStatusConflict)
	})

	t.Run("pending cannot start delivering", func(t *testing.T) {
		_, err := order.Pending.StartDelivering()

		require.ErrorIs(t, err, errs.ErrStatusConflict)
	})
}

func TestStatus_ValidateReview(t *testing.T) {
	require.NoError(t, order.Completed.ValidateReview())

	for _, s := range []order.Status{order.Pending, order.Accepted, order.Delivering, order.Cancelled} {
		err := s.ValidateReview()

		require.ErrorIs(t, err, errs.ErrStatusConflict)

		var conflict *errs.StatusConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "review", conflict.Event)
	}
}

func TestStatus_ValidateDelete(t *testing.T) {
	require.NoError(t, order.Cancelled.ValidateDelete())

	for _, s := range []order.Status{order.Pending, order.Accepted, order.Delivering, order.Completed} {
		require.ErrorIs(t, s.ValidateDelete(), errs.ErrStatusConflict)
	}
}

func TestStatus_ValidateCanHaveDeliverer(t *testing.T) {
	t.Run("accepted, delivering, completed may carry a deliverer", func(t *testing.T) {
		require.NoError(t, order.Accepted.ValidateCanHaveDeliverer(true))
		require.NoError(t, order.Delivering.ValidateCanHaveDeliverer(true))
		require.NoError(t, order.Completed.ValidateCanHaveDeliverer(true))
	})

	t.Run("pending and cancelled must not carry a deliverer", func(t *testing.T) {
		require.Error(t, order.Pending.ValidateCanHaveDeliverer(true))
		require.Error(t, order.Cancelled.ValidateCanHaveDeliverer(true))
	})

	t.Run("no deliverer is always consistent", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Accepted, order.Delivering, order.Completed, order.Cancelled} {
			require.NoError(t, s.ValidateCanHaveDeliverer(false))
		}
	})
}
