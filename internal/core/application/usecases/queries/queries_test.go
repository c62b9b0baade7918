package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrun/internal/core/application/usecases/queries"
	"campusrun/internal/pkg/errs"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(10, "pending", 2, 20)
		require.NoError(t, err)

		assert.NoError(t, q.Validate())
		assert.Equal(t, uint64(10), q.UserID())
		assert.Equal(t, "pending", q.Status())
		assert.Equal(t, 2, q.Page())
		assert.Equal(t, 20, q.PageSize())
	})

	t.Run("empty status means all", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(10, "", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, q.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(10, "shipped", 1, 10)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires user", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(0, "", 1, 10)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("normalizes out of range paging", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(10, "", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, q.Page())
		assert.Equal(t, 10, q.PageSize())

		q, err = queries.NewListOrdersQuery(10, "", 1, 10000)
		require.NoError(t, err)
		assert.Equal(t, 10, q.PageSize())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var q queries.ListOrdersQuery
		assert.ErrorIs(t, q.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(101, 10)
		require.NoError(t, err)
		assert.NoError(t, q.Validate())
		assert.Equal(t, uint64(101), q.OrderID())
		assert.Equal(t, uint64(10), q.UserID())
	})

	t.Run("requires ids", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(0, 10)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = queries.NewGetOrderQuery(101, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetOrderStatisticsQuery(t *testing.T) {
	q, err := queries.NewGetOrderStatisticsQuery(10)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetOrderStatisticsQuery(0)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListAddressesQuery(t *testing.T) {
	t.Run("accepts known types", func(t *testing.T) {
		for _, tp := range []string{"", "pickup", "delivery"} {
			q, err := queries.NewListAddressesQuery(10, tp)
			require.NoError(t, err)
			assert.Equal(t, tp, q.AddressType())
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := queries.NewListAddressesQuery(10, "work")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewGetDelivererQuery(t *testing.T) {
	q, err := queries.NewGetDelivererQuery(7)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetDelivererQuery(0)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListDeliverersQuery(t *testing.T) {
	q := queries.NewListDeliverersQuery()
	assert.NoError(t, q.Validate())

	var zero queries.ListDeliverersQuery
	assert.ErrorIs(t, zero.Validate(), queries.ErrListDeliverersQueryIsNotConstructed)
}
