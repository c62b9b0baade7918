package kernel_test

import (
	"testing"

	"campusrun/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(35.50))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.InDelta(t, 35.50, m.Float64(), 0.0001)
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		require.Error(t, m.Validate())
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("should keep exact decimal representation", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(25.0)

		require.NoError(t, err)
		assert.Equal(t, "25", m.String())
	})

	t.Run("should fail with negative float", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-5)

		require.Error(t, err)
	})
}

func TestMoney_SubFloorZero(t *testing.T) {
	money := func(v float64) kernel.Money {
		m, err := kernel.NewMoneyFromFloat(v)
		require.NoError(t, err)
		return m
	}

	t.Run("subtracts discount from total", func(t *testing.T) {
		actual := money(25.0).SubFloorZero(money(5.0))

		assert.True(t, actual.IsEqual(money(20.0)))
	})

	t.Run("floors at zero when discount exceeds total", func(t *testing.T) {
		actual := money(5.0).SubFloorZero(money(7.5))

		assert.True(t, actual.IsZero())
		require.NoError(t, actual.Validate())
	})

	t.Run("zero discount leaves total unchanged", func(t *testing.T) {
		actual := money(35.50).SubFloorZero(kernel.ZeroMoney())

		assert.True(t, actual.IsEqual(money(35.50)))
	})

	t.Run("keeps cents exact", func(t *testing.T) {
		actual := money(10.10).SubFloorZero(money(0.20))

		assert.Equal(t, "9.9", actual.String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	five, _ := kernel.NewMoneyFromFloat(5)
	ten, _ := kernel.NewMoneyFromFloat(10)

	assert.True(t, ten.GreaterThan(five))
	assert.False(t, five.GreaterThan(ten))
	assert.True(t, five.IsEqual(five))
	assert.False(t, five.IsEqual(ten))
}
