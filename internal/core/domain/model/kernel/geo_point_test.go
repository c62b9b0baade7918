package kernel_test

import (
	"testing"

	"campusrun/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(30.259244, 120.219375)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 30.259244, p.Lat(), 1e-9)
		assert.InDelta(t, 120.219375, p.Lng(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90, -180)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(-90, 180)
		require.NoError(t, err)
	})

	t.Run("should fail with latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.5, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.01)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		require.Error(t, p.Validate())
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, p.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(30.27, 120.13)
	b, _ := kernel.NewGeoPoint(30.27, 120.13)
	c, _ := kernel.NewGeoPoint(30.28, 120.13)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
