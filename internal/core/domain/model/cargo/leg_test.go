package cargo_test

import (
	"testing"
	"time"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeg(t *testing.T) {
	v := newVoyage(t, "CM01", location.Chicago, location.Hamburg)

	t.Run("should create leg", func(t *testing.T) {
		l, err := cargo.NewLeg(v, location.Chicago, day(1), location.Hamburg, day(5))

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Same(t, v, l.Voyage())
		assert.Equal(t, location.Chicago, l.LoadLocation())
		assert.Equal(t, day(1), l.LoadTime())
		assert.Equal(t, location.Hamburg, l.UnloadLocation())
		assert.Equal(t, day(5), l.UnloadTime())
	})

	t.Run("should require a voyage", func(t *testing.T) {
		_, err := cargo.NewLeg(nil, location.Chicago, day(1), location.Hamburg, day(5))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = cargo.NewLeg(voyage.Empty, location.Chicago, day(1), location.Hamburg, day(5))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require locations", func(t *testing.T) {
		_, err := cargo.NewLeg(v, location.Location{}, day(1), location.Location{}, day(5))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "load location")
		assert.Contains(t, err.Error(), "unload location")
	})

	t.Run("should reject unset times", func(t *testing.T) {
		_, err := cargo.NewLeg(v, location.Chicago, time.Time{}, location.Hamburg, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "load time")
		assert.Contains(t, err.Error(), "unload time")
	})
}

func TestLeg_IsEqual(t *testing.T) {
	v := newVoyage(t, "CM01", location.Chicago, location.Hamburg)
	a := newLeg(t, v, location.Chicago, 1, location.Hamburg, 5)

	assert.True(t, a.IsEqual(newLeg(t, newVoyage(t, "CM01", location.Chicago, location.Hamburg),
		location.Chicago, 1, location.Hamburg, 5)))
	assert.False(t, a.IsEqual(newLeg(t, newVoyage(t, "CM02", location.Chicago, location.Hamburg),
		location.Chicago, 1, location.Hamburg, 5)))
	assert.False(t, a.IsEqual(newLeg(t, v, location.Chicago, 1, location.Hamburg, 6)))
}
