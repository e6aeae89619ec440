package cargo_test

import (
	"testing"
	"time"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/location"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouteSpecification(t *testing.T) {
	t.Run("should create specification", func(t *testing.T) {
		s, err := cargo.NewRouteSpecification(location.Chicago, location.Hamburg, day(10))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, location.Chicago, s.Origin())
		assert.Equal(t, location.Hamburg, s.Destination())
		assert.Equal(t, day(10), s.ArrivalDeadline())
	})

	t.Run("should require locations", func(t *testing.T) {
		_, err := cargo.NewRouteSpecification(location.Location{}, location.Location{}, day(10))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "origin")
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("origin and destination must differ", func(t *testing.T) {
		_, err := cargo.NewRouteSpecification(location.Chicago, location.Chicago, day(10))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a deadline", func(t *testing.T) {
		_, err := cargo.NewRouteSpecification(location.Chicago, location.Hamburg, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s cargo.RouteSpecification
		assert.Equal(t, cargo.ErrRouteSpecificationIsNotConstructed, s.Validate())
	})
}

func TestRouteSpecification_IsSatisfiedBy(t *testing.T) {
	v := newVoyage(t, "CM01", location.Chicago, location.Hamburg)
	itinerary := newItinerary(t,
		newLeg(t, v, location.Chicago, 1, location.Hamburg, 5),
		newLeg(t, v, location.Hamburg, 6, location.Gdansk, 8),
	)

	tests := []struct {
		name      string
		spec      cargo.RouteSpecification
		satisfied bool
	}{
		{"matching origin, destination and later deadline", newSpec(t, location.Chicago, location.Gdansk, 9), true},
		{"deadline equal to arrival", newSpec(t, location.Chicago, location.Gdansk, 8), false},
		{"deadline before arrival", newSpec(t, location.Chicago, location.Gdansk, 7), false},
		{"other origin", newSpec(t, location.Hamburg, location.Gdansk, 9), false},
		{"other destination", newSpec(t, location.Chicago, location.Hamburg, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.satisfied, tt.spec.IsSatisfiedBy(itinerary))
		})
	}

	t.Run("not routed never satisfies", func(t *testing.T) {
		assert.False(t, newSpec(t, location.Chicago, location.Gdansk, 9).IsSatisfiedBy(nil))
	})
}
