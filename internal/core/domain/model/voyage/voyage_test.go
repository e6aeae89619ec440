package voyage_test

import (
	"testing"
	"time"

	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	departure = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	arrival   = departure.Add(48 * time.Hour)
)

func newSchedule(t *testing.T) voyage.Schedule {
	t.Helper()
	m, err := voyage.NewCarrierMovement(location.Chicago, location.Hamburg, departure, arrival)
	require.NoError(t, err)
	s, err := voyage.NewSchedule([]voyage.CarrierMovement{m})
	require.NoError(t, err)
	return s
}

func TestNewCarrierMovement(t *testing.T) {
	t.Run("should create movement", func(t *testing.T) {
		m, err := voyage.NewCarrierMovement(location.Chicago, location.Hamburg, departure, arrival)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, location.Chicago, m.DepartureLocation())
		assert.Equal(t, location.Hamburg, m.ArrivalLocation())
		assert.Equal(t, departure, m.DepartureTime())
		assert.Equal(t, arrival, m.ArrivalTime())
	})

	t.Run("should require locations", func(t *testing.T) {
		_, err := voyage.NewCarrierMovement(location.Location{}, location.Location{}, departure, arrival)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "departure location")
		assert.Contains(t, err.Error(), "arrival location")
	})

	t.Run("should reject unset times", func(t *testing.T) {
		_, err := voyage.NewCarrierMovement(location.Chicago, location.Hamburg, time.Time{}, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "departure time")
		assert.Contains(t, err.Error(), "arrival time")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m voyage.CarrierMovement
		assert.Equal(t, voyage.ErrCarrierMovementIsNotConstructed, m.Validate())
	})
}

func TestCarrierMovement_IsEqual(t *testing.T) {
	a, _ := voyage.NewCarrierMovement(location.Chicago, location.Hamburg, departure, arrival)
	b, _ := voyage.NewCarrierMovement(location.Chicago, location.Hamburg, departure.In(time.Local), arrival)
	c, _ := voyage.NewCarrierMovement(location.Chicago, location.Gdansk, departure, arrival)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestNewSchedule(t *testing.T) {
	t.Run("should create schedule and copy movements", func(t *testing.T) {
		m, _ := voyage.NewCarrierMovement(location.Chicago, location.Hamburg, departure, arrival)
		movements := []voyage.CarrierMovement{m}

		s, err := voyage.NewSchedule(movements)
		require.NoError(t, err)

		movements[0] = voyage.CarrierMovement{}
		require.Len(t, s.CarrierMovements(), 1)
		require.NoError(t, s.CarrierMovements()[0].Validate())
		assert.False(t, s.IsEmpty())
	})

	t.Run("should require movements", func(t *testing.T) {
		_, err := voyage.NewSchedule(nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty movements", func(t *testing.T) {
		_, err := voyage.NewSchedule([]voyage.CarrierMovement{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "has no elements")
	})

	t.Run("should reject zero movements", func(t *testing.T) {
		m, _ := voyage.NewCarrierMovement(location.Chicago, location.Hamburg, departure, arrival)

		_, err := voyage.NewSchedule([]voyage.CarrierMovement{m, {}})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "carrier movement 1")
	})

	t.Run("empty schedule is only reachable as a package value", func(t *testing.T) {
		assert.True(t, voyage.EmptySchedule.IsEmpty())
		require.NoError(t, voyage.EmptySchedule.Validate())
	})
}

func TestSchedule_IsEqual(t *testing.T) {
	a := newSchedule(t)
	b := newSchedule(t)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(voyage.EmptySchedule))
}

func TestNewVoyage(t *testing.T) {
	t.Run("should create voyage", func(t *testing.T) {
		s := newSchedule(t)

		v, err := voyage.NewVoyage("CM01", s)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, voyage.Number("CM01"), v.Number())
		assert.True(t, s.IsEqual(v.Schedule()))
		assert.Equal(t, "CM01", v.String())
		assert.False(t, v.IsEmpty())
	})

	t.Run("should accept an empty number", func(t *testing.T) {
		v, err := voyage.NewVoyage("", newSchedule(t))

		require.NoError(t, err)
		assert.False(t, v.IsEmpty())
	})

	t.Run("should require a schedule", func(t *testing.T) {
		v, err := voyage.NewVoyage("CM01", voyage.Schedule{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, v)
	})
}

func TestVoyage_SameIdentityAs(t *testing.T) {
	v1, _ := voyage.NewVoyage("CM01", newSchedule(t))
	v2, _ := voyage.NewVoyage("CM01", voyage.EmptySchedule)
	v3, _ := voyage.NewVoyage("CM02", newSchedule(t))

	t.Run("voyages with the same number are the same", func(t *testing.T) {
		assert.True(t, v1.SameIdentityAs(v2))
	})

	t.Run("voyages with different numbers differ", func(t *testing.T) {
		assert.False(t, v1.SameIdentityAs(v3))
		assert.False(t, v1.SameIdentityAs(voyage.Empty))
	})

	t.Run("nil has no identity", func(t *testing.T) {
		var none *voyage.Voyage
		assert.False(t, v1.SameIdentityAs(nil))
		assert.False(t, none.SameIdentityAs(v1))
	})

	t.Run("a voyage without number is not empty", func(t *testing.T) {
		unnumbered, err := voyage.NewVoyage("", newSchedule(t))
		require.NoError(t, err)

		assert.False(t, voyage.Empty.SameIdentityAs(unnumbered))
		assert.False(t, unnumbered.SameIdentityAs(voyage.Empty))
		assert.True(t, unnumbered.SameIdentityAs(unnumbered))
		assert.False(t, unnumbered.IsEmpty())
	})

	t.Run("empty equals itself", func(t *testing.T) {
		assert.True(t, voyage.Empty.SameIdentityAs(voyage.Empty))
		assert.True(t, voyage.Empty.IsEmpty())
		assert.True(t, voyage.Empty.Schedule().IsEmpty())
	})
}

func TestVoyage_Validate(t *testing.T) {
	var none *voyage.Voyage
	assert.Equal(t, voyage.ErrVoyageIsNotConstructed, none.Validate())
	assert.Equal(t, voyage.ErrVoyageIsNotConstructed, (&voyage.Voyage{}).Validate())
	require.NoError(t, voyage.Empty.Validate())
}
