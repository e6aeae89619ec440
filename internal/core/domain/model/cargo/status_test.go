package cargo_test

import (
	"testing"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingStatus(t *testing.T) {
	assert.Equal(t, "NotRouted", cargo.NotRouted.String())
	assert.Equal(t, "Routed", cargo.Routed.String())
	assert.Equal(t, "Misrouted", cargo.Misrouted.String())
	require.NoError(t, cargo.Misrouted.Validate())
	require.ErrorIs(t, cargo.RoutingStatus(9).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", cargo.RoutingStatus(9).String())
}

func TestTransportStatus(t *testing.T) {
	for status, name := range map[cargo.TransportStatus]string{
		cargo.NotReceived:            "NotReceived",
		cargo.InPort:                 "InPort",
		cargo.OnboardCarrier:         "OnboardCarrier",
		cargo.Claimed:                "Claimed",
		cargo.UnknownTransportStatus: "Unknown",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, status.String())
			require.NoError(t, status.Validate())
		})
	}

	require.ErrorIs(t, cargo.TransportStatus(-1).Validate(), errs.ErrValueIsInvalid)
}

func TestNewHandlingActivity(t *testing.T) {
	v := newVoyage(t, "V", location.Chicago, location.Hamburg)

	t.Run("with voyage", func(t *testing.T) {
		a, err := cargo.NewHandlingActivity(handling.Unload, location.Hamburg, v)

		require.NoError(t, err)
		assert.Same(t, v, a.Voyage())
		assert.Equal(t, "Unload at Hamburg [DEHAM] on V", a.String())
	})

	t.Run("without voyage", func(t *testing.T) {
		a, err := cargo.NewHandlingActivity(handling.Claim, location.Hamburg, nil)

		require.NoError(t, err)
		assert.Same(t, voyage.Empty, a.Voyage())
		assert.Equal(t, "Claim at Hamburg [DEHAM]", a.String())
	})

	t.Run("should validate its parts", func(t *testing.T) {
		_, err := cargo.NewHandlingActivity(handling.UnknownEventType, location.Hamburg, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = cargo.NewHandlingActivity(handling.Claim, location.Location{}, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("equality", func(t *testing.T) {
		a, _ := cargo.NewHandlingActivity(handling.Load, location.Hamburg, v)
		b, _ := cargo.NewHandlingActivity(handling.Load, location.Hamburg, newVoyage(t, "V", location.Chicago, location.Hamburg))
		c, _ := cargo.NewHandlingActivity(handling.Load, location.Hamburg, nil)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
