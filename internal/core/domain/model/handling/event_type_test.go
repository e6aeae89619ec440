package handling_test

import (
	"testing"

	"booking/internal/core/domain/model/handling"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventType_Validate(t *testing.T) {
	for _, et := range []handling.EventType{
		handling.Load, handling.Unload, handling.Receive, handling.Claim, handling.Customs,
	} {
		t.Run(et.String(), func(t *testing.T) {
			require.NoError(t, et.Validate())
		})
	}

	t.Run("unknown is invalid", func(t *testing.T) {
		require.ErrorIs(t, handling.UnknownEventType.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, handling.EventType(42).Validate(), errs.ErrValueIsInvalid)
		assert.Equal(t, "Unknown", handling.EventType(42).String())
	})
}

func TestEventType_VoyageRules(t *testing.T) {
	tests := []struct {
		eventType handling.EventType
		requires  bool
		prohibits bool
	}{
		{handling.Load, true, false},
		{handling.Unload, true, false},
		{handling.Receive, false, true},
		{handling.Claim, false, true},
		{handling.Customs, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.eventType.String(), func(t *testing.T) {
			assert.Equal(t, tt.requires, tt.eventType.RequiresVoyage())
			assert.Equal(t, tt.prohibits, tt.eventType.ProhibitsVoyage())
		})
	}
}
