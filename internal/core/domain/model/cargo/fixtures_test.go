package cargo_test

import (
	"testing"
	"time"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return base.Add(time.Duration(n) * 24 * time.Hour)
}

func newVoyage(t *testing.T, number voyage.Number, from, to location.Location) *voyage.Voyage {
	t.Helper()
	m, err := voyage.NewCarrierMovement(from, to, day(1), day(5))
	require.NoError(t, err)
	s, err := voyage.NewSchedule([]voyage.CarrierMovement{m})
	require.NoError(t, err)
	v, err := voyage.NewVoyage(number, s)
	require.NoError(t, err)
	return v
}

func newLeg(t *testing.T, v *voyage.Voyage, from location.Location, loadDay int, to location.Location, unloadDay int) cargo.Leg {
	t.Helper()
	l, err := cargo.NewLeg(v, from, day(loadDay), to, day(unloadDay))
	require.NoError(t, err)
	return l
}

func newItinerary(t *testing.T, legs ...cargo.Leg) *cargo.Itinerary {
	t.Helper()
	i, err := cargo.NewItinerary(legs)
	require.NoError(t, err)
	return i
}

func newSpec(t *testing.T, origin, destination location.Location, deadlineDay int) cargo.RouteSpecification {
	t.Helper()
	s, err := cargo.NewRouteSpecification(origin, destination, day(deadlineDay))
	require.NoError(t, err)
	return s
}

func newTrackingID(t *testing.T, id string) kernel.TrackingID {
	t.Helper()
	trackingID, err := kernel.NewTrackingID(id)
	require.NoError(t, err)
	return trackingID
}

func newEvent(
	t *testing.T,
	trackingID kernel.TrackingID,
	eventType handling.EventType,
	loc location.Location,
	completionDay int,
	v *voyage.Voyage,
) handling.Event {
	t.Helper()
	e, err := handling.NewEvent(trackingID, eventType, loc, day(completionDay).Add(time.Hour), day(completionDay), v)
	require.NoError(t, err)
	return e
}

func history(events ...handling.Event) *handling.History {
	return handling.NewHistory(events)
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	events []cargo.DomainEvent
}

func (p *recordingPublisher) Publish(event cargo.DomainEvent) {
	p.events = append(p.events, event)
}
