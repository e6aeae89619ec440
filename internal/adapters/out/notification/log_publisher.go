// Package notification delivers cargo events to interested parties. LogPublisher writes
// them to a structured log, which is the only sink the process has.
package notification

import (
	"context"
	"log/slog"

	"booking/internal/core/domain/model/cargo"
)

// LogPublisher implements cargo.EventPublisher by logging every event.
// Misdirection is logged at WARN, everything else at INFO.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher writing to logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "cargo_events")}
}

// Publish logs the event.
func (p *LogPublisher) Publish(event cargo.DomainEvent) {
	level := slog.LevelInfo
	attrs := []any{
		"event", event.Name(),
		"tracking_id", event.Cargo().TrackingID().String(),
	}

	switch e := event.(type) {
	case cargo.MisdirectedEvent:
		level = slog.LevelWarn
		attrs = append(attrs, "last_known_location", e.Cargo().Delivery().LastKnownLocation().UnLocode().String())
	case cargo.ArrivedEvent:
		attrs = append(attrs, "destination", e.Cargo().RouteSpecification().Destination().UnLocode().String())
	case cargo.AssignedToRouteEvent:
		attrs = append(attrs, "legs", len(e.Cargo().Itinerary().Legs()))
	}

	p.logger.Log(context.Background(), level, "Cargo event", attrs...)
}
