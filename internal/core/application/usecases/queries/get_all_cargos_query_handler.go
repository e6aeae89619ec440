package queries

import (
	"context"

	"booking/internal/core/domain/model/cargo"
)

// CargoReader lists booked cargos.
type CargoReader interface {
	GetAll(ctx context.Context) ([]*cargo.Cargo, error)
}

// GetAllCargosQueryHandler builds tracking read models from the current cargo state.
type GetAllCargosQueryHandler struct {
	reader CargoReader
}

// NewGetAllCargosQueryHandler creates the handler.
func NewGetAllCargosQueryHandler(reader CargoReader) GetAllCargosQueryHandler {
	return GetAllCargosQueryHandler{reader: reader}
}

// Handle returns one CargoTracking per cargo, in the order the reader returns them.
func (h GetAllCargosQueryHandler) Handle(ctx context.Context, query GetAllCargosQuery) ([]CargoTracking, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cargos, err := h.reader.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CargoTracking, 0, len(cargos))
	for _, c := range cargos {
		result = append(result, toCargoTracking(c))
	}

	return result, nil
}

func toCargoTracking(c *cargo.Cargo) CargoTracking {
	spec := c.RouteSpecification()
	delivery := c.Delivery()

	tracking := CargoTracking{
		TrackingID:        c.TrackingID().String(),
		Origin:            c.Origin().UnLocode().String(),
		Destination:       spec.Destination().UnLocode().String(),
		ArrivalDeadline:   spec.ArrivalDeadline(),
		RoutingStatus:     delivery.RoutingStatus().String(),
		TransportStatus:   delivery.TransportStatus().String(),
		LastKnownLocation: delivery.LastKnownLocation().UnLocode().String(),
		CurrentVoyage:     delivery.CurrentVoyage().String(),
		Misdirected:       delivery.IsMisdirected(),
		UnloadedAtDest:    delivery.IsUnloadedAtDestination(),
	}

	if eta, ok := delivery.EstimatedTimeOfArrival(); ok {
		tracking.EstimatedArrival = &eta
	}
	if next, ok := delivery.NextExpectedActivity(); ok {
		activity := next.String()
		tracking.NextExpectedActivity = &activity
	}

	return tracking
}
