// Package queries contains read operations for retrieving system state.
// Queries return read models shaped for tracking screens rather than aggregates.
package queries

import (
	"errors"
	"time"

	"booking/internal/pkg/guard"
)

var (
	ErrGetAllCargosQueryIsNotConstructed = errors.New(
		"GetAllCargosQuery must be created via NewGetAllCargosQuery constructor",
	)
)

// GetAllCargosQuery retrieves the tracking status of every booked cargo.
//
// Example:
//
//	query := NewGetAllCargosQuery()
//	handler := NewGetAllCargosQueryHandler(store)
//
//	cargos, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve cargos: %w", err)
//	}
//
//	for _, c := range cargos {
//	    fmt.Printf("%s: %s at %s\n", c.TrackingID, c.TransportStatus, c.LastKnownLocation)
//	}
type GetAllCargosQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCargosQuery creates a query to retrieve all cargos.
func NewGetAllCargosQuery() GetAllCargosQuery {
	return GetAllCargosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCargosQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCargosQueryIsNotConstructed)
}

// CargoTracking is the read model of one cargo. Locations are UN/LOCODEs; optional
// values are nil when the delivery has none.
type CargoTracking struct {
	TrackingID           string
	Origin               string
	Destination          string
	ArrivalDeadline      time.Time
	RoutingStatus        string
	TransportStatus      string
	LastKnownLocation    string
	CurrentVoyage        string
	Misdirected          bool
	UnloadedAtDest       bool
	EstimatedArrival     *time.Time
	NextExpectedActivity *string
}
