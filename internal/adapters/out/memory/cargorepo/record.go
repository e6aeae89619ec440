// Package cargorepo stores cargo aggregates as plain records in memory.
// A record holds the persisted state of a cargo; aggregates are rebuilt from it with
// cargo.RestoreCargo, so callers never share a mutable aggregate with the table.
package cargorepo

import (
	"maps"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/location"
)

// Record is the stored form of a cargo aggregate. Every field is an immutable value.
type Record struct {
	TrackingID         kernel.TrackingID
	Origin             location.Location
	RouteSpecification cargo.RouteSpecification
	Itinerary          *cargo.Itinerary
	Delivery           cargo.Delivery
}

// Table maps tracking ids to records.
type Table map[string]Record

// Clone returns a copy of the table that can be modified independently.
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	return maps.Clone(t)
}

func fromDomain(c *cargo.Cargo) Record {
	return Record{
		TrackingID:         c.TrackingID(),
		Origin:             c.Origin(),
		RouteSpecification: c.RouteSpecification(),
		Itinerary:          c.Itinerary(),
		Delivery:           c.Delivery(),
	}
}

func toDomain(r Record) (*cargo.Cargo, error) {
	return cargo.RestoreCargo(r.TrackingID, r.Origin, r.RouteSpecification, r.Itinerary, r.Delivery)
}
