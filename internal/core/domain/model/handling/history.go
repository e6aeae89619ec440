package handling

import (
	"slices"
)

// EmptyHistory is the history of a cargo that has not been handled yet.
var EmptyHistory = &History{}

// History is the set of handling events reported for one cargo, in the order they were
// reported. It may contain duplicates; DistinctEventsByCompletionTime is the canonical view.
type History struct {
	events []Event
}

// NewHistory creates a History from the given events. The slice is copied; nil is
// treated as no events.
func NewHistory(events []Event) *History {
	return &History{events: slices.Clone(events)}
}

// DistinctEventsByCompletionTime returns the events without duplicates, ordered by
// completion time ascending. Of duplicate reports the first one is kept. Events
// completed at the same instant stay in the order they were reported.
func (h History) DistinctEventsByCompletionTime() []Event {
	distinct := make([]Event, 0, len(h.events))
	for _, e := range h.events {
		if !slices.ContainsFunc(distinct, e.IsEqual) {
			distinct = append(distinct, e)
		}
	}

	slices.SortStableFunc(distinct, func(a, b Event) int {
		return a.completionTime.Compare(b.completionTime)
	})

	return distinct
}

// MostRecentlyCompletedEvent returns the event with the latest completion time.
// The boolean is false when the history is empty.
func (h History) MostRecentlyCompletedEvent() (Event, bool) {
	distinct := h.DistinctEventsByCompletionTime()
	if len(distinct) == 0 {
		return Event{}, false
	}
	return distinct[len(distinct)-1], true
}

// IsEmpty reports whether no events were reported.
func (h History) IsEmpty() bool {
	return len(h.events) == 0
}

// Len returns the number of reported events, duplicates included.
func (h History) Len() int {
	return len(h.events)
}
