package storage

import "math/rand"

// Generate builds a random well-formed log of count events whose last event is at end.
// Consecutive events are separated by up to maxGap seconds. Odd counts end with an open start.
func Generate(r *rand.Rand, count int, end, maxGap int64) []Event {
	if count <= 0 {
		return []Event{}
	}
	if maxGap < 1 {
		maxGap = 1
	}

	instants := make([]int64, count)
	t := end
	for i := count - 1; i >= 0; i-- {
		instants[i] = t
		t -= 1 + r.Int63n(maxGap)
	}

	events := make([]Event, count)
	for i := range events {
		kind := Start
		if i%2 == 1 {
			kind = Stop
		}
		events[i] = Event{ID: i + 1, Kind: kind, Instant: instants[i]}
	}
	return events
}
