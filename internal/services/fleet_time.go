package services

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"fleet-waitlist/backend/internal/models/dtos/responses"
	"fleet-waitlist/backend/internal/models/entities"
	"fleet-waitlist/backend/internal/typedb"
)

var ErrNegativeDuration = errors.New("fleet session ends before it starts")

// TypeNames resolves hull ids to display names.
type TypeNames interface {
	NameOf(id typedb.TypeID) (string, error)
}

// HullTimes is seconds in fleet keyed by hull.
type HullTimes map[typedb.TypeID]int64

// AggregateFleetTime sums the sessions of one character by hull. When account is not nil the
// same contribution is added to it. Sessions with last_seen before first_seen are rejected.
func AggregateFleetTime(sessions []entities.FleetSession, account HullTimes) (HullTimes, error) {
	times := make(HullTimes)
	for _, s := range sessions {
		duration := s.LastSeen - s.FirstSeen
		if duration < 0 {
			return nil, fmt.Errorf("%w: hull %d first_seen=%d last_seen=%d", ErrNegativeDuration, s.Hull, s.FirstSeen, s.LastSeen)
		}
		times[typedb.TypeID(s.Hull)] += duration
	}
	if account != nil {
		account.Merge(times)
	}
	return times, nil
}

// Merge adds every entry of other into h.
func (h HullTimes) Merge(other HullTimes) {
	for hull, seconds := range other {
		h[hull] += seconds
	}
}

// Ranked resolves hull names and orders entries by time in fleet, longest first. Equal times
// are ordered by hull id. Any unknown hull fails the whole conversion.
func (h HullTimes) Ranked(names TypeNames) ([]responses.ActivitySummaryEntry, error) {
	entries := make([]responses.ActivitySummaryEntry, 0, len(h))
	for _, hull := range slices.Sorted(maps.Keys(h)) {
		name, err := names.NameOf(hull)
		if err != nil {
			return nil, err
		}
		entries = append(entries, responses.ActivitySummaryEntry{
			Hull:        responses.Hull{ID: int64(hull), Name: name},
			TimeInFleet: h[hull],
		})
	}

	slices.SortStableFunc(entries, func(a, b responses.ActivitySummaryEntry) int {
		return cmp.Compare(b.TimeInFleet, a.TimeInFleet)
	})
	return entries, nil
}
