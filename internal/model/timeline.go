package model

import (
	"fmt"
	"sort"
)

// Timeline is the immutable, time-ordered table of match events. Everything
// downstream (trigger detection, tracing) reads it by position; no event is
// mutated after construction.
type Timeline struct {
	events []Event
}

// NewTimeline builds a Timeline from events, copying the slice and ensuring
// ascending event_index order. Time must already be monotonically
// non-decreasing in index order; the loader guarantees this for well-formed
// input.
func NewTimeline(events []Event) *Timeline {
	es := make([]Event, len(events))
	copy(es, events)
	sort.SliceStable(es, func(i, j int) bool { return es[i].Index < es[j].Index })
	return &Timeline{events: es}
}

// Len returns the number of events.
func (t *Timeline) Len() int { return len(t.events) }

// At returns the event at timeline position i.
func (t *Timeline) At(i int) Event { return t.events[i] }

// Events returns a copy of the underlying events in timeline order.
func (t *Timeline) Events() []Event {
	es := make([]Event, len(t.events))
	copy(es, t.events)
	return es
}

// Teams returns the distinct team names in first-appearance order.
func (t *Timeline) Teams() []string {
	seen := make(map[string]struct{})
	var teams []string
	for _, e := range t.events {
		if _, ok := seen[e.Team]; !ok {
			seen[e.Team] = struct{}{}
			teams = append(teams, e.Team)
		}
	}
	return teams
}

// Opponent returns the other team of a two-team timeline.
func (t *Timeline) Opponent(team string) (string, error) {
	teams := t.Teams()
	if len(teams) != 2 {
		return "", fmt.Errorf("timeline has %d teams, want 2", len(teams))
	}
	switch team {
	case teams[0]:
		return teams[1], nil
	case teams[1]:
		return teams[0], nil
	}
	return "", fmt.Errorf("team %q not present in timeline", team)
}
