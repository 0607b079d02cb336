package model

import "testing"

func TestNewTimeline_SortsByIndex(t *testing.T) {
	tl := NewTimeline([]Event{
		{ID: 3, Index: 30, Team: "A"},
		{ID: 1, Index: 10, Team: "B"},
		{ID: 2, Index: 20, Team: "A"},
	})
	if tl.Len() != 3 {
		t.Fatalf("want 3 events, got %d", tl.Len())
	}
	for i, wantID := range []int{1, 2, 3} {
		if got := tl.At(i).ID; got != wantID {
			t.Errorf("position %d: want id %d, got %d", i, wantID, got)
		}
	}
}

func TestTimeline_EventsReturnsCopy(t *testing.T) {
	tl := NewTimeline([]Event{{ID: 1, Index: 1, Team: "A"}})
	events := tl.Events()
	events[0].Team = "mutated"
	if tl.At(0).Team != "A" {
		t.Error("mutating the returned slice must not affect the timeline")
	}
}

func TestTimeline_TeamsFirstAppearanceOrder(t *testing.T) {
	tl := NewTimeline([]Event{
		{ID: 1, Index: 1, Team: "Away"},
		{ID: 2, Index: 2, Team: "Home"},
		{ID: 3, Index: 3, Team: "Away"},
	})
	teams := tl.Teams()
	if len(teams) != 2 || teams[0] != "Away" || teams[1] != "Home" {
		t.Errorf("want [Away Home], got %v", teams)
	}
}

func TestTimeline_Opponent(t *testing.T) {
	tl := NewTimeline([]Event{
		{ID: 1, Index: 1, Team: "Home"},
		{ID: 2, Index: 2, Team: "Away"},
	})
	opp, err := tl.Opponent("Home")
	if err != nil || opp != "Away" {
		t.Fatalf("want Away, got %q err=%v", opp, err)
	}
	if _, err := tl.Opponent("Neither"); err == nil {
		t.Error("unknown team should error")
	}
}

func TestEventKey_AbsorbsDuplicateRows(t *testing.T) {
	a := Event{ID: 1, Index: 1, Team: "A", Type: EventPass, X: 10, Y: 20, EndX: 30, EndY: 40, Minute: 5, Second: 30}
	b := a
	b.ID, b.Index = 2, 2 // same action, different row
	if a.Key() != b.Key() {
		t.Error("rows differing only in id/index should share an identity key")
	}
	c := a
	c.Second = 31
	if a.Key() == c.Key() {
		t.Error("different time should produce a different key")
	}
}
