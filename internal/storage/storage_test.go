package storage

import (
	"path/filepath"
	"testing"

	"github.com/franp/go-pitch-metrics/internal/model"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testMatch(id string) model.MatchSummary {
	return model.MatchSummary{
		ID: id, Source: "match-" + id + ".csv",
		HomeTeam: "Home", AwayTeam: "Away",
		Competition: "League", LoadedAt: "2026-08-30T12:00:00Z", EventCount: 2,
	}
}

func TestEventsRoundTrip(t *testing.T) {
	db := testDB(t)
	if err := db.InsertMatch(testMatch("aaaa1111")); err != nil {
		t.Fatalf("insert match: %v", err)
	}

	events := []model.Event{
		{
			ID: 1, Index: 1, Team: "Home", Type: model.EventPass, RawType: "Pass",
			Successful: true, X: 40, Y: 50, EndX: 55, EndY: 52, HasEnd: true,
			Minute: 3, Second: 12,
			Qualifiers: model.Qualifiers{LongBall: true, Receiver: "9"},
		},
		{
			ID: 2, Index: 2, Team: "Away", Type: model.EventUnknown, RawType: "Tactical shift",
			Successful: true, X: 60, Y: 40, Minute: 3, Second: 20,
		},
	}
	if err := db.InsertEvents("aaaa1111", events); err != nil {
		t.Fatalf("insert events: %v", err)
	}

	tl, err := db.GetEvents("aaaa1111")
	if err != nil {
		t.Fatalf("get events: %v", err)
	}
	if tl.Len() != 2 {
		t.Fatalf("want 2 events, got %d", tl.Len())
	}

	got := tl.At(0)
	if got.Type != model.EventPass || !got.HasEnd || got.EndX != 55 {
		t.Errorf("event 1 round trip mismatch: %+v", got)
	}
	if !got.Qualifiers.LongBall || got.Qualifiers.Receiver != "9" {
		t.Errorf("event 1 qualifiers mismatch: %+v", got.Qualifiers)
	}

	// Unrecognized types survive as Unknown with the source string intact.
	got = tl.At(1)
	if got.Type != model.EventUnknown || got.RawType != "Tactical shift" {
		t.Errorf("event 2 unknown-type round trip mismatch: %+v", got)
	}
}

func TestMatchIDBySource(t *testing.T) {
	db := testDB(t)
	if err := db.InsertMatch(testMatch("aaaa1111")); err != nil {
		t.Fatalf("insert match: %v", err)
	}

	id, err := db.MatchIDBySource("match-aaaa1111.csv")
	if err != nil {
		t.Fatalf("by source: %v", err)
	}
	if id != "aaaa1111" {
		t.Errorf("want aaaa1111, got %q", id)
	}

	id, err = db.MatchIDBySource("never-loaded.csv")
	if err != nil {
		t.Fatalf("by source (missing): %v", err)
	}
	if id != "" {
		t.Errorf("missing source should return empty id, got %q", id)
	}
}

func TestGetMatchByPrefix(t *testing.T) {
	db := testDB(t)
	for _, id := range []string{"aaaa1111", "aaab2222", "bbbb3333"} {
		if err := db.InsertMatch(testMatch(id)); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	m, err := db.GetMatchByPrefix("bbbb")
	if err != nil || m == nil || m.ID != "bbbb3333" {
		t.Fatalf("unique prefix: want bbbb3333, got %+v err=%v", m, err)
	}

	if _, err := db.GetMatchByPrefix("aaa"); err == nil {
		t.Error("ambiguous prefix should error")
	}

	m, err = db.GetMatchByPrefix("cccc")
	if err != nil {
		t.Fatalf("unknown prefix: %v", err)
	}
	if m != nil {
		t.Errorf("unknown prefix should return nil, got %+v", m)
	}
}

func TestReplaceSequences(t *testing.T) {
	db := testDB(t)
	if err := db.InsertMatch(testMatch("aaaa1111")); err != nil {
		t.Fatalf("insert match: %v", err)
	}

	mkSeq := func(id, passes int) model.Sequence {
		return model.Sequence{
			SequenceID: id, TriggerID: id * 10,
			Perspective: model.PerspectiveDefensiveTransition,
			Outcome:     model.OutcomeShot, Zone: model.ZoneMiddle,
			PassCount: passes,
			Events:    []model.Event{{Team: "Home", Type: model.EventPass, Minute: 1, Second: 5}},
		}
	}

	persp := model.PerspectiveDefensiveTransition
	if err := db.ReplaceSequences("aaaa1111", persp, "Home", []model.Sequence{mkSeq(1, 4), mkSeq(2, 2)}); err != nil {
		t.Fatalf("store: %v", err)
	}
	// A re-run replaces, never accumulates.
	if err := db.ReplaceSequences("aaaa1111", persp, "Home", []model.Sequence{mkSeq(1, 7)}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	rows, err := db.GetSequences("aaaa1111")
	if err != nil {
		t.Fatalf("get sequences: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 row after replace, got %d", len(rows))
	}
	r := rows[0]
	if r.Perspective != "defensive" || r.GainingTeam != "Home" {
		t.Errorf("row identity mismatch: %+v", r)
	}
	if r.PassCount != 7 || r.EventCount != 1 || r.StartClock != "01:05" {
		t.Errorf("row fields mismatch: %+v", r)
	}
}

func TestReplaceSequences_ScopedToRequest(t *testing.T) {
	db := testDB(t)
	if err := db.InsertMatch(testMatch("aaaa1111")); err != nil {
		t.Fatalf("insert match: %v", err)
	}

	base := model.Sequence{SequenceID: 1, Outcome: model.OutcomeShot, Zone: model.ZoneMiddle}
	if err := db.ReplaceSequences("aaaa1111", model.PerspectiveDefensiveTransition, "Home", []model.Sequence{base}); err != nil {
		t.Fatalf("store defensive: %v", err)
	}
	// A different perspective for the same match must not clobber the first.
	if err := db.ReplaceSequences("aaaa1111", model.PerspectiveBuildupPhase, "Home", []model.Sequence{base}); err != nil {
		t.Fatalf("store buildup: %v", err)
	}

	rows, err := db.GetSequences("aaaa1111")
	if err != nil {
		t.Fatalf("get sequences: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("want both perspectives stored, got %d rows", len(rows))
	}
}

func TestDeleteMatchCascades(t *testing.T) {
	db := testDB(t)
	if err := db.InsertMatch(testMatch("aaaa1111")); err != nil {
		t.Fatalf("insert match: %v", err)
	}
	events := []model.Event{{ID: 1, Index: 1, Team: "Home", Type: model.EventPass, RawType: "Pass", Successful: true}}
	if err := db.InsertEvents("aaaa1111", events); err != nil {
		t.Fatalf("insert events: %v", err)
	}

	if err := db.DeleteMatch("aaaa1111"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	m, err := db.GetMatchByPrefix("aaaa1111")
	if err != nil {
		t.Fatalf("lookup after delete: %v", err)
	}
	if m != nil {
		t.Errorf("match should be gone, got %+v", m)
	}
	tl, err := db.GetEvents("aaaa1111")
	if err != nil {
		t.Fatalf("events after delete: %v", err)
	}
	if tl.Len() != 0 {
		t.Errorf("events should be gone, got %d", tl.Len())
	}
}

func TestGetOverview(t *testing.T) {
	db := testDB(t)
	for _, id := range []string{"aaaa1111", "bbbb2222"} {
		if err := db.InsertMatch(testMatch(id)); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	ov, err := db.GetOverview()
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if ov.TotalMatches != 2 || ov.TotalEvents != 4 {
		t.Errorf("totals mismatch: %+v", ov)
	}
	if ov.UniqueTeams != 2 || ov.Competitions != 1 {
		t.Errorf("distinct counts mismatch: %+v", ov)
	}
}

func TestQueryRaw(t *testing.T) {
	db := testDB(t)
	if err := db.InsertMatch(testMatch("aaaa1111")); err != nil {
		t.Fatalf("insert match: %v", err)
	}

	cols, rows, err := db.QueryRaw("SELECT home_team, event_count FROM matches")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(cols) != 2 || cols[0] != "home_team" {
		t.Errorf("columns mismatch: %v", cols)
	}
	if len(rows) != 1 || rows[0][0] != "Home" || rows[0][1] != "2" {
		t.Errorf("rows mismatch: %v", rows)
	}
}
