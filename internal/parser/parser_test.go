package parser

import (
	"strings"
	"testing"

	"github.com/franp/go-pitch-metrics/internal/model"
)

const header = "team,type,outcome,x,y,end_x,end_y,time_min,time_sec,event_index"

func load(t *testing.T, csv string) *model.Timeline {
	t.Helper()
	tl, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tl
}

func TestLoad_MissingColumnsNamed(t *testing.T) {
	_, err := Load(strings.NewReader("team,type,x,y\n"))
	if err == nil {
		t.Fatal("expected error for missing required columns")
	}
	for _, want := range []string{"outcome", "end_x", "end_y", "time_min", "time_sec", "event_index"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should name missing column %q, got: %v", want, err)
		}
	}
}

func TestLoad_ParsesRows(t *testing.T) {
	tl := load(t, header+"\n"+
		"Home,Pass,Successful,40.5,60.2,55.0,62.1,12,34,100\n"+
		"Away,Goal,,95.0,48.0,,,13,2,101\n")

	if tl.Len() != 2 {
		t.Fatalf("want 2 events, got %d", tl.Len())
	}

	pass := tl.At(0)
	if pass.Type != model.EventPass || !pass.Successful {
		t.Errorf("event 0: want successful Pass, got %s successful=%v", pass.Type, pass.Successful)
	}
	if !pass.HasEnd || pass.EndX != 55.0 || pass.EndY != 62.1 {
		t.Errorf("event 0: destination not parsed: %+v", pass)
	}
	if pass.Minute != 12 || pass.Second != 34 {
		t.Errorf("event 0: time not parsed: %d:%d", pass.Minute, pass.Second)
	}

	goal := tl.At(1)
	if goal.Type != model.EventShotGoal {
		t.Errorf("event 1: want Goal, got %s", goal.Type)
	}
	// Empty outcome column defaults to successful; empty end coords mean no
	// destination.
	if !goal.Successful {
		t.Error("event 1: empty outcome should default to successful")
	}
	if goal.HasEnd {
		t.Error("event 1: empty end coords should leave HasEnd false")
	}
}

func TestLoad_UnknownTypeKeepsRawString(t *testing.T) {
	tl := load(t, header+"\n"+
		"Home,Deleted event,Successful,40,50,,,0,10,1\n")

	ev := tl.At(0)
	if ev.Type != model.EventUnknown {
		t.Errorf("want EventUnknown, got %s", ev.Type)
	}
	if ev.RawType != "Deleted event" {
		t.Errorf("raw type not kept: %q", ev.RawType)
	}
}

func TestLoad_OptionalColumns(t *testing.T) {
	tl := load(t, header+",id,own_goal,cross,receiver\n"+
		"Home,Pass,Unsuccessful,40,50,80,30,5,0,7,9001,0,1,J. Doe\n"+
		"Away,Miss,,10,50,,,6,0,8,9002,1,0,\n")

	p := tl.At(0)
	if p.ID != 9001 {
		t.Errorf("id column ignored: got %d", p.ID)
	}
	if p.Successful {
		t.Error("Unsuccessful outcome parsed as success")
	}
	if !p.Qualifiers.Cross || p.Qualifiers.Receiver != "J. Doe" {
		t.Errorf("qualifiers not parsed: %+v", p.Qualifiers)
	}
	if !tl.At(1).Qualifiers.OwnGoal {
		t.Error("own_goal flag not parsed")
	}
}

func TestLoad_SortsByEventIndex(t *testing.T) {
	tl := load(t, header+"\n"+
		"Home,Pass,Successful,40,50,,,0,20,5\n"+
		"Home,Pass,Successful,42,50,,,0,10,3\n")

	if tl.At(0).Index != 3 || tl.At(1).Index != 5 {
		t.Errorf("timeline not in event_index order: %d, %d", tl.At(0).Index, tl.At(1).Index)
	}
}

func TestLoad_BadNumericValue(t *testing.T) {
	_, err := Load(strings.NewReader(header + "\nHome,Pass,Successful,abc,50,,,0,10,1\n"))
	if err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Errorf("expected row-numbered error for bad coordinate, got: %v", err)
	}
}
