// Package parser loads a match event table from CSV into the in-memory
// timeline. It owns the input contract: required columns are validated up
// front so a malformed file fails the whole load instead of silently
// corrupting zone labels downstream.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/franp/go-pitch-metrics/internal/model"
)

// requiredColumns are the columns every event table must carry.
var requiredColumns = []string{
	"team", "type", "outcome",
	"x", "y", "end_x", "end_y",
	"time_min", "time_sec", "event_index",
}

// optionalColumns are consumed when present.
//
//	id            — stable event id; falls back to event_index
//	own_goal      — own-goal qualifier flag
//	corner_taken  — corner-taken qualifier flag
//	long_ball     — long-ball qualifier flag
//	cross         — cross qualifier flag
//	receiver      — intended receiver identity

// LoadFile reads the event table at path.
func LoadFile(path string) (*model.Timeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a CSV event table from r and returns the timeline.
func Load(r io.Reader) (*model.Timeline, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("event table is missing required columns: %s", strings.Join(missing, ", "))
	}

	var events []model.Event
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		ev, err := parseRow(record, col)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		events = append(events, ev)
	}

	return model.NewTimeline(events), nil
}

func parseRow(record []string, col map[string]int) (model.Event, error) {
	get := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	index, err := strconv.Atoi(get("event_index"))
	if err != nil {
		return model.Event{}, fmt.Errorf("event_index %q: %w", get("event_index"), err)
	}

	ev := model.Event{
		ID:    index,
		Index: index,
		Team:  get("team"),
	}
	if raw := get("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return model.Event{}, fmt.Errorf("id %q: %w", raw, err)
		}
		ev.ID = id
	}

	ev.RawType = get("type")
	ev.Type, _ = model.ParseEventType(ev.RawType)
	ev.Successful = parseOutcome(get("outcome"))

	if ev.X, err = parseCoord(get("x")); err != nil {
		return model.Event{}, fmt.Errorf("x: %w", err)
	}
	if ev.Y, err = parseCoord(get("y")); err != nil {
		return model.Event{}, fmt.Errorf("y: %w", err)
	}

	// Destination is optional: empty end coordinates mean the event has none.
	endX, endY := get("end_x"), get("end_y")
	if endX != "" && endY != "" {
		if ev.EndX, err = parseCoord(endX); err != nil {
			return model.Event{}, fmt.Errorf("end_x: %w", err)
		}
		if ev.EndY, err = parseCoord(endY); err != nil {
			return model.Event{}, fmt.Errorf("end_y: %w", err)
		}
		ev.HasEnd = true
	}

	if ev.Minute, err = strconv.Atoi(get("time_min")); err != nil {
		return model.Event{}, fmt.Errorf("time_min %q: %w", get("time_min"), err)
	}
	if ev.Second, err = strconv.Atoi(get("time_sec")); err != nil {
		return model.Event{}, fmt.Errorf("time_sec %q: %w", get("time_sec"), err)
	}

	ev.Qualifiers = model.Qualifiers{
		OwnGoal:     parseFlag(get("own_goal")),
		CornerTaken: parseFlag(get("corner_taken")),
		LongBall:    parseFlag(get("long_ball")),
		Cross:       parseFlag(get("cross")),
		Receiver:    get("receiver"),
	}
	return ev, nil
}

func parseCoord(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	return v, nil
}

// parseOutcome maps the outcome column to success. Shots and other event
// types with no meaningful outcome leave the column empty and default to
// successful.
func parseOutcome(s string) bool {
	switch strings.ToLower(s) {
	case "unsuccessful", "0", "false":
		return false
	default:
		return true
	}
}

func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
