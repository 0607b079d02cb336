package storage

import (
	"database/sql"
	"fmt"

	"github.com/franp/go-pitch-metrics/internal/model"
)

// MatchIDBySource returns the id of the match loaded from the given source
// file, or "" when none is stored.
func (db *DB) MatchIDBySource(source string) (string, error) {
	var id string
	err := db.conn.QueryRow("SELECT id FROM matches WHERE source = ?", source).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// InsertMatch inserts a match record.
func (db *DB) InsertMatch(m model.MatchSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO matches(id, source, home_team, away_team, competition, loaded_at, event_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Source, m.HomeTeam, m.AwayTeam, m.Competition, m.LoadedAt, m.EventCount,
	)
	return err
}

// InsertEvents bulk-inserts the match timeline in a transaction.
func (db *DB) InsertEvents(matchID string, events []model.Event) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO events(
			match_id, event_id, event_index, team, type, raw_type, successful,
			x, y, end_x, end_y, has_end, time_min, time_sec,
			own_goal, corner_taken, long_ball, is_cross, receiver
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		_, err = stmt.Exec(
			matchID, e.ID, e.Index, e.Team, e.Type.String(), e.RawType, boolInt(e.Successful),
			e.X, e.Y, e.EndX, e.EndY, boolInt(e.HasEnd), e.Minute, e.Second,
			boolInt(e.Qualifiers.OwnGoal), boolInt(e.Qualifiers.CornerTaken),
			boolInt(e.Qualifiers.LongBall), boolInt(e.Qualifiers.Cross), e.Qualifiers.Receiver,
		)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", e.Index, err)
		}
	}
	return tx.Commit()
}

// GetEvents reads a match timeline back in event_index order.
func (db *DB) GetEvents(matchID string) (*model.Timeline, error) {
	rows, err := db.conn.Query(`
		SELECT event_id, event_index, team, raw_type, successful,
		       x, y, end_x, end_y, has_end, time_min, time_sec,
		       own_goal, corner_taken, long_ball, is_cross, receiver
		FROM events WHERE match_id = ? ORDER BY event_index ASC`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var successful, hasEnd, ownGoal, cornerTaken, longBall, cross int
		if err := rows.Scan(
			&e.ID, &e.Index, &e.Team, &e.RawType, &successful,
			&e.X, &e.Y, &e.EndX, &e.EndY, &hasEnd, &e.Minute, &e.Second,
			&ownGoal, &cornerTaken, &longBall, &cross, &e.Qualifiers.Receiver,
		); err != nil {
			return nil, err
		}
		// Re-parse the source type string so unrecognized types stay Unknown.
		e.Type, _ = model.ParseEventType(e.RawType)
		e.Successful = successful != 0
		e.HasEnd = hasEnd != 0
		e.Qualifiers.OwnGoal = ownGoal != 0
		e.Qualifiers.CornerTaken = cornerTaken != 0
		e.Qualifiers.LongBall = longBall != 0
		e.Qualifiers.Cross = cross != 0
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return model.NewTimeline(events), nil
}

// ListMatches returns all stored matches, newest first.
func (db *DB) ListMatches() ([]model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT id, source, home_team, away_team, competition, loaded_at, event_count
		FROM matches ORDER BY loaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []model.MatchSummary
	for rows.Next() {
		var m model.MatchSummary
		if err := rows.Scan(&m.ID, &m.Source, &m.HomeTeam, &m.AwayTeam, &m.Competition, &m.LoadedAt, &m.EventCount); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// GetMatchByPrefix finds a match by id prefix. Returns nil when no match,
// an error when the prefix is ambiguous.
func (db *DB) GetMatchByPrefix(prefix string) (*model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT id, source, home_team, away_team, competition, loaded_at, event_count
		FROM matches WHERE id LIKE ? || '%'`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []model.MatchSummary
	for rows.Next() {
		var m model.MatchSummary
		if err := rows.Scan(&m.ID, &m.Source, &m.HomeTeam, &m.AwayTeam, &m.Competition, &m.LoadedAt, &m.EventCount); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("match id prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

// DeleteMatch removes a match and its dependent rows.
func (db *DB) DeleteMatch(matchID string) error {
	for _, q := range []string{
		"DELETE FROM sequences WHERE match_id = ?",
		"DELETE FROM events WHERE match_id = ?",
		"DELETE FROM matches WHERE id = ?",
	} {
		if _, err := db.conn.Exec(q, matchID); err != nil {
			return err
		}
	}
	return nil
}

// SequenceRow is the stored form of a traced sequence: the summary fields
// without the per-event list.
type SequenceRow struct {
	Perspective string
	GainingTeam string
	SequenceID  int
	TriggerID   int
	Outcome     string
	Zone        string
	Flank       string
	PassCount   int
	EventCount  int
	StartClock  string
}

// ReplaceSequences replaces the stored sequences for one
// (match, perspective, gaining team) request in a transaction.
func (db *DB) ReplaceSequences(matchID string, perspective model.Perspective, gaining string, seqs []model.Sequence) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM sequences WHERE match_id = ? AND perspective = ? AND gaining_team = ?",
		matchID, perspective.String(), gaining,
	); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sequences(
			match_id, perspective, gaining_team, sequence_id, trigger_id,
			outcome, zone, flank, pass_count, event_count, start_clock
		) VALUES (?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range seqs {
		_, err = stmt.Exec(
			matchID, perspective.String(), gaining, s.SequenceID, s.TriggerID,
			s.Outcome.String(), s.Zone.String(), s.Flank.String(),
			s.PassCount, len(s.Events), s.StartClock(),
		)
		if err != nil {
			return fmt.Errorf("insert sequence %d: %w", s.SequenceID, err)
		}
	}
	return tx.Commit()
}

// GetSequences returns the stored sequence rows for a match, in
// (perspective, gaining team, sequence id) order.
func (db *DB) GetSequences(matchID string) ([]SequenceRow, error) {
	rows, err := db.conn.Query(`
		SELECT perspective, gaining_team, sequence_id, trigger_id,
		       outcome, zone, flank, pass_count, event_count, start_clock
		FROM sequences WHERE match_id = ?
		ORDER BY perspective, gaining_team, sequence_id`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SequenceRow
	for rows.Next() {
		var r SequenceRow
		if err := rows.Scan(
			&r.Perspective, &r.GainingTeam, &r.SequenceID, &r.TriggerID,
			&r.Outcome, &r.Zone, &r.Flank, &r.PassCount, &r.EventCount, &r.StartClock,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Overview is the high-level database summary for the summary command.
type Overview struct {
	TotalMatches   int
	TotalEvents    int
	TotalSequences int
	UniqueTeams    int
	Competitions   int
}

// GetOverview computes the database summary.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	queries := []struct {
		q    string
		dest *int
	}{
		{"SELECT COUNT(1) FROM matches", &ov.TotalMatches},
		{"SELECT COALESCE(SUM(event_count), 0) FROM matches", &ov.TotalEvents},
		{"SELECT COUNT(1) FROM sequences", &ov.TotalSequences},
		{"SELECT COUNT(DISTINCT team) FROM (SELECT home_team AS team FROM matches UNION SELECT away_team FROM matches)", &ov.UniqueTeams},
		{"SELECT COUNT(DISTINCT competition) FROM matches WHERE competition != ''", &ov.Competitions},
	}
	for _, q := range queries {
		if err := db.conn.QueryRow(q.q).Scan(q.dest); err != nil {
			return ov, err
		}
	}
	return ov, nil
}

// QueryRaw runs an arbitrary query and returns columns and stringified rows,
// for the sql command.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch t := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(t)
			default:
				row[i] = fmt.Sprintf("%v", t)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
