package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/franp/go-pitch-metrics/internal/aggregator"
	"github.com/franp/go-pitch-metrics/internal/model"
)

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, m model.MatchSummary) {
	comp := m.Competition
	if comp == "" {
		comp = "-"
	}
	fmt.Fprintf(w, "\nMatch: %s vs %s  |  Competition: %s  |  Events: %d  |  ID: %s\n\n",
		m.HomeTeam, m.AwayTeam, comp, m.EventCount, shortID(m.ID))
}

// PrintSequenceTable prints one row per traced sequence.
func PrintSequenceTable(w io.Writer, seqs []model.Sequence) {
	if len(seqs) == 0 {
		fmt.Fprintln(w, "No sequences traced.")
		return
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("SEQ", "CLOCK", "TRIGGER", "ZONE", "FLANK", "PASSES", "EVENTS", "OUTCOME")

	for i := range seqs {
		s := &seqs[i]
		table.Append(
			strconv.Itoa(s.SequenceID),
			s.StartClock(),
			strconv.Itoa(s.TriggerID),
			s.Zone.String(),
			s.Flank.String(),
			strconv.Itoa(s.PassCount),
			strconv.Itoa(len(s.Events)),
			s.Outcome.String(),
		)
	}
	table.Render()
}

// PrintZoneSummaryTable prints the aggregated (zone, outcome) table.
func PrintZoneSummaryTable(w io.Writer, rows []model.ZoneSummary) {
	if len(rows) == 0 {
		return
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("ZONE", "OUTCOME", "COUNT", "AVG PASSES")

	for _, r := range rows {
		table.Append(
			r.Zone.String(),
			r.Outcome.String(),
			strconv.Itoa(r.Count),
			fmt.Sprintf("%.1f", r.AvgPassCount),
		)
	}
	table.Render()
}

// PrintTraceHeadline prints a one-line recap of the trace result: sequence
// count plus the scoring-chance tallies.
func PrintTraceHeadline(w io.Writer, gaining string, persp model.Perspective, seqs []model.Sequence) {
	counts := aggregator.CountByOutcome(seqs)
	shots := counts[model.OutcomeShot] + counts[model.OutcomeBigChance]
	goals := counts[model.OutcomeGoal] + counts[model.OutcomeOwnGoalConceded] + counts[model.OutcomeForcedOwnGoal]
	fmt.Fprintf(w, "%s (%s): %d sequences, %d ending in a shot or big chance, %d in a goal\n\n",
		gaining, persp, len(seqs), shots, goals)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
