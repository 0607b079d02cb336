package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/franp/go-pitch-metrics/internal/report"
	"github.com/franp/go-pitch-metrics/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <match-id>",
	Short: "Show a stored match and its traced sequences",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	match, err := db.GetMatchByPrefix(args[0])
	if err != nil {
		return err
	}
	if match == nil {
		return fmt.Errorf("match not found: %s", args[0])
	}

	report.PrintMatchSummary(os.Stdout, *match)

	seqs, err := db.GetSequences(match.ID)
	if err != nil {
		return fmt.Errorf("get sequences: %w", err)
	}
	if len(seqs) == 0 {
		fmt.Fprintln(os.Stdout, "No sequences stored. Run 'pitchmetrics transitions' with --store.")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("PERSPECTIVE", "TEAM", "SEQ", "CLOCK", "ZONE", "FLANK", "PASSES", "EVENTS", "OUTCOME")
	for _, s := range seqs {
		table.Append(
			s.Perspective,
			s.GainingTeam,
			strconv.Itoa(s.SequenceID),
			s.StartClock,
			s.Zone,
			s.Flank,
			strconv.Itoa(s.PassCount),
			strconv.Itoa(s.EventCount),
			s.Outcome,
		)
	}
	table.Render()
	return nil
}
