package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/franp/go-pitch-metrics/internal/storage"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <match-id>",
	Short: "Export stored sequences as CSV",
	Long: `Write the traced sequence records of a match as CSV for downstream
rendering layers (pitch maps, dashboards). Columns:
perspective, gaining_team, sequence_id, trigger_id, outcome, zone, flank,
pass_count, event_count, start_clock.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	seqs, err := db.GetSequences(match.ID)
	if err != nil {
		return fmt.Errorf("get sequences: %w", err)
	}
	if len(seqs) == 0 {
		return fmt.Errorf("no sequences stored for %s; run 'pitchmetrics transitions' with --store first", match.ID[:8])
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{
		"perspective", "gaining_team", "sequence_id", "trigger_id",
		"outcome", "zone", "flank", "pass_count", "event_count", "start_clock",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range seqs {
		record := []string{
			s.Perspective, s.GainingTeam,
			strconv.Itoa(s.SequenceID), strconv.Itoa(s.TriggerID),
			s.Outcome, s.Zone, s.Flank,
			strconv.Itoa(s.PassCount), strconv.Itoa(s.EventCount), s.StartClock,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if exportOut != "" {
		fmt.Fprintf(os.Stdout, "Wrote %d sequences to %s\n", len(seqs), exportOut)
	}
	return nil
}
