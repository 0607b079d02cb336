package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/franp/go-pitch-metrics/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored matches",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'pitchmetrics load <events.csv>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-32s  %-16s  %-12s  %7s\n",
		"ID", "MATCH", "COMPETITION", "LOADED", "EVENTS")
	fmt.Fprintf(os.Stdout, "%-10s  %-32s  %-16s  %-12s  %7s\n",
		"──────────", "────────────────────────────────", "────────────────", "────────────", "───────")
	for _, m := range matches {
		name := fmt.Sprintf("%s vs %s", m.HomeTeam, m.AwayTeam)
		loaded := m.LoadedAt
		if len(loaded) > 10 {
			loaded = loaded[:10]
		}
		fmt.Fprintf(os.Stdout, "%-10s  %-32s  %-16s  %-12s  %7d\n",
			m.ID[:8], name, m.Competition, loaded, m.EventCount)
	}
	return nil
}
