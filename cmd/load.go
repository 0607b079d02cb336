package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/franp/go-pitch-metrics/internal/model"
	"github.com/franp/go-pitch-metrics/internal/parser"
	"github.com/franp/go-pitch-metrics/internal/report"
	"github.com/franp/go-pitch-metrics/internal/storage"
)

var (
	loadHome        string
	loadAway        string
	loadCompetition string
)

var loadCmd = &cobra.Command{
	Use:   "load <events.csv>",
	Short: "Load a match event table and store it",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadHome, "home", "", "home team name (default: first team in the table)")
	loadCmd.Flags().StringVar(&loadAway, "away", "", "away team name (default: second team in the table)")
	loadCmd.Flags().StringVar(&loadCompetition, "competition", "", "competition label")
}

func runLoad(cmd *cobra.Command, args []string) error {
	return loadEventTable(args[0], args[0])
}

// loadEventTable parses the CSV at path and stores it under the given source
// label. Re-loading the same source replaces the previous match.
func loadEventTable(path, source string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	fmt.Fprintf(os.Stdout, "Loading %s...\n", path)
	tl, err := parser.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	home, away := loadHome, loadAway
	teams := tl.Teams()
	if home == "" && len(teams) > 0 {
		home = teams[0]
	}
	if away == "" && len(teams) > 1 {
		away = teams[1]
	}

	matchID := uuid.NewString()
	if prev, err := db.MatchIDBySource(source); err != nil {
		return fmt.Errorf("check source: %w", err)
	} else if prev != "" {
		fmt.Fprintf(os.Stdout, "Source already loaded as %s — replacing.\n", prev[:8])
		if err := db.DeleteMatch(prev); err != nil {
			return fmt.Errorf("replace match: %w", err)
		}
	}

	summary := model.MatchSummary{
		ID:          matchID,
		Source:      source,
		HomeTeam:    home,
		AwayTeam:    away,
		Competition: loadCompetition,
		LoadedAt:    time.Now().UTC().Format(time.RFC3339),
		EventCount:  tl.Len(),
	}
	if err := db.InsertMatch(summary); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	if err := db.InsertEvents(matchID, tl.Events()); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}

	report.PrintMatchSummary(os.Stdout, summary)
	fmt.Fprintf(os.Stdout, "Run 'pitchmetrics transitions %s --gaining %q' to trace sequences.\n",
		matchID[:8], home)
	return nil
}
