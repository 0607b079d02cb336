package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/franp/go-pitch-metrics/internal/storage"
)

// summaryCmd is the cobra command for displaying a high-level database overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the database",
	Long: `Display aggregate statistics about all matches stored in the database:
match count, event totals, stored sequence totals, and the outcome
breakdown across all traced sequences.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.TotalMatches == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'pitchmetrics load <events.csv>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Database Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Matches stored   : %d\n", ov.TotalMatches)
	fmt.Fprintf(os.Stdout, "  Events stored    : %d\n", ov.TotalEvents)
	fmt.Fprintf(os.Stdout, "  Traced sequences : %d\n", ov.TotalSequences)
	fmt.Fprintf(os.Stdout, "  Teams seen       : %d\n", ov.UniqueTeams)
	fmt.Fprintf(os.Stdout, "  Competitions     : %d\n", ov.Competitions)

	if ov.TotalSequences == 0 {
		return nil
	}

	// Outcome breakdown across all stored sequences.
	cols, rows, err := db.QueryRaw(`
		SELECT outcome, COUNT(1) AS sequences, ROUND(AVG(pass_count), 1) AS avg_passes
		FROM sequences GROUP BY outcome ORDER BY sequences DESC`)
	if err != nil {
		return fmt.Errorf("outcome breakdown: %w", err)
	}

	fmt.Fprintf(os.Stdout, "\n--- Outcomes ---\n\n")
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)
	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	return nil
}
