package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a match event table and load it",
	Long:  "Download a CSV event table over HTTP and load it into the database. The URL is recorded as the match source.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&loadHome, "home", "", "home team name (default: first team in the table)")
	fetchCmd.Flags().StringVar(&loadAway, "away", "", "away team name (default: second team in the table)")
	fetchCmd.Flags().StringVar(&loadCompetition, "competition", "", "competition label")
}

func runFetch(cmd *cobra.Command, args []string) error {
	url := args[0]

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch events: unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp("", "pitchmetrics-*.csv")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("download events: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return loadEventTable(tmp.Name(), url)
}
