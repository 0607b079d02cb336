package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/franp/go-pitch-metrics/internal/aggregator"
	"github.com/franp/go-pitch-metrics/internal/config"
	"github.com/franp/go-pitch-metrics/internal/model"
	"github.com/franp/go-pitch-metrics/internal/report"
	"github.com/franp/go-pitch-metrics/internal/storage"
	"github.com/franp/go-pitch-metrics/internal/tracer"
	"github.com/franp/go-pitch-metrics/internal/trigger"
)

var (
	transGaining     string
	transLosing      string
	transPerspective string
	transConfigPath  string
	transSwapFlanks  bool
	transStore       bool
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions <match-id>",
	Short: "Trace possession sequences for a stored match",
	Long: `Detect possession-change triggers for the gaining team under the chosen
perspective, walk each one forward through the timeline, and print the traced
sequences plus the zone/outcome summary.

Perspectives:
  defensive  — opponent turnovers, seen from the team that lost the ball
  offensive  — the same turnovers, seen from the team that won it
  buildup    — possessions started in the gaining team's own half
  setpiece   — possessions started from corners, fouls and outs in the
               opponent's half`,
	Args: cobra.ExactArgs(1),
	RunE: runTransitions,
}

func init() {
	transitionsCmd.Flags().StringVar(&transGaining, "gaining", "", "possession-gaining team (required)")
	transitionsCmd.Flags().StringVar(&transLosing, "losing", "", "possession-losing team (default: the other team)")
	transitionsCmd.Flags().StringVar(&transPerspective, "perspective", "defensive", "defensive, offensive, buildup or setpiece")
	transitionsCmd.Flags().StringVar(&transConfigPath, "config", "", "path to a YAML trace config")
	transitionsCmd.Flags().BoolVar(&transSwapFlanks, "swap-flanks", false, "swap left/right (observing team defends the opposite end)")
	transitionsCmd.Flags().BoolVar(&transStore, "store", false, "persist the traced sequences")
	transitionsCmd.MarkFlagRequired("gaining")
}

func runTransitions(cmd *cobra.Command, args []string) error {
	persp, err := model.ParsePerspective(transPerspective)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if transConfigPath != "" {
		if cfg, err = config.Load(transConfigPath); err != nil {
			return err
		}
	}
	cfg.SwapFlanks = cfg.SwapFlanks || transSwapFlanks

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

	tl, err := db.GetEvents(match.ID)
	if err != nil {
		return fmt.Errorf("load timeline: %w", err)
	}

	gaining, losing := transGaining, transLosing
	if losing == "" {
		if losing, err = tl.Opponent(gaining); err != nil {
			return err
		}
	}

	names := cfg.PredicateNames(persp.String())
	if names == nil {
		names = trigger.DefaultNames(persp)
	}
	preds, err := trigger.ByNames(names)
	if err != nil {
		return err
	}

	triggers := trigger.NewDetector(cfg.Pitch(), preds).Detect(tl, gaining, losing, persp)
	session := tracer.New(tl, gaining, losing, persp, tracer.Options{
		Pitch:      cfg.Pitch(),
		MaxPasses:  cfg.MaxPasses,
		SwapFlanks: cfg.SwapFlanks,
	})
	seqs := session.Trace(triggers)

	report.PrintMatchSummary(os.Stdout, *match)
	report.PrintTraceHeadline(os.Stdout, gaining, persp, seqs)
	report.PrintSequenceTable(os.Stdout, seqs)
	fmt.Fprintln(os.Stdout)
	report.PrintZoneSummaryTable(os.Stdout, aggregator.Summarize(seqs))

	if transStore {
		if err := db.ReplaceSequences(match.ID, persp, gaining, seqs); err != nil {
			return fmt.Errorf("store sequences: %w", err)
		}
		fmt.Fprintf(os.Stdout, "\nStored %d sequences.\n", len(seqs))
	}
	return nil
}
