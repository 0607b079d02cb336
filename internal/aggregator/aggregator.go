// Package aggregator reduces a traced sequence set into the per-zone,
// per-outcome summary table consumed by the report layer. It is a pure
// reduction: recomputed from the full sequence set on every request, no
// persisted state.
package aggregator

import (
	"math"
	"sort"

	"github.com/franp/go-pitch-metrics/internal/model"
)

// Summarize groups sequences by (zone, outcome) and computes the count and
// mean pass count per group, rounded to one decimal. Rows are ordered by the
// fixed outcome priority (goals first, then shots, big chances, possession
// outcomes, restarts) and by zone within the same priority. Not every
// (zone, outcome) pair is present in the result.
func Summarize(seqs []model.Sequence) []model.ZoneSummary {
	type group struct {
		count  int
		passes int
	}
	type key struct {
		zone    model.Zone
		outcome model.Outcome
	}

	groups := make(map[key]*group)
	for _, s := range seqs {
		k := key{s.Zone, s.Outcome}
		g := groups[k]
		if g == nil {
			g = &group{}
			groups[k] = g
		}
		g.count++
		g.passes += s.PassCount
	}

	rows := make([]model.ZoneSummary, 0, len(groups))
	for k, g := range groups {
		avg := float64(g.passes) / float64(g.count)
		rows = append(rows, model.ZoneSummary{
			Zone:         k.zone,
			Outcome:      k.outcome,
			Count:        g.count,
			AvgPassCount: math.Round(avg*10) / 10,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if pa, pb := a.Outcome.Priority(), b.Outcome.Priority(); pa != pb {
			return pa < pb
		}
		if a.Outcome != b.Outcome {
			return a.Outcome < b.Outcome
		}
		return a.Zone < b.Zone
	})
	return rows
}

// CountByOutcome tallies sequences per outcome, for one-line report headers.
func CountByOutcome(seqs []model.Sequence) map[model.Outcome]int {
	counts := make(map[model.Outcome]int)
	for _, s := range seqs {
		counts[s.Outcome]++
	}
	return counts
}
