// Package trigger scans a match timeline for possession changes worth
// tracing. Detection is predicate-driven: each perspective carries a default
// set of named predicates which callers can override from config.
package trigger

import (
	"fmt"
	"sort"

	"github.com/franp/go-pitch-metrics/internal/model"
	"github.com/franp/go-pitch-metrics/internal/pitch"
)

// Predicate decides whether an event is a trigger for a given team pairing.
type Predicate struct {
	Name  string
	Match func(ev model.Event, gaining, losing string) bool
}

var registry = map[string]Predicate{
	"losing-failed-pass": {
		Name: "losing-failed-pass",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventPass && !ev.Successful
		},
	},
	"losing-failed-take-on": {
		Name: "losing-failed-take-on",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventTakeOn && !ev.Successful
		},
	},
	"losing-failed-clearance": {
		Name: "losing-failed-clearance",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventClearance && !ev.Successful
		},
	},
	"losing-failed-aerial": {
		Name: "losing-failed-aerial",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventAerial && !ev.Successful
		},
	},
	"losing-failed-challenge": {
		Name: "losing-failed-challenge",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventChallenge && !ev.Successful
		},
	},
	"losing-error": {
		Name: "losing-error",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventError
		},
	},
	"losing-dispossessed": {
		Name: "losing-dispossessed",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventDispossessed
		},
	},
	"losing-foul": {
		Name: "losing-foul",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventFoul
		},
	},
	"losing-out": {
		Name: "losing-out",
		Match: func(ev model.Event, _, losing string) bool {
			return ev.Team == losing && ev.Type == model.EventOut
		},
	},
	"gaining-save": {
		Name: "gaining-save",
		Match: func(ev model.Event, gaining, _ string) bool {
			return ev.Team == gaining && ev.Type == model.EventSave && ev.Successful
		},
	},
	"gaining-ball-recovery": {
		Name: "gaining-ball-recovery",
		Match: func(ev model.Event, gaining, _ string) bool {
			return ev.Team == gaining && ev.Type == model.EventBallRecovery && ev.Successful
		},
	},
	"gaining-keeper-pickup": {
		Name: "gaining-keeper-pickup",
		Match: func(ev model.Event, gaining, _ string) bool {
			return ev.Team == gaining && ev.Type == model.EventKeeperPickup && ev.Successful
		},
	},
	"gaining-claim": {
		Name: "gaining-claim",
		Match: func(ev model.Event, gaining, _ string) bool {
			return ev.Team == gaining && ev.Type == model.EventClaim && ev.Successful
		},
	},
	"gaining-corner-awarded": {
		Name: "gaining-corner-awarded",
		Match: func(ev model.Event, gaining, _ string) bool {
			return ev.Team == gaining && ev.Type == model.EventCornerAwarded
		},
	},
	"any-goal": {
		Name: "any-goal",
		Match: func(ev model.Event, _, _ string) bool {
			return ev.Type == model.EventShotGoal
		},
	},
}

// transitionDefaults are the possession-loss conditions shared by the
// defensive and offensive transition framings.
var transitionDefaults = []string{
	"losing-failed-pass",
	"losing-failed-take-on",
	"losing-failed-clearance",
	"losing-failed-aerial",
	"losing-failed-challenge",
	"losing-error",
	"losing-dispossessed",
	"gaining-save",
	"any-goal",
}

// DefaultNames returns the default predicate names for a perspective.
func DefaultNames(p model.Perspective) []string {
	switch p {
	case model.PerspectiveBuildupPhase:
		return []string{
			"gaining-ball-recovery",
			"gaining-keeper-pickup",
			"gaining-claim",
			"losing-failed-pass",
		}
	case model.PerspectiveSetPiece:
		return []string{
			"gaining-corner-awarded",
			"losing-foul",
			"losing-out",
		}
	default:
		return transitionDefaults
	}
}

// ByNames resolves predicate names against the registry.
func ByNames(names []string) ([]Predicate, error) {
	preds := make([]Predicate, 0, len(names))
	var unknown []string
	for _, n := range names {
		p, ok := registry[n]
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		preds = append(preds, p)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown trigger predicates: %v", unknown)
	}
	return preds, nil
}

// Names lists all registered predicate names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Detector scans a timeline for triggers.
type Detector struct {
	pitch pitch.Config
	preds []Predicate
}

// NewDetector builds a detector over the given predicate set. An empty set
// yields no triggers, which is a valid (empty) result.
func NewDetector(pc pitch.Config, preds []Predicate) *Detector {
	return &Detector{pitch: pc, preds: preds}
}

// Detect returns the triggers for the team pairing under the given
// perspective, in timeline order, deduplicated keep-first by event id.
// Buildup triggers are restricted to the gaining team's own half and
// set-piece triggers to the opponent's half.
func (d *Detector) Detect(tl *model.Timeline, gaining, losing string, persp model.Perspective) []model.Trigger {
	seen := make(map[int]struct{})
	var triggers []model.Trigger
	for pos := 0; pos < tl.Len(); pos++ {
		ev := tl.At(pos)
		if !d.matches(ev, gaining, losing) {
			continue
		}
		if _, dup := seen[ev.ID]; dup {
			continue
		}
		seen[ev.ID] = struct{}{}

		x := triggerX(tl, pos, ev, gaining)
		switch persp {
		case model.PerspectiveBuildupPhase:
			if x >= 50 {
				continue
			}
		case model.PerspectiveSetPiece:
			if x < 50 {
				continue
			}
		}

		triggers = append(triggers, model.Trigger{
			Event:       ev,
			Pos:         pos,
			Zone:        d.pitch.Third(x),
			Perspective: persp,
		})
	}
	return triggers
}

func (d *Detector) matches(ev model.Event, gaining, losing string) bool {
	for _, p := range d.preds {
		if p.Match(ev, gaining, losing) {
			return true
		}
	}
	return false
}

// triggerX resolves the pitch-length coordinate a trigger's zone is computed
// from, in the gaining team's attacking frame. The rules are deliberately
// kept distinct per event type:
//
//   - Out and Foul reflect: possession restarts facing the other way.
//   - Card and Offside provoked use the following event's raw coordinate,
//     unreflected — the booking itself carries no useful location. This is
//     intentionally not unified with the Out rule.
//   - Corner Awarded reflects only when awarded against the gaining team.
//   - Keeper pick-up, claim, ball recovery and everything else use the
//     event's own coordinate.
func triggerX(tl *model.Timeline, pos int, ev model.Event, gaining string) float64 {
	switch ev.Type {
	case model.EventOut, model.EventFoul:
		return pitch.Reflect(ev.X)
	case model.EventCard, model.EventOffsideProvoked:
		if pos+1 < tl.Len() {
			return tl.At(pos + 1).X
		}
		return ev.X
	case model.EventCornerAwarded:
		if ev.Team != gaining {
			return pitch.Reflect(ev.X)
		}
		return ev.X
	default:
		return ev.X
	}
}
