package tracer

import "github.com/franp/go-pitch-metrics/internal/model"

// action is what a matched rule tells the walk to do next.
type action int

const (
	actContinue action = iota // keep walking
	actEmit                   // stop and emit the sequence with step.outcome
	actDiscard                // stop, no sequence
)

// step is the decision a rule produces for one event.
type step struct {
	action        action
	outcome       model.Outcome
	appendEvent   bool // record the event on the walk before acting
	markProcessed bool // claim the event id so it cannot trigger a later trace
}

// rule is one entry of the decision procedure. eval returns (step, true) when
// the rule matches; the first matching rule wins and no further rules run.
type rule struct {
	name string
	eval func(s *Session, w *walk, ev model.Event) (step, bool)
}

// hardStopTypes are gaining-team event types that end a sequence outright
// with a type-specific outcome.
var hardStopTypes = map[model.EventType]struct{}{
	model.EventFoul:          {},
	model.EventOut:           {},
	model.EventKeeperPickup:  {},
	model.EventClaim:         {},
	model.EventDispossessed:  {},
	model.EventOffsidePass:   {},
	model.EventCornerAwarded: {},
}

// walkRules is the decision procedure, evaluated strictly in order. The
// ordering is load-bearing: own goals and hard stops must come before the
// generic pass/shot rules because those events can carry pass/shot-like type
// fields, and the losing team's failed regain attempts must not terminate the
// walk while a successful one must.
var walkRules = []rule{
	{
		// An own goal by the losing team ends the sequence immediately,
		// whatever the raw event type looks like.
		name: "own-goal",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Team != s.losing || !ev.Qualifiers.OwnGoal {
				return step{}, false
			}
			out := model.OutcomeForcedOwnGoal
			if s.persp == model.PerspectiveDefensiveTransition {
				out = model.OutcomeOwnGoalConceded
			}
			return step{action: actEmit, outcome: out, appendEvent: true}, true
		},
	},
	{
		// Fouls, outs, keeper pick-ups and the like by the gaining team end
		// the sequence with a type-specific outcome; if nothing has been
		// accumulated yet there is no sequence to emit.
		name: "gaining-hard-stop",
		eval: func(s *Session, w *walk, ev model.Event) (step, bool) {
			if ev.Team != s.gaining {
				return step{}, false
			}
			if _, ok := hardStopTypes[ev.Type]; !ok {
				return step{}, false
			}
			if len(w.events) == 0 {
				return step{action: actDiscard}, true
			}
			return step{action: actEmit, outcome: hardStopOutcome(ev.Type, s.persp), appendEvent: true}, true
		},
	},
	{
		name: "completed-pass",
		eval: func(s *Session, w *walk, ev model.Event) (step, bool) {
			if ev.Team != s.gaining || ev.Type != model.EventPass || !ev.Successful {
				return step{}, false
			}
			w.passes++
			return step{action: actContinue, appendEvent: true}, true
		},
	},
	{
		// A failed pass ends the possession; a failed pass into the box is a
		// chance worth distinguishing from an ordinary giveaway.
		name: "failed-pass",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Team != s.gaining || ev.Type != model.EventPass || ev.Successful {
				return step{}, false
			}
			out := lossOutcome(s.persp)
			if ev.HasEnd && s.pitch.InAttackingBox(ev.EndX, ev.EndY) {
				out = model.OutcomeBigChance
			}
			return step{action: actEmit, outcome: out, appendEvent: true}, true
		},
	},
	{
		name: "shot",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Team != s.gaining || !ev.Type.IsShot() || ev.Qualifiers.OwnGoal {
				return step{}, false
			}
			out := model.OutcomeShot
			if ev.Type == model.EventShotGoal {
				out = model.OutcomeGoal
			}
			return step{action: actEmit, outcome: out, appendEvent: true}, true
		},
	},
	{
		name: "unknown-type",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Type != model.EventUnknown {
				return step{}, false
			}
			s.warnUnknownType(ev)
			return step{action: actContinue}, true
		},
	},
	{
		// Incidental touches by either side keep the move alive.
		name: "ball-touch-keep-alive",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Type != model.EventBallTouch || !ev.Successful {
				return step{}, false
			}
			if ev.Team != s.gaining && ev.Team != s.losing {
				return step{}, false
			}
			return step{action: actContinue, appendEvent: true}, true
		},
	},
	{
		// A ball recovery by the gaining team is itself a candidate trigger;
		// claiming its id here prevents the same possession from being traced
		// twice. Checked before the generic keep-alive rule so it is
		// reachable.
		name: "gaining-recovery-claim",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Team != s.gaining || ev.Type != model.EventBallRecovery || !ev.Successful {
				return step{}, false
			}
			return step{action: actContinue, markProcessed: true}, true
		},
	},
	{
		name: "gaining-keep-alive",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Team != s.gaining || !ev.Successful {
				return step{}, false
			}
			return step{action: actContinue}, true
		},
	},
	{
		name: "failed-take-on",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Team != s.gaining || ev.Type != model.EventTakeOn || ev.Successful {
				return step{}, false
			}
			return step{action: actEmit, outcome: lossOutcome(s.persp), appendEvent: true}, true
		},
	},
	{
		name: "failed-ball-touch",
		eval: func(s *Session, w *walk, ev model.Event) (step, bool) {
			if ev.Team != s.gaining || ev.Type != model.EventBallTouch || ev.Successful {
				return step{}, false
			}
			if len(w.events) == 0 {
				return step{action: actDiscard}, true
			}
			return step{action: actEmit, outcome: lossOutcome(s.persp), appendEvent: true}, true
		},
	},
	{
		// A failed regain attempt by the losing team does not end the walk,
		// but its id is claimed: it would otherwise surface as a fresh
		// trigger for the same possession.
		name: "losing-failed-regain",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Team != s.losing || ev.Successful {
				return step{}, false
			}
			return step{action: actContinue, markProcessed: true}, true
		},
	},
	{
		// A successful action by the losing team means possession returned
		// to the original owner; the traced move never materialized.
		name: "losing-regain",
		eval: func(s *Session, _ *walk, ev model.Event) (step, bool) {
			if ev.Team != s.losing || !ev.Successful {
				return step{}, false
			}
			return step{action: actDiscard}, true
		},
	},
}

// hardStopOutcome maps a gaining-team hard-stop event type to its outcome.
// Keeper pick-ups, claims and dispossessions have no named outcome of their
// own and take the perspective's possession-loss label.
func hardStopOutcome(t model.EventType, p model.Perspective) model.Outcome {
	switch t {
	case model.EventFoul:
		return model.OutcomeFoul
	case model.EventOut:
		return model.OutcomeOut
	case model.EventOffsidePass:
		return model.OutcomeOffside
	case model.EventCornerAwarded:
		return model.OutcomeCorner
	default:
		return lossOutcome(p)
	}
}

// lossOutcome is the label for a possession that ended without a shot. Under
// the defensive framing the observing team is the one that lost the ball, so
// the opponent's move fizzling out reads as possession regained; under every
// other framing the observing team is the gaining one and the same ending
// reads as possession lost.
func lossOutcome(p model.Perspective) model.Outcome {
	if p == model.PerspectiveDefensiveTransition {
		return model.OutcomeRegainedPossession
	}
	return model.OutcomeLostPossession
}
