// Package tracer implements the possession-sequence forward walk: starting
// from each trigger it consumes subsequent events until a termination rule
// fires, then classifies how the move ended. The decision procedure is an
// ordered rule table (rules.go) so rule priority is explicit and testable in
// isolation.
package tracer

import (
	"log/slog"

	"github.com/franp/go-pitch-metrics/internal/model"
	"github.com/franp/go-pitch-metrics/internal/pitch"
)

// DefaultMaxPasses bounds a single walk when the caller does not set a cap.
const DefaultMaxPasses = 40

// Options are the caller-supplied trace parameters.
type Options struct {
	Pitch      pitch.Config
	MaxPasses  int // <= 0 means DefaultMaxPasses
	SwapFlanks bool
	Logger     *slog.Logger // nil means slog.Default()
}

// Session owns all mutable state of one trace invocation: the processed-id
// set, the sequence counter and the once-per-type warning set. Sessions must
// not be shared across concurrent invocations; independent requests each get
// their own. The timeline itself is read-only throughout.
type Session struct {
	tl      *model.Timeline
	gaining string
	losing  string
	persp   model.Perspective

	pitch      pitch.Config
	maxPasses  int
	swapFlanks bool
	log        *slog.Logger

	processed map[int]struct{}
	warned    map[string]struct{}
	nextSeqID int
}

// walk is the in-flight state of tracing a single trigger.
type walk struct {
	trig   model.Trigger
	events []model.Event
	passes int
}

// New creates a trace session for one (team pair, perspective) request.
func New(tl *model.Timeline, gaining, losing string, persp model.Perspective, opts Options) *Session {
	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		tl:         tl,
		gaining:    gaining,
		losing:     losing,
		persp:      persp,
		pitch:      opts.Pitch,
		maxPasses:  maxPasses,
		swapFlanks: opts.SwapFlanks,
		log:        log,
		processed:  make(map[int]struct{}),
		warned:     make(map[string]struct{}),
		nextSeqID:  1,
	}
}

// Trace walks every surviving trigger and returns the produced sequences.
// Each trigger either yields exactly one sequence or is discarded; a trigger
// whose id was already claimed by an earlier walk is skipped entirely.
func (s *Session) Trace(triggers []model.Trigger) []model.Sequence {
	var seqs []model.Sequence
	for _, trig := range triggers {
		if _, done := s.processed[trig.Event.ID]; done {
			continue
		}
		s.processed[trig.Event.ID] = struct{}{}
		if seq, ok := s.walkFrom(trig); ok {
			seqs = append(seqs, seq)
		}
	}
	return seqs
}

// walkFrom advances one event at a time from the trigger, applying the rule
// table until a rule stops the walk. Running off the end of the timeline
// emits whatever accumulated with an Unknown outcome; exceeding the pass cap
// discards the partial sequence.
func (s *Session) walkFrom(trig model.Trigger) (model.Sequence, bool) {
	w := &walk{trig: trig}
	for pos := trig.Pos + 1; pos < s.tl.Len(); pos++ {
		ev := s.tl.At(pos)
		st := s.step(w, ev)
		if st.markProcessed {
			s.processed[ev.ID] = struct{}{}
		}
		if st.appendEvent {
			w.events = append(w.events, ev)
		}
		switch st.action {
		case actEmit:
			return s.finalize(w, st.outcome), true
		case actDiscard:
			return model.Sequence{}, false
		}
		if w.passes > s.maxPasses {
			s.log.Warn("trace runaway, discarding partial sequence",
				"trigger_id", trig.Event.ID, "max_passes", s.maxPasses)
			return model.Sequence{}, false
		}
	}
	if len(w.events) == 0 {
		return model.Sequence{}, false
	}
	return s.finalize(w, model.OutcomeUnknown), true
}

// step evaluates the rule table in order; the first matching rule wins.
// An event no rule recognizes ends the walk with no sequence.
func (s *Session) step(w *walk, ev model.Event) step {
	for _, r := range walkRules {
		if st, ok := r.eval(s, w, ev); ok {
			return st
		}
	}
	return step{action: actDiscard}
}

// finalize filters the accumulated events to the gaining team (keeping a
// losing-team terminal event, as with own goals), deduplicates by identity
// key, recomputes the pass count from the deduplicated set and stamps the
// sequence.
func (s *Session) finalize(w *walk, outcome model.Outcome) model.Sequence {
	var kept []model.Event
	for i, ev := range w.events {
		if ev.Team == s.gaining {
			kept = append(kept, ev)
			continue
		}
		if ev.Team == s.losing && i == len(w.events)-1 {
			kept = append(kept, ev)
		}
	}

	seen := make(map[model.EventKey]struct{}, len(kept))
	deduped := kept[:0]
	for _, ev := range kept {
		k := ev.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, ev)
	}

	passCount := 0
	ys := make([]float64, 0, len(deduped))
	for _, ev := range deduped {
		if ev.Team == s.gaining && ev.Type == model.EventPass && ev.Successful {
			passCount++
		}
		ys = append(ys, ev.Y)
	}

	seq := model.Sequence{
		SequenceID:  s.nextSeqID,
		TriggerID:   w.trig.Event.ID,
		Perspective: s.persp,
		Outcome:     outcome,
		Zone:        w.trig.Zone,
		Flank:       s.pitch.Flank(ys, s.swapFlanks),
		PassCount:   passCount,
		Events:      deduped,
	}
	s.nextSeqID++
	return seq
}

// warnUnknownType logs an unrecognized source type string at most once per
// distinct string per session.
func (s *Session) warnUnknownType(ev model.Event) {
	if _, done := s.warned[ev.RawType]; done {
		return
	}
	s.warned[ev.RawType] = struct{}{}
	s.log.Warn("unrecognized event type, skipping", "type", ev.RawType, "event_id", ev.ID)
}
