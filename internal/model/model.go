package model

import "fmt"

// EventType is the closed enumeration of on-ball actions in the source
// timeline. Type strings the loader does not recognize map to EventUnknown;
// the raw string is kept on the Event for diagnostics.
type EventType int

const (
	EventUnknown EventType = iota
	EventPass
	EventShotGoal
	EventShotMiss
	EventShotSaved
	EventShotPost
	EventOut
	EventFoul
	EventCard
	EventOffsidePass
	EventOffsideProvoked
	EventCornerAwarded
	EventTakeOn
	EventBallTouch
	EventBallRecovery
	EventDispossessed
	EventKeeperPickup
	EventClaim
	EventClearance
	EventAerial
	EventChallenge
	EventError
	EventSave
)

var eventTypeNames = map[EventType]string{
	EventUnknown:         "Unknown",
	EventPass:            "Pass",
	EventShotGoal:        "Goal",
	EventShotMiss:        "Miss",
	EventShotSaved:       "Attempt Saved",
	EventShotPost:        "Post",
	EventOut:             "Out",
	EventFoul:            "Foul",
	EventCard:            "Card",
	EventOffsidePass:     "Offside Pass",
	EventOffsideProvoked: "Offside provoked",
	EventCornerAwarded:   "Corner Awarded",
	EventTakeOn:          "Take On",
	EventBallTouch:       "Ball touch",
	EventBallRecovery:    "Ball recovery",
	EventDispossessed:    "Dispossessed",
	EventKeeperPickup:    "Keeper pick-up",
	EventClaim:           "Claim",
	EventClearance:       "Clearance",
	EventAerial:          "Aerial",
	EventChallenge:       "Challenge",
	EventError:           "Error",
	EventSave:            "Save",
}

var eventTypeByName = func() map[string]EventType {
	m := make(map[string]EventType, len(eventTypeNames))
	for t, n := range eventTypeNames {
		m[n] = t
	}
	return m
}()

// ParseEventType maps a source type string to its EventType.
// Unrecognized strings return (EventUnknown, false).
func ParseEventType(s string) (EventType, bool) {
	t, ok := eventTypeByName[s]
	return t, ok
}

func (t EventType) String() string {
	if n, ok := eventTypeNames[t]; ok {
		return n
	}
	return "Unknown"
}

// IsShot reports whether t is one of the four shot variants.
func (t EventType) IsShot() bool {
	switch t {
	case EventShotGoal, EventShotMiss, EventShotSaved, EventShotPost:
		return true
	}
	return false
}

// Outcome classifies how a traced possession sequence ended.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeGoal
	OutcomeOwnGoalConceded
	OutcomeForcedOwnGoal
	OutcomeShot
	OutcomeBigChance
	OutcomeRegainedPossession
	OutcomeLostPossession
	OutcomeFoul
	OutcomeOffside
	OutcomeOut
	OutcomeCorner
)

var outcomeNames = map[Outcome]string{
	OutcomeUnknown:            "Unknown",
	OutcomeGoal:               "Goal",
	OutcomeOwnGoalConceded:    "Own goal conceded",
	OutcomeForcedOwnGoal:      "Forced own goal",
	OutcomeShot:               "Shot",
	OutcomeBigChance:          "Big chance",
	OutcomeRegainedPossession: "Regained possession",
	OutcomeLostPossession:     "Lost possession",
	OutcomeFoul:               "Foul",
	OutcomeOffside:            "Offside",
	OutcomeOut:                "Out",
	OutcomeCorner:             "Corner",
}

func (o Outcome) String() string {
	if n, ok := outcomeNames[o]; ok {
		return n
	}
	return "Unknown"
}

// Priority returns the fixed presentation rank used to order summary rows.
// Lower is more notable: goals first, then shots and big chances, then
// possession outcomes, then restarts.
func (o Outcome) Priority() int {
	switch o {
	case OutcomeGoal, OutcomeOwnGoalConceded, OutcomeForcedOwnGoal:
		return 0
	case OutcomeShot:
		return 1
	case OutcomeBigChance:
		return 2
	case OutcomeRegainedPossession, OutcomeLostPossession:
		return 3
	case OutcomeFoul, OutcomeOffside, OutcomeOut, OutcomeCorner:
		return 4
	default:
		return 5
	}
}

// Zone is a pitch third relative to the attacking direction of the team
// under analysis.
type Zone int

const (
	ZoneDefensive Zone = iota
	ZoneMiddle
	ZoneAttacking
)

func (z Zone) String() string {
	switch z {
	case ZoneDefensive:
		return "Defensive third"
	case ZoneMiddle:
		return "Middle third"
	case ZoneAttacking:
		return "Attacking third"
	default:
		return "?"
	}
}

// Flank is the dominant lateral channel of a sequence.
type Flank int

const (
	FlankCenter Flank = iota
	FlankLeft
	FlankRight
)

func (f Flank) String() string {
	switch f {
	case FlankLeft:
		return "Left"
	case FlankRight:
		return "Right"
	default:
		return "Center"
	}
}

// Perspective is the analytical framing that selects trigger predicates and
// outcome labels.
type Perspective int

const (
	PerspectiveDefensiveTransition Perspective = iota
	PerspectiveOffensiveTransition
	PerspectiveBuildupPhase
	PerspectiveSetPiece
)

var perspectiveNames = map[Perspective]string{
	PerspectiveDefensiveTransition: "defensive",
	PerspectiveOffensiveTransition: "offensive",
	PerspectiveBuildupPhase:        "buildup",
	PerspectiveSetPiece:            "setpiece",
}

// ParsePerspective maps a CLI/config string to a Perspective.
func ParsePerspective(s string) (Perspective, error) {
	for p, n := range perspectiveNames {
		if n == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown perspective %q (want defensive, offensive, buildup or setpiece)", s)
}

func (p Perspective) String() string {
	if n, ok := perspectiveNames[p]; ok {
		return n
	}
	return "?"
}

// Qualifiers are the optional boolean flags and receiver identity attached
// to an event row.
type Qualifiers struct {
	OwnGoal     bool
	CornerTaken bool
	LongBall    bool
	Cross       bool
	Receiver    string
}

// Event is one row of the match timeline: a single on-ball action.
// Events are immutable once loaded.
type Event struct {
	ID         int
	Index      int // position key in the source table; ascending, gaps permitted
	Team       string
	Type       EventType
	RawType    string // source type string, kept for unknown-type diagnostics
	Successful bool
	X, Y       float64 // origin, 0–100 pitch scale
	EndX, EndY float64
	HasEnd     bool
	Minute     int
	Second     int
	Qualifiers Qualifiers
}

// EventKey is the identity key used to absorb duplicate rows in the source
// timeline: two rows with the same team, type, origin, destination and time
// describe the same action.
type EventKey struct {
	Team       string
	Type       EventType
	X, Y       float64
	EndX, EndY float64
	Minute     int
	Second     int
}

// Key returns the dedup identity key for the event.
func (e Event) Key() EventKey {
	return EventKey{
		Team: e.Team, Type: e.Type,
		X: e.X, Y: e.Y, EndX: e.EndX, EndY: e.EndY,
		Minute: e.Minute, Second: e.Second,
	}
}

// Clock formats the event time as mm:ss.
func (e Event) Clock() string {
	return fmt.Sprintf("%02d:%02d", e.Minute, e.Second)
}

// Trigger marks a possession change of interest: the event that starts a
// trace, its zone from the gaining team's perspective, and the framing it
// was detected under. Triggers are derived, never stored.
type Trigger struct {
	Event       Event
	Pos         int // position of Event in the timeline slice
	Zone        Zone
	Perspective Perspective
}

// Sequence is the traced chain of events attributed to the possession-gaining
// team, ending in a classified outcome. Immutable once produced.
type Sequence struct {
	SequenceID  int
	TriggerID   int // Event.ID of the originating trigger
	Perspective Perspective
	Outcome     Outcome
	Zone        Zone
	Flank       Flank
	PassCount   int
	Events      []Event
}

// StartClock returns the clock of the first event in the sequence, or the
// empty string for an empty sequence.
func (s *Sequence) StartClock() string {
	if len(s.Events) == 0 {
		return ""
	}
	return s.Events[0].Clock()
}

// EndedInShot reports whether the sequence produced a shot on the opponent's
// goal (including goals and failed passes into the big chance area).
func (s *Sequence) EndedInShot() bool {
	switch s.Outcome {
	case OutcomeGoal, OutcomeShot, OutcomeBigChance:
		return true
	}
	return false
}

// ZoneSummary is one row of the aggregator output: sequences grouped by
// (zone, outcome) with count and mean pass count.
type ZoneSummary struct {
	Zone         Zone
	Outcome      Outcome
	Count        int
	AvgPassCount float64
}

// MatchSummary is a lightweight record for list/show commands.
type MatchSummary struct {
	ID          string
	Source      string
	HomeTeam    string
	AwayTeam    string
	Competition string
	LoadedAt    string
	EventCount  int
}
