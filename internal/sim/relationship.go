package sim

// Axis value bounds.
const (
	AxisMin = -100
	AxisMax = 100
)

// RelationshipAxes holds the three independent relationship dimensions
// between the player and one NPC. Values live in [-100, 100].
type RelationshipAxes struct {
	Trust     int
	Affection int
	Desire    int
}

// RelationshipState is the label derived from the three axes. It is a pure
// function of the axes and is never authoritative on its own: persisted
// copies are caches or history.
type RelationshipState int

const (
	StateStranger RelationshipState = iota
	StateAcquaintance
	StateFriend
	StateCloseFriend
	StateCrush
	StateLover
	StatePartner
	StateComplicated
	StateRival
	StateEnemy
)

func (s RelationshipState) String() string {
	switch s {
	case StateStranger:
		return "stranger"
	case StateAcquaintance:
		return "acquaintance"
	case StateFriend:
		return "friend"
	case StateCloseFriend:
		return "close_friend"
	case StateCrush:
		return "crush"
	case StateLover:
		return "lover"
	case StatePartner:
		return "partner"
	case StateComplicated:
		return "complicated"
	case StateRival:
		return "rival"
	case StateEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// RelationshipThresholds centralizes every axis threshold used by state
// derivation. The composer and orchestrator reference this table through
// DeriveState; nothing redefines these numbers inline.
type RelationshipThresholds struct {
	PartnerTrust     int
	PartnerAffection int
	PartnerDesire    int

	LoverDesire    int
	LoverAffection int
	LoverTrustMax  int

	CloseFriendAffection int
	CloseFriendTrust     int
	CloseFriendDesireMax int

	FriendAffection int
	FriendTrust     int

	CrushDesire       int
	CrushAffectionMax int

	EnemyTrustBelow     int
	EnemyAffectionBelow int

	RivalTrustBelow     int
	RivalAffectionBelow int

	ComplicatedHigh int
	ComplicatedLow  int

	AcquaintanceHigh int
	AcquaintanceLow  int
}

// DefaultThresholds returns the canonical threshold table.
func DefaultThresholds() RelationshipThresholds {
	return RelationshipThresholds{
		PartnerTrust:     60,
		PartnerAffection: 60,
		PartnerDesire:    50,

		LoverDesire:    60,
		LoverAffection: 40,
		LoverTrustMax:  60,

		CloseFriendAffection: 60,
		CloseFriendTrust:     40,
		CloseFriendDesireMax: 30,

		FriendAffection: 30,
		FriendTrust:     20,

		CrushDesire:       40,
		CrushAffectionMax: 30,

		EnemyTrustBelow:     -50,
		EnemyAffectionBelow: -50,

		RivalTrustBelow:     -30,
		RivalAffectionBelow: -30,

		ComplicatedHigh: 20,
		ComplicatedLow:  -20,

		AcquaintanceHigh: 10,
		AcquaintanceLow:  -10,
	}
}

// ApplyRelationshipDelta applies a delta to each axis independently,
// clamping into [-100, 100]. A desireCap additionally bounds desire from
// above: the cap only ever lowers an excess, it never raises desire.
func ApplyRelationshipDelta(axes, delta RelationshipAxes, desireCap *int) RelationshipAxes {
	next := RelationshipAxes{
		Trust:     clampInt(axes.Trust+delta.Trust, AxisMin, AxisMax),
		Affection: clampInt(axes.Affection+delta.Affection, AxisMin, AxisMax),
		Desire:    clampInt(axes.Desire+delta.Desire, AxisMin, AxisMax),
	}
	if desireCap != nil && next.Desire > *desireCap {
		next.Desire = *desireCap
	}
	return next
}

// DeriveState classifies the axes into a relationship state.
//
// Rules are evaluated in strict priority order and the first match wins.
// The ordering is load-bearing: combined positive states are checked before
// the negative and neutral fallbacks, otherwise high trust+affection with
// one dipping axis would land on a fallback label.
func DeriveState(axes RelationshipAxes) RelationshipState {
	t := DefaultThresholds()

	switch {
	case axes.Trust >= t.PartnerTrust && axes.Affection >= t.PartnerAffection && axes.Desire >= t.PartnerDesire:
		return StatePartner
	case axes.Desire >= t.LoverDesire && axes.Affection >= t.LoverAffection && axes.Trust < t.LoverTrustMax:
		return StateLover
	case axes.Affection >= t.CloseFriendAffection && axes.Trust >= t.CloseFriendTrust && axes.Desire < t.CloseFriendDesireMax:
		return StateCloseFriend
	case axes.Affection >= t.FriendAffection && axes.Trust >= t.FriendTrust:
		return StateFriend
	case axes.Desire >= t.CrushDesire && axes.Affection < t.CrushAffectionMax:
		return StateCrush
	case axes.Trust < t.EnemyTrustBelow && axes.Affection < t.EnemyAffectionBelow:
		return StateEnemy
	case axes.Trust < t.RivalTrustBelow || axes.Affection < t.RivalAffectionBelow:
		return StateRival
	case anyAxisAbove(axes, t.ComplicatedHigh) && anyAxisBelow(axes, t.ComplicatedLow):
		return StateComplicated
	case anyAxisAtLeast(axes, t.AcquaintanceHigh) && allAxesAbove(axes, t.AcquaintanceLow):
		return StateAcquaintance
	default:
		return StateStranger
	}
}

// DifficultyModifier returns the social difficulty adjustment for a state.
func DifficultyModifier(state RelationshipState) int {
	switch state {
	case StatePartner:
		return -15
	case StateLover, StateCloseFriend:
		return -12
	case StateFriend:
		return -8
	case StateCrush:
		return -5
	case StateAcquaintance:
		return -3
	case StateComplicated:
		return 10
	case StateRival:
		return 15
	case StateEnemy:
		return 30
	default: // stranger
		return 0
	}
}

// RelationshipUpdate captures a delta application plus the state
// transition it caused, if any.
type RelationshipUpdate struct {
	Before       RelationshipAxes
	After        RelationshipAxes
	StateBefore  RelationshipState
	StateAfter   RelationshipState
	StateChanged bool
}

// UpdateRelationship applies a delta and reports the resulting state
// transition in one pass.
func UpdateRelationship(axes, delta RelationshipAxes, desireCap *int) RelationshipUpdate {
	after := ApplyRelationshipDelta(axes, delta, desireCap)
	stateBefore := DeriveState(axes)
	stateAfter := DeriveState(after)
	return RelationshipUpdate{
		Before:       axes,
		After:        after,
		StateBefore:  stateBefore,
		StateAfter:   stateAfter,
		StateChanged: stateBefore != stateAfter,
	}
}

func anyAxisAbove(axes RelationshipAxes, threshold int) bool {
	return axes.Trust > threshold || axes.Affection > threshold || axes.Desire > threshold
}

func anyAxisAtLeast(axes RelationshipAxes, threshold int) bool {
	return axes.Trust >= threshold || axes.Affection >= threshold || axes.Desire >= threshold
}

func anyAxisBelow(axes RelationshipAxes, threshold int) bool {
	return axes.Trust < threshold || axes.Affection < threshold || axes.Desire < threshold
}

func allAxesAbove(axes RelationshipAxes, threshold int) bool {
	return axes.Trust > threshold && axes.Affection > threshold && axes.Desire > threshold
}
