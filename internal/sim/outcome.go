package sim

import (
	"fmt"

	"github.com/louisbranch/everyday.space/internal/core/dice"
	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
)

// Resolution constants for the 2d100 system.
const (
	// BaseDC is the difficulty-class floor before modifiers.
	BaseDC = 100
	// TierBandWidth separates adjacent outcome tiers around the DC.
	TierBandWidth = 50

	// Crit bands on the raw two-die sum, independent of DC.
	CritFailureMax = 50
	CritSuccessMin = 152
)

// OutcomeTier is one of the four outcome buckets, totally ordered from
// catastrophic to best.
type OutcomeTier int

const (
	TierCatastrophic OutcomeTier = iota
	TierMixed
	TierOkay
	TierBest
)

func (t OutcomeTier) String() string {
	switch t {
	case TierCatastrophic:
		return "catastrophic"
	case TierMixed:
		return "mixed"
	case TierOkay:
		return "okay"
	case TierBest:
		return "best"
	default:
		return "unknown"
	}
}

// ErrInvalidRoll indicates a die outside the 1-100 range.
var ErrInvalidRoll = apperrors.New(apperrors.CodeOutcomeInvalidRoll, "percentile dice must be between 1 and 100")

// OutcomeResult captures a fully resolved activity roll.
type OutcomeResult struct {
	Tier        OutcomeTier
	FirstDie    int
	SecondDie   int
	Roll        int // raw two-die sum
	StatBonus   int
	DC          int
	Total       int // Roll + StatBonus
	CritSuccess bool
	CritFailure bool
}

// DetermineOutcomeTier classifies a total against a difficulty class.
//
// Boundaries are exact: total == DC−50 is catastrophic, total == DC is okay,
// total == DC+50 is best.
func DetermineOutcomeTier(total, dc int) OutcomeTier {
	switch {
	case total <= dc-TierBandWidth:
		return TierCatastrophic
	case total < dc:
		return TierMixed
	case total < dc+TierBandWidth:
		return TierOkay
	default:
		return TierBest
	}
}

// ApplyCritShift adjusts a classified tier by one step in the direction of
// a critical roll, saturating at the tier bounds. A roll cannot be both a
// critical success and a critical failure; if both flags are set the shift
// is a no-op.
func ApplyCritShift(tier OutcomeTier, critSuccess, critFailure bool) OutcomeTier {
	switch {
	case critSuccess && critFailure:
		return tier
	case critSuccess && tier < TierBest:
		return tier + 1
	case critFailure && tier > TierCatastrophic:
		return tier - 1
	default:
		return tier
	}
}

// StatBonus computes the plain average of the current values of the
// relevant stats, rounded to nearest. With no relevant stats the bonus is
// zero. Unknown stat names are a caller bug and return an error.
func StatBonus(stats *StatVector, relevant []StatName) (int, error) {
	if len(relevant) == 0 {
		return 0, nil
	}
	sum := 0
	for _, name := range relevant {
		s, err := stats.Stat(name)
		if err != nil {
			return 0, err
		}
		sum += s.Current
	}
	return roundInt(float64(sum) / float64(len(relevant))), nil
}

// EvaluateOutcome resolves a roll deterministically from its two dice.
//
// DC is 100 + difficulty, with no floor: large bonuses can legitimately
// push difficulty negative. Crit bands are checked on the raw two-die sum
// and shift the classified tier as a final adjustment.
func EvaluateOutcome(firstDie, secondDie, statBonus, difficulty int) (OutcomeResult, error) {
	if firstDie < 1 || firstDie > dice.PercentileSides || secondDie < 1 || secondDie > dice.PercentileSides {
		return OutcomeResult{}, apperrors.WithMetadata(
			apperrors.CodeOutcomeInvalidRoll,
			fmt.Sprintf("percentile dice must be between 1 and 100, got %d and %d", firstDie, secondDie),
			map[string]string{
				"FirstDie":  fmt.Sprintf("%d", firstDie),
				"SecondDie": fmt.Sprintf("%d", secondDie),
			},
		)
	}

	roll := firstDie + secondDie
	dc := BaseDC + difficulty
	total := roll + statBonus

	critSuccess := roll >= CritSuccessMin
	critFailure := roll <= CritFailureMax

	tier := DetermineOutcomeTier(total, dc)
	tier = ApplyCritShift(tier, critSuccess, critFailure)

	return OutcomeResult{
		Tier:        tier,
		FirstDie:    firstDie,
		SecondDie:   secondDie,
		Roll:        roll,
		StatBonus:   statBonus,
		DC:          dc,
		Total:       total,
		CritSuccess: critSuccess,
		CritFailure: critFailure,
	}, nil
}

// RollOutcome draws two d100 from the seed and resolves the outcome for
// the provided stats and difficulty.
func RollOutcome(stats *StatVector, relevant []StatName, difficulty int, seed int64) (OutcomeResult, error) {
	bonus, err := StatBonus(stats, relevant)
	if err != nil {
		return OutcomeResult{}, err
	}

	first, second, _ := dice.RollPercentilePair(seed)
	return EvaluateOutcome(first, second, bonus, difficulty)
}
