package sim

import (
	"fmt"
	"math"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
)

// Stat value bounds.
const (
	BaseMin = 0
	BaseMax = 100

	// CurrentSurplusMax is how far current may exceed base.
	CurrentSurplusMax = 30
	// CurrentAbsoluteMax caps current regardless of base.
	CurrentAbsoluteMax = 130

	// DiminishingCeiling is the current value at which gains taper to zero.
	DiminishingCeiling = 150

	// Nightly surplus conversion rates.
	SurplusGrowthRate = 0.25
	SurplusDecayRate  = 0.5
)

// StatName identifies one of the nine character stats.
type StatName string

const (
	StatFitness    StatName = "fitness"
	StatVitality   StatName = "vitality"
	StatPoise      StatName = "poise"
	StatKnowledge  StatName = "knowledge"
	StatCreativity StatName = "creativity"
	StatAmbition   StatName = "ambition"
	StatConfidence StatName = "confidence"
	StatWit        StatName = "wit"
	StatEmpathy    StatName = "empathy"
)

// StatNames lists every stat in canonical order.
var StatNames = []StatName{
	StatFitness,
	StatVitality,
	StatPoise,
	StatKnowledge,
	StatCreativity,
	StatAmbition,
	StatConfidence,
	StatWit,
	StatEmpathy,
}

// Stat holds the permanent floor and the volatile value for one stat.
type Stat struct {
	Base    int
	Current int
}

// NewStat creates a stat with base and current set to the same value.
func NewStat(value int) Stat {
	return Stat{Base: value, Current: value}
}

// StatVector holds the nine character stats.
type StatVector struct {
	Fitness    Stat
	Vitality   Stat
	Poise      Stat
	Knowledge  Stat
	Creativity Stat
	Ambition   Stat
	Confidence Stat
	Wit        Stat
	Empathy    Stat
}

func errUnknownStat(name StatName) error {
	return apperrors.WithMetadata(
		apperrors.CodeStatUnknownName,
		fmt.Sprintf("unknown stat %q", name),
		map[string]string{"Stat": string(name)},
	)
}

func (v *StatVector) stat(name StatName) (*Stat, error) {
	switch name {
	case StatFitness:
		return &v.Fitness, nil
	case StatVitality:
		return &v.Vitality, nil
	case StatPoise:
		return &v.Poise, nil
	case StatKnowledge:
		return &v.Knowledge, nil
	case StatCreativity:
		return &v.Creativity, nil
	case StatAmbition:
		return &v.Ambition, nil
	case StatConfidence:
		return &v.Confidence, nil
	case StatWit:
		return &v.Wit, nil
	case StatEmpathy:
		return &v.Empathy, nil
	default:
		return nil, errUnknownStat(name)
	}
}

// Stat returns the stat with the provided name.
func (v *StatVector) Stat(name StatName) (Stat, error) {
	s, err := v.stat(name)
	if err != nil {
		return Stat{}, err
	}
	return *s, nil
}

// SetBase sets the permanent value of a stat, clamped into [0, 100].
// Current is re-clamped against the updated base.
func (v *StatVector) SetBase(name StatName, value int) error {
	s, err := v.stat(name)
	if err != nil {
		return err
	}
	s.Base = clampInt(value, BaseMin, BaseMax)
	s.Current = clampCurrent(s.Base, s.Current)
	return nil
}

// SetCurrent sets the volatile value of a stat, clamped into
// [0, min(base+30, 130)].
func (v *StatVector) SetCurrent(name StatName, value int) error {
	s, err := v.stat(name)
	if err != nil {
		return err
	}
	s.Current = clampCurrent(s.Base, value)
	return nil
}

// CurrentCap returns the upper bound for current given a base value.
func CurrentCap(base int) int {
	cap := base + CurrentSurplusMax
	if cap > CurrentAbsoluteMax {
		cap = CurrentAbsoluteMax
	}
	return cap
}

// DiminishingGain scales a raw gain by how trained the stat already is:
// effective = gain × max(0, 1 − current/150), rounded to nearest.
// Gains taper to zero as current approaches 150, independent of base.
func DiminishingGain(gain, current int) int {
	if gain <= 0 {
		return 0
	}
	factor := 1 - float64(current)/DiminishingCeiling
	if factor < 0 {
		factor = 0
	}
	return roundInt(float64(gain) * factor)
}

// ApplyGain raises a stat's current value with diminishing returns and
// returns the effective amount applied after clamping.
func (v *StatVector) ApplyGain(name StatName, gain int) (int, error) {
	s, err := v.stat(name)
	if err != nil {
		return 0, err
	}
	before := s.Current
	effective := DiminishingGain(gain, s.Current)
	s.Current = clampCurrent(s.Base, s.Current+effective)
	return s.Current - before, nil
}

// ApplyPenalty lowers a stat's current value. Penalties are not subject to
// diminishing returns, but they cannot push current below base: a penalty
// returns current toward the permanent floor, never past it.
func (v *StatVector) ApplyPenalty(name StatName, amount int) (int, error) {
	s, err := v.stat(name)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, nil
	}
	before := s.Current
	floor := s.Base
	if s.Current < floor {
		floor = s.Current
	}
	next := s.Current - amount
	if next < floor {
		next = floor
	}
	s.Current = clampCurrent(s.Base, next)
	return before - s.Current, nil
}

// SurplusConversion records the nightly conversion applied to one stat.
type SurplusConversion struct {
	Stat          StatName
	BaseBefore    int
	BaseAfter     int
	CurrentBefore int
	CurrentAfter  int
	BaseGrowth    int
	CurrentDecay  int
}

// CalculateSurplusConversion computes the nightly growth and decay for a
// single stat. Surplus is current − base; 25% of it becomes permanent base
// growth (never past 100) and 50% of it evaporates from current.
func CalculateSurplusConversion(base, current int) (baseGrowth, currentDecay int) {
	surplus := current - base
	if surplus <= 0 {
		return 0, 0
	}
	baseGrowth = roundInt(float64(surplus) * SurplusGrowthRate)
	if base+baseGrowth > BaseMax {
		baseGrowth = BaseMax - base
	}
	currentDecay = roundInt(float64(surplus) * SurplusDecayRate)
	return baseGrowth, currentDecay
}

// ConvertSurplus runs the nightly surplus conversion over every stat and
// returns one record per stat in canonical order. Stats with no surplus
// produce a record with zero growth and decay.
func (v *StatVector) ConvertSurplus() []SurplusConversion {
	conversions := make([]SurplusConversion, 0, len(StatNames))
	for _, name := range StatNames {
		s, err := v.stat(name)
		if err != nil {
			// Unreachable: StatNames only contains known stats.
			panic(err)
		}

		record := SurplusConversion{
			Stat:          name,
			BaseBefore:    s.Base,
			CurrentBefore: s.Current,
		}

		growth, decay := CalculateSurplusConversion(s.Base, s.Current)
		s.Base += growth
		s.Current = clampCurrent(s.Base, s.Current-decay)

		record.BaseGrowth = growth
		record.CurrentDecay = decay
		record.BaseAfter = s.Base
		record.CurrentAfter = s.Current
		conversions = append(conversions, record)
	}
	return conversions
}

func clampCurrent(base, current int) int {
	return clampInt(current, 0, CurrentCap(base))
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// roundInt rounds half away from zero, the reporting convention for all
// fractional stat arithmetic.
func roundInt(value float64) int {
	return int(math.Round(value))
}
