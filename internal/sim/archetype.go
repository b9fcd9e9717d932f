package sim

import (
	"fmt"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
)

// Archetype identifies a character creation template.
type Archetype string

const (
	ArchetypeBalanced Archetype = "balanced"
	ArchetypeAthlete  Archetype = "athlete"
	ArchetypeScholar  Archetype = "scholar"
	ArchetypeCharmer  Archetype = "charmer"
	ArchetypeHustler  Archetype = "hustler"
)

// DefaultArchetype is used when synthesizing a character with no record.
const DefaultArchetype = ArchetypeBalanced

// StartingStats returns the stat vector for a freshly created character.
// Every stat starts with base == current.
func StartingStats(archetype Archetype) (StatVector, error) {
	switch archetype {
	case ArchetypeBalanced:
		return uniformStats(15), nil
	case ArchetypeAthlete:
		v := uniformStats(10)
		v.Fitness = NewStat(25)
		v.Vitality = NewStat(20)
		v.Ambition = NewStat(15)
		return v, nil
	case ArchetypeScholar:
		v := uniformStats(10)
		v.Knowledge = NewStat(25)
		v.Creativity = NewStat(20)
		v.Wit = NewStat(15)
		return v, nil
	case ArchetypeCharmer:
		v := uniformStats(10)
		v.Confidence = NewStat(25)
		v.Empathy = NewStat(20)
		v.Poise = NewStat(15)
		return v, nil
	case ArchetypeHustler:
		v := uniformStats(10)
		v.Ambition = NewStat(25)
		v.Wit = NewStat(20)
		v.Confidence = NewStat(15)
		return v, nil
	default:
		return StatVector{}, apperrors.WithMetadata(
			apperrors.CodeStatUnknownArchetype,
			fmt.Sprintf("unknown archetype %q", archetype),
			map[string]string{"Archetype": string(archetype)},
		)
	}
}

func uniformStats(value int) StatVector {
	stat := NewStat(value)
	return StatVector{
		Fitness:    stat,
		Vitality:   stat,
		Poise:      stat,
		Knowledge:  stat,
		Creativity: stat,
		Ambition:   stat,
		Confidence: stat,
		Wit:        stat,
		Empathy:    stat,
	}
}
