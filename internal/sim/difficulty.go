package sim

// DifficultyContribution is one named, signed contributor to a final DC.
type DifficultyContribution struct {
	Source string
	Value  int
}

// Breakdown source identifiers.
const (
	DifficultySourceBase         = "base"
	DifficultySourceActivity     = "activity"
	DifficultySourceRelationship = "relationship"
	DifficultySourceTraits       = "traits"
)

// ComposedDifficulty is the effective difficulty class for a social
// activity together with its audit breakdown. Zero-valued contributors are
// omitted from the breakdown but always included in the sum.
type ComposedDifficulty struct {
	Difficulty int // composite modifier over the base DC
	FinalDC    int // BaseDC + Difficulty, unclamped
	Breakdown  []DifficultyContribution
}

// ComposeSocialDifficulty combines base activity difficulty with the
// relationship-derived modifier and the NPC trait compatibility score.
//
// A positive compatibility score makes the interaction easier, so it is
// negated before being added. No floor or ceiling is imposed: a favorable
// combination can push the final DC below 100, making even a low roll
// resolve at best.
func ComposeSocialDifficulty(activityDifficulty int, state RelationshipState, traitCompatibility int) ComposedDifficulty {
	relationshipModifier := DifficultyModifier(state)
	traitBonus := -traitCompatibility

	composed := ComposedDifficulty{
		Difficulty: activityDifficulty + relationshipModifier + traitBonus,
	}
	composed.FinalDC = BaseDC + composed.Difficulty

	contributors := []DifficultyContribution{
		{Source: DifficultySourceBase, Value: BaseDC},
		{Source: DifficultySourceActivity, Value: activityDifficulty},
		{Source: DifficultySourceRelationship + ":" + state.String(), Value: relationshipModifier},
		{Source: DifficultySourceTraits, Value: traitBonus},
	}
	for _, c := range contributors {
		if c.Value == 0 {
			continue
		}
		composed.Breakdown = append(composed.Breakdown, c)
	}

	return composed
}
