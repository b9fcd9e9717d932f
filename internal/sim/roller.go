package sim

import "github.com/louisbranch/everyday.space/internal/random"

// OutcomeRoller resolves activity attempts with seeds drawn from an
// injected source, so the same engine serves unpredictable play and
// replayable tests. Tests pin the source with random.FixedSeed.
type OutcomeRoller struct {
	seeds random.SeedFunc
}

// NewOutcomeRoller creates a roller over the provided seed source. A nil
// source falls back to crypto/rand seeds.
func NewOutcomeRoller(seeds random.SeedFunc) *OutcomeRoller {
	if seeds == nil {
		seeds = random.NewSeed
	}
	return &OutcomeRoller{seeds: seeds}
}

// Roll draws a fresh seed and resolves one outcome.
func (r *OutcomeRoller) Roll(stats *StatVector, relevant []StatName, difficulty int) (OutcomeResult, error) {
	seed, err := r.seeds()
	if err != nil {
		return OutcomeResult{}, err
	}
	return RollOutcome(stats, relevant, difficulty, seed)
}

// Resolve rolls an outcome and generates the matching effects. The roll
// and the effect sampling each consume their own seed.
func (r *OutcomeRoller) Resolve(stats *StatVector, relevant []StatName, difficulty int, profile EffectProfile) (OutcomeResult, EffectResult, error) {
	outcome, err := r.Roll(stats, relevant, difficulty)
	if err != nil {
		return OutcomeResult{}, EffectResult{}, err
	}

	seed, err := r.seeds()
	if err != nil {
		return OutcomeResult{}, EffectResult{}, err
	}
	effects, err := GenerateEffects(outcome.Tier, profile, seed)
	if err != nil {
		return OutcomeResult{}, EffectResult{}, err
	}
	return outcome, effects, nil
}
