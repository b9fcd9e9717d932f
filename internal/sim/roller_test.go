package sim

import (
	"errors"
	"testing"

	"github.com/louisbranch/everyday.space/internal/random"
)

func rollerStats(t *testing.T) *StatVector {
	t.Helper()
	stats, err := StartingStats(ArchetypeBalanced)
	if err != nil {
		t.Fatalf("starting stats: %v", err)
	}
	return &stats
}

func TestOutcomeRollerPinnedSeedReplays(t *testing.T) {
	stats := rollerStats(t)
	relevant := []StatName{StatFitness, StatVitality}

	roller := NewOutcomeRoller(random.FixedSeed(7))
	first, err := roller.Roll(stats, relevant, 10)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}

	direct, err := RollOutcome(stats, relevant, 10, 7)
	if err != nil {
		t.Fatalf("direct roll: %v", err)
	}
	if first != direct {
		t.Fatalf("pinned roll = %+v, want %+v", first, direct)
	}

	second, err := roller.Roll(stats, relevant, 10)
	if err != nil {
		t.Fatalf("second roll: %v", err)
	}
	if second != first {
		t.Fatalf("pinned source must replay: %+v vs %+v", second, first)
	}
}

func TestOutcomeRollerNilSourceRollsInRange(t *testing.T) {
	stats := rollerStats(t)

	roller := NewOutcomeRoller(nil)
	result, err := roller.Roll(stats, []StatName{StatWit}, 0)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if result.FirstDie < 1 || result.FirstDie > 100 {
		t.Fatalf("first die = %d, want 1..100", result.FirstDie)
	}
	if result.SecondDie < 1 || result.SecondDie > 100 {
		t.Fatalf("second die = %d, want 1..100", result.SecondDie)
	}
}

func TestOutcomeRollerSeedFailurePropagates(t *testing.T) {
	seedErr := errors.New("entropy exhausted")
	roller := NewOutcomeRoller(func() (int64, error) { return 0, seedErr })

	if _, err := roller.Roll(rollerStats(t), nil, 0); !errors.Is(err, seedErr) {
		t.Fatalf("error = %v, want %v", err, seedErr)
	}

	_, _, err := roller.Resolve(rollerStats(t), nil, 0, workoutProfile())
	if !errors.Is(err, seedErr) {
		t.Fatalf("resolve error = %v, want %v", err, seedErr)
	}
}

func TestOutcomeRollerResolveMatchesPinnedSeed(t *testing.T) {
	stats := rollerStats(t)
	relevant := []StatName{StatFitness}
	profile := workoutProfile()

	roller := NewOutcomeRoller(random.FixedSeed(99))
	outcome, effects, err := roller.Resolve(stats, relevant, 0, profile)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	wantOutcome, err := RollOutcome(stats, relevant, 0, 99)
	if err != nil {
		t.Fatalf("direct roll: %v", err)
	}
	if outcome != wantOutcome {
		t.Fatalf("outcome = %+v, want %+v", outcome, wantOutcome)
	}

	wantEffects, err := GenerateEffects(wantOutcome.Tier, profile, 99)
	if err != nil {
		t.Fatalf("direct effects: %v", err)
	}
	if effects.Tier != wantEffects.Tier {
		t.Fatalf("effects tier = %v, want %v", effects.Tier, wantEffects.Tier)
	}
	if len(effects.StatGains) != len(wantEffects.StatGains) {
		t.Fatalf("stat gains = %v, want %v", effects.StatGains, wantEffects.StatGains)
	}
	for name, gain := range wantEffects.StatGains {
		if effects.StatGains[name] != gain {
			t.Fatalf("stat gains = %v, want %v", effects.StatGains, wantEffects.StatGains)
		}
	}
	if effects.EnergyCost != wantEffects.EnergyCost || effects.MoneyCost != wantEffects.MoneyCost {
		t.Fatalf("costs = %d/%d, want %d/%d",
			effects.EnergyCost, effects.MoneyCost, wantEffects.EnergyCost, wantEffects.MoneyCost)
	}
}
