package sim

import (
	"errors"
	"testing"
)

func TestDetermineOutcomeTierBoundaries(t *testing.T) {
	const dc = 150
	tests := []struct {
		name  string
		total int
		want  OutcomeTier
	}{
		{"deep failure", 50, TierCatastrophic},
		{"exactly dc-50", 100, TierCatastrophic},
		{"just above dc-50", 101, TierMixed},
		{"just below dc", 149, TierMixed},
		{"exactly dc", 150, TierOkay},
		{"just below dc+50", 199, TierOkay},
		{"exactly dc+50", 200, TierBest},
		{"beyond dc+50", 250, TierBest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineOutcomeTier(tc.total, dc); got != tc.want {
				t.Fatalf("DetermineOutcomeTier(%d, %d) = %v, want %v", tc.total, dc, got, tc.want)
			}
		})
	}
}

func TestDetermineOutcomeTierNegativeDC(t *testing.T) {
	// DC is not floor-clamped: a heavily favorable composition can make
	// even the minimal roll of 2 land on best.
	if got := DetermineOutcomeTier(2, -50); got != TierBest {
		t.Fatalf("tier = %v, want best for minimal roll against collapsed DC", got)
	}
}

func TestApplyCritShiftSaturates(t *testing.T) {
	tests := []struct {
		name        string
		tier        OutcomeTier
		critSuccess bool
		critFailure bool
		want        OutcomeTier
	}{
		{"success improves", TierMixed, true, false, TierOkay},
		{"success capped at best", TierBest, true, false, TierBest},
		{"failure worsens", TierOkay, false, true, TierMixed},
		{"failure floored", TierCatastrophic, false, true, TierCatastrophic},
		{"no crit", TierOkay, false, false, TierOkay},
		{"contradictory flags", TierOkay, true, true, TierOkay},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyCritShift(tc.tier, tc.critSuccess, tc.critFailure)
			if got != tc.want {
				t.Fatalf("ApplyCritShift(%v) = %v, want %v", tc.tier, got, tc.want)
			}
			// Shifting again stays inside the tier bounds.
			again := ApplyCritShift(got, tc.critSuccess, tc.critFailure)
			if again < TierCatastrophic || again > TierBest {
				t.Fatalf("second shift escaped tier bounds: %v", again)
			}
		})
	}
}

func TestStatBonus(t *testing.T) {
	var v StatVector
	if err := v.SetBase(StatFitness, 50); err != nil {
		t.Fatalf("SetBase returned error: %v", err)
	}
	if err := v.SetCurrent(StatFitness, 45); err != nil {
		t.Fatalf("SetCurrent returned error: %v", err)
	}
	if err := v.SetBase(StatWit, 20); err != nil {
		t.Fatalf("SetBase returned error: %v", err)
	}
	if err := v.SetCurrent(StatWit, 20); err != nil {
		t.Fatalf("SetCurrent returned error: %v", err)
	}

	tests := []struct {
		name     string
		relevant []StatName
		want     int
	}{
		{"single stat", []StatName{StatFitness}, 45},
		{"average rounds to nearest", []StatName{StatFitness, StatWit}, 33}, // 32.5 rounds up
		{"no relevant stats", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StatBonus(&v, tc.relevant)
			if err != nil {
				t.Fatalf("StatBonus returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("StatBonus = %d, want %d", got, tc.want)
			}
		})
	}

	if _, err := StatBonus(&v, []StatName{"charisma"}); err == nil {
		t.Fatal("expected error for unknown relevant stat")
	}
}

func TestEvaluateOutcomeScenario(t *testing.T) {
	// currentFitness=45, difficulty=50, roll=100 (50+50):
	// statBonus=45, dc=150, total=145, mixed since 100 < 145 < 150.
	result, err := EvaluateOutcome(50, 50, 45, 50)
	if err != nil {
		t.Fatalf("EvaluateOutcome returned error: %v", err)
	}
	if result.StatBonus != 45 || result.DC != 150 || result.Total != 145 {
		t.Fatalf("got bonus=%d dc=%d total=%d, want 45/150/145", result.StatBonus, result.DC, result.Total)
	}
	if result.Tier != TierMixed {
		t.Fatalf("tier = %v, want mixed", result.Tier)
	}
	if result.CritSuccess || result.CritFailure {
		t.Fatal("roll of 100 is in neither crit band")
	}
}

func TestEvaluateOutcomeCritBands(t *testing.T) {
	tests := []struct {
		name        string
		first       int
		second      int
		wantSuccess bool
		wantFailure bool
	}{
		{"minimum roll", 1, 1, false, true},
		{"top of failure band", 25, 25, false, true},
		{"just above failure band", 25, 26, false, false},
		{"just below success band", 75, 76, false, false},
		{"bottom of success band", 76, 76, true, false},
		{"maximum roll", 100, 100, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := EvaluateOutcome(tc.first, tc.second, 0, 0)
			if err != nil {
				t.Fatalf("EvaluateOutcome returned error: %v", err)
			}
			if result.CritSuccess != tc.wantSuccess || result.CritFailure != tc.wantFailure {
				t.Fatalf("crit flags = (%v, %v), want (%v, %v)",
					result.CritSuccess, result.CritFailure, tc.wantSuccess, tc.wantFailure)
			}
		})
	}
}

func TestEvaluateOutcomeCritShiftsAfterClassification(t *testing.T) {
	// Roll 200 against DC 260: total 200 ≤ 210 classifies catastrophic,
	// then the crit success lifts the tier one step to mixed.
	result, err := EvaluateOutcome(100, 100, 0, 160)
	if err != nil {
		t.Fatalf("EvaluateOutcome returned error: %v", err)
	}
	if !result.CritSuccess {
		t.Fatal("expected crit success on roll 200")
	}
	if result.Tier != TierMixed {
		t.Fatalf("tier = %v, want mixed after crit lift from catastrophic", result.Tier)
	}
}

func TestEvaluateOutcomeRejectsBadDice(t *testing.T) {
	if _, err := EvaluateOutcome(0, 50, 0, 0); err == nil {
		t.Fatal("expected error for die below 1")
	}
	if _, err := EvaluateOutcome(50, 101, 0, 0); err == nil {
		t.Fatal("expected error for die above 100")
	}
	if _, err := EvaluateOutcome(0, 0, 0, 0); !errors.Is(err, ErrInvalidRoll) {
		t.Fatalf("error = %v, want ErrInvalidRoll", err)
	}
}

func TestRollOutcomeDeterministic(t *testing.T) {
	var v StatVector
	if err := v.SetBase(StatFitness, 50); err != nil {
		t.Fatalf("SetBase returned error: %v", err)
	}
	if err := v.SetCurrent(StatFitness, 45); err != nil {
		t.Fatalf("SetCurrent returned error: %v", err)
	}

	first, err := RollOutcome(&v, []StatName{StatFitness}, 50, 11)
	if err != nil {
		t.Fatalf("RollOutcome returned error: %v", err)
	}
	second, err := RollOutcome(&v, []StatName{StatFitness}, 50, 11)
	if err != nil {
		t.Fatalf("RollOutcome returned error: %v", err)
	}

	if first != second {
		t.Fatalf("identical seeds produced different outcomes: %+v vs %+v", first, second)
	}
	if first.Roll < 2 || first.Roll > 200 {
		t.Fatalf("roll = %d, want 2..200", first.Roll)
	}
	if first.StatBonus != 45 || first.DC != 150 {
		t.Fatalf("bonus=%d dc=%d, want 45/150", first.StatBonus, first.DC)
	}
}
