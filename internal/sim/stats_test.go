package sim

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
)

func TestStatVectorUnknownName(t *testing.T) {
	var v StatVector
	_, err := v.Stat("luck")
	if err == nil {
		t.Fatal("expected error for unknown stat name")
	}
	if !errors.Is(err, apperrors.New(apperrors.CodeStatUnknownName, "")) {
		t.Fatalf("error = %v, want code %s", err, apperrors.CodeStatUnknownName)
	}
}

func TestSetBaseClampsAndRederivesCap(t *testing.T) {
	var v StatVector
	if err := v.SetBase(StatFitness, 150); err != nil {
		t.Fatalf("SetBase returned error: %v", err)
	}
	s, _ := v.Stat(StatFitness)
	if s.Base != 100 {
		t.Fatalf("base = %d, want 100", s.Base)
	}

	if err := v.SetCurrent(StatFitness, 200); err != nil {
		t.Fatalf("SetCurrent returned error: %v", err)
	}
	s, _ = v.Stat(StatFitness)
	if s.Current != 130 {
		t.Fatalf("current = %d, want absolute cap 130", s.Current)
	}

	// Lowering base drags the current cap down with it.
	if err := v.SetBase(StatFitness, 40); err != nil {
		t.Fatalf("SetBase returned error: %v", err)
	}
	s, _ = v.Stat(StatFitness)
	if s.Current != 70 {
		t.Fatalf("current = %d, want re-clamped 70", s.Current)
	}
}

func TestCurrentCap(t *testing.T) {
	tests := []struct {
		base int
		want int
	}{
		{0, 30},
		{50, 80},
		{99, 129},
		{100, 130},
	}
	for _, tc := range tests {
		if got := CurrentCap(tc.base); got != tc.want {
			t.Fatalf("CurrentCap(%d) = %d, want %d", tc.base, got, tc.want)
		}
	}
}

func TestDiminishingGain(t *testing.T) {
	tests := []struct {
		name    string
		gain    int
		current int
		want    int
	}{
		{"untrained", 10, 0, 10},
		{"halfway", 10, 75, 5},
		{"at ceiling", 10, 150, 0},
		{"above ceiling", 10, 200, 0},
		{"zero gain", 0, 10, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DiminishingGain(tc.gain, tc.current); got != tc.want {
				t.Fatalf("DiminishingGain(%d, %d) = %d, want %d", tc.gain, tc.current, got, tc.want)
			}
		})
	}
}

func TestDiminishingGainMonotone(t *testing.T) {
	previous := DiminishingGain(20, 0)
	for current := 1; current <= 160; current++ {
		got := DiminishingGain(20, current)
		if got > previous {
			t.Fatalf("gain increased from %d to %d at current=%d", previous, got, current)
		}
		previous = got
	}
}

func TestApplyPenaltyFloorsAtBase(t *testing.T) {
	var v StatVector
	if err := v.SetBase(StatPoise, 40); err != nil {
		t.Fatalf("SetBase returned error: %v", err)
	}
	if err := v.SetCurrent(StatPoise, 55); err != nil {
		t.Fatalf("SetCurrent returned error: %v", err)
	}

	applied, err := v.ApplyPenalty(StatPoise, 100)
	if err != nil {
		t.Fatalf("ApplyPenalty returned error: %v", err)
	}
	if applied != 15 {
		t.Fatalf("applied = %d, want 15 (surplus only)", applied)
	}
	s, _ := v.Stat(StatPoise)
	if s.Current != 40 {
		t.Fatalf("current = %d, want base floor 40", s.Current)
	}
}

func TestApplyGainUsesDiminishingReturns(t *testing.T) {
	var v StatVector
	if err := v.SetBase(StatKnowledge, 80); err != nil {
		t.Fatalf("SetBase returned error: %v", err)
	}
	if err := v.SetCurrent(StatKnowledge, 75); err != nil {
		t.Fatalf("SetCurrent returned error: %v", err)
	}

	applied, err := v.ApplyGain(StatKnowledge, 10)
	if err != nil {
		t.Fatalf("ApplyGain returned error: %v", err)
	}
	if applied != 5 {
		t.Fatalf("applied = %d, want 5 at current=75", applied)
	}
}

func TestCalculateSurplusConversion(t *testing.T) {
	tests := []struct {
		name       string
		base       int
		current    int
		wantGrowth int
		wantDecay  int
	}{
		{"worked example", 30, 46, 4, 8},
		{"no surplus", 50, 50, 0, 0},
		{"deficit", 50, 40, 0, 0},
		{"growth capped at base 100", 99, 120, 1, 11}, // raw growth 5 clipped to 1
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			growth, decay := CalculateSurplusConversion(tc.base, tc.current)
			if growth != tc.wantGrowth || decay != tc.wantDecay {
				t.Fatalf("CalculateSurplusConversion(%d, %d) = (%d, %d), want (%d, %d)",
					tc.base, tc.current, growth, decay, tc.wantGrowth, tc.wantDecay)
			}
		})
	}
}

func TestConvertSurplusWorkedExample(t *testing.T) {
	var v StatVector
	if err := v.SetBase(StatFitness, 30); err != nil {
		t.Fatalf("SetBase returned error: %v", err)
	}
	if err := v.SetCurrent(StatFitness, 46); err != nil {
		t.Fatalf("SetCurrent returned error: %v", err)
	}

	conversions := v.ConvertSurplus()
	if len(conversions) != len(StatNames) {
		t.Fatalf("conversion records = %d, want %d", len(conversions), len(StatNames))
	}

	fitness := conversions[0]
	if fitness.Stat != StatFitness {
		t.Fatalf("first record stat = %s, want fitness", fitness.Stat)
	}
	if fitness.BaseAfter != 34 || fitness.CurrentAfter != 38 {
		t.Fatalf("after = (%d, %d), want (34, 38)", fitness.BaseAfter, fitness.CurrentAfter)
	}
}

func TestConvertSurplusInvariants(t *testing.T) {
	for base := 0; base <= 100; base += 10 {
		for surplus := 0; surplus <= 30; surplus += 5 {
			var v StatVector
			if err := v.SetBase(StatWit, base); err != nil {
				t.Fatalf("SetBase returned error: %v", err)
			}
			if err := v.SetCurrent(StatWit, base+surplus); err != nil {
				t.Fatalf("SetCurrent returned error: %v", err)
			}

			v.ConvertSurplus()

			s, _ := v.Stat(StatWit)
			if s.Base > 100 {
				t.Fatalf("base %d exceeded 100 (start base %d surplus %d)", s.Base, base, surplus)
			}
			if s.Current < 0 || s.Current > CurrentCap(s.Base) {
				t.Fatalf("current %d outside [0, %d] (start base %d surplus %d)",
					s.Current, CurrentCap(s.Base), base, surplus)
			}
		}
	}
}
