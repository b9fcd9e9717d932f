package sim

import "testing"

func TestComposeSocialDifficulty(t *testing.T) {
	tests := []struct {
		name               string
		activityDifficulty int
		state              RelationshipState
		traitCompatibility int
		wantDifficulty     int
		wantDC             int
	}{
		{"stranger baseline", 20, StateStranger, 0, 20, 120},
		{"partner discount", 20, StatePartner, 0, 5, 105},
		{"enemy surcharge", 0, StateEnemy, 0, 30, 130},
		{"positive compatibility reduces dc", 10, StateStranger, 25, -15, 85},
		{"negative compatibility raises dc", 10, StateStranger, -15, 25, 125},
		{"dc can collapse below base", -30, StatePartner, 40, -85, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			composed := ComposeSocialDifficulty(tc.activityDifficulty, tc.state, tc.traitCompatibility)
			if composed.Difficulty != tc.wantDifficulty {
				t.Fatalf("difficulty = %d, want %d", composed.Difficulty, tc.wantDifficulty)
			}
			if composed.FinalDC != tc.wantDC {
				t.Fatalf("final dc = %d, want %d", composed.FinalDC, tc.wantDC)
			}
		})
	}
}

func TestComposeSocialDifficultyBreakdown(t *testing.T) {
	composed := ComposeSocialDifficulty(15, StateFriend, 10)

	// base 100, activity 15, relationship -8, traits -10.
	sum := 0
	for _, c := range composed.Breakdown {
		if c.Value == 0 {
			t.Fatalf("zero-valued contributor %q must be omitted", c.Source)
		}
		sum += c.Value
	}
	if sum != composed.FinalDC {
		t.Fatalf("breakdown sums to %d, want final dc %d", sum, composed.FinalDC)
	}
	if len(composed.Breakdown) != 4 {
		t.Fatalf("contributors = %d, want 4", len(composed.Breakdown))
	}
}

func TestComposeSocialDifficultyOmitsZeroContributors(t *testing.T) {
	composed := ComposeSocialDifficulty(0, StateStranger, 0)

	// Only the base DC survives; zero contributors stay in the sum.
	if len(composed.Breakdown) != 1 {
		t.Fatalf("contributors = %d, want 1 (base only)", len(composed.Breakdown))
	}
	if composed.Breakdown[0].Source != DifficultySourceBase {
		t.Fatalf("sole contributor = %q, want base", composed.Breakdown[0].Source)
	}
	if composed.FinalDC != BaseDC {
		t.Fatalf("final dc = %d, want %d", composed.FinalDC, BaseDC)
	}
}
