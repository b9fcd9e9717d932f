package sim

// StatTracking holds the per-player-per-day counters consumed by the
// lifestyle pattern evaluator. Streaks span days and are advanced by the
// evaluator; the daily fields are reset at the sleep boundary.
type StatTracking struct {
	WorkStreak      int
	RestStreak      int
	BurnoutStreak   int
	LateNightStreak int

	// MinEnergy is the lowest energy level reached today.
	MinEnergy int
	// StatsTrained lists the stats that received activity gains today.
	StatsTrained []StatName
}

// RecordEnergy lowers the daily energy floor when a new low is reached.
func (t *StatTracking) RecordEnergy(level int) {
	if level < t.MinEnergy {
		t.MinEnergy = level
	}
}

// RecordTraining notes that a stat received a gain today. Each stat is
// recorded at most once per day.
func (t *StatTracking) RecordTraining(name StatName) {
	for _, trained := range t.StatsTrained {
		if trained == name {
			return
		}
	}
	t.StatsTrained = append(t.StatsTrained, name)
}

// ResetDaily clears the per-day counters for a new day. Streaks persist;
// the evaluator owns advancing and breaking them.
func (t *StatTracking) ResetDaily(currentEnergy int) {
	t.MinEnergy = currentEnergy
	t.StatsTrained = nil
}
