package sim

import (
	"fmt"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
)

// Sleep crediting constants.
const (
	// WakeTimeMinutes is the fixed wake time, 06:00.
	WakeTimeMinutes = 6 * 60
	// EarlyBedtimeCutoffMinutes is the bedtime (22:00) at or before which a
	// full night is always credited.
	EarlyBedtimeCutoffMinutes = 22 * 60

	FullSleepHours   = 8
	MinCreditedHours = 3

	// Energy restoration: 10 points per credited hour, capped at 80.
	EnergyPerHourSlept = 10
	EnergyRestoreCap   = 80

	minutesPerDay = 24 * 60
)

// SleepCredit derives the wake time and credited hours of sleep from a
// bedtime, using the fixed day-segment table:
//
//   - bedtime at or before 22:00 always wakes at 06:00 with a full 8 hours
//   - bedtime between 22:00 and midnight credits the whole hours until 06:00
//   - bedtime after midnight credits proportionally fewer hours, floored at
//     the 3-hour minimum
//
// Bedtime is minutes since midnight in [0, 1439].
func SleepCredit(bedtimeMinutes int) (wakeMinutes, hoursSlept int, err error) {
	if bedtimeMinutes < 0 || bedtimeMinutes >= minutesPerDay {
		return 0, 0, apperrors.WithMetadata(
			apperrors.CodeSleepInvalidBedtime,
			fmt.Sprintf("bedtime %d is outside 0..1439", bedtimeMinutes),
			map[string]string{"Bedtime": fmt.Sprintf("%d", bedtimeMinutes)},
		)
	}

	switch {
	case bedtimeMinutes >= WakeTimeMinutes && bedtimeMinutes <= EarlyBedtimeCutoffMinutes:
		return WakeTimeMinutes, FullSleepHours, nil
	case bedtimeMinutes > EarlyBedtimeCutoffMinutes:
		// Late evening: credit the whole hours remaining until 06:00.
		hours := (minutesPerDay - bedtimeMinutes + WakeTimeMinutes) / 60
		if hours > FullSleepHours {
			hours = FullSleepHours
		}
		return WakeTimeMinutes, hours, nil
	default:
		// Past midnight: proportionally fewer hours until the 06:00 wake,
		// never below the minimum.
		hours := (WakeTimeMinutes - bedtimeMinutes) / 60
		if hours < MinCreditedHours {
			hours = MinCreditedHours
		}
		return WakeTimeMinutes, hours, nil
	}
}

// RestoredEnergy converts credited hours of sleep into an energy refund:
// min(80, hours × 10). Capping against the player's energy maximum is the
// caller's concern.
func RestoredEnergy(hoursSlept int) int {
	if hoursSlept <= 0 {
		return 0
	}
	restored := hoursSlept * EnergyPerHourSlept
	if restored > EnergyRestoreCap {
		restored = EnergyRestoreCap
	}
	return restored
}

// ChangeComponent is one named contribution to a stat's net change during
// a sleep cycle.
type ChangeComponent struct {
	Source   string // component id, e.g. "pattern:early_riser"
	Category string // human category, e.g. "lifestyle", "overnight"
	Value    int
}

// Change component categories used by the sleep orchestrator.
const (
	ChangeCategoryLifestyle = "lifestyle"
	ChangeCategoryGrowth    = "growth"
	ChangeCategoryOvernight = "overnight"
)

// StatChangeBreakdown is the audit record for one stat across a single
// sleep cycle. It is built fresh each cycle and never mutated afterward.
type StatChangeBreakdown struct {
	Stat       StatName
	Before     Stat
	After      Stat
	Components []ChangeComponent
}
