package sim

// Starting resources for a freshly created character.
const (
	EnergyMaxDefault = 100
	MoneyDefault     = 500

	// DayStart is the first day of a character's life.
	DayStart = 1
)

// Resources holds the spendable pools an activity can cost or restore.
type Resources struct {
	Energy    int
	EnergyMax int
	Money     int
}

// PlayerCharacter is the plain player record exchanged with the
// persistence layer. The engine has no knowledge of how it is stored.
type PlayerCharacter struct {
	ID        string
	Archetype Archetype
	Stats     StatVector
	Resources Resources
	Location  string
	Day       int
	// ClockMinutes is the in-game time of day in minutes since midnight.
	ClockMinutes int
	Tracking     StatTracking
}

// NewPlayerCharacter creates a character from an archetype template with
// full resources at the start of day one.
func NewPlayerCharacter(id string, archetype Archetype) (PlayerCharacter, error) {
	stats, err := StartingStats(archetype)
	if err != nil {
		return PlayerCharacter{}, err
	}

	return PlayerCharacter{
		ID:        id,
		Archetype: archetype,
		Stats:     stats,
		Resources: Resources{
			Energy:    EnergyMaxDefault,
			EnergyMax: EnergyMaxDefault,
			Money:     MoneyDefault,
		},
		Day:          DayStart,
		ClockMinutes: WakeTimeMinutes,
		Tracking:     StatTracking{MinEnergy: EnergyMaxDefault},
	}, nil
}
