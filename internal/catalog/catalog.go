// Package catalog defines the activity catalog: the config-as-data
// records describing what a character can do, at what cost, and with
// what outcome profile. Stores load these records; the rules engine
// consumes them without knowing where they came from.
package catalog

import (
	"strings"

	apperrors "github.com/louisbranch/everyday.space/internal/platform/errors"
	"github.com/louisbranch/everyday.space/internal/sim"
)

// Category groups activities by the kind of day they fill.
type Category string

const (
	CategoryTraining Category = "training"
	CategoryWork     Category = "work"
	CategorySocial   Category = "social"
	CategoryLeisure  Category = "leisure"
	CategoryRest     Category = "rest"
)

// Categories lists every known category.
var Categories = []Category{
	CategoryTraining,
	CategoryWork,
	CategorySocial,
	CategoryLeisure,
	CategoryRest,
}

// LocationHome is the character's own home. Some rules special-case it;
// use the predicates below rather than comparing against the literal.
const LocationHome = "home"

// Activity is one catalog entry. Costs are paid up front; Difficulty
// feeds the outcome resolver DC; Profile drives effect generation.
type Activity struct {
	ID       string
	Name     string
	Category Category
	Location string

	TimeCost   int // minutes
	EnergyCost int
	MoneyCost  int

	Difficulty    int
	RelevantStats []sim.StatName
	Profile       sim.EffectProfile
}

// Validate checks the record is internally consistent.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return apperrors.New(apperrors.CodeCatalogInvalidActivity, "activity id is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return apperrors.WithMetadata(apperrors.CodeCatalogInvalidActivity, "activity name is required",
			map[string]string{"activity_id": a.ID})
	}
	if !knownCategory(a.Category) {
		return apperrors.WithMetadata(apperrors.CodeCatalogInvalidActivity, "unknown activity category",
			map[string]string{"activity_id": a.ID, "category": string(a.Category)})
	}
	if a.TimeCost < 0 || a.EnergyCost < 0 || a.MoneyCost < 0 {
		return apperrors.WithMetadata(apperrors.CodeCatalogInvalidActivity, "activity costs must be non-negative",
			map[string]string{"activity_id": a.ID})
	}
	for _, name := range a.RelevantStats {
		var probe sim.StatVector
		if _, err := probe.Stat(name); err != nil {
			return apperrors.WithMetadata(apperrors.CodeCatalogInvalidActivity, "unknown relevant stat",
				map[string]string{"activity_id": a.ID, "stat": string(name)})
		}
	}
	if err := a.Profile.Validate(); err != nil {
		return apperrors.Wrap(apperrors.CodeCatalogInvalidActivity, "invalid effect profile", err)
	}
	return nil
}

// AllowsSocialEncounter reports whether a social encounter may spawn
// during this activity. Encounters never spawn at home.
func (a Activity) AllowsSocialEncounter() bool {
	return a.Location != LocationHome
}

// IsSocial reports whether resolving this activity composes social
// difficulty from relationship state.
func (a Activity) IsSocial() bool {
	return a.Category == CategorySocial
}

func knownCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
