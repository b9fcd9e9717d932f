package catalog

import "github.com/louisbranch/everyday.space/internal/catalog/filter"

// FilterFields declares the activity fields listing filters may use.
func FilterFields() filter.Fields {
	return filter.Fields{
		"id":          filter.FieldString,
		"name":        filter.FieldString,
		"category":    filter.FieldString,
		"location":    filter.FieldString,
		"difficulty":  filter.FieldInt,
		"time_cost":   filter.FieldInt,
		"energy_cost": filter.FieldInt,
		"money_cost":  filter.FieldInt,
	}
}

// FilterValue resolves a declared filter field against this activity.
func (a Activity) FilterValue(name string) (any, bool) {
	switch name {
	case "id":
		return a.ID, true
	case "name":
		return a.Name, true
	case "category":
		return string(a.Category), true
	case "location":
		return a.Location, true
	case "difficulty":
		return int64(a.Difficulty), true
	case "time_cost":
		return int64(a.TimeCost), true
	case "energy_cost":
		return int64(a.EnergyCost), true
	case "money_cost":
		return int64(a.MoneyCost), true
	default:
		return nil, false
	}
}
