package analytics

import (
	"strings"

	"restaurant-insights/internal/models"
)

// applyFilters returns the rows satisfying every predicate in the spec. The
// date range and any restaurant id constraint are already applied by the
// store; the remaining predicates run here so behavior is identical across
// database backends. The result preserves input order; ordering guarantees
// belong to the aggregators.
func applyFilters(rows []models.OrderWithRestaurant, spec FilterSpec) []models.OrderWithRestaurant {
	matched := make([]models.OrderWithRestaurant, 0, len(rows))
	for _, row := range rows {
		if matchesSpec(row, spec) {
			matched = append(matched, row)
		}
	}
	return matched
}

func matchesSpec(row models.OrderWithRestaurant, spec FilterSpec) bool {
	ts := row.OrderedAt.In(referenceTZ)

	if ts.Before(spec.From) || ts.After(spec.To) {
		return false
	}
	if spec.Search != "" &&
		!strings.Contains(strings.ToLower(row.RestaurantName), strings.ToLower(spec.Search)) {
		return false
	}
	if spec.Cuisine != "" && row.Cuisine != spec.Cuisine {
		return false
	}
	if spec.Location != "" && row.Location != spec.Location {
		return false
	}
	if spec.MinAmount != nil && row.OrderAmount.LessThan(*spec.MinAmount) {
		return false
	}
	if spec.MaxAmount != nil && row.OrderAmount.GreaterThan(*spec.MaxAmount) {
		return false
	}

	// Both hour bounds are inclusive. An inverted window (start > end) is a
	// legal spec that matches nothing; there is no wraparound.
	hour := ts.Hour()
	if spec.StartHour != nil && hour < *spec.StartHour {
		return false
	}
	if spec.EndHour != nil && hour > *spec.EndHour {
		return false
	}

	return true
}
