package inventory

import "strings"

// predicate is one named hard filter. Naming the filters keeps them testable
// individually instead of composing anonymous closures.
type predicate struct {
	name  string
	match func(Vehicle) bool
}

// predicatesFor builds the ordered filter chain for the given criteria.
// Unset criteria contribute no predicate; the availability check is a fixed
// business rule and is always present.
func predicatesFor(c SearchCriteria) []predicate {
	var preds []predicate

	if c.BudgetMax > 0 {
		limit := float64(c.BudgetMax)
		preds = append(preds, predicate{"budget", func(v Vehicle) bool {
			return v.Price <= limit
		}})
	}

	if c.BodyStyle != "" {
		style := c.BodyStyle
		preds = append(preds, predicate{"body_style", func(v Vehicle) bool {
			return strings.EqualFold(v.BodyStyle, style)
		}})
	}

	if c.Color != "" {
		want := strings.ToLower(c.Color)
		preds = append(preds, predicate{"color", func(v Vehicle) bool {
			return strings.Contains(strings.ToLower(v.Color), want)
		}})
	}

	preds = append(preds, predicate{"available", Vehicle.Available})

	return preds
}

// Filter applies the criteria's hard filters to the catalog with
// short-circuiting AND, preserving catalog order. It never fails; criteria
// that are unset simply do not filter.
func Filter(catalog []Vehicle, c SearchCriteria) []Vehicle {
	preds := predicatesFor(c)

	var out []Vehicle
	for _, v := range catalog {
		keep := true
		for _, p := range preds {
			if !p.match(v) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, v)
		}
	}
	return out
}
