package dataset

import "accident-analytics-api/models"

// Filter returns the records satisfying every dimension of p: the year
// range and all selected categorical sets must match (AND across
// dimensions, membership within one). The input is never mutated; the
// result is a fresh slice, so identical params over the same table
// always produce equal output.
func Filter(recs []models.AccidentRecord, p models.FilterParams) []models.AccidentRecord {
	out := make([]models.AccidentRecord, 0)
	for _, r := range recs {
		if !yearInRange(r.Year, p.YearMin, p.YearMax) {
			continue
		}
		if !inSet(p.Severities, &r.Severity) {
			continue
		}
		if !inSet(p.Genders, r.Gender) {
			continue
		}
		if !inSet(p.Weathers, r.Weather) {
			continue
		}
		if !inSet(p.AgeGroups, r.AgeGroup) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// yearInRange applies the inclusive bounds. A zero bound leaves that
// side open. Rows without a derived year fail any bounded range.
func yearInRange(year *int, min, max int) bool {
	if min == 0 && max == 0 {
		return true
	}
	if year == nil {
		return false
	}
	if min != 0 && *year < min {
		return false
	}
	if max != 0 && *year > max {
		return false
	}
	return true
}

// inSet reports whether v belongs to the selected set. A nil set means
// the dimension is unconstrained; an empty set matches nothing. A nil
// value matches only when the empty string was explicitly selected.
func inSet(set []string, v *string) bool {
	if set == nil {
		return true
	}
	for _, s := range set {
		if v == nil {
			if s == "" {
				return true
			}
			continue
		}
		if s == *v {
			return true
		}
	}
	return false
}
