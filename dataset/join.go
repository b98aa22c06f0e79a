package dataset

import "accident-analytics-api/models"

// InnerJoin merges the two sources on Accident_Index. Only keys present
// in both inputs survive. The source files keep the key unique per
// file; if either side ever carries duplicates the join yields the
// cross-product of the matching rows, standard inner-join semantics.
func InnerJoin(accidents []AccidentRow, bikers []BikerRow) []models.AccidentRecord {
	byID := make(map[string][]BikerRow, len(bikers))
	for _, b := range bikers {
		byID[b.AccidentID] = append(byID[b.AccidentID], b)
	}

	var out []models.AccidentRecord
	for _, a := range accidents {
		matches, ok := byID[a.AccidentID]
		if !ok {
			continue
		}
		for _, b := range matches {
			out = append(out, models.AccidentRecord{
				AccidentID:    a.AccidentID,
				RawDate:       a.Date,
				RawTime:       a.Time,
				Severity:      a.Severity,
				NumVehicles:   a.NumVehicles,
				NumCasualties: a.NumCasualties,
				SpeedLimit:    a.SpeedLimit,
				RoadType:      a.RoadType,
				Weather:       a.Weather,
				Light:         a.Light,
				RoadSurface:   a.RoadSurface,
				Gender:        b.Gender,
				AgeGroup:      b.AgeGroup,
			})
		}
	}
	return out
}
