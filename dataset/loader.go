package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Source column names, as shipped in the GB bicycle-accident dataset.
const (
	colAccidentID    = "Accident_Index"
	colDate          = "Date"
	colTime          = "Time"
	colSeverity      = "Severity"
	colNumVehicles   = "Number_of_Vehicles"
	colNumCasualties = "Number_of_Casualties"
	colSpeedLimit    = "Speed_limit"
	colRoadType      = "Road_type"
	colWeather       = "Weather_conditions"
	colLight         = "Light_conditions"
	colRoadSurface   = "Road_conditions"
	colGender        = "Gender"
	colAgeGroup      = "Age_Grp"
)

var accidentColumns = []string{
	colAccidentID, colDate, colTime, colSeverity,
	colNumVehicles, colNumCasualties, colSpeedLimit,
	colRoadType, colWeather, colLight, colRoadSurface,
}

var bikerColumns = []string{colAccidentID, colGender, colAgeGroup}

// AccidentRow is one raw row of Accidents.csv. Date and Time stay as
// the source strings; derivation happens after the join.
type AccidentRow struct {
	AccidentID    string
	Date          string
	Time          string
	Severity      string
	NumVehicles   int
	NumCasualties int
	SpeedLimit    int
	RoadType      *string
	Weather       *string
	Light         *string
	RoadSurface   *string
}

// BikerRow is one raw row of Bikers.csv.
type BikerRow struct {
	AccidentID string
	Gender     *string
	AgeGroup   *string
}

// LoadAccidents reads Accidents.csv. The header must contain every
// required accident column; extra columns are ignored.
func LoadAccidents(path string) ([]AccidentRow, error) {
	var rows []AccidentRow
	err := readCSV(path, accidentColumns, func(get func(string) string) {
		rows = append(rows, AccidentRow{
			AccidentID:    get(colAccidentID),
			Date:          get(colDate),
			Time:          get(colTime),
			Severity:      get(colSeverity),
			NumVehicles:   atoiOrZero(get(colNumVehicles)),
			NumCasualties: atoiOrZero(get(colNumCasualties)),
			SpeedLimit:    atoiOrZero(get(colSpeedLimit)),
			RoadType:      optional(get(colRoadType)),
			Weather:       optional(get(colWeather)),
			Light:         optional(get(colLight)),
			RoadSurface:   optional(get(colRoadSurface)),
		})
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadBikers reads Bikers.csv.
func LoadBikers(path string) ([]BikerRow, error) {
	var rows []BikerRow
	err := readCSV(path, bikerColumns, func(get func(string) string) {
		rows = append(rows, BikerRow{
			AccidentID: get(colAccidentID),
			Gender:     optional(get(colGender)),
			AgeGroup:   optional(get(colAgeGroup)),
		})
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// readCSV streams a CSV file, validates the header against the required
// column set, and calls visit once per data row with a by-name
// accessor. Field counts are enforced by the reader: a ragged row is a
// ParseError, not a silently padded record.
func readCSV(path string, required []string, visit func(get func(string) string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &SchemaError{File: name, Missing: required}
		}
		return &ParseError{File: name, Row: 1, Err: err}
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{File: name, Missing: missing}
	}

	row := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &ParseError{File: name, Row: row + 1, Err: err}
		}
		row++
		visit(func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		})
	}
}

// optional maps an empty cell to nil.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// atoiOrZero coerces numeric cells the way the source dataset needs:
// counts and limits are plain integers, anything unparseable counts as
// zero rather than failing the load.
func atoiOrZero(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
