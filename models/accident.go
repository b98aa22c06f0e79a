package models

import "time"

// Severity values as they appear in the source data.
const (
	SeverityFatal   = "Fatal"
	SeveritySerious = "Serious"
	SeveritySlight  = "Slight"
)

// AccidentRecord is one row of the canonical table: an accident joined
// with its biker-side attributes, plus the calendar fields derived from
// the raw date/time strings. Nullable source columns and derived fields
// that can fail to parse are pointers; nil means the value is absent.
//
// RawDate and RawTime keep the original strings so derivation can be
// re-run without touching already-derived fields.
type AccidentRecord struct {
	AccidentID string `json:"accident_id"`

	RawDate string `json:"-"`
	RawTime string `json:"-"`

	Date    time.Time `json:"date"` // zero when RawDate failed to parse
	Year    *int      `json:"year"`
	Month   *int      `json:"month"`
	Hour    *int      `json:"hour"` // nil when RawTime is not strict HH:MM
	Weekday string    `json:"weekday"`

	Severity      string `json:"severity"`
	NumVehicles   int    `json:"number_of_vehicles"`
	NumCasualties int    `json:"number_of_casualties"`
	SpeedLimit    int    `json:"speed_limit"`

	RoadType    *string `json:"road_type"`
	Weather     *string `json:"weather_conditions"`
	Light       *string `json:"light_conditions"`
	RoadSurface *string `json:"road_conditions"`

	Gender   *string `json:"gender"`
	AgeGroup *string `json:"age_group"`
}
