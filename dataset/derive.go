package dataset

import (
	"time"

	"accident-analytics-api/models"
)

// Accepted calendar-date layouts. The dataset mixes ISO dates with
// day-first GB formats.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
}

// DeriveFields fills Year, Month, Hour, Weekday and Date on every
// record from its raw date/time strings. A date that fails to parse
// leaves the calendar fields nil and the row in place; a time that is
// not HH:MM leaves only Hour nil. Derivation always starts from the raw
// strings, so running it again on already-derived records is a no-op.
func DeriveFields(recs []models.AccidentRecord) {
	for i := range recs {
		deriveRecord(&recs[i])
	}
}

func deriveRecord(r *models.AccidentRecord) {
	r.Date = time.Time{}
	r.Year, r.Month, r.Hour = nil, nil, nil
	r.Weekday = ""

	if d, ok := parseDate(r.RawDate); ok {
		r.Date = d
		y, m := d.Year(), int(d.Month())
		r.Year, r.Month = &y, &m
		r.Weekday = d.Weekday().String()
	}
	if h, ok := parseHour(r.RawTime); ok {
		r.Hour = &h
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// parseHour extracts the hour from a strict HH:MM string.
func parseHour(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}
