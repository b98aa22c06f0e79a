package dataset

import (
	"reflect"
	"testing"

	"accident-analytics-api/models"
)

func TestDeriveFields(t *testing.T) {
	recs := []models.AccidentRecord{
		{AccidentID: "A1", RawDate: "2017-06-01", RawTime: "08:30"},
		{AccidentID: "A2", RawDate: "15/01/2018", RawTime: "17:05"},
	}
	DeriveFields(recs)

	first := recs[0]
	if first.Year == nil || *first.Year != 2017 {
		t.Fatalf("expected year 2017, got %v", first.Year)
	}
	if *first.Month != 6 || *first.Hour != 8 {
		t.Errorf("expected month 6 hour 8, got %d %d", *first.Month, *first.Hour)
	}
	if first.Weekday != "Thursday" {
		t.Errorf("2017-06-01 is a Thursday, got %q", first.Weekday)
	}

	second := recs[1]
	if second.Year == nil || *second.Year != 2018 || *second.Month != 1 {
		t.Errorf("day-first date not parsed: %+v", second)
	}
	if second.Weekday != "Monday" {
		t.Errorf("2018-01-15 is a Monday, got %q", second.Weekday)
	}
}

func TestDeriveFieldsBadDate(t *testing.T) {
	recs := []models.AccidentRecord{
		{AccidentID: "A1", RawDate: "not-a-date", RawTime: "08:30"},
	}
	DeriveFields(recs)

	r := recs[0]
	if r.Year != nil || r.Month != nil || r.Weekday != "" {
		t.Errorf("bad date must leave calendar fields unset: %+v", r)
	}
	if r.Hour == nil || *r.Hour != 8 {
		t.Errorf("a bad date must not affect the hour, got %v", r.Hour)
	}
}

func TestDeriveFieldsBadTime(t *testing.T) {
	tests := []string{"", "8.30", "25:00", "08:30:15", "noon"}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			recs := []models.AccidentRecord{{RawDate: "2017-06-01", RawTime: raw}}
			DeriveFields(recs)
			if recs[0].Hour != nil {
				t.Errorf("time %q should leave hour nil, got %d", raw, *recs[0].Hour)
			}
			if recs[0].Year == nil {
				t.Errorf("a bad time must not affect the date fields")
			}
		})
	}
}

func TestDeriveFieldsIdempotent(t *testing.T) {
	recs := []models.AccidentRecord{
		{AccidentID: "A1", RawDate: "2017-06-01", RawTime: "08:30"},
		{AccidentID: "A2", RawDate: "bad", RawTime: "bad"},
	}
	DeriveFields(recs)

	once := make([]models.AccidentRecord, len(recs))
	copy(once, recs)

	DeriveFields(recs)
	if !reflect.DeepEqual(once, recs) {
		t.Errorf("second derivation changed records:\nfirst:  %+v\nsecond: %+v", once, recs)
	}
}
