package report

import (
	"bytes"
	"strings"
	"testing"

	"accident-analytics-api/models"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func reportTable() []models.AccidentRecord {
	return []models.AccidentRecord{
		{AccidentID: "A1", Year: intPtr(2016), Hour: intPtr(8), Weekday: "Monday", Severity: models.SeveritySlight, NumVehicles: 2, NumCasualties: 1, SpeedLimit: 30, Gender: strPtr("Male"), AgeGroup: strPtr("25 to 35"), Weather: strPtr("Clear"), RoadSurface: strPtr("Dry"), Light: strPtr("Daylight")},
		{AccidentID: "A2", Year: intPtr(2017), Hour: intPtr(17), Weekday: "Friday", Severity: models.SeverityFatal, NumVehicles: 1, NumCasualties: 2, SpeedLimit: 60, Gender: strPtr("Female"), AgeGroup: strPtr("36 to 45"), Weather: strPtr("Raining"), RoadSurface: strPtr("Wet"), Light: strPtr("Darkness")},
		{AccidentID: "A3", Year: intPtr(2018), Hour: intPtr(8), Weekday: "Tuesday", Severity: models.SeveritySerious, NumVehicles: 2, NumCasualties: 1, SpeedLimit: 30, Gender: strPtr("Male"), AgeGroup: strPtr("25 to 35"), Weather: strPtr("Clear"), RoadSurface: strPtr("Dry"), Light: strPtr("Daylight")},
	}
}

func TestBuildChartData(t *testing.T) {
	data := BuildChartData(reportTable())

	if len(data.Yearly) != 3 || data.Yearly[0].Key != 2016 || data.Yearly[2].Key != 2018 {
		t.Errorf("unexpected yearly series: %+v", data.Yearly)
	}
	if len(data.Hourly) != 24 {
		t.Fatalf("hourly series must cover all 24 hours, got %d", len(data.Hourly))
	}
	if data.Hourly[8].Count != 2 || data.Hourly[17].Count != 1 || data.Hourly[3].Count != 0 {
		t.Errorf("unexpected hourly series: %+v", data.Hourly)
	}
	if len(data.Severity) != 3 || data.Severity[0].Value != models.SeverityFatal {
		t.Errorf("severity series must follow Fatal/Serious/Slight order: %+v", data.Severity)
	}
	if len(data.WeatherTop) != 2 || data.WeatherTop[0].Value != "Clear" {
		t.Errorf("unexpected weather ranking: %+v", data.WeatherTop)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, reportTable())
	out := buf.String()

	for _, want := range []string{
		"Dataset shape: 3 rows",
		"Date range: 2016 to 2018",
		"DESCRIPTIVE STATISTICS",
		"Number_of_Casualties",
		"Severity Distribution:",
		"Fatal: 1 (33.3%)",
		"Gender Distribution",
		"KEY INSIGHTS & RECOMMENDATIONS",
		"1. SEVERITY ANALYSIS:",
		"5. DEMOGRAPHIC INSIGHTS:",
		"Most affected age group: 25 to 35",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n---\n%s", want, out)
		}
	}
}

func TestRenderEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, nil)
	out := buf.String()

	if !strings.Contains(out, "Dataset shape: 0 rows") {
		t.Errorf("expected empty shape line, got:\n%s", out)
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("empty report must not contain NaN:\n%s", out)
	}
}
