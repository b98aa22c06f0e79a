// Package report renders the one-shot exploratory summary of the
// canonical accident table as plain text, plus the chart series handed
// to an external renderer.
package report

import (
	"fmt"
	"io"
	"strings"

	"accident-analytics-api/models"
	"accident-analytics-api/stats"
)

const rule = "======================================================================"

// ChartData is the set of series a chart renderer consumes. The
// pipeline produces the numbers; drawing them is someone else's job.
type ChartData struct {
	Yearly     []models.SeriesPoint   `json:"yearly"`
	Severity   []models.CategoryCount `json:"severity"`
	Hourly     []models.SeriesPoint   `json:"hourly"`
	WeatherTop []models.CategoryCount `json:"weather_top"`
}

// BuildChartData assembles the four report charts: yearly trend,
// severity bar (Fatal/Serious/Slight order), 24-hour distribution and
// the six most common weather conditions.
func BuildChartData(recs []models.AccidentRecord) ChartData {
	weather := stats.CountBy(recs, stats.ByCategory(func(r models.AccidentRecord) *string { return r.Weather }))
	return ChartData{
		Yearly:     stats.SortedSeries(stats.CountBy(recs, stats.ByYear)),
		Severity:   stats.ReindexStrings(stats.CountBy(recs, stats.BySeverity), stats.SeverityOrder),
		Hourly:     stats.ReindexInts(stats.CountBy(recs, stats.ByHour), stats.Hours()),
		WeatherTop: stats.TopN(weather, 6),
	}
}

// Render writes the full text report.
func Render(w io.Writer, recs []models.AccidentRecord) {
	d := stats.Domains(recs)
	fmt.Fprintf(w, "Dataset shape: %d rows\n", len(recs))
	fmt.Fprintf(w, "Date range: %d to %d\n", d.YearMin, d.YearMax)

	section(w, "DESCRIPTIVE STATISTICS")
	renderDescribe(w, recs)
	renderDistributions(w, recs)

	section(w, "KEY INSIGHTS & RECOMMENDATIONS")
	renderInsights(w, recs)
	fmt.Fprintln(w, "\n"+rule)
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func renderDescribe(w io.Writer, recs []models.AccidentRecord) {
	columns := []struct {
		name string
		get  func(models.AccidentRecord) (float64, bool)
	}{
		{"Number_of_Vehicles", func(r models.AccidentRecord) (float64, bool) { return float64(r.NumVehicles), true }},
		{"Number_of_Casualties", func(r models.AccidentRecord) (float64, bool) { return float64(r.NumCasualties), true }},
		{"Speed_limit", func(r models.AccidentRecord) (float64, bool) { return float64(r.SpeedLimit), true }},
		{"Year", func(r models.AccidentRecord) (float64, bool) {
			if r.Year == nil {
				return 0, false
			}
			return float64(*r.Year), true
		}},
	}

	fmt.Fprintln(w, "\nNumerical Variables:")
	fmt.Fprintf(w, "  %-22s %8s %10s %10s %8s %8s %8s %8s %8s\n",
		"", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, col := range columns {
		vals := make([]float64, 0, len(recs))
		for _, r := range recs {
			if v, ok := col.get(r); ok {
				vals = append(vals, v)
			}
		}
		ds := stats.DescribeValues(vals)
		fmt.Fprintf(w, "  %-22s %8d %10.2f %10.2f %8.0f %8.0f %8.0f %8.0f %8.0f\n",
			col.name, ds.Count, ds.Mean, ds.Std, ds.Min, ds.Q25, ds.Median, ds.Q75, ds.Max)
	}
}

func renderDistributions(w io.Writer, recs []models.AccidentRecord) {
	total := len(recs)

	fmt.Fprintln(w, "\nSeverity Distribution:")
	for _, cc := range stats.ReindexStrings(stats.CountBy(recs, stats.BySeverity), stats.SeverityOrder) {
		pctVal := 0.0
		if total > 0 {
			pctVal = float64(cc.Count) / float64(total) * 100
		}
		fmt.Fprintf(w, "  %s: %d (%.1f%%)\n", cc.Value, cc.Count, pctVal)
	}

	categorical := []struct {
		title string
		get   func(models.AccidentRecord) *string
	}{
		{"Gender Distribution", func(r models.AccidentRecord) *string { return r.Gender }},
		{"Age Group Distribution", func(r models.AccidentRecord) *string { return r.AgeGroup }},
		{"Weather Conditions", func(r models.AccidentRecord) *string { return r.Weather }},
		{"Road Surface Conditions", func(r models.AccidentRecord) *string { return r.RoadSurface }},
		{"Light Conditions", func(r models.AccidentRecord) *string { return r.Light }},
	}
	for _, cat := range categorical {
		fmt.Fprintf(w, "\n%s:\n", cat.title)
		for _, cc := range stats.TopN(stats.CountBy(recs, stats.ByCategory(cat.get)), 0) {
			fmt.Fprintf(w, "  %s: %d\n", cc.Value, cc.Count)
		}
	}
}

func renderInsights(w io.Writer, recs []models.AccidentRecord) {
	ins := stats.ComputeInsights(recs)

	fmt.Fprintln(w, "\n1. SEVERITY ANALYSIS:")
	fmt.Fprintf(w, "   Fatal: %.2f%%\n", ins.FatalPct)
	fmt.Fprintf(w, "   Serious: %.2f%%\n", ins.SeriousPct)
	fmt.Fprintf(w, "   Combined Fatal/Serious: %.2f%%\n", ins.FatalPct+ins.SeriousPct)

	fmt.Fprintln(w, "\n2. TEMPORAL TREND:")
	fmt.Fprintf(w, "   Peak: %d (%d accidents)\n", ins.PeakYear, ins.PeakYearCount)
	fmt.Fprintf(w, "   Lowest: %d (%d accidents)\n", ins.LowestYear, ins.LowestYearCount)
	fmt.Fprintf(w, "   Long-term trend: %+.1f%% change\n", ins.TrendChangePct)
	if ins.TrendChangePct > 0 {
		fmt.Fprintln(w, "   -> Strengthen safety measures")
	} else {
		fmt.Fprintln(w, "   -> Maintain current policies")
	}

	fmt.Fprintln(w, "\n3. TIME OF DAY PATTERNS:")
	peaks := make([]string, 0, len(ins.PeakHours))
	for _, h := range ins.PeakHours {
		peaks = append(peaks, fmt.Sprintf("%d:00", h))
	}
	fmt.Fprintf(w, "   Peak hours: %s\n", strings.Join(peaks, ", "))
	fmt.Fprintf(w, "   Highest risk: %d:00 (%d accidents)\n", ins.HighestHour, ins.HighestCount)
	fmt.Fprintf(w, "   Morning rush (7-9 AM): %d accidents\n", ins.MorningRush)
	fmt.Fprintf(w, "   Evening rush (4-6 PM): %d accidents\n", ins.EveningRush)

	fmt.Fprintln(w, "\n4. WEATHER & ROAD CONDITIONS:")
	fmt.Fprintf(w, "   Clear weather: %.1f%% of accidents\n", ins.ClearWeatherPct)
	fmt.Fprintf(w, "   Dry roads: %.1f%% of accidents\n", ins.DryRoadPct)

	fmt.Fprintln(w, "\n5. DEMOGRAPHIC INSIGHTS:")
	fmt.Fprintf(w, "   Male cyclists: %.1f%% of accidents\n", ins.MalePct)
	fmt.Fprintf(w, "   Most affected age group: %s (%.1f%%)\n", ins.TopAgeGroup, ins.TopAgeGroupPct)
}
