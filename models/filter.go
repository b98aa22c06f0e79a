package models

import (
	"sort"
	"strconv"
	"strings"
)

// FilterParams is one dashboard filter selection. Year bounds are
// inclusive; zero bounds leave that side open. For each categorical
// dimension a nil slice means the dimension is unconstrained, while an
// empty non-nil slice selects nothing. The empty string selects rows
// whose value is absent.
type FilterParams struct {
	YearMin int `json:"year_min"`
	YearMax int `json:"year_max"`

	Severities []string `json:"severity"`
	Genders    []string `json:"gender"`
	Weathers   []string `json:"weather"`
	AgeGroups  []string `json:"age_group"`
}

// CacheKey renders the params into a stable string usable as a redis
// key suffix. Set order does not matter: identical selections produce
// identical keys.
func (p FilterParams) CacheKey() string {
	var b strings.Builder
	b.WriteString("y=")
	b.WriteString(strconv.Itoa(p.YearMin))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(p.YearMax))
	for _, dim := range []struct {
		tag string
		set []string
	}{
		{"sev", p.Severities},
		{"gen", p.Genders},
		{"wea", p.Weathers},
		{"age", p.AgeGroups},
	} {
		b.WriteByte(':')
		b.WriteString(dim.tag)
		b.WriteByte('=')
		if dim.set == nil {
			b.WriteByte('*')
			continue
		}
		sorted := make([]string, len(dim.set))
		copy(sorted, dim.set)
		sort.Strings(sorted)
		b.WriteString(strings.Join(sorted, ","))
	}
	return b.String()
}
