package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"accident-analytics-api/models"
)

// ParseFilterParams reads the dashboard filter selection from query
// params: year_min, year_max, severity, gender, weather, age_group.
// Set params are comma-separated; an absent param leaves the dimension
// unconstrained, a present-but-empty one selects nothing, and an empty
// token (trailing comma) selects rows with no value in that column.
func ParseFilterParams(c *gin.Context) (models.FilterParams, error) {
	p := models.FilterParams{}

	var err error
	if p.YearMin, err = intQuery(c, "year_min"); err != nil {
		return p, err
	}
	if p.YearMax, err = intQuery(c, "year_max"); err != nil {
		return p, err
	}
	if p.YearMin != 0 && p.YearMax != 0 && p.YearMin > p.YearMax {
		return p, fmt.Errorf("year_min %d exceeds year_max %d", p.YearMin, p.YearMax)
	}

	p.Severities = setQuery(c, "severity")
	p.Genders = setQuery(c, "gender")
	p.Weathers = setQuery(c, "weather")
	p.AgeGroups = setQuery(c, "age_group")
	return p, nil
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s parameter, must be a non-negative integer", name)
	}
	return n, nil
}

func setQuery(c *gin.Context, name string) []string {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}
