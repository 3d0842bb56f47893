// Package worldbank queries the World Bank v2 indicator API and normalizes
// its responses into flat observation rows.
package worldbank

import (
	"fmt"

	"github.com/databoard/databoard/pkg/defaults"
)

// Query identifies one indicator series request.
type Query struct {
	// Country is an ISO-3166 alpha-3 country code, e.g. "CAN".
	Country string `json:"country"`

	// Indicator is a World Bank indicator code, e.g. "SP.POP.TOTL".
	Indicator string `json:"indicator"`

	// StartYear and EndYear bound the requested date range (inclusive).
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`

	// Limit caps the number of observations. Clamped into
	// [defaults.LimitMin, defaults.LimitMax] before use, never rejected.
	Limit int `json:"limit"`
}

// Observation is one (year, value) data point after normalization.
// Null-valued upstream records never become Observations.
type Observation struct {
	Year      string  `json:"year"`
	Value     float64 `json:"value"`
	Country   string  `json:"country"`
	Indicator string  `json:"indicator"`
}

// ApplyDefaults fills zero-valued fields with the documented defaults.
// currentYear supplies the default end year. A zero Limit is treated as
// unset; call sites that can observe an explicit zero (tool arguments,
// flags) clamp it to the minimum before calling.
func (q *Query) ApplyDefaults(currentYear int) {
	if q.Country == "" {
		q.Country = defaults.Country
	}
	if q.Indicator == "" {
		q.Indicator = defaults.Indicator
	}
	if q.StartYear == 0 {
		q.StartYear = defaults.StartYear
	}
	if q.EndYear == 0 {
		q.EndYear = currentYear
	}
	if q.Limit == 0 {
		q.Limit = defaults.Limit
	}
	q.Limit = ClampLimit(q.Limit)
}

// Validate checks the query parameters against the documented bounds.
// A start year after the end year is a user error and must be reported
// before any outbound request is issued.
func (q Query) Validate() error {
	if len(q.Country) != defaults.CountryCodeLen {
		return fmt.Errorf("country code must be exactly %d characters, got %q", defaults.CountryCodeLen, q.Country)
	}
	if len(q.Indicator) < defaults.IndicatorMinLen {
		return fmt.Errorf("indicator code must be at least %d characters, got %q", defaults.IndicatorMinLen, q.Indicator)
	}
	if q.StartYear < defaults.YearMin || q.StartYear > defaults.YearMax {
		return fmt.Errorf("start year %d outside [%d, %d]", q.StartYear, defaults.YearMin, defaults.YearMax)
	}
	if q.EndYear < defaults.YearMin || q.EndYear > defaults.YearMax {
		return fmt.Errorf("end year %d outside [%d, %d]", q.EndYear, defaults.YearMin, defaults.YearMax)
	}
	if q.StartYear > q.EndYear {
		return fmt.Errorf("start year %d is after end year %d", q.StartYear, q.EndYear)
	}
	return nil
}

// ClampLimit forces n into the accepted limit range.
func ClampLimit(n int) int {
	if n < defaults.LimitMin {
		return defaults.LimitMin
	}
	if n > defaults.LimitMax {
		return defaults.LimitMax
	}
	return n
}
