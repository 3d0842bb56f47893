// Package defaults provides canonical default values for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for all runtime configuration defaults.
//
// Usage:
//
//	q.Country = defaults.Country
//	req.Header.Set("Accept", defaults.ContentTypeJSON)
//
// DO NOT use hardcoded values like `Limit: 10` anywhere.
// Instead, reference the appropriate constant from this package.
package defaults

import "fmt"

// Version is the current Databoard version.
const Version = "1.2.0"

const (
	// ToolName is the machine name used in logs and telemetry.
	ToolName = "databoard"

	// ToolNameDisplay is the human-facing product name.
	ToolNameDisplay = "Databoard"
)

// UserAgent returns the standard User-Agent string for outbound requests.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", ToolName, Version)
}

// ============================================================================
// OPEN DATA QUERY SETTINGS
// ============================================================================
//
// Defaults and bounds for the World Bank indicator query tool.
// ============================================================================

const (
	// WorldBankBaseURL is the World Bank v2 API root.
	WorldBankBaseURL = "https://api.worldbank.org/v2"

	// WorldBankSource is the human-readable source label used in summaries.
	WorldBankSource = "World Bank Open Data"

	// Country is the default ISO-3166 alpha-3 country code.
	Country = "CAN"

	// Indicator is the default indicator code (total population).
	Indicator = "SP.POP.TOTL"

	// StartYear is the default query start year.
	StartYear = 2018

	// Limit is the default number of observations returned.
	Limit = 10
)

const (
	// YearMin and YearMax bound the accepted year range.
	YearMin = 1960
	YearMax = 2100

	// LimitMin and LimitMax bound the result limit. Out-of-range limits are
	// clamped into this range, never rejected.
	LimitMin = 1
	LimitMax = 20

	// CountryCodeLen is the required length of a country code.
	CountryCodeLen = 3

	// IndicatorMinLen is the minimum length of an indicator code.
	IndicatorMinLen = 3
)

// ============================================================================
// HTTP SETTINGS
// ============================================================================

const (
	// ContentTypeJSON is the JSON MIME type for Accept/Content-Type headers.
	ContentTypeJSON = "application/json"

	// OutboundRPS is the default outbound requests-per-second budget for the
	// upstream API. The World Bank API is a shared public service.
	OutboundRPS = 10
)

// ============================================================================
// EXIT CODES
// ============================================================================

const (
	// ExitOK indicates success.
	ExitOK = 0

	// ExitError indicates a runtime failure.
	ExitError = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 2
)
