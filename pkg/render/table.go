package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TitleParts carries the requested query parameters for the zero-row title
// fallback.
type TitleParts struct {
	Country   string
	Indicator string
	StartYear int
	EndYear   int
}

// Options configures one Build call.
type Options struct {
	// Profile selects plain or rich output.
	Profile Profile

	// YearKey names the column holding the observation year. Required for
	// sorting and for the min/max span in the title.
	YearKey string

	// CountryKey and IndicatorKey name the label columns used for the
	// title when rows exist.
	CountryKey   string
	IndicatorKey string

	// SortYearDesc re-sorts rows most-recent-first before rendering.
	// This is a presentation policy, not a hidden side effect: the caller
	// decides per profile whether consumers expect it.
	SortYearDesc bool
}

// Table is the rendered output: both textual representations plus the rows
// they were built from (after any re-sort) and the derived title.
type Table struct {
	Title    string   `json:"title"`
	Columns  []Column `json:"columns"`
	Rows     []Row    `json:"rows"`
	Markdown string   `json:"markdown"`
	HTML     string   `json:"html,omitempty"`
}

// Build renders rows into a Table. rows is not mutated; sorting operates on
// a copy.
func Build(cols []Column, rows []Row, fallback TitleParts, opts Options) Table {
	out := make([]Row, len(rows))
	copy(out, rows)

	if opts.SortYearDesc && opts.YearKey != "" {
		sortYearDesc(out, opts.YearKey)
	}

	title := buildTitle(out, fallback, opts)
	if opts.Profile == ProfileRich {
		title = "**" + title + "**"
	}

	t := Table{
		Title:    title,
		Columns:  cols,
		Rows:     out,
		Markdown: MarkdownTable(cols, out),
	}
	if opts.Profile == ProfileRich {
		t.HTML = HTMLTable(cols, out)
	}
	return t
}

// PlainTitle strips the decoration markers from a table title.
func PlainTitle(title string) string {
	return strings.Trim(title, "*")
}

// buildTitle derives "<Country> - <Indicator> (<minYear>-<maxYear>)" from
// the rows, falling back to the requested parameters when no rows exist.
func buildTitle(rows []Row, fallback TitleParts, opts Options) string {
	if len(rows) == 0 {
		return fmt.Sprintf("%s - %s (%d-%d)",
			fallback.Country, fallback.Indicator, fallback.StartYear, fallback.EndYear)
	}

	minYear, maxYear := yearSpan(rows, opts.YearKey)
	country := rows[0][opts.CountryKey]
	indicator := rows[0][opts.IndicatorKey]
	if country == "" {
		country = fallback.Country
	}
	if indicator == "" {
		indicator = fallback.Indicator
	}
	return fmt.Sprintf("%s - %s (%s-%s)", country, indicator, minYear, maxYear)
}

func yearSpan(rows []Row, yearKey string) (minYear, maxYear string) {
	minYear, maxYear = rows[0][yearKey], rows[0][yearKey]
	for _, row := range rows[1:] {
		y := row[yearKey]
		if yearLess(y, minYear) {
			minYear = y
		}
		if yearLess(maxYear, y) {
			maxYear = y
		}
	}
	return minYear, maxYear
}

func sortYearDesc(rows []Row, yearKey string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return yearLess(rows[j][yearKey], rows[i][yearKey])
	})
}

// yearLess compares years numerically, falling back to lexicographic order
// for non-numeric values.
func yearLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
