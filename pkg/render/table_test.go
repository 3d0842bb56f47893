package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queryCols = []Column{
	{Key: "year", Label: "Year", Align: AlignRight},
	{Key: "value", Label: "Value", Align: AlignRight},
	{Key: "country", Label: "Country", Align: AlignLeft},
	{Key: "indicator", Label: "Indicator", Align: AlignLeft},
}

var queryOpts = Options{
	YearKey:      "year",
	CountryKey:   "country",
	IndicatorKey: "indicator",
}

func TestBuildTitleFromRows(t *testing.T) {
	rows := []Row{
		{"year": "2018", "value": "50", "country": "France", "indicator": "Population, total"},
		{"year": "2020", "value": "100", "country": "France", "indicator": "Population, total"},
	}
	fallback := TitleParts{Country: "FRA", Indicator: "SP.POP.TOTL", StartYear: 2000, EndYear: 2001}

	tbl := Build(queryCols, rows, fallback, queryOpts)
	assert.Equal(t, "France - Population, total (2018-2020)", tbl.Title)
}

func TestBuildTitleFallbackZeroRows(t *testing.T) {
	fallback := TitleParts{Country: "FRA", Indicator: "SP.POP.TOTL", StartYear: 2018, EndYear: 2020}

	tbl := Build(queryCols, nil, fallback, queryOpts)
	assert.Equal(t, "FRA - SP.POP.TOTL (2018-2020)", tbl.Title)
	assert.Empty(t, tbl.Rows)
	assert.NotEmpty(t, tbl.Markdown, "empty table still renders header and divider")
}

func TestBuildRichProfile(t *testing.T) {
	rows := []Row{
		{"year": "2018", "value": "50", "country": "France", "indicator": "Population, total"},
		{"year": "2020", "value": "100", "country": "France", "indicator": "Population, total"},
	}
	opts := queryOpts
	opts.Profile = ProfileRich
	opts.SortYearDesc = true

	tbl := Build(queryCols, rows, TitleParts{}, opts)

	assert.Equal(t, "**France - Population, total (2018-2020)**", tbl.Title)
	assert.Equal(t, "France - Population, total (2018-2020)", PlainTitle(tbl.Title))
	assert.NotEmpty(t, tbl.HTML)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "2020", tbl.Rows[0]["year"], "rich profile sorts most recent first")
	assert.Equal(t, "2018", tbl.Rows[1]["year"])

	// Input slice order is untouched.
	assert.Equal(t, "2018", rows[0]["year"])
}

func TestBuildPlainProfileSkipsHTML(t *testing.T) {
	rows := []Row{{"year": "2020", "value": "1", "country": "Canada", "indicator": "Population, total"}}

	tbl := Build(queryCols, rows, TitleParts{}, queryOpts)
	assert.Empty(t, tbl.HTML)
	assert.NotContains(t, tbl.Title, "*")
}

func TestSortYearDescStable(t *testing.T) {
	rows := []Row{
		{"year": "2019", "value": "a"},
		{"year": "2021", "value": "b"},
		{"year": "2019", "value": "c"},
	}
	sortYearDesc(rows, "year")

	assert.Equal(t, "2021", rows[0]["year"])
	assert.Equal(t, "a", rows[1]["value"], "equal years keep input order")
	assert.Equal(t, "c", rows[2]["value"])
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "100", FormatNumber(100))
	assert.Equal(t, "-9,500", FormatNumber(-9500))
	assert.Equal(t, "19.99", FormatNumber(19.99))
}

func TestNewTableWidget(t *testing.T) {
	rows := []Row{{"year": "2020"}}
	w := NewTableWidget("**France - Population, total (2018-2020)**", queryCols, rows)

	assert.Equal(t, "table", w.Type)
	assert.Equal(t, "France - Population, total (2018-2020)", w.Title)
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, rows, w.Rows)
}
