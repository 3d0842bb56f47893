package worldbank

import "github.com/databoard/databoard/pkg/render"

// Column keys for indicator tables. The column set is fixed for this data
// source.
const (
	ColYear      = "year"
	ColValue     = "value"
	ColCountry   = "country"
	ColIndicator = "indicator"
)

// Columns returns the column descriptors for an indicator table.
func Columns() []render.Column {
	return []render.Column{
		{Key: ColYear, Label: "Year", Align: render.AlignRight},
		{Key: ColValue, Label: "Value", Align: render.AlignRight},
		{Key: ColCountry, Label: "Country", Align: render.AlignLeft},
		{Key: ColIndicator, Label: "Indicator", Align: render.AlignLeft},
	}
}

// ToRows converts observations into display rows, formatting values with
// locale-aware separators.
func ToRows(obs []Observation) []render.Row {
	rows := make([]render.Row, 0, len(obs))
	for _, o := range obs {
		rows = append(rows, render.Row{
			ColYear:      o.Year,
			ColValue:     render.FormatNumber(o.Value),
			ColCountry:   o.Country,
			ColIndicator: o.Indicator,
		})
	}
	return rows
}

// RenderOptions returns the Build options for indicator tables under the
// given profile. The rich profile presents most-recent-first.
func RenderOptions(p render.Profile) render.Options {
	return render.Options{
		Profile:      p,
		YearKey:      ColYear,
		CountryKey:   ColCountry,
		IndicatorKey: ColIndicator,
		SortYearDesc: p == render.ProfileRich,
	}
}
