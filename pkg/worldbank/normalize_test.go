package worldbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDropsNullValues(t *testing.T) {
	body := []byte(`[
		{"page": 1, "pages": 1, "per_page": 10, "total": 3},
		[
			{"date": "2020", "value": 100, "country": {"value": "France"}, "indicator": {"value": "Population, total"}},
			{"date": "2019", "value": null, "country": {"value": "France"}, "indicator": {"value": "Population, total"}},
			{"date": "2018", "value": 50, "country": {"value": "France"}, "indicator": {"value": "Population, total"}}
		]
	]`)

	got := Normalize(body, Query{Country: "FRA", Indicator: "SP.POP.TOTL", Limit: 10})
	require.Len(t, got, 2, "null-valued observation must be dropped")
	assert.Equal(t, "2020", got[0].Year)
	assert.Equal(t, float64(100), got[0].Value)
	assert.Equal(t, "2018", got[1].Year)
	assert.Equal(t, float64(50), got[1].Value)
	assert.Equal(t, "France", got[0].Country)
	assert.Equal(t, "Population, total", got[0].Indicator)
}

func TestNormalizeLabelFallback(t *testing.T) {
	body := []byte(`[
		{"page": 1},
		[{"date": "2020", "value": 7}]
	]`)

	got := Normalize(body, Query{Country: "FRA", Indicator: "SP.POP.TOTL", Limit: 10})
	require.Len(t, got, 1)
	assert.Equal(t, "FRA", got[0].Country, "missing country label falls back to requested code")
	assert.Equal(t, "SP.POP.TOTL", got[0].Indicator, "missing indicator label falls back to requested code")
}

func TestNormalizeTruncatesToClampedLimit(t *testing.T) {
	body := []byte(`[
		{"page": 1},
		[
			{"date": "2022", "value": 1},
			{"date": "2021", "value": 2},
			{"date": "2020", "value": 3}
		]
	]`)

	got := Normalize(body, Query{Country: "CAN", Indicator: "SP.POP.TOTL", Limit: 2})
	require.Len(t, got, 2)
	assert.Equal(t, "2022", got[0].Year)
	assert.Equal(t, "2021", got[1].Year)

	// A limit of 0 clamps to 1, not to nothing.
	got = Normalize(body, Query{Country: "CAN", Indicator: "SP.POP.TOTL", Limit: 0})
	require.Len(t, got, 1)
}

func TestNormalizeStructuralMismatch(t *testing.T) {
	cases := map[string]string{
		"not an array":            `{"message": "oops"}`,
		"missing second element":  `[{"page": 1}]`,
		"second element not list": `[{"page": 1}, {"date": "2020"}]`,
		"empty array":             `[]`,
		"scalar":                  `42`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			got := Normalize([]byte(body), Query{Country: "CAN", Indicator: "SP.POP.TOTL", Limit: 10})
			assert.Empty(t, got, "structural mismatch must degrade to zero rows")
		})
	}
}

func TestNormalizeSkipsMalformedEntries(t *testing.T) {
	body := []byte(`[
		{"page": 1},
		[
			"not an object",
			{"date": "2020", "value": 9}
		]
	]`)

	got := Normalize(body, Query{Country: "CAN", Indicator: "SP.POP.TOTL", Limit: 10})
	require.Len(t, got, 1)
	assert.Equal(t, "2020", got[0].Year)
}
