package worldbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var q Query
	q.ApplyDefaults(2026)

	assert.Equal(t, "CAN", q.Country)
	assert.Equal(t, "SP.POP.TOTL", q.Indicator)
	assert.Equal(t, 2018, q.StartYear)
	assert.Equal(t, 2026, q.EndYear)
	assert.Equal(t, 10, q.Limit)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	q := Query{Country: "FRA", Indicator: "NY.GDP.MKTP.CD", StartYear: 2000, EndYear: 2010, Limit: 5}
	q.ApplyDefaults(2026)

	assert.Equal(t, "FRA", q.Country)
	assert.Equal(t, "NY.GDP.MKTP.CD", q.Indicator)
	assert.Equal(t, 2000, q.StartYear)
	assert.Equal(t, 2010, q.EndYear)
	assert.Equal(t, 5, q.Limit)
}

func TestValidate(t *testing.T) {
	valid := Query{Country: "CAN", Indicator: "SP.POP.TOTL", StartYear: 2018, EndYear: 2020, Limit: 10}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Query)
	}{
		{"country too short", func(q *Query) { q.Country = "CA" }},
		{"country too long", func(q *Query) { q.Country = "CANA" }},
		{"indicator too short", func(q *Query) { q.Indicator = "SP" }},
		{"start year below range", func(q *Query) { q.StartYear = 1950 }},
		{"end year above range", func(q *Query) { q.EndYear = 2200 }},
		{"start after end", func(q *Query) { q.StartYear = 2021; q.EndYear = 2020 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := valid
			tc.mutate(&q)
			assert.Error(t, q.Validate())
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 1, ClampLimit(0))
	assert.Equal(t, 1, ClampLimit(-5))
	assert.Equal(t, 1, ClampLimit(1))
	assert.Equal(t, 10, ClampLimit(10))
	assert.Equal(t, 20, ClampLimit(20))
	assert.Equal(t, 20, ClampLimit(50))
}
