package worldbank

import (
	"testing"

	"github.com/databoard/databoard/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRowsFormatsValues(t *testing.T) {
	obs := []Observation{
		{Year: "2020", Value: 38008005, Country: "Canada", Indicator: "Population, total"},
	}

	rows := ToRows(obs)
	require.Len(t, rows, 1)
	assert.Equal(t, "2020", rows[0][ColYear])
	assert.Equal(t, "38,008,005", rows[0][ColValue])
	assert.Equal(t, "Canada", rows[0][ColCountry])
	assert.Equal(t, "Population, total", rows[0][ColIndicator])
}

func TestColumnsFixedSet(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, 4)
	assert.Equal(t, render.AlignRight, cols[0].Align, "year column is right-aligned")
	assert.Equal(t, render.AlignRight, cols[1].Align, "value column is right-aligned")
	assert.Equal(t, render.AlignLeft, cols[2].Align)
	assert.Equal(t, render.AlignLeft, cols[3].Align)
}

func TestRenderOptionsProfiles(t *testing.T) {
	plain := RenderOptions(render.ProfilePlain)
	assert.False(t, plain.SortYearDesc)

	rich := RenderOptions(render.ProfileRich)
	assert.True(t, rich.SortYearDesc)
	assert.Equal(t, ColYear, rich.YearKey)
}
