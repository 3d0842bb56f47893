package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	data, err := Marshal(payload{Name: "population", Count: 3})
	require.NoError(t, err)

	var got payload
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, "population", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(map[string]int{"rows": 2}, "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"rows\"")
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`[{"date":"2020","value":100}]`)))
	assert.True(t, Valid([]byte(`{"page":1}`)))
	assert.False(t, Valid([]byte(`{"page":`)))
	assert.False(t, Valid([]byte(`not json`)))
}
