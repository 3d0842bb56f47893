package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltin(t *testing.T) {
	c, err := NewLoader("").Load()
	require.NoError(t, err)
	assert.NotEmpty(t, c.Products)
	assert.NotEmpty(t, c.Discounts)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"products": [{"id": "P1", "name": "Widget", "category": "misc", "unit_price": 5, "stock": 1}],
		"discounts": []
	}`), 0o644))

	c, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, c.Products, 1)
	assert.Equal(t, "Widget", c.Products[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.json")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.json")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products": [`), 0o644))

	_, err := NewLoader(path).Load()
	require.Error(t, err)
}

func TestFilterProducts(t *testing.T) {
	products := []Product{
		{ID: "1", Category: "coffee", UnitPrice: 20},
		{ID: "2", Category: "Coffee", UnitPrice: 50},
		{ID: "3", Category: "gear", UnitPrice: 10},
	}

	got := FilterProducts(products, "coffee", 0)
	require.Len(t, got, 2, "category match is case-insensitive")

	got = FilterProducts(products, "", 15)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterProducts(products, "coffee", 25)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	assert.Len(t, FilterProducts(products, "", 0), 3)
}

func TestActiveDiscounts(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	discounts := []Discount{
		{Code: "LIVE", Expires: "2099-12-31"},
		{Code: "DEAD", Expires: "2020-01-31"},
		{Code: "TODAY", Expires: "2026-08-25"},
		{Code: "BROKEN", Expires: "soon"},
	}

	got := ActiveDiscounts(discounts, now)
	require.Len(t, got, 2)
	assert.Equal(t, "LIVE", got[0].Code)
	assert.Equal(t, "TODAY", got[1].Code, "a discount is active through its expiry date")
}
