package catalog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/databoard/databoard/pkg/jsonutil"
)

// Loader reads the catalog file on every call. The file is small and
// re-reading keeps edits visible without a reload endpoint.
type Loader struct {
	// Path is the catalog JSON file. Empty means the embedded built-in
	// catalog.
	Path string
}

// NewLoader creates a Loader for the given path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load parses the catalog. A missing path falls back to the embedded
// catalog; an unreadable or malformed file is an error.
func (l *Loader) Load() (*Catalog, error) {
	data := builtinCatalog
	if l.Path != "" {
		b, err := os.ReadFile(l.Path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", l.Path, err)
		}
		data = b
	}

	var c Catalog
	if err := jsonutil.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &c, nil
}

// FilterProducts returns products matching the category (case-insensitive,
// empty matches all) priced at or under maxPrice (0 means no cap).
// Input order is preserved.
func FilterProducts(products []Product, category string, maxPrice float64) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if maxPrice > 0 && p.UnitPrice > maxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ActiveDiscounts returns the discounts usable at now.
func ActiveDiscounts(discounts []Discount, now time.Time) []Discount {
	out := make([]Discount, 0, len(discounts))
	for _, d := range discounts {
		if d.Active(now) {
			out = append(out, d)
		}
	}
	return out
}
