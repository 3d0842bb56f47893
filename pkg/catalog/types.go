// Package catalog loads and filters the static product and discount
// catalog. The catalog is a local JSON file; a built-in copy is embedded so
// the server works out of the box.
package catalog

import "time"

// Product is one sellable item in the catalog.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Stock     int     `json:"stock"`
}

// Discount is one promotion code. Category empty means storewide.
type Discount struct {
	Code     string  `json:"code"`
	Percent  float64 `json:"percent"`
	Category string  `json:"category,omitempty"`
	Expires  string  `json:"expires"` // YYYY-MM-DD
}

// Catalog bundles the product list and the discount list.
type Catalog struct {
	Products  []Product  `json:"products"`
	Discounts []Discount `json:"discounts"`
}

// Active reports whether the discount is usable at the given time.
// Discounts with an unparseable expiry are treated as expired.
func (d Discount) Active(now time.Time) bool {
	exp, err := time.Parse("2006-01-02", d.Expires)
	if err != nil {
		return false
	}
	return !now.After(exp.Add(24 * time.Hour))
}
