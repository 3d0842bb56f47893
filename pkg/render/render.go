// Package render turns ordered rows plus column metadata into Markdown and
// HTML table representations. Cell values derive from untrusted upstream
// data, so both renderers escape every cell; the HTML escaping is a
// sanitization contract, not cosmetics.
package render

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Align selects the horizontal alignment of a column.
type Align int

const (
	// AlignLeft renders a left-aligned column.
	AlignLeft Align = iota

	// AlignRight renders a right-aligned column. Use for numeric columns.
	AlignRight
)

// Column describes one table column: the row key it reads, the header label
// it displays, and its alignment.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Align Align  `json:"align"`
}

// Row maps column keys to display strings. Missing keys render as empty
// cells.
type Row map[string]string

// Profile selects how much decoration a rendered table carries.
type Profile int

const (
	// ProfilePlain produces a bare Markdown table with a plain title.
	ProfilePlain Profile = iota

	// ProfileRich additionally produces an HTML table, a bold-decorated
	// title, and sorts rows most-recent-first when a year key is set.
	ProfileRich
)

// printer renders numbers with en-US grouping. The upstream API reports
// plain magnitudes; grouping is display-only.
var printer = message.NewPrinter(language.English)

// FormatNumber renders a finite number with locale-aware thousands
// separators. Non-finite values pass through via fmt.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprint(number.Decimal(v))
}
