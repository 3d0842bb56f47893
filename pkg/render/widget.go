package render

import "github.com/google/uuid"

// Widget is a renderer-agnostic description of tabular output for
// programmatic consumers: downstream displays re-render the columns and
// rows however they like.
type Widget struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTableWidget builds a "table" widget with a fresh correlation ID and
// the plain (undecorated) title.
func NewTableWidget(title string, cols []Column, rows []Row) Widget {
	return Widget{
		ID:      uuid.NewString(),
		Type:    "table",
		Title:   PlainTitle(title),
		Columns: cols,
		Rows:    rows,
	}
}
