package render

import (
	"fmt"
	"html"
	"strings"
)

// Inline styles keep the fragment self-contained: it gets embedded in chat
// clients and dashboards that strip <style> blocks.
const (
	tableStyle  = "border-collapse:collapse;width:100%;font-family:sans-serif;font-size:14px"
	headerStyle = "background-color:#1f2937;color:#fafafa"
	cellPadding = "padding:6px 12px;border:1px solid #e5e7eb"
	zebraStyle  = "background-color:#f9fafb"
)

// HTMLTable renders columns and rows as a semantic HTML table with a styled
// header and zebra-striped body rows. Every cell value is HTML-escaped
// before insertion; upstream text must never reach the document raw.
func HTMLTable(cols []Column, rows []Row) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<table style=%q>`, tableStyle)
	sb.WriteString("<thead><tr>")
	for _, col := range cols {
		fmt.Fprintf(&sb, `<th style=%q>%s</th>`,
			cellPadding+";"+headerStyle+";"+alignCSS(col.Align),
			html.EscapeString(col.Label))
	}
	sb.WriteString("</tr></thead><tbody>")

	for i, row := range rows {
		if i%2 == 1 {
			fmt.Fprintf(&sb, `<tr style=%q>`, zebraStyle)
		} else {
			sb.WriteString("<tr>")
		}
		for _, col := range cols {
			fmt.Fprintf(&sb, `<td style=%q>%s</td>`,
				cellPadding+";"+alignCSS(col.Align),
				html.EscapeString(row[col.Key]))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</tbody></table>")
	return sb.String()
}

func alignCSS(a Align) string {
	if a == AlignRight {
		return "text-align:right"
	}
	return "text-align:left"
}
