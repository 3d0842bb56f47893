package render

import "strings"

// MarkdownTable renders columns and rows as a GitHub-flavored Markdown
// table: a header row, a divider row ("---" left-aligned, "---:"
// right-aligned), then one row per record. Every cell is escaped so a "|"
// in upstream data cannot break the table structure.
func MarkdownTable(cols []Column, rows []Row) string {
	var sb strings.Builder

	sb.WriteString("|")
	for _, col := range cols {
		sb.WriteString(" ")
		sb.WriteString(escapeMarkdownCell(col.Label))
		sb.WriteString(" |")
	}
	sb.WriteString("\n|")
	for _, col := range cols {
		if col.Align == AlignRight {
			sb.WriteString(" ---: |")
		} else {
			sb.WriteString(" --- |")
		}
	}
	sb.WriteString("\n")

	for _, row := range rows {
		sb.WriteString("|")
		for _, col := range cols {
			sb.WriteString(" ")
			sb.WriteString(escapeMarkdownCell(row[col.Key]))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
