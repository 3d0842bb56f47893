package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLTableEscapesCells(t *testing.T) {
	cols := []Column{{Key: "v", Label: "Value", Align: AlignLeft}}
	rows := []Row{{"v": `<script>alert("x")&'y'</script>`}}

	out := HTMLTable(cols, rows)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp;")
	assert.Contains(t, out, "&#34;x&#34;")
	assert.Contains(t, out, "&#39;y&#39;")
}

func TestHTMLTableEscapesHeaderLabels(t *testing.T) {
	cols := []Column{{Key: "v", Label: "<b>Value</b>", Align: AlignLeft}}

	out := HTMLTable(cols, nil)
	assert.Contains(t, out, "&lt;b&gt;Value&lt;/b&gt;")
	assert.NotContains(t, out, "<b>Value</b>")
}

func TestHTMLTableZebraStriping(t *testing.T) {
	cols := []Column{{Key: "v", Label: "Value", Align: AlignLeft}}
	rows := []Row{{"v": "a"}, {"v": "b"}, {"v": "c"}}

	out := HTMLTable(cols, rows)
	assert.Equal(t, 1, strings.Count(out, zebraStyle), "every second body row is striped")
	assert.Equal(t, 3, strings.Count(out, "<td "))
	assert.Contains(t, out, "<thead>")
	assert.Contains(t, out, "<tbody>")
}

func TestHTMLTableAlignment(t *testing.T) {
	cols := []Column{
		{Key: "n", Label: "N", Align: AlignRight},
		{Key: "s", Label: "S", Align: AlignLeft},
	}

	out := HTMLTable(cols, []Row{{"n": "1", "s": "x"}})
	assert.Contains(t, out, "text-align:right")
	assert.Contains(t, out, "text-align:left")
}
