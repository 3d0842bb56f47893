package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/jsonutil"
	"github.com/databoard/databoard/pkg/render"
	"github.com/databoard/databoard/pkg/worldbank"
)

// ═══════════════════════════════════════════════════════════════════════════
// query_open_data — World Bank indicator query
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addQueryOpenDataTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "query_open_data",
			Title: "Query Open Data",
			Description: `Fetch a World Bank indicator series for one country and render it as Markdown and HTML tables.

USE THIS TOOL WHEN:
• The user asks for country statistics (population, GDP, life expectancy, CO2 emissions...)
• The user wants a data table for a specific country and year range
• The user names a World Bank indicator code like SP.POP.TOTL or NY.GDP.MKTP.CD

DO NOT USE THIS TOOL WHEN:
• The user asks about products or discounts — use 'list_products' / 'list_discounts'
• The user needs data for many countries at once — call once per country

Each call makes exactly one live request to the World Bank API; nothing is
cached. Null data points are dropped, so the table can hold fewer rows than
the year range suggests.

EXAMPLE INPUTS:
• Population of Canada: {"country": "CAN", "indicator": "SP.POP.TOTL"}
• French GDP 2000-2020: {"country": "FRA", "indicator": "NY.GDP.MKTP.CD", "start_year": 2000, "end_year": 2020}
• Latest 5 points: {"country": "DEU", "indicator": "SP.DYN.LE00.IN", "limit": 5}

All arguments are optional; omitted ones default to country CAN, indicator
SP.POP.TOTL, start year 2018, end year = current year, limit 10.

Returns: a text summary with the rendered tables, plus structured rows,
columns, and a table widget for programmatic consumers.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"country": map[string]any{
						"type":        "string",
						"description": "ISO-3166 alpha-3 country code (e.g. CAN, FRA, DEU). Default: CAN.",
					},
					"indicator": map[string]any{
						"type":        "string",
						"description": "World Bank indicator code (e.g. SP.POP.TOTL). Default: SP.POP.TOTL. See the databoard://indicators resource for common codes.",
					},
					"start_year": map[string]any{
						"type":        "integer",
						"description": "First year of the range, inclusive (1960-2100). Default: 2018.",
					},
					"end_year": map[string]any{
						"type":        "integer",
						"description": "Last year of the range, inclusive (1960-2100). Default: current year.",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum observations to return. Values outside 1-20 are clamped, never rejected. Default: 10.",
					},
				},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: false,
				OpenWorldHint:  boolPtr(true),
				Title:          "Query Open Data",
			},
		},
		s.instrumented("query_open_data", s.handleQueryOpenData),
	)
}

type queryArgs struct {
	Country   string `json:"country"`
	Indicator string `json:"indicator"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`

	// Limit is a pointer so an explicit {"limit": 0} is distinguishable from
	// an omitted limit: zero clamps to 1, absent falls back to the default.
	Limit *int `json:"limit"`
}

// queryResponse is the structured payload returned alongside the text block.
type queryResponse struct {
	Source    string                  `json:"source"`
	Endpoint  string                  `json:"endpoint"`
	Title     string                  `json:"title"`
	RowCount  int                     `json:"row_count"`
	Columns   []render.Column         `json:"columns"`
	Data      []worldbank.Observation `json:"data"`
	Rows      []render.Row            `json:"rows"`
	Markdown  string                  `json:"markdown_table"`
	HTML      string                  `json:"html_table"`
	Widget    render.Widget           `json:"widget"`
	Requested worldbank.Query         `json:"requested"`
}

func (s *Server) handleQueryOpenData(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args queryArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	q := worldbank.Query{
		Country:   strings.TrimSpace(args.Country),
		Indicator: strings.TrimSpace(args.Indicator),
		StartYear: args.StartYear,
		EndYear:   args.EndYear,
	}
	if args.Limit != nil {
		// Clamp before ApplyDefaults so an explicit zero becomes the minimum
		// instead of being mistaken for an unset limit.
		q.Limit = worldbank.ClampLimit(*args.Limit)
	}
	q.ApplyDefaults(time.Now().Year())

	// Validation failures must not cost an upstream request.
	if err := q.Validate(); err != nil {
		return errorResult(fmt.Sprintf("invalid query: %v", err)), nil
	}

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("worldbank.country", q.Country),
		attribute.String("worldbank.indicator", q.Indicator),
		attribute.Int("worldbank.start_year", q.StartYear),
		attribute.Int("worldbank.end_year", q.EndYear),
	)

	body, endpoint, err := s.wb.Fetch(ctx, q)
	if err != nil {
		if statusErr, ok := worldbank.AsStatusError(err); ok {
			s.metrics.ObserveUpstreamStatus(statusErr.StatusCode)
			return errorResult(fmt.Sprintf("World Bank API returned status %d for %s", statusErr.StatusCode, endpoint)), nil
		}
		return errorResult(fmt.Sprintf("query failed: %v", err)), nil
	}
	s.metrics.ObserveUpstreamStatus(200)

	// Malformed JSON is a transport-level failure. A well-formed body with
	// an unexpected shape degrades to an empty table instead.
	if !jsonutil.Valid(body) {
		return errorResult(fmt.Sprintf("World Bank API returned malformed JSON from %s", endpoint)), nil
	}

	obs := worldbank.Normalize(body, q)
	rows := worldbank.ToRows(obs)
	fallback := render.TitleParts{
		Country:   q.Country,
		Indicator: q.Indicator,
		StartYear: q.StartYear,
		EndYear:   q.EndYear,
	}
	table := render.Build(worldbank.Columns(), rows, fallback, worldbank.RenderOptions(render.ProfileRich))
	widget := render.NewTableWidget(table.Title, table.Columns, table.Rows)

	resp := &queryResponse{
		Source:    defaults.WorldBankSource,
		Endpoint:  endpoint,
		Title:     render.PlainTitle(table.Title),
		RowCount:  len(table.Rows),
		Columns:   table.Columns,
		Data:      obs,
		Rows:      table.Rows,
		Markdown:  table.Markdown,
		HTML:      table.HTML,
		Widget:    widget,
		Requested: q,
	}

	return structuredResult(queryText(resp, table), resp), nil
}

// queryText builds the human-readable block: summary line, provenance, then
// both table renderings.
func queryText(resp *queryResponse, table render.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Retrieved %d observation(s) from %s.\n", resp.RowCount, resp.Source)
	fmt.Fprintf(&b, "Endpoint: %s\n\n", resp.Endpoint)
	b.WriteString(table.Title)
	b.WriteString("\n\n")
	b.WriteString(table.Markdown)
	if table.HTML != "" {
		b.WriteString("\n")
		b.WriteString(table.HTML)
	}
	return b.String()
}
