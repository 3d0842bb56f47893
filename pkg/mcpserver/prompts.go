package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds all guided workflow prompts to the MCP server.
func (s *Server) registerPrompts() {
	s.addAnalyzeIndicatorPrompt()
}

// ═══════════════════════════════════════════════════════════════════════════
// analyze_indicator — Guided indicator analysis workflow
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addAnalyzeIndicatorPrompt() {
	s.mcp.AddPrompt(
		&mcp.Prompt{
			Name:        "analyze_indicator",
			Description: "Guided workflow: fetch an indicator series for a country, then summarize the trend and notable years.",
			Arguments: []*mcp.PromptArgument{
				{Name: "country", Description: "ISO-3166 alpha-3 country code (e.g. CAN, FRA)", Required: true},
				{Name: "indicator", Description: "World Bank indicator code (e.g. SP.POP.TOTL). See databoard://indicators.", Required: false},
				{Name: "start_year", Description: "First year of the range (default 2018)", Required: false},
				{Name: "end_year", Description: "Last year of the range (default: current year)", Required: false},
			},
		},
		func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			country := req.Params.Arguments["country"]
			if country == "" {
				return nil, fmt.Errorf("'country' argument is required")
			}
			indicator := req.Params.Arguments["indicator"]
			if indicator == "" {
				indicator = "SP.POP.TOTL"
			}
			startYear := req.Params.Arguments["start_year"]
			endYear := req.Params.Arguments["end_year"]

			rangeNote := "the default year range"
			if startYear != "" || endYear != "" {
				rangeNote = fmt.Sprintf("years %s to %s", orDefault(startYear, "2018"), orDefault(endYear, "now"))
			}

			return &mcp.GetPromptResult{
				Description: fmt.Sprintf("Indicator Analysis: %s for %s", indicator, country),
				Messages: []*mcp.PromptMessage{
					{
						Role: "user",
						Content: &mcp.TextContent{
							Text: fmt.Sprintf(`Analyze the %s indicator for %s over %s.

1. If you are unsure about the indicator code, read the databoard://indicators resource first.
2. Call query_open_data with country %q, indicator %q%s.
3. Present the returned Markdown table as-is.
4. Then summarize:
   - Overall trend (growing, shrinking, flat) with rough magnitude
   - The highest and lowest years in the range
   - Any gap years (null data points are dropped, so missing years are normal)
5. If the table is empty, say so plainly and suggest checking the country and indicator codes instead of guessing values.

Do not invent data points. Only report what the tool returned.`,
								indicator, country, rangeNote, country, indicator,
								promptYearArgs(startYear, endYear)),
						},
					},
				},
			}, nil
		},
	)
}

func promptYearArgs(startYear, endYear string) string {
	out := ""
	if startYear != "" {
		out += fmt.Sprintf(", start_year %s", startYear)
	}
	if endYear != "" {
		out += fmt.Sprintf(", end_year %s", endYear)
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
