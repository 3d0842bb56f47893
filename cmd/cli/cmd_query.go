package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/duration"
	"github.com/databoard/databoard/pkg/jsonutil"
	"github.com/databoard/databoard/pkg/render"
	"github.com/databoard/databoard/pkg/ui"
	"github.com/databoard/databoard/pkg/worldbank"
)

// runQuery fetches one indicator series and prints it as a Markdown table.
// This is the same pipeline the query_open_data MCP tool runs, under the
// plain rendering profile.
func runQuery() {
	fs := flag.NewFlagSet("query", flag.ExitOnError)

	country := fs.String("country", defaults.Country, "ISO-3166 alpha-3 country code")
	indicator := fs.String("indicator", defaults.Indicator, "World Bank indicator code")
	startYear := fs.Int("start", defaults.StartYear, "First year of the range (inclusive)")
	endYear := fs.Int("end", 0, "Last year of the range (inclusive, default: current year)")
	limit := fs.Int("limit", defaults.Limit, "Maximum observations (clamped to 1-20)")
	baseURL := fs.String("api", envOrDefault("DATABOARD_WORLDBANK_URL", ""), "Upstream API root override")
	asJSON := fs.Bool("json", false, "Emit the structured result as JSON instead of a table")
	noColor := fs.Bool("no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s query [flags]\n\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "Fetch a World Bank indicator series and print it as a table.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s query\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "  %s query -country FRA -indicator NY.GDP.MKTP.CD -start 2000 -end 2020\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "  %s query -country DEU -limit 5 -json\n\n", defaults.ToolName)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		ui.Errorf("error: %v", err)
		os.Exit(defaults.ExitError)
	}
	ui.SetNoColor(*noColor)

	q := worldbank.Query{
		Country:   *country,
		Indicator: *indicator,
		StartYear: *startYear,
		EndYear:   *endYear,
		// The flag always carries a value (its default is defaults.Limit), so
		// clamp here: -limit 0 means the minimum, not the default.
		Limit: worldbank.ClampLimit(*limit),
	}
	q.ApplyDefaults(time.Now().Year())

	if err := q.Validate(); err != nil {
		ui.Errorf("error: %v", err)
		os.Exit(defaults.ExitUsage)
	}

	var opts []worldbank.Option
	if *baseURL != "" {
		opts = append(opts, worldbank.WithBaseURL(*baseURL))
	}
	client := worldbank.NewClient(opts...)

	ctx, cancel := context.WithTimeout(context.Background(), duration.UpstreamRequest)
	defer cancel()

	body, endpoint, err := client.Fetch(ctx, q)
	if err != nil {
		if statusErr, ok := worldbank.AsStatusError(err); ok {
			ui.Errorf("error: %s returned status %d", defaults.WorldBankSource, statusErr.StatusCode)
		} else {
			ui.Errorf("error: %v", err)
		}
		os.Exit(defaults.ExitError)
	}

	if !jsonutil.Valid(body) {
		ui.Errorf("error: %s returned malformed JSON", defaults.WorldBankSource)
		os.Exit(defaults.ExitError)
	}

	obs := worldbank.Normalize(body, q)
	rows := worldbank.ToRows(obs)
	fallback := render.TitleParts{
		Country:   q.Country,
		Indicator: q.Indicator,
		StartYear: q.StartYear,
		EndYear:   q.EndYear,
	}
	table := render.Build(worldbank.Columns(), rows, fallback, worldbank.RenderOptions(render.ProfilePlain))

	if *asJSON {
		payload := map[string]any{
			"source":   defaults.WorldBankSource,
			"endpoint": endpoint,
			"title":    table.Title,
			"columns":  table.Columns,
			"data":     obs,
			"markdown": table.Markdown,
		}
		data, err := jsonutil.MarshalIndent(payload, "  ")
		if err != nil {
			ui.Errorf("error: %v", err)
			os.Exit(defaults.ExitError)
		}
		fmt.Println(string(data))
		return
	}

	ui.Mutedf("%d observation(s) from %s", len(obs), defaults.WorldBankSource)
	fmt.Println(ui.Title(table.Title))
	fmt.Println()
	fmt.Print(table.Markdown)
}
