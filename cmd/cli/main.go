// Command databoard serves an MCP tool server for open-data tables and runs
// one-off indicator queries from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/ui"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, ui.Banner())
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags]\n\n", defaults.ToolName)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  mcp       Start the MCP server (stdio or HTTP transport)")
	fmt.Fprintln(os.Stderr, "  query     Fetch one indicator series and print it as a Markdown table")
	fmt.Fprintln(os.Stderr, "  version   Print the version")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintf(os.Stderr, "  %s mcp --stdio\n", defaults.ToolName)
	fmt.Fprintf(os.Stderr, "  %s mcp --http :8080 --metrics\n", defaults.ToolName)
	fmt.Fprintf(os.Stderr, "  %s query -country FRA -indicator NY.GDP.MKTP.CD -start 2000 -end 2020\n", defaults.ToolName)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Run '%s <command> -h' for command-specific flags.\n", defaults.ToolName)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(defaults.ExitUsage)
	}

	switch os.Args[1] {
	case "mcp":
		runMCP()
	case "query":
		runQuery()
	case "version", "-v", "--version":
		runVersion()
	case "help", "-h", "--help":
		printUsage()
		os.Exit(defaults.ExitOK)
	default:
		ui.Errorf("unknown command %q", os.Args[1])
		printUsage()
		os.Exit(defaults.ExitUsage)
	}
}

// envOrDefault returns the environment variable value if set, otherwise the default.
func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
