package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/databoard/databoard/pkg/catalog"
	"github.com/databoard/databoard/pkg/defaults"
	"github.com/databoard/databoard/pkg/jsonutil"
)

// registerResources adds all domain-knowledge resources to the MCP server.
func (s *Server) registerResources() {
	s.addVersionResource()
	s.addProductsResource()
	s.addDiscountsResource()
	s.addIndicatorsResource()
}

// ═══════════════════════════════════════════════════════════════════════════
// databoard://version — Server capabilities and version
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addVersionResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			URI:         "databoard://version",
			Name:        "Databoard Version",
			Description: "Server version, capabilities, and tool inventory.",
			MIMEType:    defaults.ContentTypeJSON,
		},
		func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			info := map[string]any{
				"name":    defaults.ToolNameDisplay,
				"version": defaults.Version,
				"capabilities": map[string]any{
					"tools":     3,
					"resources": 4,
					"prompts":   1,
				},
				"tools":       []string{"query_open_data", "list_products", "list_discounts"},
				"data_source": defaults.WorldBankSource,
				"upstream":    defaults.WorldBankBaseURL,
			}
			data, _ := jsonutil.MarshalIndent(info, "  ")
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{
					{URI: "databoard://version", MIMEType: defaults.ContentTypeJSON, Text: string(data)},
				},
			}, nil
		},
	)
}

// ═══════════════════════════════════════════════════════════════════════════
// databoard://catalog/products — Product catalog
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addProductsResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			URI:         "databoard://catalog/products",
			Name:        "Product Catalog",
			Description: "All products with prices and stock levels.",
			MIMEType:    defaults.ContentTypeJSON,
		},
		func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			cat, err := s.catalog.Load()
			if err != nil {
				return nil, fmt.Errorf("loading catalog: %w", err)
			}
			result := map[string]any{
				"count":    len(cat.Products),
				"products": cat.Products,
			}
			data, _ := jsonutil.MarshalIndent(result, "  ")
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{
					{URI: "databoard://catalog/products", MIMEType: defaults.ContentTypeJSON, Text: string(data)},
				},
			}, nil
		},
	)
}

// ═══════════════════════════════════════════════════════════════════════════
// databoard://catalog/discounts — Promotion codes
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addDiscountsResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			URI:         "databoard://catalog/discounts",
			Name:        "Discount Codes",
			Description: "All promotion codes with expiry dates and active status.",
			MIMEType:    defaults.ContentTypeJSON,
		},
		func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			cat, err := s.catalog.Load()
			if err != nil {
				return nil, fmt.Errorf("loading catalog: %w", err)
			}

			now := time.Now()
			type discountEntry struct {
				catalog.Discount
				Active bool `json:"active"`
			}
			entries := make([]discountEntry, 0, len(cat.Discounts))
			for _, d := range cat.Discounts {
				entries = append(entries, discountEntry{Discount: d, Active: d.Active(now)})
			}

			result := map[string]any{
				"count":     len(entries),
				"discounts": entries,
			}
			data, _ := jsonutil.MarshalIndent(result, "  ")
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{
					{URI: "databoard://catalog/discounts", MIMEType: defaults.ContentTypeJSON, Text: string(data)},
				},
			}, nil
		},
	)
}

// ═══════════════════════════════════════════════════════════════════════════
// databoard://indicators — Common World Bank indicator codes
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addIndicatorsResource() {
	s.mcp.AddResource(
		&mcp.Resource{
			URI:         "databoard://indicators",
			Name:        "Indicator Codes",
			Description: "Frequently used World Bank indicator codes with descriptions.",
			MIMEType:    defaults.ContentTypeJSON,
		},
		func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{
					{URI: "databoard://indicators", MIMEType: defaults.ContentTypeJSON, Text: indicatorsJSON},
				},
			}, nil
		},
	)
}

const indicatorsJSON = `{
  "source": "World Bank Open Data",
  "indicators": [
    {"code": "SP.POP.TOTL", "name": "Population, total"},
    {"code": "NY.GDP.MKTP.CD", "name": "GDP (current US$)"},
    {"code": "NY.GDP.PCAP.CD", "name": "GDP per capita (current US$)"},
    {"code": "SP.DYN.LE00.IN", "name": "Life expectancy at birth, total (years)"},
    {"code": "EN.ATM.CO2E.PC", "name": "CO2 emissions (metric tons per capita)"},
    {"code": "SL.UEM.TOTL.ZS", "name": "Unemployment, total (% of labor force)"},
    {"code": "FP.CPI.TOTL.ZG", "name": "Inflation, consumer prices (annual %)"},
    {"code": "SE.ADT.LITR.ZS", "name": "Literacy rate, adult total (% of people ages 15+)"},
    {"code": "IT.NET.USER.ZS", "name": "Individuals using the Internet (% of population)"},
    {"code": "SP.URB.TOTL.IN.ZS", "name": "Urban population (% of total population)"}
  ],
  "usage_tips": [
    "Country codes are ISO-3166 alpha-3: CAN, USA, FRA, DEU, JPN, BRA...",
    "Years outside 1960-2100 are rejected; limits outside 1-20 are clamped",
    "Null data points are dropped, so recent years may be missing for slow-reporting indicators"
  ]
}`
