package mcpserver

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/databoard/databoard/pkg/catalog"
	"github.com/databoard/databoard/pkg/render"
)

// ═══════════════════════════════════════════════════════════════════════════
// list_products — Browse the product catalog
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addListProductsTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "list_products",
			Title: "List Products",
			Description: `Browse the local product catalog WITHOUT any network requests.

USE THIS TOOL WHEN:
• The user asks "what products do you have?" or "show me the catalog"
• The user wants products in a category or under a price cap

DO NOT USE THIS TOOL WHEN:
• The user asks for country statistics — use 'query_open_data' instead
• The user asks about promotions — use 'list_discounts' instead

EXAMPLE INPUTS:
• Everything: {}
• One category: {"category": "coffee"}
• Budget filter: {"category": "equipment", "max_price": 100}

Returns: a Markdown table of matching products plus structured rows.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"description": "Filter by product category (case-insensitive). Empty matches all.",
					},
					"max_price": map[string]any{
						"type":        "number",
						"description": "Only products with unit price at or under this value. 0 or omitted means no cap.",
					},
				},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "List Products",
			},
		},
		s.instrumented("list_products", s.handleListProducts),
	)
}

type listProductsArgs struct {
	Category string  `json:"category"`
	MaxPrice float64 `json:"max_price"`
}

type productsResponse struct {
	Count    int               `json:"count"`
	Products []catalog.Product `json:"products"`
	Columns  []render.Column   `json:"columns"`
	Rows     []render.Row      `json:"rows"`
	Markdown string            `json:"markdown_table"`
	Widget   render.Widget     `json:"widget"`
}

func productColumns() []render.Column {
	return []render.Column{
		{Key: "id", Label: "ID", Align: render.AlignLeft},
		{Key: "name", Label: "Name", Align: render.AlignLeft},
		{Key: "category", Label: "Category", Align: render.AlignLeft},
		{Key: "price", Label: "Price", Align: render.AlignRight},
		{Key: "stock", Label: "Stock", Align: render.AlignRight},
	}
}

func (s *Server) handleListProducts(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listProductsArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.MaxPrice < 0 {
		return errorResult(fmt.Sprintf("max_price must not be negative, got %v", args.MaxPrice)), nil
	}

	cat, err := s.catalog.Load()
	if err != nil {
		return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
	}

	products := catalog.FilterProducts(cat.Products, args.Category, args.MaxPrice)

	cols := productColumns()
	rows := make([]render.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, render.Row{
			"id":       p.ID,
			"name":     p.Name,
			"category": p.Category,
			"price":    render.FormatNumber(p.UnitPrice),
			"stock":    strconv.Itoa(p.Stock),
		})
	}

	title := "Products"
	if args.Category != "" {
		title = fmt.Sprintf("Products - %s", args.Category)
	}

	resp := &productsResponse{
		Count:    len(products),
		Products: products,
		Columns:  cols,
		Rows:     rows,
		Markdown: render.MarkdownTable(cols, rows),
		Widget:   render.NewTableWidget(title, cols, rows),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d product(s) match.\n\n%s\n\n", resp.Count, title)
	b.WriteString(resp.Markdown)
	return structuredResult(b.String(), resp), nil
}

// ═══════════════════════════════════════════════════════════════════════════
// list_discounts — Browse promotion codes
// ═══════════════════════════════════════════════════════════════════════════

func (s *Server) addListDiscountsTool() {
	s.mcp.AddTool(
		&mcp.Tool{
			Name:  "list_discounts",
			Title: "List Discounts",
			Description: `List the catalog's promotion codes WITHOUT any network requests.

USE THIS TOOL WHEN:
• The user asks "any discounts?" or "what promo codes are there?"
• The user wants to know whether a code is still valid

EXAMPLE INPUTS:
• Currently usable codes: {} or {"active_only": true}
• Everything including expired codes: {"active_only": false}

Returns: a Markdown table of discount codes plus structured rows. A discount
with an empty category applies storewide.`,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"active_only": map[string]any{
						"type":        "boolean",
						"description": "Only discounts that have not expired. Default: true.",
					},
				},
			},
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:   true,
				IdempotentHint: true,
				OpenWorldHint:  boolPtr(false),
				Title:          "List Discounts",
			},
		},
		s.instrumented("list_discounts", s.handleListDiscounts),
	)
}

type listDiscountsArgs struct {
	ActiveOnly *bool `json:"active_only"`
}

type discountsResponse struct {
	Count     int                `json:"count"`
	Discounts []catalog.Discount `json:"discounts"`
	Columns   []render.Column    `json:"columns"`
	Rows      []render.Row       `json:"rows"`
	Markdown  string             `json:"markdown_table"`
	Widget    render.Widget      `json:"widget"`
}

func discountColumns() []render.Column {
	return []render.Column{
		{Key: "code", Label: "Code", Align: render.AlignLeft},
		{Key: "percent", Label: "Percent", Align: render.AlignRight},
		{Key: "category", Label: "Category", Align: render.AlignLeft},
		{Key: "expires", Label: "Expires", Align: render.AlignLeft},
	}
}

func (s *Server) handleListDiscounts(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listDiscountsArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	activeOnly := args.ActiveOnly == nil || *args.ActiveOnly

	cat, err := s.catalog.Load()
	if err != nil {
		return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
	}

	discounts := cat.Discounts
	if activeOnly {
		discounts = catalog.ActiveDiscounts(discounts, time.Now())
	}

	cols := discountColumns()
	rows := make([]render.Row, 0, len(discounts))
	for _, d := range discounts {
		category := d.Category
		if category == "" {
			category = "storewide"
		}
		rows = append(rows, render.Row{
			"code":     d.Code,
			"percent":  render.FormatNumber(d.Percent) + "%",
			"category": category,
			"expires":  d.Expires,
		})
	}

	title := "Discounts"
	if activeOnly {
		title = "Active Discounts"
	}

	resp := &discountsResponse{
		Count:     len(discounts),
		Discounts: discounts,
		Columns:   cols,
		Rows:      rows,
		Markdown:  render.MarkdownTable(cols, rows),
		Widget:    render.NewTableWidget(title, cols, rows),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d discount(s).\n\n%s\n\n", resp.Count, title)
	b.WriteString(resp.Markdown)
	return structuredResult(b.String(), resp), nil
}
