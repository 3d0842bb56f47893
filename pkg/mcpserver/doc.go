// Package mcpserver exposes databoard as a Model Context Protocol (MCP)
// server, letting AI assistants (Claude, VS Code Copilot, Cursor, etc.)
// query live open data and the local product catalog through natural
// conversation.
//
// # Architecture
//
// The server is built on the official MCP Go SDK and exposes three
// categories of capabilities:
//
//   - Tools:     query_open_data, list_products, list_discounts
//   - Resources: the catalog, common indicator codes, version info
//   - Prompts:   guided indicator analysis
//
// # Tool Design Principles
//
// Every tool follows the same conventions:
//
//   - Detailed markdown descriptions with usage guidance and examples
//   - Complete JSON schemas with defaults and bounds
//   - Proper annotations (readOnlyHint, idempotentHint, openWorldHint)
//   - Both a human-readable text block and a structured payload per result
//   - Actionable errors returned as IsError results, never protocol faults
//
// # Transports
//
// Two transport modes are supported:
//
//   - stdio:  Communicates over stdin/stdout (default). Used by IDE integrations.
//   - HTTP:   Streamable HTTP. Used for remote/Docker deployments.
//
// # Usage
//
//	srv := mcpserver.New(&mcpserver.Config{})
//	err := srv.RunStdio(ctx)
package mcpserver
