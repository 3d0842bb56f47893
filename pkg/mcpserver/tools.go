package mcpserver

import (
	"context"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools adds all tools to the MCP server.
func (s *Server) registerTools() {
	s.addQueryOpenDataTool()
	s.addListProductsTool()
	s.addListDiscountsTool()
}

// toolHandler is the SDK handler signature used by every tool. It must be an
// alias: a defined type would not be assignable where AddTool expects an
// mcp.ToolHandler.
type toolHandler = mcp.ToolHandler

// instrumented wraps a tool handler with call logging, duration metrics, and
// a trace span. Arguments are never logged; queries may name customer data.
func (s *Server) instrumented(name string, h toolHandler) toolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := s.tracer.Start(ctx, "tool/"+name)
		defer span.End()

		start := time.Now()
		res, err := h(ctx, req)
		elapsed := time.Since(start)

		isError := err != nil || (res != nil && res.IsError)
		s.metrics.ObserveToolCall(name, isError, elapsed)
		log.Printf("[mcp] tool=%s elapsed=%s error=%t", name, elapsed.Round(time.Millisecond), isError)

		return res, err
	}
}
