package service

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/trace"
)

// audited wraps a tool handler so every call leaves a log line with its
// outcome. When tracing is on the line carries the trace and span IDs of
// the request, so tool calls can be matched to exported spans.
func audited[In, Out any](name string, handler mcp.ToolHandlerFor[In, Out]) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error) {
		result, output, err := handler(ctx, req, input)
		logToolCall(ctx, name, result, err)
		return result, output, err
	}
}

func logToolCall(ctx context.Context, tool string, result *mcp.CallToolResult, err error) {
	outcome := "ok"
	if err != nil || (result != nil && result.IsError) {
		outcome = "error"
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.IsValid() {
		log.Printf("tool %s: %s trace=%s span=%s", tool, outcome, sc.TraceID(), sc.SpanID())
		return
	}
	log.Printf("tool %s: %s", tool, outcome)
}
