package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestAuditedLogsOutcome(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	handler := audited("move_lookup", func(context.Context, *mcp.CallToolRequest, struct{}) (*mcp.CallToolResult, struct{}, error) {
		return nil, struct{}{}, nil
	})
	if _, _, err := handler(context.Background(), nil, struct{}{}); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if logLine := buffer.String(); !strings.Contains(logLine, "tool move_lookup: ok") {
		t.Fatalf("log = %q, want tool move_lookup: ok", logLine)
	}
}

func TestAuditedLogsHandlerErrors(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	handler := audited("palace_odds", func(context.Context, *mcp.CallToolRequest, struct{}) (*mcp.CallToolResult, struct{}, error) {
		return nil, struct{}{}, errors.New("boom")
	})
	if _, _, err := handler(context.Background(), nil, struct{}{}); err == nil {
		t.Fatal("expected handler error to pass through")
	}
	if logLine := buffer.String(); !strings.Contains(logLine, "tool palace_odds: error") {
		t.Fatalf("log = %q, want tool palace_odds: error", logLine)
	}
}

func TestAuditedLogsToolErrors(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	handler := audited("item_lookup", func(context.Context, *mcp.CallToolRequest, struct{}) (*mcp.CallToolResult, struct{}, error) {
		return &mcp.CallToolResult{IsError: true}, struct{}{}, nil
	})
	if _, _, err := handler(context.Background(), nil, struct{}{}); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if logLine := buffer.String(); !strings.Contains(logLine, "tool item_lookup: error") {
		t.Fatalf("log = %q, want tool item_lookup: error", logLine)
	}
}
