package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/domuslabs/cashlens/internal/advisor"
	"github.com/domuslabs/cashlens/internal/chat"
	"github.com/domuslabs/cashlens/internal/store"
	"github.com/domuslabs/cashlens/internal/tracker"
)

func newTestMCP(adv advisor.Provider) (*Server, store.Store, *tracker.Tracker) {
	st := store.NewMemory()
	tr := tracker.New(st, nil, []string{"home"})
	return NewServer(tr, adv, st), st, tr
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"get_usage_stats", getUsageStatsTool, "get_usage_stats"},
		{"get_top_page", getTopPageTool, "get_top_page"},
		{"ask_assistant", askAssistantTool, "ask_assistant"},
		{"get_transcript", getTranscriptTool, "get_transcript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv, _, _ := newTestMCP(advisor.Static{Response: "hi"})

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleGetTopPage(t *testing.T) {
	srv, _, tr := newTestMCP(nil)
	ctx := context.Background()

	t.Run("no visits", func(t *testing.T) {
		result, err := srv.handleGetTopPage(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("with visits", func(t *testing.T) {
		tr.RecordVisit("banks")
		tr.RecordVisit("banks")
		tr.RecordVisit("work")

		result, err := srv.handleGetTopPage(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "banks") {
			t.Errorf("result missing top page:\n%s", text)
		}
	})
}

func TestHandleGetUsageStats(t *testing.T) {
	srv, _, tr := newTestMCP(nil)
	tr.RecordVisit("groceries")
	tr.RecordAction("chat-open")

	result, err := srv.handleGetUsageStats(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	for _, want := range []string{"groceries", "chat-open"} {
		if !strings.Contains(text, want) {
			t.Errorf("stats missing %q:\n%s", want, text)
		}
	}
}

func TestHandleAskAssistant(t *testing.T) {
	ctx := context.Background()

	t.Run("missing question", func(t *testing.T) {
		srv, _, _ := newTestMCP(advisor.Static{Response: "advice"})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleAskAssistant(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing question")
		}
	})

	t.Run("no advisor", func(t *testing.T) {
		srv, _, _ := newTestMCP(nil)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"question": "how do I budget?"}

		result, err := srv.handleAskAssistant(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error when advisor is not configured")
		}
	})

	t.Run("replies", func(t *testing.T) {
		srv, _, _ := newTestMCP(advisor.Static{Response: "Track your spending weekly."})
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"question": "how do I budget?"}

		result, err := srv.handleAskAssistant(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := resultText(t, result); got != "Track your spending weekly." {
			t.Errorf("reply = %q", got)
		}
	})
}

func TestHandleGetTranscript(t *testing.T) {
	srv, st, _ := newTestMCP(nil)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		result, err := srv.handleGetTranscript(ctx, mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
	})

	t.Run("with turns and limit", func(t *testing.T) {
		tr := chat.NewTranscript(0)
		tr.Append(chat.Turn{Role: chat.RoleUser, Text: "first", Timestamp: "9:00 AM"})
		tr.Append(chat.Turn{Role: chat.RoleAssistant, Text: "second", Timestamp: "9:01 AM"})
		tr.Append(chat.Turn{Role: chat.RoleUser, Text: "third", Timestamp: "9:02 AM"})
		tr.Save(st)

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"limit": 2}

		result, err := srv.handleGetTranscript(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if strings.Contains(text, "first") {
			t.Errorf("limit not applied:\n%s", text)
		}
		for _, want := range []string{"second", "third"} {
			if !strings.Contains(text, want) {
				t.Errorf("transcript missing %q:\n%s", want, text)
			}
		}
	})
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}
