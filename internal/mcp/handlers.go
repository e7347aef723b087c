package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/domuslabs/cashlens/internal/chat"
	"github.com/domuslabs/cashlens/internal/tracker"
)

// handleGetUsageStats returns the full usage profile as readable text.
func (s *Server) handleGetUsageStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := s.tracker.Snapshot()
	return mcp.NewToolResultText(formatProfile(p)), nil
}

// handleGetTopPage returns the most visited non-excluded section.
func (s *Server) handleGetTopPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, ok := s.tracker.TopPage()
	if !ok {
		return mcp.NewToolResultText("No pages have been visited yet."), nil
	}
	p := s.tracker.Snapshot()
	return mcp.NewToolResultText(fmt.Sprintf("Top section: %s (%d visits)", page, p.PageVisits[page])), nil
}

// handleAskAssistant forwards a question to the configured advisor.
func (s *Server) handleAskAssistant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	if s.advisor == nil {
		return mcp.NewToolResultError("assistant is not configured"), nil
	}

	if request.GetBool("include_context", false) {
		if userCtx := s.tracker.Context(); userCtx != "" {
			question = question + "\n\n" + userCtx
		}
	}

	reply, err := s.advisor.Reply(ctx, question, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assistant reply failed: %v", err)), nil
	}

	return mcp.NewToolResultText(reply), nil
}

// handleGetTranscript returns persisted chat turns, newest-limited.
func (s *Server) handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	turns := chat.LoadTranscript(s.store, chat.DefaultMaxTurns).Turns()
	if len(turns) == 0 {
		return mcp.NewToolResultText("The chat transcript is empty."), nil
	}

	limit := request.GetInt("limit", 0)
	if limit > 0 && limit < len(turns) {
		turns = turns[len(turns)-limit:]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d turn(s):\n", len(turns)))
	for _, turn := range turns {
		sb.WriteString(fmt.Sprintf("\n[%s] %s: %s\n", turn.Timestamp, turn.Role, turn.Text))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatProfile converts a usage profile into a text report for agent
// consumption.
func formatProfile(p tracker.Profile) string {
	var sb strings.Builder
	sb.WriteString("Usage profile\n")
	sb.WriteString(fmt.Sprintf("Sessions: %d\n", p.Sessions))
	if p.FirstSeen != "" {
		sb.WriteString(fmt.Sprintf("Active since: %s (last seen %s)\n", p.FirstSeen, p.LastSeen))
	}

	if len(p.PageVisits) > 0 {
		sb.WriteString("\nPage visits:\n")
		for _, page := range sortedKeys(p.PageVisits) {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", page, p.PageVisits[page]))
		}
	}

	if len(p.TimeSpent) > 0 {
		sb.WriteString("\nTime spent:\n")
		for _, page := range sortedKeysInt64(p.TimeSpent) {
			d := time.Duration(p.TimeSpent[page]) * time.Millisecond
			sb.WriteString(fmt.Sprintf("  %s: %s\n", page, d.Round(time.Second)))
		}
	}

	if len(p.Actions) > 0 {
		sb.WriteString("\nActions:\n")
		for _, name := range sortedKeys(p.Actions) {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", name, p.Actions[name]))
		}
	}

	if len(p.HourlyHits) > 0 {
		sb.WriteString("\nActivity by hour:\n")
		for _, hour := range sortedKeys(p.HourlyHits) {
			sb.WriteString(fmt.Sprintf("  %s:00 - %d\n", hour, p.HourlyHits[hour]))
		}
	}

	return sb.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysInt64(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
