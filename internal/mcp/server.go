// Package mcp exposes the usage profile and the financial assistant as MCP
// tools over stdio, so agent hosts can query the same data the dashboard
// shows.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/domuslabs/cashlens/internal/advisor"
	"github.com/domuslabs/cashlens/internal/store"
	"github.com/domuslabs/cashlens/internal/tracker"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server exposing usage-stats and assistant tools.
type Server struct {
	tracker *tracker.Tracker
	advisor advisor.Provider
	store   store.Store
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies. advisor
// may be nil; the ask_assistant tool then reports itself unavailable.
func NewServer(tr *tracker.Tracker, adv advisor.Provider, st store.Store) *Server {
	s := &Server{
		tracker: tr,
		advisor: adv,
		store:   st,
	}

	s.mcp = server.NewMCPServer(
		"cashlens",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getUsageStatsTool, s.handleGetUsageStats)
	s.mcp.AddTool(getTopPageTool, s.handleGetTopPage)
	s.mcp.AddTool(askAssistantTool, s.handleAskAssistant)
	s.mcp.AddTool(getTranscriptTool, s.handleGetTranscript)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
