package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getUsageStatsTool defines the get_usage_stats MCP tool.
var getUsageStatsTool = mcp.NewTool("get_usage_stats",
	mcp.WithDescription("Get the full usage profile: per-page visit counts, dwell time, hourly and weekday activity, sessions, and recorded actions."),
)

// getTopPageTool defines the get_top_page MCP tool.
var getTopPageTool = mcp.NewTool("get_top_page",
	mcp.WithDescription("Get the most visited section of the finance dashboard, excluding the landing page."),
)

// askAssistantTool defines the ask_assistant MCP tool.
var askAssistantTool = mcp.NewTool("ask_assistant",
	mcp.WithDescription("Ask the Domus financial assistant a question. Answers cover banks, groceries, school, utilities, work finances, and budgeting."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("Natural language question for the assistant"),
	),
	mcp.WithBoolean("include_context",
		mcp.Description("Append the usage-profile context to the question (default false)"),
	),
)

// getTranscriptTool defines the get_transcript MCP tool.
var getTranscriptTool = mcp.NewTool("get_transcript",
	mcp.WithDescription("Get the persisted chat transcript, oldest turn first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of turns to return, counting from the newest (default all)"),
	),
)
