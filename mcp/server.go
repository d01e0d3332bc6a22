// mcp/server.go
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ViniZap4/nurse-notes/store"
)

// NewServer creates an MCP server exposing read-only tools over the notes.
func NewServer(st *store.Store, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Nurse Notes",
		version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("list_notes",
			mcp.WithDescription("List every nurse note with its action items, oldest first."),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		handleListNotes(st),
	)

	s.AddTool(
		mcp.NewTool("get_note",
			mcp.WithDescription("Get a single nurse note by id, for example 'note-1'."),
			mcp.WithString("note_id",
				mcp.Required(),
				mcp.Description("The note id"),
			),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		handleGetNote(st),
	)

	return s
}

// NewHTTPHandler serves s over the streamable HTTP transport without
// sessions, since no tool keeps state between calls.
func NewHTTPHandler(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s, server.WithStateLess(true))
}

func handleListNotes(st *store.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(st.List())
	}
}

func handleGetNote(st *store.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("note_id")
		if err != nil {
			return mcp.NewToolResultError("note_id is required"), nil
		}

		note, ok := st.Get(id)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("note %s not found", id)), nil
		}
		return jsonResult(note)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
