package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers pyscn's query/inference tools with the
// server, bound to handlers' shared Dependencies.
func RegisterTools(s *server.MCPServer, handlers *HandlerSet) {
	s.AddTool(mcp.NewTool("resolve_type",
		mcp.WithDescription("Resolve the inferred type of the expression addressed by path within file"),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the Python source file")),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full-path address of the target expression")),
	), handlers.HandleResolveType)

	s.AddTool(mcp.NewTool("query_ast",
		mcp.WithDescription("Dump the node addressed by path within file, and its direct children"),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the Python source file")),
		mcp.WithString("path",
			mcp.Description("Full-path address of the target node (default: module)")),
	), handlers.HandleQueryAST)
}
