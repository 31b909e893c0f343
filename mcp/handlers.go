package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/py2cpp-go/core/internal/analyzer"
	"github.com/py2cpp-go/core/internal/node"
	"github.com/py2cpp-go/core/internal/symbol"
)

// HandlerSet binds every MCP tool handler to a shared Dependencies
// instance.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a HandlerSet over deps.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	return &HandlerSet{deps: deps}
}

func (h *HandlerSet) analyzeFile(ctx context.Context, path string) (*analyzer.Session, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return analyzer.Analyze(ctx, "__main__", source, h.deps.Primitives())
}

func stringArg(args map[string]interface{}, name string) (string, bool) {
	v, ok := args[name].(string)
	return v, ok && v != ""
}

// HandleResolveType implements the resolve_type tool: given a Python
// file and the full-path address of one expression, it returns that
// expression's inferred type's domain ID (spec §4.5.3).
func (h *HandlerSet) HandleResolveType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	file, ok := stringArg(args, "file")
	if !ok {
		return mcp.NewToolResultError("file parameter is required and must be a string"), nil
	}
	path, ok := stringArg(args, "path")
	if !ok {
		return mcp.NewToolResultError("path parameter is required and must be a string"), nil
	}

	session, err := h.analyzeFile(ctx, file)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to analyze %s: %v", file, err)), nil
	}

	target, err := session.Query.By(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("no node at %s: %v", path, err)), nil
	}
	scope, err := node.Scope(session.Query, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not compute scope for %s: %v", path, err)), nil
	}
	row, err := symbol.ResultOf(session.Table, session.Query, scope, session.ModulePath, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("type resolution failed: %v", err)), nil
	}
	return mcp.NewToolResultText(row.DomainID), nil
}

// HandleQueryAST implements the query_ast tool: given a Python file and
// the full-path address of a node, it returns the node and its direct
// children via NodeQuery.Expand (spec §4.4).
func (h *HandlerSet) HandleQueryAST(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	file, ok := stringArg(args, "file")
	if !ok {
		return mcp.NewToolResultError("file parameter is required and must be a string"), nil
	}
	path, ok := stringArg(args, "path")
	if !ok {
		path = "module"
	}

	session, err := h.analyzeFile(ctx, file)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to analyze %s: %v", file, err)), nil
	}

	target, err := session.Query.By(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("no node at %s: %v", path, err)), nil
	}
	children, err := session.Query.Expand(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not expand %s: %v", path, err)), nil
	}

	out := fmt.Sprintf("%s (%s)\n", target.FullPath(), target.Tag())
	for _, c := range children {
		out += fmt.Sprintf("  %s (%s)\n", c.FullPath(), c.Tag())
	}
	return mcp.NewToolResultText(out), nil
}
