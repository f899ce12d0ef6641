// Package server exposes the search tools over the Model Context Protocol.
package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/json"
	"github.com/bilibili-mcp/go-bilibili-mcp/src/tools"
)

// NewMCPServer registers list on a new MCP server.
func NewMCPServer(name, version string, list []tools.Tool, logger func(format string, args ...interface{})) (*mcpserver.MCPServer, error) {
	if err := tools.Validate(list); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}
	srv := mcpserver.NewMCPServer(name, version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)
	serverTools := make([]mcpserver.ServerTool, 0, len(list))
	for _, t := range list {
		serverTools = append(serverTools, mcpserver.ServerTool{
			Tool:    toMCPTool(t),
			Handler: toolHandler(t, logger),
		})
	}
	srv.AddTools(serverTools...)
	return srv, nil
}

func toMCPTool(t tools.Tool) mcp.Tool {
	props := t.Inputs.Properties
	if props == nil {
		props = map[string]any{}
	}
	return mcp.Tool{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: props,
			Required:   t.Inputs.Required,
		},
	}
}

// toolHandler returns the JSON encoding of the tool result as text content.
// Handler errors are passed through to the protocol layer.
func toolHandler(t tools.Tool, logger func(format string, args ...interface{})) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger("calling tool %s", t.Name)
		res, err := t.Handler(ctx, req.GetArguments())
		if err != nil {
			logger("tool %s failed: %v", t.Name, err)
			return nil, err
		}
		text, err := json.MarshalToString(res)
		if err != nil {
			return nil, fmt.Errorf("encode %s result: %w", t.Name, err)
		}
		return mcp.NewToolResultText(text), nil
	}
}
