package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"github.com/erauner12/mongobridge/internal/tools"
)

// RunStdio serves the tool registry over the official MCP SDK's stdio
// transport, blocking until the context is canceled or the client
// disconnects. Tool lookup, validation, and the response envelope stay in
// the registry; the SDK only frames the byte stream.
func RunStdio(ctx context.Context, name, version string, registry *tools.Registry, toolCtx *tools.ToolContext) error {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	for _, desc := range registry.List() {
		tool := &mcp.Tool{
			Name:        desc.Name,
			Description: desc.Description,
			InputSchema: desc.InputSchema,
		}
		name := desc.Name
		srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return toSDKResult(tools.CallResult{
					Content: []tools.ContentBlock{{Type: "text", Text: "Invalid arguments: " + err.Error()}},
					IsError: true,
				}), nil
			}
			result := registry.Call(ctx, toolCtx, tools.CallRequest{
				Name:      name,
				Arguments: args,
			})
			return toSDKResult(result), nil
		})
	}

	log.Info().Str("server", name).Str("version", version).Msg("starting MCP stdio server")

	return srv.Run(ctx, &mcp.StdioTransport{})
}

// toSDKResult converts the internal envelope into the SDK's result type
func toSDKResult(result tools.CallResult) *mcp.CallToolResult {
	out := &mcp.CallToolResult{IsError: result.IsError}
	for _, block := range result.Content {
		out.Content = append(out.Content, &mcp.TextContent{Text: block.Text})
	}
	return out
}
