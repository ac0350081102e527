package server

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/p-bidkar/simple-mcp/internal/logger"
)

var logSDK = logger.New("server:sdk")

// ServeStdio exposes the tool registry as a real MCP server over stdio
// using the official SDK. This is the transport substitution point the
// simulated connection leaves open: the registry and dispatcher
// semantics stay unchanged, only the wire moves.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := sdk.NewServer(&sdk.Implementation{
		Name:    s.info.Name,
		Version: s.info.Version,
	}, nil)

	for _, tool := range s.registry.List() {
		name := tool.Name

		handler := func(ctx context.Context, req *sdk.CallToolRequest, args interface{}) (*sdk.CallToolResult, interface{}, error) {
			argsMap := toArgumentsMap(args)
			logSDK.Printf("stdio tool call: name=%s", name)
			logger.LogInfo("stdio", "tool call, tool=%s", name)

			result, err := s.registry.Call(name, argsMap)
			if err != nil {
				logger.LogError("stdio", "tool call failed, tool=%s, error=%v", name, err)
				return &sdk.CallToolResult{IsError: true}, nil, err
			}

			text, err := marshalToolResult(result)
			if err != nil {
				return &sdk.CallToolResult{IsError: true}, nil, err
			}
			return nil, map[string]interface{}{
				"content": []map[string]interface{}{
					{"type": "text", "text": text},
				},
			}, nil
		}

		// InputSchema is omitted: the catalog declares draft-07 style
		// schemas and the SDK validates against draft 2020-12.
		sdk.AddTool(srv, &sdk.Tool{
			Name:        name,
			Description: tool.Description,
		}, handler)
		logSDK.Printf("registered stdio tool: %s", name)
	}

	logger.LogInfo("stdio", "serving MCP over stdio, tools=%d", s.registry.Len())
	return srv.Run(ctx, &sdk.StdioTransport{})
}

// toArgumentsMap normalizes SDK-provided arguments into the named
// argument mapping handlers expect.
func toArgumentsMap(args interface{}) map[string]interface{} {
	if args == nil {
		return map[string]interface{}{}
	}
	if m, ok := args.(map[string]interface{}); ok {
		return m
	}

	raw, err := json.Marshal(args)
	if err != nil {
		return map[string]interface{}{}
	}
	m := map[string]interface{}{}
	if err := json.Unmarshal(raw, &m); err != nil {
		logSDK.Printf("unexpected arguments shape: %s", fmt.Sprintf("%T", args))
		return map[string]interface{}{}
	}
	return m
}
