package server

import (
	"encoding/json"
	"fmt"

	"github.com/p-bidkar/simple-mcp/internal/logger"
	"github.com/p-bidkar/simple-mcp/internal/mcp"
)

var logDispatch = logger.New("server:dispatch")

// HandleRequest dispatches one request envelope and always produces a
// response envelope echoing the request id. Unknown methods yield
// -32601. Everything else that fails (unknown tool, handler error,
// panic) is caught here and yields -32603 with the failure text.
func (s *Server) HandleRequest(req *mcp.Request) (resp *mcp.Response) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogError("dispatch", "panic handling request, method=%s, panic=%v", req.Method, r)
			resp = mcp.NewErrorResponse(req.ID, mcp.CodeInternalError, fmt.Sprint(r))
		}
	}()

	logDispatch.Printf("handling request: id=%v, method=%s", req.ID, req.Method)
	logger.LogInfo("dispatch", "received request, id=%v, method=%s", req.ID, req.Method)

	var (
		result interface{}
		err    error
	)
	switch req.Method {
	case "initialize":
		result = s.handleInitialize()
	case "tools/list":
		result = s.handleListTools()
	case "tools/call":
		result, err = s.handleCallTool(req.Params)
	case "ping":
		result = map[string]interface{}{"pong": true}
	default:
		logger.LogWarn("dispatch", "unknown method: %s", req.Method)
		return mcp.NewErrorResponse(req.ID, mcp.CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}

	if err != nil {
		logger.LogError("dispatch", "request failed, id=%v, method=%s, error=%v", req.ID, req.Method, err)
		return mcp.NewErrorResponse(req.ID, mcp.CodeInternalError, err.Error())
	}

	resp, merr := mcp.NewResponse(req.ID, result)
	if merr != nil {
		logger.LogError("dispatch", "response marshal failed, id=%v, error=%v", req.ID, merr)
		return mcp.NewErrorResponse(req.ID, mcp.CodeInternalError, merr.Error())
	}
	return resp
}

func (s *Server) handleInitialize() mcp.InitializeResult {
	logDispatch.Print("client initialized")
	return mcp.InitializeResult{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities: map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		ServerInfo: s.info,
	}
}

func (s *Server) handleListTools() mcp.ListToolsResult {
	list := s.registry.List()
	logDispatch.Printf("listing %d tools", len(list))
	return mcp.ListToolsResult{Tools: list}
}

func (s *Server) handleCallTool(params json.RawMessage) (*mcp.CallToolResult, error) {
	var callParams mcp.CallToolParams
	if err := json.Unmarshal(params, &callParams); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	logDispatch.Printf("calling tool: name=%s", callParams.Name)
	result, err := s.registry.Call(callParams.Name, callParams.Arguments)
	if err != nil {
		return nil, err
	}

	text, err := marshalToolResult(result)
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.ContentItem{{Type: "text", Text: text}},
	}, nil
}

// marshalToolResult serializes a handler's result mapping as the
// indented JSON text carried inside a tools/call response.
func marshalToolResult(result map[string]interface{}) (string, error) {
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tool result: %w", err)
	}
	return string(raw), nil
}
