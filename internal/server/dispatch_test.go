package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-bidkar/simple-mcp/internal/config"
	"github.com/p-bidkar/simple-mcp/internal/mcp"
	"github.com/p-bidkar/simple-mcp/internal/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.Default())
}

func request(t *testing.T, id int, method string, params interface{}) *mcp.Request {
	t.Helper()
	req, err := mcp.NewRequest(id, method, params)
	require.NoError(t, err)
	return req
}

func callRequest(t *testing.T, id int, name string, args map[string]interface{}) *mcp.Request {
	t.Helper()
	return request(t, id, "tools/call", mcp.CallToolParams{Name: name, Arguments: args})
}

// decodeToolResult unwraps result.content[0].text back into the tool's
// result mapping.
func decodeToolResult(t *testing.T, resp *mcp.Response) map[string]interface{} {
	t.Helper()
	require.Nil(t, resp.Error, "expected a success response, got %v", resp.Error)

	var result mcp.CallToolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.NotEmpty(t, result.Content)
	assert.Equal(t, "text", result.Content[0].Type)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &decoded))
	return decoded
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(request(t, 1, "initialize", nil))
	require.Nil(t, resp.Error)
	assert.Equal(t, 1, resp.ID)

	var result mcp.InitializeResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, mcp.ProtocolVersion, result.ProtocolVersion)
	assert.Equal(t, "Simple MCP Server", result.ServerInfo.Name)
	assert.Equal(t, "1.0.0", result.ServerInfo.Version)
	assert.Contains(t, result.Capabilities, "tools")
}

func TestHandleRequest_ListTools(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(request(t, 2, "tools/list", nil))
	require.Nil(t, resp.Error)

	var result mcp.ListToolsResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Tools, 10)

	seen := map[string]int{}
	for _, tool := range result.Tools {
		seen[tool.Name]++
		assert.NotNil(t, tool.InputSchema)
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "tool %s listed more than once", name)
	}
	assert.Equal(t, "calculator.add", result.Tools[0].Name)
	assert.Equal(t, "system.echo", result.Tools[9].Name)
}

func TestHandleRequest_Ping(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(request(t, 3, "ping", nil))
	require.Nil(t, resp.Error)
	assert.JSONEq(t, `{"pong":true}`, string(resp.Result))
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(request(t, 4, "resources/list", nil))
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcp.CodeMethodNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "resources/list")
	assert.Equal(t, 4, resp.ID, "error responses still echo the request id")
	assert.Nil(t, resp.Result)
}

func TestHandleRequest_CallTool_RoundTrip(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(callRequest(t, 5, "system.echo", map[string]interface{}{
		"message": "Hello MCP!",
	}))
	got := decodeToolResult(t, resp)

	assert.Equal(t, "Hello MCP!", got["message"])
	assert.Equal(t, "echoed", got["status"])
	assert.Contains(t, got, "timestamp")
}

func TestHandleRequest_CallTool_Calculator(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(callRequest(t, 6, "calculator.add", map[string]interface{}{
		"a": 10.0, "b": 5.0,
	}))
	got := decodeToolResult(t, resp)

	assert.Equal(t, "addition", got["operation"])
	assert.Equal(t, 15.0, got["result"])
	assert.Equal(t, []interface{}{10.0, 5.0}, got["operands"])
}

func TestHandleRequest_CallTool_UnknownCityWeather(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(callRequest(t, 7, "weather.get_weather", map[string]interface{}{
		"city": "Paris",
	}))
	got := decodeToolResult(t, resp)

	assert.Equal(t, "Paris", got["city"])
	assert.Equal(t, "mock_data", got["source"])
	assert.Equal(t, "City not found, returning default data", got["note"])
	weather := got["weather"].(map[string]interface{})
	assert.Equal(t, 20.0, weather["temperature"])
	assert.Equal(t, "Unknown", weather["condition"])
	assert.Equal(t, 50.0, weather["humidity"])
}

func TestHandleRequest_CallTool_DivideByZero(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(callRequest(t, 8, "calculator.divide", map[string]interface{}{
		"a": 10.0, "b": 0.0,
	}))
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcp.CodeInternalError, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "divide by zero")
	assert.Equal(t, 8, resp.ID)
}

func TestHandleRequest_CallTool_UnknownTool(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(callRequest(t, 9, "calculator.modulo", nil))
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcp.CodeInternalError, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Tool not found: calculator.modulo")
}

func TestHandleRequest_CallTool_MissingRequiredArgument(t *testing.T) {
	s := newTestServer(t)

	resp := s.HandleRequest(callRequest(t, 10, "weather.get_weather", nil))
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcp.CodeInternalError, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "city")
}

func TestHandleRequest_CallTool_InvalidParams(t *testing.T) {
	s := newTestServer(t)

	req := &mcp.Request{
		JSONRPC: mcp.JSONRPCVersion,
		ID:      11,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	}
	resp := s.HandleRequest(req)
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcp.CodeInternalError, resp.Error.Code)
}

func TestHandleRequest_RecoversFromHandlerPanic(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.Registry().Register(tools.Registration{
		Name:        "test.panic",
		Description: "panics on purpose",
		InputSchema: map[string]interface{}{"type": "object"},
		Handler: func(args map[string]interface{}) (map[string]interface{}, error) {
			panic("handler exploded")
		},
	}))

	resp := s.HandleRequest(callRequest(t, 12, "test.panic", nil))
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcp.CodeInternalError, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "handler exploded")
	assert.Equal(t, 12, resp.ID)
}

func TestHandleRequest_FileReadMissing(t *testing.T) {
	s := newTestServer(t)

	// IO failures stay in-band: the response is a success envelope
	// whose payload carries status error.
	resp := s.HandleRequest(callRequest(t, 13, "file.read_file", map[string]interface{}{
		"filepath": "/definitely/not/here.txt",
	}))
	got := decodeToolResult(t, resp)
	assert.Equal(t, "error", got["status"])
	assert.Equal(t, "File not found", got["error"])
}

func TestMarshalToolResult_RoundTrip(t *testing.T) {
	original := map[string]interface{}{
		"operation": "addition",
		"operands":  []interface{}{1.0, 2.0},
		"result":    3.0,
		"nested":    map[string]interface{}{"ok": true},
	}

	text, err := marshalToolResult(original)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, original, decoded)
}
