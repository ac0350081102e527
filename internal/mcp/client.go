package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/p-bidkar/simple-mcp/internal/logger"
)

var logClient = logger.New("mcp:client")

// State is the connection state of a client session.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Client identity sent in the initialize handshake.
const (
	clientName    = "Simple MCP Client"
	clientVersion = "1.0.0"
)

// Client is an MCP client session. It tracks connection state, assigns
// monotonically increasing request ids and exposes tool discovery and
// invocation over a Transport.
//
// A mutex serializes all operations: request id assignment and state
// transitions are shared state, and the protocol allows a single
// in-flight request per session.
type Client struct {
	mu            sync.Mutex
	transport     Transport
	state         State
	nextRequestID int
	sessionID     string
	host          string
	port          int
	serverInfo    ServerInfo
	tools         []Tool
}

// NewClient creates a disconnected client session. host and port name
// the server the transport is expected to reach; they appear in logs
// only.
func NewClient(host string, port int, transport Transport) *Client {
	return &Client{
		transport:     transport,
		state:         StateDisconnected,
		nextRequestID: 1,
		host:          host,
		port:          port,
	}
}

// nextID returns the next request id. Caller must hold c.mu. Ids start
// at 1 and are never reused within a session.
func (c *Client) nextID() int {
	id := c.nextRequestID
	c.nextRequestID++
	return id
}

// send builds a request for method/params and performs one round trip.
// Caller must hold c.mu.
func (c *Client) send(method string, params interface{}) (*Response, error) {
	req, err := NewRequest(c.nextID(), method, params)
	if err != nil {
		return nil, err
	}
	logClient.Printf("sending request: id=%v, method=%s", req.ID, method)
	resp, err := c.transport.Send(req)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	return resp, nil
}

// Connect performs the initialize handshake. It returns true on
// success and false on any failure, leaving the session disconnected
// so a retry is safe.
func (c *Client) Connect() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateConnected {
		return true
	}

	c.state = StateConnecting
	c.sessionID = uuid.NewString()
	logClient.Printf("connecting to %s:%d, session=%s", c.host, c.port, c.sessionID)
	logger.LogInfo("client", "connecting to MCP server, host=%s, port=%d, session=%s", c.host, c.port, c.sessionID)

	resp, err := c.send("initialize", map[string]interface{}{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"clientInfo": map[string]interface{}{
			"name":    clientName,
			"version": clientVersion,
		},
	})
	if err != nil {
		logger.LogError("client", "connection failed, session=%s, error=%v", c.sessionID, err)
		c.state = StateDisconnected
		return false
	}
	if resp.Error != nil {
		logger.LogError("client", "initialize rejected, session=%s, error=%v", c.sessionID, resp.Error)
		c.state = StateDisconnected
		return false
	}

	var result InitializeResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		logger.LogError("client", "malformed initialize result, session=%s, error=%v", c.sessionID, err)
		c.state = StateDisconnected
		return false
	}

	c.serverInfo = result.ServerInfo
	c.state = StateConnected
	logClient.Printf("connected: server=%s v%s", c.serverInfo.Name, c.serverInfo.Version)
	logger.LogInfo("client", "connected to MCP server, session=%s, server=%s, version=%s",
		c.sessionID, c.serverInfo.Name, c.serverInfo.Version)
	return true
}

// DiscoverTools fetches the server's tool catalog. When the session is
// not connected, or on any error, it returns an empty list without
// failing.
func (c *Client) DiscoverTools() []Tool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConnected {
		logClient.Print("discover skipped: not connected")
		return []Tool{}
	}

	resp, err := c.send("tools/list", nil)
	if err != nil {
		logger.LogError("client", "tool discovery failed, session=%s, error=%v", c.sessionID, err)
		return []Tool{}
	}
	if resp.Error != nil {
		logger.LogError("client", "tool discovery rejected, session=%s, error=%v", c.sessionID, resp.Error)
		return []Tool{}
	}

	var result ListToolsResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		logger.LogError("client", "malformed tools/list result, session=%s, error=%v", c.sessionID, err)
		return []Tool{}
	}

	c.tools = result.Tools
	logClient.Printf("discovered %d tools", len(result.Tools))
	logger.LogInfo("client", "discovered tools, session=%s, count=%d", c.sessionID, len(result.Tools))
	return result.Tools
}

// CallTool invokes a named tool and returns its decoded result
// mapping. Any failure (not connected, error response, missing
// content, undecodable payload) yields an empty mapping; CallTool
// never panics past the session boundary.
func (c *Client) CallTool(name string, arguments map[string]interface{}) map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConnected {
		logClient.Printf("call %s skipped: not connected", name)
		return map[string]interface{}{}
	}

	logger.LogInfo("client", "calling tool, session=%s, tool=%s", c.sessionID, name)
	resp, err := c.send("tools/call", CallToolParams{
		Name:      name,
		Arguments: arguments,
	})
	if err != nil {
		logger.LogError("client", "tool call failed, session=%s, tool=%s, error=%v", c.sessionID, name, err)
		return map[string]interface{}{}
	}
	if resp.Error != nil {
		logger.LogError("client", "tool call rejected, session=%s, tool=%s, error=%v", c.sessionID, name, resp.Error)
		return map[string]interface{}{}
	}

	var result CallToolResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		logger.LogError("client", "malformed tools/call result, session=%s, tool=%s, error=%v", c.sessionID, name, err)
		return map[string]interface{}{}
	}
	if len(result.Content) == 0 {
		logClient.Printf("call %s returned no content", name)
		return map[string]interface{}{}
	}

	toolResult := map[string]interface{}{}
	if err := json.Unmarshal([]byte(result.Content[0].Text), &toolResult); err != nil {
		logger.LogError("client", "undecodable tool result, session=%s, tool=%s, error=%v", c.sessionID, name, err)
		return map[string]interface{}{}
	}

	logClient.Printf("call %s succeeded", name)
	return toolResult
}

// Disconnect returns the session to the disconnected state. It is safe
// to call in any state.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDisconnected {
		logger.LogInfo("client", "disconnected, session=%s", c.sessionID)
	}
	c.state = StateDisconnected
	logClient.Print("disconnected")
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SessionID returns the id assigned on the most recent Connect, or ""
// before the first attempt.
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// ServerInfo returns the server identity stored by a successful Connect.
func (c *Client) ServerInfo() ServerInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.serverInfo
}

// Tools returns the descriptors stored by the last DiscoverTools.
func (c *Client) Tools() []Tool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tools
}
