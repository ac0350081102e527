package server

import (
	"time"

	"github.com/p-bidkar/simple-mcp/internal/mcp"
)

// LocalTransport is the simulated connection: it hands requests
// straight to an in-process Server after an artificial round-trip
// delay. A real transport would replace this type without touching the
// client session or the dispatcher.
type LocalTransport struct {
	server *Server
	delay  time.Duration
}

// NewLocalTransport creates a loopback transport to s. delay models
// network latency; pass 0 in tests.
func NewLocalTransport(s *Server, delay time.Duration) *LocalTransport {
	return &LocalTransport{server: s, delay: delay}
}

// Send implements mcp.Transport.
func (t *LocalTransport) Send(req *mcp.Request) (*mcp.Response, error) {
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
	return t.server.HandleRequest(req), nil
}
