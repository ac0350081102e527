package mcp

// Transport carries one request/response round trip. Implementations
// may be an in-process loopback, a subprocess pipe, or a real network
// connection; the client session only depends on this seam.
type Transport interface {
	Send(req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(req *Request) (*Response, error)

func (f TransportFunc) Send(req *Request) (*Response, error) {
	return f(req)
}
