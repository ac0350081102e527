// Package server implements the MCP demo server: the request
// dispatcher, an in-process transport for the simulated connection,
// and an optional stdio bridge over the official MCP SDK.
package server

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/p-bidkar/simple-mcp/internal/config"
	"github.com/p-bidkar/simple-mcp/internal/logger"
	"github.com/p-bidkar/simple-mcp/internal/mcp"
	"github.com/p-bidkar/simple-mcp/internal/tools"
)

var logServer = logger.New("server:server")

// Server holds the tool registry and the advertised server identity.
// It is stateless per request; one Server may serve many sessions.
type Server struct {
	host     string
	port     int
	info     mcp.ServerInfo
	registry *tools.Registry
}

// New creates a Server from configuration with the builtin tool
// catalog, extended by any configured weather entries.
func New(cfg *config.Config) *Server {
	s := &Server{
		host: cfg.Server.Host,
		port: cfg.Server.Port,
		info: mcp.ServerInfo{
			Name:        cfg.Server.Name,
			Version:     cfg.Server.Version,
			Description: cfg.Server.Description,
		},
		registry: tools.DefaultRegistry(toWeatherTable(cfg.Weather)),
	}
	logServer.Printf("server created: name=%s, tools=%d", s.info.Name, s.registry.Len())
	return s
}

func toWeatherTable(entries map[string]config.WeatherEntry) map[string]tools.Conditions {
	if len(entries) == 0 {
		return nil
	}
	table := make(map[string]tools.Conditions, len(entries))
	for city, e := range entries {
		table[city] = tools.Conditions{
			Temperature: e.Temperature,
			Condition:   e.Condition,
			Humidity:    e.Humidity,
		}
	}
	return table
}

// Registry exposes the tool registry, mainly for local transports.
func (s *Server) Registry() *tools.Registry {
	return s.registry
}

// Info returns the advertised server identity.
func (s *Server) Info() mcp.ServerInfo {
	return s.info
}

// Banner renders the startup banner listing the advertised endpoint
// and the tool catalog. No socket is opened on the advertised port.
func (s *Server) Banner() string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "MCP Server Started Successfully!")
	fmt.Fprintf(&b, "Host: %s\n", s.host)
	fmt.Fprintf(&b, "Port: %d\n", s.port)
	fmt.Fprintln(&b, "Available Tools:")
	for _, name := range s.registry.Names() {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Server is ready to accept connections...")
	return b.String()
}

// Run prints the banner to w and blocks until ctx is canceled.
func (s *Server) Run(ctx context.Context, w io.Writer) error {
	logger.LogInfo("server", "server started, host=%s, port=%d, tools=%d", s.host, s.port, s.registry.Len())
	fmt.Fprint(w, s.Banner())

	<-ctx.Done()
	logger.LogInfo("server", "server stopped")
	return nil
}
