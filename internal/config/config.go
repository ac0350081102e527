// Package config loads the demo configuration from a TOML file and
// applies environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Environment variables recognized at load time.
const (
	// EnvServerHost overrides the host the client connects to.
	EnvServerHost = "MCP_SERVER_HOST"
	// EnvServerPort overrides the port the server advertises. No real
	// socket is opened, so the value only affects the banner and logs.
	EnvServerPort = "MCP_SERVER_PORT"
)

// Config is the root configuration for both the server and the client.
type Config struct {
	Server  ServerConfig             `toml:"server"`
	Client  ClientConfig             `toml:"client"`
	Log     LogConfig                `toml:"log"`
	Weather map[string]WeatherEntry  `toml:"weather"`
}

// ServerConfig describes the advertised server identity.
type ServerConfig struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
}

// ClientConfig controls the client session.
type ClientConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// DelayMS is the artificial round-trip delay of the simulated
	// transport, in milliseconds.
	DelayMS int `toml:"delay_ms"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Dir  string `toml:"dir"`
	File string `toml:"file"`
}

// WeatherEntry extends or overrides the built-in mock weather table.
type WeatherEntry struct {
	Temperature int    `toml:"temperature"`
	Condition   string `toml:"condition"`
	Humidity    int    `toml:"humidity"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:        "Simple MCP Server",
			Version:     "1.0.0",
			Description: "A demonstration MCP server with various tools",
			Host:        "localhost",
			Port:        8080,
		},
		Client: ClientConfig{
			Host:    "localhost",
			Port:    8080,
			DelayMS: 500,
		},
		Log: LogConfig{
			Dir:  "logs",
			File: "mcp.log",
		},
	}
}

// LoadFromFile loads configuration from a TOML file on top of the
// defaults, then applies environment overrides.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load loads configuration from path when it exists, falling back to
// defaults when path is empty or missing. Environment overrides apply
// in both cases.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return LoadFromFile(path)
		}
	}
	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if host := os.Getenv(EnvServerHost); host != "" {
		c.Client.Host = host
	}
	if port := os.Getenv(EnvServerPort); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return fmt.Errorf("server.name must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Client.DelayMS < 0 {
		return fmt.Errorf("client.delay_ms must not be negative")
	}
	return nil
}
