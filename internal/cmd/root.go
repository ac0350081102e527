// Package cmd implements the simple-mcp CLI.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/p-bidkar/simple-mcp/internal/config"
	"github.com/p-bidkar/simple-mcp/internal/logger"
)

// EnvLogDir overrides the configured log directory.
const EnvLogDir = "MCP_LOG_DIR"

var (
	configFile string
	version    = "dev" // overridden by SetVersion
	logRoot    = logger.New("cmd:root")
)

var rootCmd = &cobra.Command{
	Use:     "simple-mcp",
	Short:   "Simple MCP demo client and server",
	Version: version,
	Long: `simple-mcp is an educational Model Context Protocol (MCP) demo.
It bundles a tool server (calculator, weather, file and system tools), a
client session that speaks the JSON-RPC envelope, and a simulated
in-process transport tying them together.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to TOML config file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newCallCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newCompletionCmd())
}

// loadConfig loads configuration for a subcommand run.
func loadConfig() (*config.Config, error) {
	logRoot.Printf("loading config: file=%q", configFile)
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// getLogDir resolves the log directory: environment first, then config.
func getLogDir(cfg *config.Config) string {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		return dir
	}
	return cfg.Log.Dir
}

// initLogging sets up the global file logger. Failures fall back to
// stdout inside the logger, so subcommands never abort over logging.
func initLogging(cfg *config.Config) {
	if err := logger.InitFileLogger(getLogDir(cfg), cfg.Log.File); err != nil {
		log.Printf("WARNING: file logging unavailable: %v", err)
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
