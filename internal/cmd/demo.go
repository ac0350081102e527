package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/p-bidkar/simple-mcp/internal/logger"
	"github.com/p-bidkar/simple-mcp/internal/mcp"
	"github.com/p-bidkar/simple-mcp/internal/server"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted client demo against an in-process server",
		Long: `Run the scripted demo: connect a client session to an in-process
server over the simulated transport, discover the tool catalog and
exercise a few tools.`,
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initLogging(cfg)
	defer logger.CloseGlobalLogger()

	out := cmd.OutOrStdout()
	s := server.New(cfg)
	delay := time.Duration(cfg.Client.DelayMS) * time.Millisecond
	client := mcp.NewClient(cfg.Client.Host, cfg.Client.Port, server.NewLocalTransport(s, delay))

	fmt.Fprintf(out, "Connecting to MCP Server at %s:%d...\n", cfg.Client.Host, cfg.Client.Port)
	if !client.Connect() {
		return fmt.Errorf("failed to connect to MCP server at %s:%d", cfg.Client.Host, cfg.Client.Port)
	}
	info := client.ServerInfo()
	fmt.Fprintf(out, "Connected: %s v%s\n", info.Name, info.Version)

	discovered := client.DiscoverTools()
	fmt.Fprintf(out, "Found %d available tools\n", len(discovered))
	displayTools(out, discovered)

	fmt.Fprintln(out, "Running example tool calls...")
	printResult(out, "Calculator Result",
		client.CallTool("calculator.add", map[string]interface{}{"a": 10.0, "b": 5.0}))
	printResult(out, "Weather Result",
		client.CallTool("weather.get_weather", map[string]interface{}{"city": "New York"}))
	printResult(out, "Echo Result",
		client.CallTool("system.echo", map[string]interface{}{"message": "Hello MCP!"}))

	client.Disconnect()
	fmt.Fprintln(out, "Disconnected from MCP Server")
	return nil
}

// displayTools prints the catalog. Parameter details are shown only on
// a terminal to keep piped output compact.
func displayTools(w io.Writer, list []mcp.Tool) {
	fmt.Fprintln(w, "\nAvailable Tools:")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	verbose := term.IsTerminal(int(os.Stdout.Fd()))
	for i, tool := range list {
		fmt.Fprintf(w, "%d. %s\n", i+1, tool.Name)
		fmt.Fprintf(w, "   Description: %s\n", tool.Description)
		if verbose {
			printParameters(w, tool.InputSchema)
		}
		fmt.Fprintln(w)
	}
}

func printParameters(w io.Writer, schema map[string]interface{}) {
	properties, ok := schema["properties"].(map[string]interface{})
	if !ok || len(properties) == 0 {
		return
	}

	required := map[string]bool{}
	switch req := schema["required"].(type) {
	case []string:
		for _, name := range req {
			required[name] = true
		}
	case []interface{}:
		for _, name := range req {
			if s, ok := name.(string); ok {
				required[s] = true
			}
		}
	}

	fmt.Fprintln(w, "   Parameters:")
	for name, info := range properties {
		paramType := "unknown"
		if m, ok := info.(map[string]interface{}); ok {
			if t, ok := m["type"].(string); ok {
				paramType = t
			}
		}
		mark := ""
		if required[name] {
			mark = " *"
		}
		fmt.Fprintf(w, "     - %s (%s)%s\n", name, paramType, mark)
	}
}

// printResult renders a tool result mapping. An empty mapping means
// the call failed, which the demo reports as "no data" rather than
// pretending it got a payload.
func printResult(w io.Writer, label string, result map[string]interface{}) {
	if len(result) == 0 {
		fmt.Fprintf(w, "%s: no data\n", label)
		return
	}
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", label, result)
		return
	}
	fmt.Fprintf(w, "%s:\n%s\n", label, pretty)
}
