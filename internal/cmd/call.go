package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p-bidkar/simple-mcp/internal/logger"
	"github.com/p-bidkar/simple-mcp/internal/mcp"
	"github.com/p-bidkar/simple-mcp/internal/server"
)

func newCallCmd() *cobra.Command {
	var argsJSON string

	cmd := &cobra.Command{
		Use:   "call NAME",
		Short: "Invoke a single tool through a local session",
		Example: `  simple-mcp call calculator.add --args '{"a": 10, "b": 5}'
  simple-mcp call weather.get_weather --args '{"city": "Tokyo"}'
  simple-mcp call system.get_system_info`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			initLogging(cfg)
			defer logger.CloseGlobalLogger()

			arguments := map[string]interface{}{}
			if argsJSON != "" {
				if err := json.Unmarshal([]byte(argsJSON), &arguments); err != nil {
					return fmt.Errorf("invalid --args JSON: %w", err)
				}
			}

			s := server.New(cfg)
			client := mcp.NewClient(cfg.Client.Host, cfg.Client.Port, server.NewLocalTransport(s, 0))
			if !client.Connect() {
				return fmt.Errorf("failed to connect to MCP server")
			}
			defer client.Disconnect()

			name := args[0]
			result := client.CallTool(name, arguments)
			if len(result) == 0 {
				return fmt.Errorf("tool %s returned no data", name)
			}

			pretty, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("render result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return nil
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "", "Tool arguments as a JSON object")
	return cmd
}
