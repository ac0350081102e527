package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/p-bidkar/simple-mcp/internal/logger"
	"github.com/p-bidkar/simple-mcp/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		listenPort int
		stdio      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP demo server",
		Long: `Run the MCP demo server. By default this prints the tool catalog
banner and waits for a signal; no socket is opened on the advertised
port. With --stdio the server speaks real MCP over stdin/stdout using
the official SDK transport.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if listenPort != 0 {
				cfg.Server.Port = listenPort
			}

			initLogging(cfg)
			defer logger.CloseGlobalLogger()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigChan
				log.Println("Shutting down...")
				cancel()
			}()

			s := server.New(cfg)
			if stdio {
				log.Println("Serving MCP over stdio")
				return s.ServeStdio(ctx)
			}
			return s.Run(ctx, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&listenPort, "listen", "l", 0, "Port to advertise (no socket is opened)")
	cmd.Flags().BoolVar(&stdio, "stdio", false, "Serve MCP over stdio via the official SDK transport")
	return cmd
}
