package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/1broseidon/termgrid/internal/mcp"
)

func newMCPCmd(opts *rootOptions, open backendOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Model Context Protocol integration",
		Args:  cobra.NoArgs,
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: dedent.Dedent(`
			Start the MCP server on stdio. Designed to be invoked by MCP clients,
			which can then list, tile and hide terminal windows.

			Example client registration:
			  claude mcp add termgrid -- termgrid mcp serve`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			ws, release, err := open(opts.simulate, res.Config)
			if err != nil {
				return fmt.Errorf("failed to open window system: %w", err)
			}
			defer release()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := mcp.NewServer(res.Config, ws, slogFromContext(ctx))
			if err := server.Run(ctx); err != nil && ctx.Err() == nil {
				return fmt.Errorf("MCP server error: %w", err)
			}
			return nil
		},
	}
	cmd.AddCommand(serve)
	return cmd
}
