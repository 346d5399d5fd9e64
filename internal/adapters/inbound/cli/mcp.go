package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/orderdesk/orderdesk/internal/adapters/inbound/mcp"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the orderdesk MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(flags))
	return cmd
}

func newMCPServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start orderdesk MCP server (stdio)",
		Long:  "Start the orderdesk MCP server using stdio transport. Assistants can browse products and orders, create orders and read daily sales through it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := flags.session(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewOrderDeskMCPServer(sess.api, sess.cfg.PageSize, version)
			sess.logger.Debug("serving mcp over stdio", "base_url", sess.cfg.BaseURL)
			return server.ServeStdio(s)
		},
	}
}
