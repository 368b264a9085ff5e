package cli

import (
	mcpadapter "github.com/abdidvp/sellone/internal/adapters/inbound/mcp"
	"github.com/abdidvp/sellone/internal/adapters/outbound/config"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the sellone MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start sellone MCP server (stdio)",
		Long:  "Start the sellone MCP server using stdio transport. Assistants can scan barcodes and read the catalog through it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.New()
			if _, err := loadStoreConfig(cmd, loader, catalogPath); err != nil {
				return err
			}
			s := mcpadapter.NewSelloneMCPServer(loader, catalogPath)
			return server.ServeStdio(s)
		},
	}

	addCatalogFlag(cmd, &catalogPath)

	return cmd
}
