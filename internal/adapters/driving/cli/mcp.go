package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can list,
refine and export your projects.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

The server uses the session stored by 'aidoc login'.

Examples:
  # Stdio mode (default)
  aidoc mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  aidoc mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "aidoc": {
        "command": "/path/to/aidoc",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// mcpPorts builds the MCP ports from the configured services.
func mcpPorts() *mcp.Ports {
	return &mcp.Ports{
		Session:  sessionService,
		Projects: projectService,
		Sections: sectionService,
		Export:   exportService,
		Refiner:  textRefiner,
	}
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(mcpPorts())
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
