// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server on stdio for Claude Desktop integration
package cli

import (
	"context"

	"github.com/harperreed/commtrack/handlers"
	"github.com/harperreed/commtrack/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// MCPCommand starts the MCP server on stdio and blocks until the client
// disconnects or ctx is cancelled.
func MCPCommand(ctx context.Context, t *tracker.Tracker, logger *zap.Logger, version string) error {
	logger.Info("starting MCP server", zap.String("version", version))

	server := handlers.NewServer(t, version)
	return server.Run(ctx, &mcp.StdioTransport{})
}
