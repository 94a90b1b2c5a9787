package handlers

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerRegistersTools(t *testing.T) {
	ctx := context.Background()
	server := NewServer(setupTracker(t), "test")

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	for _, want := range []string{
		"add_company", "update_company", "delete_company", "find_companies",
		"add_communication", "update_communication", "delete_communication",
		"complete_communication", "bulk_complete_communications",
		"list_notifications", "get_report", "record_engagement",
		"generate_graph", "get_dashboard",
	} {
		assert.Contains(t, names, want)
	}

	prompts, err := session.ListPrompts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, prompts.Prompts, 2)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "record_engagement",
		Arguments: map[string]any{"method_id": "email", "successful": true},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
}
