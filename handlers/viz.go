// ABOUTME: GraphViz and dashboard MCP handlers
// ABOUTME: Provides generate_graph and get_dashboard tools for agents
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/viz"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VizHandlers struct {
	tracker *tracker.Tracker
}

func NewVizHandlers(t *tracker.Tracker) *VizHandlers {
	return &VizHandlers{tracker: t}
}

type GenerateGraphInput struct {
	CompanyID string `json:"company_id,omitempty" jsonschema:"Limit the graph to one company; omit for all companies"`
}

type GenerateGraphOutput struct {
	DOTSource string `json:"dot_source"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

func (h *VizHandlers) GenerateGraph(_ context.Context, request *mcp.CallToolRequest, input GenerateGraphInput) (*mcp.CallToolResult, GenerateGraphOutput, error) {
	generator := viz.NewGraphGenerator(h.tracker.State(), h.tracker.Now())

	var dot string
	var err error
	if input.CompanyID != "" {
		dot, err = generator.GenerateCompanyGraph(input.CompanyID)
	} else {
		dot, err = generator.GenerateCompleteGraph()
	}
	if err != nil {
		return nil, GenerateGraphOutput{}, fmt.Errorf("failed to generate graph: %w", err)
	}

	// Count nodes and edges for stats
	return nil, GenerateGraphOutput{
		DOTSource: dot,
		NodeCount: strings.Count(dot, "[label="),
		EdgeCount: strings.Count(dot, "->"),
	}, nil
}

type GetDashboardInput struct{}

type GetDashboardOutput struct {
	Text string `json:"text"`
}

func (h *VizHandlers) GetDashboard(_ context.Context, request *mcp.CallToolRequest, input GetDashboardInput) (*mcp.CallToolResult, GetDashboardOutput, error) {
	stats := viz.GenerateDashboardStats(h.tracker.State(), h.tracker.Metrics(), h.tracker.Now())
	return nil, GetDashboardOutput{Text: viz.RenderDashboard(stats)}, nil
}
