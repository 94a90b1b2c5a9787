// ABOUTME: Reporting MCP tool handlers
// ABOUTME: Exposes the reporting metrics and records engagement outcomes
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ReportHandlers struct {
	tracker *tracker.Tracker
}

func NewReportHandlers(t *tracker.Tracker) *ReportHandlers {
	return &ReportHandlers{tracker: t}
}

type GetReportInput struct{}

type MethodMetric struct {
	MethodID      string `json:"method_id"`
	MethodName    string `json:"method_name"`
	Frequency     int    `json:"frequency"`
	Effectiveness int    `json:"effectiveness"`
}

type GetReportOutput struct {
	Methods   []MethodMetric `json:"methods"`
	Total     int            `json:"total"`
	Overdue   int            `json:"overdue"`
	Completed int            `json:"completed"`
}

func (h *ReportHandlers) GetReport(_ context.Context, request *mcp.CallToolRequest, input GetReportInput) (*mcp.CallToolResult, GetReportOutput, error) {
	m := h.tracker.Metrics()

	out := GetReportOutput{
		Total:     m.CommunicationTrends.Total,
		Overdue:   m.CommunicationTrends.Overdue,
		Completed: m.CommunicationTrends.Completed,
	}
	for _, method := range models.DefaultCommunicationMethods() {
		out.Methods = append(out.Methods, MethodMetric{
			MethodID:      string(method.ID),
			MethodName:    method.Name,
			Frequency:     m.CommunicationMethodFrequency[method.ID],
			Effectiveness: m.EngagementEffectiveness[method.ID],
		})
	}
	return nil, out, nil
}

type RecordEngagementInput struct {
	MethodID   string `json:"method_id" jsonschema:"Communication method the outcome applies to"`
	Successful bool   `json:"successful" jsonschema:"true raises the score by 10, false lowers it by 5"`
}

type RecordEngagementOutput struct {
	MethodID      string `json:"method_id"`
	Effectiveness int    `json:"effectiveness"`
}

func (h *ReportHandlers) RecordEngagement(_ context.Context, request *mcp.CallToolRequest, input RecordEngagementInput) (*mcp.CallToolResult, RecordEngagementOutput, error) {
	method := models.MethodID(input.MethodID)
	if _, ok := models.LookupMethod(method); !ok {
		return nil, RecordEngagementOutput{}, fmt.Errorf("unknown method: %s", input.MethodID)
	}

	score, err := h.tracker.RecordEngagement(method, input.Successful)
	if err != nil {
		return nil, RecordEngagementOutput{}, fmt.Errorf("failed to record engagement: %w", err)
	}
	return nil, RecordEngagementOutput{MethodID: input.MethodID, Effectiveness: score}, nil
}
