// ABOUTME: MCP resource handlers for exposing tracker data
// ABOUTME: Provides read-only JSON views of companies, communications, methods and reporting
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/views"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResourceScheme prefixes every resource URI.
const ResourceScheme = "commtrack://"

type ResourceHandlers struct {
	tracker *tracker.Tracker
}

func NewResourceHandlers(t *tracker.Tracker) *ResourceHandlers {
	return &ResourceHandlers{tracker: t}
}

// companyDetail is a company with its derived communication history.
type companyDetail struct {
	views.CompanyRow
	Communications any `json:"communications"`
}

// ReadResource handles resource read requests
func (h *ResourceHandlers) ReadResource(ctx context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, ResourceScheme) {
		return nil, fmt.Errorf("invalid URI scheme: expected %s", ResourceScheme)
	}

	path := strings.TrimPrefix(uri, ResourceScheme)
	parts := strings.Split(path, "/")

	switch parts[0] {
	case "companies":
		return jsonResource(uri, h.tracker.Companies())

	case "company":
		if len(parts) < 2 || parts[1] == "" {
			return nil, fmt.Errorf("company id required")
		}
		return h.readCompany(uri, parts[1])

	case "communications":
		return jsonResource(uri, h.tracker.Communications())

	case "methods":
		return jsonResource(uri, h.tracker.Methods())

	case "reporting":
		return jsonResource(uri, h.tracker.Metrics())

	case "notifications":
		return jsonResource(uri, h.tracker.Notifications())

	default:
		return nil, mcp.ResourceNotFoundError(uri)
	}
}

func (h *ResourceHandlers) readCompany(uri, id string) (*mcp.ReadResourceResult, error) {
	company, ok := h.tracker.Company(id)
	if !ok {
		return nil, mcp.ResourceNotFoundError(uri)
	}

	st := h.tracker.State()
	now := h.tracker.Now()
	row := views.CompanyRow{
		Company:       company,
		LastCompleted: views.LastCompleted(st.Communications, id, views.LastCompletedLimit, now.Location()),
		Status:        views.CompanyStatus(st.Communications, id, now),
	}
	if next, ok := views.NextPending(st.Communications, id, now.Location()); ok {
		row.Next = &next
	}

	var comms []any
	for _, c := range st.Communications {
		if c.CompanyID == id {
			comms = append(comms, c)
		}
	}
	if comms == nil {
		comms = []any{}
	}

	return jsonResource(uri, companyDetail{CompanyRow: row, Communications: comms})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}}, nil
}
