// ABOUTME: MCP server assembly
// ABOUTME: Registers every tool, resource and prompt against one tracker
package handlers

import (
	"github.com/harperreed/commtrack/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the MCP server exposing t.
func NewServer(t *tracker.Tracker, version string) *mcp.Server {
	companyHandlers := NewCompanyHandlers(t)
	communicationHandlers := NewCommunicationHandlers(t)
	reportHandlers := NewReportHandlers(t)
	vizHandlers := NewVizHandlers(t)
	resourceHandlers := NewResourceHandlers(t)
	promptHandlers := NewPromptHandlers(t)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "commtrack",
		Version: version,
	}, nil)

	// Companies
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_company",
		Description: "Add a company to track, or replace one with the same id",
	}, companyHandlers.AddCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_company",
		Description: "Update an existing company's details",
	}, companyHandlers.UpdateCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_company",
		Description: "Delete a company and all of its communications",
	}, companyHandlers.DeleteCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_companies",
		Description: "Search companies by name with their communication status",
	}, companyHandlers.FindCompanies)

	// Communications
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_communication",
		Description: "Schedule or log a communication with a company",
	}, communicationHandlers.AddCommunication)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_communication",
		Description: "Update a communication's method, date, notes or completion",
	}, communicationHandlers.UpdateCommunication)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_communication",
		Description: "Delete a communication",
	}, communicationHandlers.DeleteCommunication)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "complete_communication",
		Description: "Mark a communication as completed",
	}, communicationHandlers.CompleteCommunication)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bulk_complete_communications",
		Description: "Mark several communications as completed, skipping unknown ids",
	}, communicationHandlers.BulkCompleteCommunications)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notifications",
		Description: "List overdue, due-today and upcoming communications",
	}, communicationHandlers.ListNotifications)

	// Reporting
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_report",
		Description: "Get method frequency, engagement effectiveness and communication trends",
	}, reportHandlers.GetReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_engagement",
		Description: "Record a successful or failed engagement for a communication method",
	}, reportHandlers.RecordEngagement)

	// Visualization
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_graph",
		Description: "Generate a GraphViz DOT graph of companies and their communications",
	}, vizHandlers.GenerateGraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Render the text dashboard",
	}, vizHandlers.GetDashboard)

	// Resources
	for _, r := range []struct{ name, desc string }{
		{"companies", "All companies"},
		{"communications", "All communications"},
		{"methods", "Communication methods"},
		{"reporting", "Reporting metrics"},
		{"notifications", "Overdue, due-today and upcoming communications"},
	} {
		server.AddResource(&mcp.Resource{
			URI:         ResourceScheme + r.name,
			Name:        r.name,
			Description: r.desc,
			MIMEType:    "application/json",
		}, resourceHandlers.ReadResource)
	}
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: ResourceScheme + "company/{id}",
		Name:        "company",
		Description: "One company with its status and communications",
		MIMEType:    "application/json",
	}, resourceHandlers.ReadResource)

	// Prompts
	for _, p := range promptHandlers.Prompts() {
		server.AddPrompt(p, promptHandlers.GetPrompt)
	}

	return server
}
