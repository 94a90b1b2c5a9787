// ABOUTME: MCP prompt handlers for reusable outreach workflow templates
// ABOUTME: Company summaries and outreach plans built from tracker state
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/views"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PromptHandlers struct {
	tracker *tracker.Tracker
}

func NewPromptHandlers(t *tracker.Tracker) *PromptHandlers {
	return &PromptHandlers{tracker: t}
}

// Prompts lists the prompt templates for registration.
func (h *PromptHandlers) Prompts() []*mcp.Prompt {
	return []*mcp.Prompt{
		{
			Name:        "company-summary",
			Description: "Summarize a company's communication history and what is due next",
			Arguments: []*mcp.PromptArgument{
				{Name: "company_id", Description: "ID of the company", Required: true},
			},
		},
		{
			Name:        "outreach-plan",
			Description: "Plan this week's outreach from overdue, due-today and upcoming communications",
		},
	}
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	switch request.Params.Name {
	case "company-summary":
		return h.getCompanySummaryPrompt(request.Params.Arguments)
	case "outreach-plan":
		return h.getOutreachPlanPrompt()
	default:
		return nil, fmt.Errorf("unknown prompt: %s", request.Params.Name)
	}
}

func (h *PromptHandlers) getCompanySummaryPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	companyID, ok := args["company_id"]
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id is required")
	}

	company, ok := h.tracker.Company(companyID)
	if !ok {
		return nil, fmt.Errorf("company not found: %s", companyID)
	}

	comms := h.tracker.Communications()
	now := h.tracker.Now()

	var promptText strings.Builder
	promptText.WriteString("Please summarize our communication with this company:\n\n")
	promptText.WriteString(fmt.Sprintf("Company: %s\n", company.Name))
	promptText.WriteString(fmt.Sprintf("Location: %s\n", company.Location))
	if company.LinkedInProfile != "" {
		promptText.WriteString(fmt.Sprintf("LinkedIn: %s\n", company.LinkedInProfile))
	}
	promptText.WriteString(fmt.Sprintf("Desired cadence: every %d days\n", company.CommunicationPeriodicity))
	promptText.WriteString(fmt.Sprintf("Status: %s\n", views.CompanyStatus(comms, companyID, now)))

	last := views.LastCompleted(comms, companyID, views.LastCompletedLimit, now.Location())
	if len(last) > 0 {
		promptText.WriteString("\nRecent completed communications:\n")
		for _, c := range last {
			promptText.WriteString(fmt.Sprintf("  - %s via %s", c.Date, models.MethodName(c.MethodID)))
			if c.Notes != "" {
				promptText.WriteString(fmt.Sprintf(": %s", c.Notes))
			}
			promptText.WriteString("\n")
		}
	}
	if next, ok := views.NextPending(comms, companyID, now.Location()); ok {
		promptText.WriteString(fmt.Sprintf("\nNext scheduled: %s via %s\n", next.Date, models.MethodName(next.MethodID)))
	}
	if company.Comments != "" {
		promptText.WriteString(fmt.Sprintf("\nComments: %s\n", company.Comments))
	}

	promptText.WriteString("\nPlease provide:")
	promptText.WriteString("\n1. A brief summary of the relationship so far")
	promptText.WriteString("\n2. Whether the cadence is being kept")
	promptText.WriteString("\n3. A suggested next communication and talking points")

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Summary for company: %s", company.Name),
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: promptText.String()},
			},
		},
	}, nil
}

func (h *PromptHandlers) getOutreachPlanPrompt() (*mcp.GetPromptResult, error) {
	n := h.tracker.Notifications()
	companies := h.tracker.Companies()
	metrics := h.tracker.Metrics()

	var promptText strings.Builder
	promptText.WriteString("Please plan my outreach for the coming week.\n")

	section := func(title string, comms []models.Communication) {
		promptText.WriteString(fmt.Sprintf("\n%s (%d):\n", title, len(comms)))
		for _, c := range comms {
			promptText.WriteString(fmt.Sprintf("  - %s: %s on %s\n",
				views.CompanyName(companies, c.CompanyID), models.MethodName(c.MethodID), c.Date))
		}
	}
	section("Overdue", n.Overdue)
	section("Due today", n.DueToday)
	section("Upcoming", n.Upcoming)

	promptText.WriteString("\nMethod effectiveness scores:\n")
	for _, m := range models.DefaultCommunicationMethods() {
		promptText.WriteString(fmt.Sprintf("  - %s: %d\n", m.Name, metrics.EngagementEffectiveness[m.ID]))
	}

	promptText.WriteString("\nPlease provide:")
	promptText.WriteString("\n1. A prioritized order for the overdue items")
	promptText.WriteString("\n2. Which methods to favor given the effectiveness scores")
	promptText.WriteString("\n3. A day-by-day plan for the upcoming items")

	return &mcp.GetPromptResult{
		Description: "Outreach plan",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: promptText.String()},
			},
		},
	}, nil
}
