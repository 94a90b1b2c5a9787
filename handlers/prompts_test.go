package handlers

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPrompt(t *testing.T, h *PromptHandlers, name string, args map[string]string) (*mcp.GetPromptResult, error) {
	t.Helper()
	return h.GetPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Name: name, Arguments: args},
	})
}

func TestCompanySummaryPrompt(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	_, _, err := NewCommunicationHandlers(tr).AddCommunication(context.Background(), nil, AddCommunicationInput{
		CompanyID: acme.ID, MethodID: "email", Date: "2025-01-04",
	})
	require.NoError(t, err)

	h := NewPromptHandlers(tr)
	res, err := getPrompt(t, h, "company-summary", map[string]string{"company_id": acme.ID})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)

	text := res.Messages[0].Content.(*mcp.TextContent).Text
	assert.Contains(t, text, "Company: Acme")
	assert.Contains(t, text, "Status: on-track")
	assert.Contains(t, text, "Next scheduled: 2025-01-04 via Email")

	_, err = getPrompt(t, h, "company-summary", nil)
	assert.ErrorContains(t, err, "company_id is required")
}

func TestOutreachPlanPrompt(t *testing.T) {
	tr := setupTracker(t)
	acme := addAcme(t, tr)
	_, _, err := NewCommunicationHandlers(tr).AddCommunication(context.Background(), nil, AddCommunicationInput{
		CompanyID: acme.ID, MethodID: "phone-call", Date: "2025-01-01",
	})
	require.NoError(t, err)

	res, err := getPrompt(t, NewPromptHandlers(tr), "outreach-plan", nil)
	require.NoError(t, err)
	text := res.Messages[0].Content.(*mcp.TextContent).Text
	assert.Contains(t, text, "Overdue (1):")
	assert.Contains(t, text, "Acme: Phone Call on 2025-01-01")
	assert.Contains(t, text, "Email: 50")
}

func TestUnknownPrompt(t *testing.T) {
	_, err := getPrompt(t, NewPromptHandlers(setupTracker(t)), "deal-analysis", nil)
	assert.Error(t, err)
}
