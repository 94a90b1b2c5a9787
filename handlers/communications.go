// ABOUTME: Communication MCP tool handlers
// ABOUTME: Add, update, delete, complete and bulk-complete scheduled communications
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/views"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CommunicationHandlers struct {
	tracker *tracker.Tracker
}

func NewCommunicationHandlers(t *tracker.Tracker) *CommunicationHandlers {
	return &CommunicationHandlers{tracker: t}
}

type AddCommunicationInput struct {
	ID        string `json:"id,omitempty" jsonschema:"Communication ID; an existing ID replaces that communication"`
	CompanyID string `json:"company_id" jsonschema:"ID of the company (required)"`
	MethodID  string `json:"method_id" jsonschema:"linkedin-post, linkedin-message, email, phone-call or other"`
	Date      string `json:"date" jsonschema:"Scheduled date, YYYY-MM-DD or RFC3339"`
	Notes     string `json:"notes,omitempty" jsonschema:"Notes about the communication"`
	Completed bool   `json:"completed,omitempty" jsonschema:"Record it as already completed"`
}

type CommunicationOutput struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	MethodID    string `json:"method_id"`
	MethodName  string `json:"method_name"`
	Date        string `json:"date"`
	Notes       string `json:"notes,omitempty"`
	Completed   bool   `json:"completed"`
}

func (h *CommunicationHandlers) AddCommunication(_ context.Context, request *mcp.CallToolRequest, input AddCommunicationInput) (*mcp.CallToolResult, CommunicationOutput, error) {
	comm := models.Communication{
		ID:        input.ID,
		CompanyID: input.CompanyID,
		MethodID:  models.MethodID(input.MethodID),
		Date:      input.Date,
		Notes:     input.Notes,
		Completed: input.Completed,
	}
	if err := comm.Validate(); err != nil {
		return nil, CommunicationOutput{}, err
	}
	if _, ok := h.tracker.Company(comm.CompanyID); !ok {
		return nil, CommunicationOutput{}, fmt.Errorf("company not found: %s", comm.CompanyID)
	}
	if comm.ID == "" {
		comm.ID = models.NewCommunicationID()
	}

	saved, _, err := h.tracker.CreateCommunication(comm)
	if err != nil {
		return nil, CommunicationOutput{}, fmt.Errorf("failed to create communication: %w", err)
	}

	return nil, h.toOutput(saved), nil
}

type UpdateCommunicationInput struct {
	CommunicationID string `json:"communication_id" jsonschema:"ID of the communication to update"`
	MethodID        string `json:"method_id,omitempty" jsonschema:"Updated method"`
	Date            string `json:"date,omitempty" jsonschema:"Updated date"`
	Notes           string `json:"notes,omitempty" jsonschema:"Updated notes"`
	Completed       *bool  `json:"completed,omitempty" jsonschema:"Updated completion flag"`
}

// UpdateCommunication edits fields in place. Reporting counters are not touched.
func (h *CommunicationHandlers) UpdateCommunication(_ context.Context, request *mcp.CallToolRequest, input UpdateCommunicationInput) (*mcp.CallToolResult, CommunicationOutput, error) {
	if input.CommunicationID == "" {
		return nil, CommunicationOutput{}, fmt.Errorf("communication_id is required")
	}

	comm, ok := h.tracker.Communication(input.CommunicationID)
	if !ok {
		return nil, CommunicationOutput{}, fmt.Errorf("communication not found: %s", input.CommunicationID)
	}

	if input.MethodID != "" {
		comm.MethodID = models.MethodID(input.MethodID)
	}
	if input.Date != "" {
		comm.Date = input.Date
	}
	if input.Notes != "" {
		comm.Notes = input.Notes
	}
	if input.Completed != nil {
		comm.Completed = *input.Completed
	}
	if err := comm.Validate(); err != nil {
		return nil, CommunicationOutput{}, err
	}

	if _, err := h.tracker.UpdateCommunication(comm); err != nil {
		return nil, CommunicationOutput{}, fmt.Errorf("failed to update communication: %w", err)
	}
	return nil, h.toOutput(comm), nil
}

type CommunicationIDInput struct {
	CommunicationID string `json:"communication_id" jsonschema:"ID of the communication"`
}

type MutationOutput struct {
	Message string `json:"message"`
	Found   bool   `json:"found"`
}

func (h *CommunicationHandlers) DeleteCommunication(_ context.Context, request *mcp.CallToolRequest, input CommunicationIDInput) (*mcp.CallToolResult, MutationOutput, error) {
	if input.CommunicationID == "" {
		return nil, MutationOutput{}, fmt.Errorf("communication_id is required")
	}

	res, err := h.tracker.DeleteCommunication(input.CommunicationID)
	if err != nil {
		return nil, MutationOutput{}, fmt.Errorf("failed to delete communication: %w", err)
	}
	if !res.Found {
		return nil, MutationOutput{Message: fmt.Sprintf("No communication with id %s", input.CommunicationID)}, nil
	}
	return nil, MutationOutput{Message: fmt.Sprintf("Deleted communication: %s", input.CommunicationID), Found: true}, nil
}

func (h *CommunicationHandlers) CompleteCommunication(_ context.Context, request *mcp.CallToolRequest, input CommunicationIDInput) (*mcp.CallToolResult, MutationOutput, error) {
	if input.CommunicationID == "" {
		return nil, MutationOutput{}, fmt.Errorf("communication_id is required")
	}

	res, err := h.tracker.CompleteCommunication(input.CommunicationID)
	if err != nil {
		return nil, MutationOutput{}, fmt.Errorf("failed to complete communication: %w", err)
	}
	if !res.Found {
		return nil, MutationOutput{Message: fmt.Sprintf("No communication with id %s", input.CommunicationID)}, nil
	}
	return nil, MutationOutput{Message: fmt.Sprintf("Completed communication: %s", input.CommunicationID), Found: true}, nil
}

type BulkCompleteInput struct {
	CommunicationIDs []string `json:"communication_ids" jsonschema:"IDs to mark completed, applied in order"`
}

type BulkCompleteOutput struct {
	Completed []string `json:"completed"`
	Missing   []string `json:"missing"`
}

func (h *CommunicationHandlers) BulkCompleteCommunications(_ context.Context, request *mcp.CallToolRequest, input BulkCompleteInput) (*mcp.CallToolResult, BulkCompleteOutput, error) {
	if len(input.CommunicationIDs) == 0 {
		return nil, BulkCompleteOutput{}, fmt.Errorf("communication_ids is required")
	}

	res, err := h.tracker.BulkCompleteCommunications(input.CommunicationIDs)
	if err != nil {
		return nil, BulkCompleteOutput{}, fmt.Errorf("failed to complete communications: %w", err)
	}

	out := BulkCompleteOutput{Completed: res.Completed, Missing: res.Missing}
	if out.Completed == nil {
		out.Completed = []string{}
	}
	if out.Missing == nil {
		out.Missing = []string{}
	}
	return nil, out, nil
}

type ListNotificationsInput struct {
	CompanyID string `json:"company_id,omitempty" jsonschema:"Only include this company"`
}

type ListNotificationsOutput struct {
	Overdue  []CommunicationOutput `json:"overdue"`
	DueToday []CommunicationOutput `json:"due_today"`
	Upcoming []CommunicationOutput `json:"upcoming"`
}

func (h *CommunicationHandlers) ListNotifications(_ context.Context, request *mcp.CallToolRequest, input ListNotificationsInput) (*mcp.CallToolResult, ListNotificationsOutput, error) {
	n := h.tracker.Notifications()
	return nil, ListNotificationsOutput{
		Overdue:  h.toOutputs(n.Overdue, input.CompanyID),
		DueToday: h.toOutputs(n.DueToday, input.CompanyID),
		Upcoming: h.toOutputs(n.Upcoming, input.CompanyID),
	}, nil
}

func (h *CommunicationHandlers) toOutputs(comms []models.Communication, companyID string) []CommunicationOutput {
	companies := h.tracker.Companies()
	out := []CommunicationOutput{}
	for _, c := range comms {
		if companyID != "" && c.CompanyID != companyID {
			continue
		}
		out = append(out, communicationToOutput(c, companies))
	}
	return out
}

func (h *CommunicationHandlers) toOutput(c models.Communication) CommunicationOutput {
	return communicationToOutput(c, h.tracker.Companies())
}

func communicationToOutput(c models.Communication, companies []models.Company) CommunicationOutput {
	return CommunicationOutput{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		CompanyName: views.CompanyName(companies, c.CompanyID),
		MethodID:    string(c.MethodID),
		MethodName:  models.MethodName(c.MethodID),
		Date:        c.Date,
		Notes:       c.Notes,
		Completed:   c.Completed,
	}
}
