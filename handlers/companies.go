// ABOUTME: Company MCP tool handlers
// ABOUTME: Implements add, update, delete and find tools for companies
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/commtrack/models"
	"github.com/harperreed/commtrack/tracker"
	"github.com/harperreed/commtrack/views"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CompanyHandlers struct {
	tracker *tracker.Tracker
}

func NewCompanyHandlers(t *tracker.Tracker) *CompanyHandlers {
	return &CompanyHandlers{tracker: t}
}

type AddCompanyInput struct {
	ID                       string   `json:"id,omitempty" jsonschema:"Company ID; an existing ID replaces that company"`
	Name                     string   `json:"name" jsonschema:"Company name (required)"`
	Location                 string   `json:"location" jsonschema:"Company location (required)"`
	LinkedInProfile          string   `json:"linkedin_profile,omitempty" jsonschema:"LinkedIn page URL"`
	Emails                   []string `json:"emails" jsonschema:"Contact email addresses (at least one)"`
	PhoneNumbers             []string `json:"phone_numbers" jsonschema:"Contact phone numbers (at least one)"`
	Comments                 string   `json:"comments,omitempty" jsonschema:"Free-form comments"`
	CommunicationPeriodicity int      `json:"communication_periodicity,omitempty" jsonschema:"Desired days between communications (default 7)"`
}

type CompanyOutput struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Location                 string   `json:"location"`
	LinkedInProfile          string   `json:"linkedin_profile,omitempty"`
	Emails                   []string `json:"emails"`
	PhoneNumbers             []string `json:"phone_numbers"`
	Comments                 string   `json:"comments,omitempty"`
	CommunicationPeriodicity int      `json:"communication_periodicity"`
	Status                   string   `json:"status,omitempty"`
}

func (h *CompanyHandlers) AddCompany(_ context.Context, request *mcp.CallToolRequest, input AddCompanyInput) (*mcp.CallToolResult, CompanyOutput, error) {
	company := models.Company{
		ID:                       input.ID,
		Name:                     input.Name,
		Location:                 input.Location,
		LinkedInProfile:          input.LinkedInProfile,
		Emails:                   input.Emails,
		PhoneNumbers:             input.PhoneNumbers,
		Comments:                 input.Comments,
		CommunicationPeriodicity: input.CommunicationPeriodicity,
	}
	if company.CommunicationPeriodicity == 0 {
		company.CommunicationPeriodicity = models.DefaultPeriodicity
	}
	if err := company.Validate(); err != nil {
		return nil, CompanyOutput{}, err
	}

	res, err := h.tracker.CreateCompany(company)
	if err != nil {
		return nil, CompanyOutput{}, fmt.Errorf("failed to create company: %w", err)
	}
	company.ID = res.ID

	return nil, companyToOutput(company, ""), nil
}

type UpdateCompanyInput struct {
	CompanyID                string   `json:"company_id" jsonschema:"ID of the company to update"`
	Name                     string   `json:"name,omitempty" jsonschema:"Updated company name"`
	Location                 string   `json:"location,omitempty" jsonschema:"Updated location"`
	LinkedInProfile          string   `json:"linkedin_profile,omitempty" jsonschema:"Updated LinkedIn page URL"`
	Emails                   []string `json:"emails,omitempty" jsonschema:"Replacement email list"`
	PhoneNumbers             []string `json:"phone_numbers,omitempty" jsonschema:"Replacement phone number list"`
	Comments                 string   `json:"comments,omitempty" jsonschema:"Updated comments"`
	CommunicationPeriodicity int      `json:"communication_periodicity,omitempty" jsonschema:"Updated periodicity in days"`
}

func (h *CompanyHandlers) UpdateCompany(_ context.Context, request *mcp.CallToolRequest, input UpdateCompanyInput) (*mcp.CallToolResult, CompanyOutput, error) {
	if input.CompanyID == "" {
		return nil, CompanyOutput{}, fmt.Errorf("company_id is required")
	}

	company, ok := h.tracker.Company(input.CompanyID)
	if !ok {
		return nil, CompanyOutput{}, fmt.Errorf("company not found: %s", input.CompanyID)
	}

	// Apply updates
	if input.Name != "" {
		company.Name = input.Name
	}
	if input.Location != "" {
		company.Location = input.Location
	}
	if input.LinkedInProfile != "" {
		company.LinkedInProfile = input.LinkedInProfile
	}
	if len(input.Emails) > 0 {
		company.Emails = input.Emails
	}
	if len(input.PhoneNumbers) > 0 {
		company.PhoneNumbers = input.PhoneNumbers
	}
	if input.Comments != "" {
		company.Comments = input.Comments
	}
	if input.CommunicationPeriodicity != 0 {
		company.CommunicationPeriodicity = input.CommunicationPeriodicity
	}
	if err := company.Validate(); err != nil {
		return nil, CompanyOutput{}, err
	}

	if _, err := h.tracker.UpdateCompany(company); err != nil {
		return nil, CompanyOutput{}, fmt.Errorf("failed to update company: %w", err)
	}

	return nil, companyToOutput(company, ""), nil
}

type DeleteCompanyInput struct {
	CompanyID string `json:"company_id" jsonschema:"ID of the company to delete"`
}

type DeleteCompanyOutput struct {
	Message               string `json:"message"`
	Found                 bool   `json:"found"`
	CommunicationsRemoved int    `json:"communications_removed"`
}

func (h *CompanyHandlers) DeleteCompany(_ context.Context, request *mcp.CallToolRequest, input DeleteCompanyInput) (*mcp.CallToolResult, DeleteCompanyOutput, error) {
	if input.CompanyID == "" {
		return nil, DeleteCompanyOutput{}, fmt.Errorf("company_id is required")
	}

	res, err := h.tracker.DeleteCompany(input.CompanyID)
	if err != nil {
		return nil, DeleteCompanyOutput{}, fmt.Errorf("failed to delete company: %w", err)
	}

	msg := fmt.Sprintf("Deleted company: %s", input.CompanyID)
	if !res.Found {
		msg = fmt.Sprintf("No company with id %s", input.CompanyID)
	}
	return nil, DeleteCompanyOutput{
		Message:               msg,
		Found:                 res.Found,
		CommunicationsRemoved: res.Removed,
	}, nil
}

type FindCompaniesInput struct {
	Query  string `json:"query,omitempty" jsonschema:"Case-insensitive name search"`
	SortBy string `json:"sort_by,omitempty" jsonschema:"name (default) or communications"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindCompaniesOutput struct {
	Companies []CompanyOutput `json:"companies"`
}

func (h *CompanyHandlers) FindCompanies(_ context.Context, request *mcp.CallToolRequest, input FindCompaniesInput) (*mcp.CallToolResult, FindCompaniesOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}
	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = views.SortByName
	}
	if sortBy != views.SortByName && sortBy != views.SortByCommunications {
		return nil, FindCompaniesOutput{}, fmt.Errorf("invalid sort_by: %s", sortBy)
	}

	rows := h.tracker.Overview(input.Query, sortBy)
	if len(rows) > limit {
		rows = rows[:limit]
	}

	result := make([]CompanyOutput, len(rows))
	for i, row := range rows {
		result[i] = companyToOutput(row.Company, string(row.Status))
	}

	return nil, FindCompaniesOutput{Companies: result}, nil
}

func companyToOutput(company models.Company, status string) CompanyOutput {
	return CompanyOutput{
		ID:                       company.ID,
		Name:                     company.Name,
		Location:                 company.Location,
		LinkedInProfile:          company.LinkedInProfile,
		Emails:                   company.Emails,
		PhoneNumbers:             company.PhoneNumbers,
		Comments:                 company.Comments,
		CommunicationPeriodicity: company.CommunicationPeriodicity,
		Status:                   status,
	}
}
