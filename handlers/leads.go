// ABOUTME: Lead MCP tool handlers
// ABOUTME: Implements add_lead, find_leads, update_lead, move_lead, and delete_lead tools
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/harperreed/proxvenda/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type LeadHandlers struct {
	store *store.Store
}

func NewLeadHandlers(s *store.Store) *LeadHandlers {
	return &LeadHandlers{store: s}
}

type AddLeadInput struct {
	Name         string  `json:"name" jsonschema:"Lead name (required)"`
	WhatsApp     string  `json:"whatsapp" jsonschema:"WhatsApp number with area code (required)"`
	Type         string  `json:"type,omitempty" jsonschema:"Consortium type: CAR, HOUSE, SERVICE, or OTHER"`
	Value        float64 `json:"value,omitempty" jsonschema:"Target letter value in BRL"`
	Installment  float64 `json:"installment,omitempty" jsonschema:"Desired monthly installment in BRL"`
	Goal         string  `json:"goal,omitempty" jsonschema:"Free-text goal or notes"`
	InterestDate string  `json:"interest_date,omitempty" jsonschema:"Next follow-up date (RFC3339, defaults to today)"`
}

type LeadOutput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	WhatsApp     string  `json:"whatsapp"`
	Type         string  `json:"type"`
	TypeLabel    string  `json:"type_label"`
	Value        float64 `json:"value"`
	Installment  float64 `json:"installment"`
	Goal         string  `json:"goal,omitempty"`
	InterestDate string  `json:"interest_date"`
	StageID      string  `json:"stage_id"`
	StageName    string  `json:"stage_name,omitempty"`
	Status       string  `json:"status"`
	LastContact  string  `json:"last_contact_date"`
	Interactions int     `json:"interactions"`
	Objections   []string `json:"objections,omitempty"`
}

func (h *LeadHandlers) AddLead(_ context.Context, request *mcp.CallToolRequest, input AddLeadInput) (*mcp.CallToolResult, LeadOutput, error) {
	now := time.Now()

	lead := &models.Lead{
		Name:        input.Name,
		WhatsApp:    input.WhatsApp,
		Type:        models.ConsortiumType(strings.ToUpper(input.Type)),
		Value:       input.Value,
		Installment: input.Installment,
		Goal:        input.Goal,
	}
	if input.Type == "" {
		lead.Type = models.TypeOther
	}
	if input.InterestDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.InterestDate)
		if err != nil {
			return nil, LeadOutput{}, fmt.Errorf("invalid interest_date format (use ISO 8601/RFC3339): %w", err)
		}
		lead.InterestDate = parsed
	}

	var out LeadOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		if err := crm.AddLead(st, lead, now); err != nil {
			return err
		}
		out = leadToOutput(st, lead)
		return nil
	})
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to add lead: %w", err)
	}

	return nil, out, nil
}

type FindLeadsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (matches lead name)"`
	Stage string `json:"stage,omitempty" jsonschema:"Filter by stage name"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindLeadsOutput struct {
	Leads []LeadOutput `json:"leads"`
}

func (h *LeadHandlers) FindLeads(_ context.Context, request *mcp.CallToolRequest, input FindLeadsInput) (*mcp.CallToolResult, FindLeadsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	st, err := h.store.Load()
	if err != nil {
		return nil, FindLeadsOutput{}, fmt.Errorf("failed to load state: %w", err)
	}

	var stageID string
	if input.Stage != "" {
		stage := crm.FindStageByName(st, input.Stage)
		if stage == nil {
			return nil, FindLeadsOutput{Leads: []LeadOutput{}}, nil
		}
		stageID = stage.ID
	}

	query := strings.ToLower(input.Query)
	var result []LeadOutput
	for i := range st.Leads {
		lead := &st.Leads[i]
		if stageID != "" && lead.StageID != stageID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(lead.Name), query) {
			continue
		}
		result = append(result, leadToOutput(st, lead))
		if len(result) >= limit {
			break
		}
	}

	return nil, FindLeadsOutput{Leads: result}, nil
}

type UpdateLeadInput struct {
	ID           string   `json:"id" jsonschema:"Lead ID (required)"`
	Name         string   `json:"name,omitempty" jsonschema:"Updated lead name"`
	WhatsApp     string   `json:"whatsapp,omitempty" jsonschema:"Updated WhatsApp number"`
	Type         string   `json:"type,omitempty" jsonschema:"Updated consortium type"`
	Value        *float64 `json:"value,omitempty" jsonschema:"Updated letter value in BRL"`
	Installment  *float64 `json:"installment,omitempty" jsonschema:"Updated installment in BRL"`
	Goal         *string  `json:"goal,omitempty" jsonschema:"Updated goal or notes"`
	Status       string   `json:"status,omitempty" jsonschema:"Updated status: active, follow-up, or paused"`
	InterestDate string   `json:"interest_date,omitempty" jsonschema:"Updated follow-up date (RFC3339)"`
}

func (h *LeadHandlers) UpdateLead(_ context.Context, request *mcp.CallToolRequest, input UpdateLeadInput) (*mcp.CallToolResult, LeadOutput, error) {
	if input.ID == "" {
		return nil, LeadOutput{}, fmt.Errorf("id is required")
	}

	upd := crm.LeadUpdate{
		Value:       input.Value,
		Installment: input.Installment,
		Goal:        input.Goal,
	}
	if input.Name != "" {
		upd.Name = &input.Name
	}
	if input.WhatsApp != "" {
		upd.WhatsApp = &input.WhatsApp
	}
	if input.Type != "" {
		t := models.ConsortiumType(strings.ToUpper(input.Type))
		upd.Type = &t
	}
	if input.Status != "" {
		upd.Status = &input.Status
	}
	if input.InterestDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.InterestDate)
		if err != nil {
			return nil, LeadOutput{}, fmt.Errorf("invalid interest_date format (use ISO 8601/RFC3339): %w", err)
		}
		upd.InterestDate = &parsed
	}

	var out LeadOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		if err := crm.UpdateLead(st, input.ID, upd); err != nil {
			return err
		}
		out = leadToOutput(st, crm.FindLead(st, input.ID))
		return nil
	})
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to update lead: %w", err)
	}

	return nil, out, nil
}

type MoveLeadInput struct {
	ID    string `json:"id" jsonschema:"Lead ID (required)"`
	Stage string `json:"stage" jsonschema:"Destination stage name or stage ID (required)"`
}

func (h *LeadHandlers) MoveLead(_ context.Context, request *mcp.CallToolRequest, input MoveLeadInput) (*mcp.CallToolResult, LeadOutput, error) {
	if input.ID == "" || input.Stage == "" {
		return nil, LeadOutput{}, fmt.Errorf("id and stage are required")
	}

	var out LeadOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		stageID := input.Stage
		if stage := crm.FindStageByName(st, input.Stage); stage != nil {
			stageID = stage.ID
		}
		if err := crm.MoveLead(st, input.ID, stageID); err != nil {
			return err
		}
		out = leadToOutput(st, crm.FindLead(st, input.ID))
		return nil
	})
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to move lead: %w", err)
	}

	return nil, out, nil
}

type DeleteLeadInput struct {
	ID string `json:"id" jsonschema:"Lead ID (required)"`
}

type DeleteLeadOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *LeadHandlers) DeleteLead(_ context.Context, request *mcp.CallToolRequest, input DeleteLeadInput) (*mcp.CallToolResult, DeleteLeadOutput, error) {
	if input.ID == "" {
		return nil, DeleteLeadOutput{}, fmt.Errorf("id is required")
	}

	err := h.store.Mutate(func(st *models.AppState) error {
		return crm.DeleteLead(st, input.ID)
	})
	if err != nil {
		return nil, DeleteLeadOutput{}, fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil, DeleteLeadOutput{
		Success: true,
		Message: fmt.Sprintf("Deleted lead: %s", input.ID),
	}, nil
}

func leadToOutput(st *models.AppState, lead *models.Lead) LeadOutput {
	out := LeadOutput{
		ID:           lead.ID,
		Name:         lead.Name,
		WhatsApp:     lead.WhatsApp,
		Type:         string(lead.Type),
		TypeLabel:    lead.Type.Label(),
		Value:        lead.Value,
		Installment:  lead.Installment,
		Goal:         lead.Goal,
		StageID:      lead.StageID,
		Status:       lead.Status,
		Interactions: len(lead.History),
	}

	if !lead.InterestDate.IsZero() {
		out.InterestDate = lead.InterestDate.Format(time.RFC3339)
	}
	if !lead.LastContact.IsZero() {
		out.LastContact = lead.LastContact.Format(time.RFC3339)
	}
	if stage := crm.FindStage(st, lead.StageID); stage != nil {
		out.StageName = stage.Name
	}
	for _, o := range lead.Objections {
		out.Objections = append(out.Objections, o.Text)
	}

	return out
}
