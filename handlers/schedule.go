// ABOUTME: Follow-up agenda MCP tool handlers
// ABOUTME: Implements today_agenda, delay_followup, and record_contact tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/harperreed/proxvenda/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ScheduleHandlers struct {
	store *store.Store
}

func NewScheduleHandlers(s *store.Store) *ScheduleHandlers {
	return &ScheduleHandlers{store: s}
}

type TodayAgendaInput struct{}

type AgendaLead struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	WhatsApp         string `json:"whatsapp"`
	Type             string `json:"type_label"`
	InterestDate     string `json:"interest_date,omitempty"`
	DaysSinceContact int    `json:"days_since_contact"`
}

type TodayAgendaOutput struct {
	Late     []AgendaLead `json:"late"`
	Today    []AgendaLead `json:"today"`
	Upcoming []AgendaLead `json:"upcoming"`
	Pending  int          `json:"pending"`
}

func (h *ScheduleHandlers) TodayAgenda(_ context.Context, request *mcp.CallToolRequest, input TodayAgendaInput) (*mcp.CallToolResult, TodayAgendaOutput, error) {
	st, err := h.store.Load()
	if err != nil {
		return nil, TodayAgendaOutput{}, fmt.Errorf("failed to load state: %w", err)
	}

	now := time.Now()
	buckets := crm.Triage(st.Leads, now)

	return nil, TodayAgendaOutput{
		Late:     agendaLeads(buckets.Late, now),
		Today:    agendaLeads(buckets.Today, now),
		Upcoming: agendaLeads(buckets.Upcoming, now),
		Pending:  buckets.Pending(),
	}, nil
}

type DelayFollowupInput struct {
	ID string `json:"id" jsonschema:"Lead ID (required)"`
}

type DelayFollowupOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	InterestDate string `json:"interest_date"`
}

func (h *ScheduleHandlers) DelayFollowup(_ context.Context, request *mcp.CallToolRequest, input DelayFollowupInput) (*mcp.CallToolResult, DelayFollowupOutput, error) {
	if input.ID == "" {
		return nil, DelayFollowupOutput{}, fmt.Errorf("id is required")
	}

	var out DelayFollowupOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		lead := crm.FindLead(st, input.ID)
		if lead == nil {
			return crm.ErrLeadNotFound
		}
		crm.AdvanceFollowup(lead, time.Now())
		out = DelayFollowupOutput{
			ID:           lead.ID,
			Name:         lead.Name,
			InterestDate: lead.InterestDate.Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		return nil, DelayFollowupOutput{}, fmt.Errorf("failed to delay follow-up: %w", err)
	}

	return nil, out, nil
}

type RecordContactInput struct {
	ID   string `json:"id" jsonschema:"Lead ID (required)"`
	Text string `json:"text,omitempty" jsonschema:"Optional message text to prefill in the WhatsApp link"`
}

type RecordContactOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WhatsAppURL string `json:"whatsapp_url"`
	LastContact string `json:"last_contact_date"`
}

func (h *ScheduleHandlers) RecordContact(_ context.Context, request *mcp.CallToolRequest, input RecordContactInput) (*mcp.CallToolResult, RecordContactOutput, error) {
	if input.ID == "" {
		return nil, RecordContactOutput{}, fmt.Errorf("id is required")
	}

	var out RecordContactOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		lead := crm.FindLead(st, input.ID)
		if lead == nil {
			return crm.ErrLeadNotFound
		}
		now := time.Now()
		crm.RecordContact(lead, now)
		out = RecordContactOutput{
			ID:          lead.ID,
			Name:        lead.Name,
			WhatsAppURL: crm.WhatsAppURL(lead.WhatsApp, input.Text),
			LastContact: now.Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		return nil, RecordContactOutput{}, fmt.Errorf("failed to record contact: %w", err)
	}

	return nil, out, nil
}

func agendaLeads(leads []models.Lead, now time.Time) []AgendaLead {
	out := make([]AgendaLead, 0, len(leads))
	for i := range leads {
		lead := &leads[i]
		a := AgendaLead{
			ID:               lead.ID,
			Name:             lead.Name,
			WhatsApp:         lead.WhatsApp,
			Type:             lead.Type.Label(),
			DaysSinceContact: crm.DaysSinceContact(lead, now),
		}
		if !lead.InterestDate.IsZero() {
			a.InterestDate = lead.InterestDate.Format(time.RFC3339)
		}
		out = append(out, a)
	}
	return out
}
