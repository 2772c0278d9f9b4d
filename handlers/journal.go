// ABOUTME: Interaction journal MCP tool handlers
// ABOUTME: Implements log_interaction and toggle_objection tools
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

type JournalHandlers struct {
	store *store.Store
}

func NewJournalHandlers(s *store.Store) *JournalHandlers {
	return &JournalHandlers{store: s}
}

type LogInteractionInput struct {
	LeadID      string `json:"lead_id" jsonschema:"Lead ID (required)"`
	Type        string `json:"type" jsonschema:"Interaction type: CALL, MESSAGE, SIMULATION, or NOTE"`
	Description string `json:"description" jsonschema:"What happened (required)"`
}

type LogInteractionOutput struct {
	ID          string `json:"id"`
	LeadID      string `json:"lead_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (h *JournalHandlers) LogInteraction(_ context.Context, request *mcp.CallToolRequest, input LogInteractionInput) (*mcp.CallToolResult, LogInteractionOutput, error) {
	if input.LeadID == "" {
		return nil, LogInteractionOutput{}, fmt.Errorf("lead_id is required")
	}
	kind := strings.ToUpper(input.Type)
	if kind == "" {
		kind = models.InteractionNote
	}

	var out LogInteractionOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		entry, err := crm.LogInteraction(st, input.LeadID, kind, input.Description, time.Now())
		if err != nil {
			return err
		}
		out = LogInteractionOutput{
			ID:          entry.ID,
			LeadID:      input.LeadID,
			Type:        entry.Type,
			Description: entry.Description,
			Date:        entry.Date.Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		return nil, LogInteractionOutput{}, fmt.Errorf("failed to log interaction: %w", err)
	}

	return nil, out, nil
}

type ToggleObjectionInput struct {
	LeadID string `json:"lead_id" jsonschema:"Lead ID (required)"`
	Text   string `json:"text" jsonschema:"Objection phrase to toggle (required)"`
}

type ToggleObjectionOutput struct {
	LeadID     string   `json:"lead_id"`
	Active     bool     `json:"active"`
	Objections []string `json:"objections"`
}

func (h *JournalHandlers) ToggleObjection(_ context.Context, request *mcp.CallToolRequest, input ToggleObjectionInput) (*mcp.CallToolResult, ToggleObjectionOutput, error) {
	if input.LeadID == "" || input.Text == "" {
		return nil, ToggleObjectionOutput{}, fmt.Errorf("lead_id and text are required")
	}

	var out ToggleObjectionOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		if err := crm.ToggleObjection(st, input.LeadID, input.Text); err != nil {
			return err
		}
		lead := crm.FindLead(st, input.LeadID)
		out = ToggleObjectionOutput{
			LeadID:     lead.ID,
			Active:     lead.HasObjection(input.Text),
			Objections: []string{},
		}
		for _, o := range lead.Objections {
			out.Objections = append(out.Objections, o.Text)
		}
		return nil
	})
	if err != nil {
		return nil, ToggleObjectionOutput{}, fmt.Errorf("failed to toggle objection: %w", err)
	}

	return nil, out, nil
}
