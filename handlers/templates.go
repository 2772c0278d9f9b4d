// ABOUTME: Message template MCP tool handlers
// ABOUTME: Implements list_templates, save_template, and render_template tools
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/harperreed/proxvenda/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TemplateHandlers struct {
	store *store.Store
}

func NewTemplateHandlers(s *store.Store) *TemplateHandlers {
	return &TemplateHandlers{store: s}
}

type TemplateOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ListTemplatesInput struct{}

type ListTemplatesOutput struct {
	Templates []TemplateOutput `json:"templates"`
}

func (h *TemplateHandlers) ListTemplates(_ context.Context, request *mcp.CallToolRequest, input ListTemplatesInput) (*mcp.CallToolResult, ListTemplatesOutput, error) {
	st, err := h.store.Load()
	if err != nil {
		return nil, ListTemplatesOutput{}, fmt.Errorf("failed to load state: %w", err)
	}

	out := ListTemplatesOutput{Templates: make([]TemplateOutput, 0, len(st.Templates))}
	for _, tpl := range st.Templates {
		out.Templates = append(out.Templates, TemplateOutput{ID: tpl.ID, Title: tpl.Title, Content: tpl.Content})
	}

	return nil, out, nil
}

type SaveTemplateInput struct {
	Title   string `json:"title" jsonschema:"Template title (required)"`
	Content string `json:"content" jsonschema:"Template body, may use [NOME] and [TIPO] placeholders (required)"`
}

func (h *TemplateHandlers) SaveTemplate(_ context.Context, request *mcp.CallToolRequest, input SaveTemplateInput) (*mcp.CallToolResult, TemplateOutput, error) {
	var out TemplateOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		tpl, err := crm.SaveTemplate(st, input.Title, input.Content)
		if err != nil {
			return err
		}
		out = TemplateOutput{ID: tpl.ID, Title: tpl.Title, Content: tpl.Content}
		return nil
	})
	if err != nil {
		return nil, TemplateOutput{}, fmt.Errorf("failed to save template: %w", err)
	}

	return nil, out, nil
}

type RenderTemplateInput struct {
	Template string `json:"template" jsonschema:"Template ID or title (required)"`
	LeadID   string `json:"lead_id" jsonschema:"Lead to render against (required)"`
}

type RenderTemplateOutput struct {
	Text        string `json:"text"`
	WhatsAppURL string `json:"whatsapp_url"`
}

func (h *TemplateHandlers) RenderTemplate(_ context.Context, request *mcp.CallToolRequest, input RenderTemplateInput) (*mcp.CallToolResult, RenderTemplateOutput, error) {
	if input.Template == "" || input.LeadID == "" {
		return nil, RenderTemplateOutput{}, fmt.Errorf("template and lead_id are required")
	}

	st, err := h.store.Load()
	if err != nil {
		return nil, RenderTemplateOutput{}, fmt.Errorf("failed to load state: %w", err)
	}

	tpl := crm.FindTemplate(st, input.Template)
	if tpl == nil {
		tpl = crm.FindTemplateByTitle(st, input.Template)
	}
	if tpl == nil {
		return nil, RenderTemplateOutput{}, crm.ErrTemplateNotFound
	}
	lead := crm.FindLead(st, input.LeadID)
	if lead == nil {
		return nil, RenderTemplateOutput{}, crm.ErrLeadNotFound
	}

	text := crm.RenderTemplate(tpl.Content, lead)
	return nil, RenderTemplateOutput{
		Text:        text,
		WhatsAppURL: crm.WhatsAppURL(lead.WhatsApp, text),
	}, nil
}
