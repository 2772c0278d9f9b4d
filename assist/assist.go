// ABOUTME: AI message assistant backed by the Gemini API
// ABOUTME: Suggests WhatsApp outreach messages and drafts templates for leads
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Client wraps the Gemini API for message suggestions. All calls are
// read-only with respect to application state; a failed call changes
// nothing.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed assistant.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// SuggestMessages asks for three short persuasive WhatsApp messages for a
// lead, grounded in its stage, interest, and interaction history.
func (c *Client) SuggestMessages(ctx context.Context, st *models.AppState, lead *models.Lead) ([]string, error) {
	stageName := "Desconhecido"
	if stage := crm.FindStage(st, lead.StageID); stage != nil {
		stageName = stage.Name
	}

	var history []string
	for _, entry := range lead.History {
		history = append(history, entry.Description)
	}
	historySummary := strings.Join(history, "; ")
	if historySummary == "" {
		historySummary = "Nenhum contato anterior registrado"
	}

	prompt := fmt.Sprintf(`Como um consultor de consórcios sênior, sugira 3 opções de mensagens curtas e persuasivas de WhatsApp para o cliente %s.
Contexto: Ele está na etapa %q, interessado em um consórcio de %s no valor de R$ %.2f.
Histórico: %s.
Retorne apenas as 3 mensagens separadas por "---".`,
		lead.Name, stageName, lead.Type.Label(), lead.Value, historySummary)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var suggestions []string
	for _, part := range strings.Split(text, "---") {
		part = strings.TrimSpace(part)
		if len(part) > 5 {
			suggestions = append(suggestions, part)
		}
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("no usable suggestions in model response")
	}

	return suggestions, nil
}

// DraftTemplate asks for one persuasive WhatsApp message matching a
// free-text request, suitable for saving as a template.
func (c *Client) DraftTemplate(ctx context.Context, request string) (string, error) {
	if strings.TrimSpace(request) == "" {
		return "", fmt.Errorf("request text is required")
	}

	prompt := fmt.Sprintf(`Como um especialista em vendas de consórcios, crie UMA mensagem de WhatsApp persuasiva baseada no seguinte pedido: %q. A mensagem deve ser curta, amigável e focar no fechamento ou em despertar curiosidade. Retorne apenas o texto da mensagem.`, request)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty model response")
	}

	return strings.TrimSpace(text), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("Gemini request failed: %w", err)
	}

	return result.Text(), nil
}
