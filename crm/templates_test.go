// ABOUTME: Tests for template substitution and the script library
// ABOUTME: Validates placeholder semantics, WhatsApp links, and validation
package crm

import (
	"testing"

	"github.com/harperreed/proxvenda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	lead := &models.Lead{Name: "João Pedro", Type: models.TypeCar}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"case-insensitive placeholders",
			"Olá [nome], sobre [tipo]",
			"Olá João, sobre Vehicle",
		},
		{
			"all occurrences replaced",
			"[NOME], [NOME] e de novo [nome]",
			"João, João e de novo João",
		},
		{
			"no placeholders is identity",
			"Mensagem sem variáveis.",
			"Mensagem sem variáveis.",
		},
		{
			"unknown placeholders pass through",
			"Oi [NOME], veja [VALOR] e [LINK]",
			"Oi João, veja [VALOR] e [LINK]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTemplate(tt.content, lead))
		})
	}
}

func TestRenderTemplateLiteralDollarSigns(t *testing.T) {
	lead := &models.Lead{Name: "J$1oao Pedro", Type: models.TypeCar}
	assert.Equal(t, "Oi J$1oao!", RenderTemplate("Oi [NOME]!", lead))
}

func TestRenderTemplateTypeFallback(t *testing.T) {
	lead := &models.Lead{Name: "Maria", Type: models.ConsortiumType("BOAT")}
	assert.Equal(t, "Consórcio de Consortium", RenderTemplate("Consórcio de [TIPO]", lead))
}

func TestWhatsAppURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/5511999999999", WhatsAppURL("(11) 99999-9999", ""))
	assert.Equal(t,
		"https://wa.me/5511999999999?text=Ol%C3%A1+Jo%C3%A3o",
		WhatsAppURL("11999999999", "Olá João"))
}

func TestSaveTemplate(t *testing.T) {
	st := newTestState()
	before := len(st.Templates)

	tpl, err := SaveTemplate(st, "Fechamento", "Vamos fechar, [NOME]?")
	require.NoError(t, err)

	assert.Len(t, st.Templates, before+1)
	assert.Equal(t, tpl.ID, st.Templates[0].ID, "new templates go to the head")
}

func TestSaveTemplateValidation(t *testing.T) {
	st := newTestState()
	before := len(st.Templates)

	_, err := SaveTemplate(st, "", "corpo")
	assert.ErrorIs(t, err, ErrEmptyTemplate)
	_, err = SaveTemplate(st, "título", "  ")
	assert.ErrorIs(t, err, ErrEmptyTemplate)
	assert.Len(t, st.Templates, before)
}

func TestUpdateTemplate(t *testing.T) {
	st := newTestState()
	tpl, err := SaveTemplate(st, "Rascunho", "corpo antigo")
	require.NoError(t, err)

	require.NoError(t, UpdateTemplate(st, tpl.ID, "Final", "corpo novo"))
	got := FindTemplate(st, tpl.ID)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "corpo novo", got.Content)

	assert.ErrorIs(t, UpdateTemplate(st, tpl.ID, "", "x"), ErrEmptyTemplate)
	assert.ErrorIs(t, UpdateTemplate(st, "missing", "a", "b"), ErrTemplateNotFound)
}

func TestDeleteTemplate(t *testing.T) {
	st := newTestState()
	tpl, err := SaveTemplate(st, "Descartável", "corpo")
	require.NoError(t, err)

	// tpl points into the slice and aliases a neighbor after removal
	id := tpl.ID
	require.NoError(t, DeleteTemplate(st, id))
	assert.Nil(t, FindTemplate(st, id))
	assert.ErrorIs(t, DeleteTemplate(st, id), ErrTemplateNotFound)
}

func TestFindTemplateByTitle(t *testing.T) {
	st := newTestState()
	assert.NotNil(t, FindTemplateByTitle(st, "Abordagem Inicial"))
	assert.Nil(t, FindTemplateByTitle(st, "abordagem inicial"))
}
