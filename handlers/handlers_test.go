// ABOUTME: Tests for the MCP tool handlers
// ABOUTME: Exercises lead, agenda, journal, stage, and template tools end to end
package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func addLead(t *testing.T, s *store.Store, name string) LeadOutput {
	t.Helper()
	h := NewLeadHandlers(s)
	_, out, err := h.AddLead(context.Background(), nil, AddLeadInput{
		Name:     name,
		WhatsApp: "(11) 99999-9999",
		Type:     "CAR",
	})
	require.NoError(t, err)
	return out
}

func TestAddLeadHandler(t *testing.T) {
	s := setupTestStore(t)

	out := addLead(t, s, "João Pedro")

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "João Pedro", out.Name)
	assert.Equal(t, "CAR", out.Type)
	assert.Equal(t, "Vehicle", out.TypeLabel)
	assert.Equal(t, "active", out.Status)
	assert.Equal(t, "Lead Novo", out.StageName)
	assert.NotEmpty(t, out.InterestDate)
}

func TestAddLeadHandlerValidation(t *testing.T) {
	s := setupTestStore(t)
	h := NewLeadHandlers(s)

	_, _, err := h.AddLead(context.Background(), nil, AddLeadInput{WhatsApp: "11999999999"})
	assert.ErrorIs(t, err, crm.ErrNameRequired)

	_, _, err = h.AddLead(context.Background(), nil, AddLeadInput{
		Name:         "Ana",
		WhatsApp:     "11999999999",
		InterestDate: "15/06/2024",
	})
	assert.ErrorContains(t, err, "interest_date")
}

func TestFindLeadsHandler(t *testing.T) {
	s := setupTestStore(t)
	addLead(t, s, "João Pedro")
	addLead(t, s, "Maria Santos")

	h := NewLeadHandlers(s)
	_, out, err := h.FindLeads(context.Background(), nil, FindLeadsInput{Query: "maria"})
	require.NoError(t, err)
	require.Len(t, out.Leads, 1)
	assert.Equal(t, "Maria Santos", out.Leads[0].Name)

	_, out, err = h.FindLeads(context.Background(), nil, FindLeadsInput{Stage: "Lead Novo"})
	require.NoError(t, err)
	assert.Len(t, out.Leads, 2)

	_, out, err = h.FindLeads(context.Background(), nil, FindLeadsInput{Stage: "Etapa Inexistente"})
	require.NoError(t, err)
	assert.Empty(t, out.Leads)
}

func TestUpdateLeadHandler(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	h := NewLeadHandlers(s)
	value := 80000.0
	_, out, err := h.UpdateLead(context.Background(), nil, UpdateLeadInput{
		ID:     lead.ID,
		Status: "paused",
		Value:  &value,
	})
	require.NoError(t, err)
	assert.Equal(t, "paused", out.Status)
	assert.Equal(t, 80000.0, out.Value)
	assert.Equal(t, "João Pedro", out.Name, "unset fields stay put")

	_, _, err = h.UpdateLead(context.Background(), nil, UpdateLeadInput{ID: "missing"})
	assert.ErrorIs(t, err, crm.ErrLeadNotFound)
}

func TestMoveLeadHandler(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	h := NewLeadHandlers(s)
	_, out, err := h.MoveLead(context.Background(), nil, MoveLeadInput{
		ID:    lead.ID,
		Stage: "Venda Fechada",
	})
	require.NoError(t, err)
	assert.Equal(t, "Venda Fechada", out.StageName)

	_, _, err = h.MoveLead(context.Background(), nil, MoveLeadInput{ID: lead.ID, Stage: "Etapa Inexistente"})
	assert.ErrorIs(t, err, crm.ErrStageNotFound)
}

func TestDeleteLeadHandler(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	h := NewLeadHandlers(s)
	_, out, err := h.DeleteLead(context.Background(), nil, DeleteLeadInput{ID: lead.ID})
	require.NoError(t, err)
	assert.True(t, out.Success)

	_, found, err := h.FindLeads(context.Background(), nil, FindLeadsInput{})
	require.NoError(t, err)
	assert.Empty(t, found.Leads)
}

func TestTodayAgendaHandler(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	sched := NewScheduleHandlers(s)
	_, agenda, err := sched.TodayAgenda(context.Background(), nil, TodayAgendaInput{})
	require.NoError(t, err)
	require.Len(t, agenda.Today, 1, "a fresh lead is due today")
	assert.Equal(t, lead.ID, agenda.Today[0].ID)
	assert.Equal(t, 1, agenda.Pending)
	assert.Empty(t, agenda.Late)
	assert.Empty(t, agenda.Upcoming)
}

func TestDelayFollowupHandler(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	sched := NewScheduleHandlers(s)
	_, out, err := sched.DelayFollowup(context.Background(), nil, DelayFollowupInput{ID: lead.ID})
	require.NoError(t, err)

	next, err := time.Parse(time.RFC3339, out.InterestDate)
	require.NoError(t, err)
	assert.True(t, next.After(time.Now().AddDate(0, 0, 6)))

	_, agenda, err := sched.TodayAgenda(context.Background(), nil, TodayAgendaInput{})
	require.NoError(t, err)
	assert.Len(t, agenda.Upcoming, 1)
	assert.Zero(t, agenda.Pending)
}

func TestRecordContactHandler(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	sched := NewScheduleHandlers(s)
	_, out, err := sched.RecordContact(context.Background(), nil, RecordContactInput{
		ID:   lead.ID,
		Text: "Olá João",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/5511999999999?text=Ol%C3%A1+Jo%C3%A3o", out.WhatsAppURL)
	assert.NotEmpty(t, out.LastContact)
}

func TestLogInteractionHandler(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	h := NewJournalHandlers(s)
	_, out, err := h.LogInteraction(context.Background(), nil, LogInteractionInput{
		LeadID:      lead.ID,
		Type:        "call",
		Description: "Cliente pediu nova simulação",
	})
	require.NoError(t, err)
	assert.Equal(t, "CALL", out.Type)
	assert.NotEmpty(t, out.ID)

	_, _, err = h.LogInteraction(context.Background(), nil, LogInteractionInput{
		LeadID:      lead.ID,
		Description: "  ",
	})
	assert.ErrorIs(t, err, crm.ErrEmptyDescription)
}

func TestToggleObjectionHandler(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	h := NewJournalHandlers(s)
	_, out, err := h.ToggleObjection(context.Background(), nil, ToggleObjectionInput{
		LeadID: lead.ID,
		Text:   "Não é o momento",
	})
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.Equal(t, []string{"Não é o momento"}, out.Objections)

	_, out, err = h.ToggleObjection(context.Background(), nil, ToggleObjectionInput{
		LeadID: lead.ID,
		Text:   "Não é o momento",
	})
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.Empty(t, out.Objections)
}

func TestStageHandlers(t *testing.T) {
	s := setupTestStore(t)
	addLead(t, s, "João Pedro")

	h := NewStageHandlers(s)
	_, list, err := h.ListStages(context.Background(), nil, ListStagesInput{})
	require.NoError(t, err)
	require.Len(t, list.Stages, 5)
	assert.Equal(t, "Lead Novo", list.Stages[0].Name)
	assert.Equal(t, 1, list.Stages[0].Leads)

	_, added, err := h.AddStage(context.Background(), nil, AddStageInput{Name: "Pós-Venda"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	_, list, err = h.ListStages(context.Background(), nil, ListStagesInput{})
	require.NoError(t, err)
	require.Len(t, list.Stages, 6)
	assert.Equal(t, "Pós-Venda", list.Stages[5].Name, "new stages append to the funnel tail")

	_, removed, err := h.RemoveStage(context.Background(), nil, RemoveStageInput{ID: "Pós-Venda"})
	require.NoError(t, err)
	assert.True(t, removed.Success)
}

func TestTemplateHandlers(t *testing.T) {
	s := setupTestStore(t)
	lead := addLead(t, s, "João Pedro")

	h := NewTemplateHandlers(s)
	_, list, err := h.ListTemplates(context.Background(), nil, ListTemplatesInput{})
	require.NoError(t, err)
	require.Len(t, list.Templates, 3)

	_, saved, err := h.SaveTemplate(context.Background(), nil, SaveTemplateInput{
		Title:   "Saudação",
		Content: "Olá [NOME], sobre o consórcio de [TIPO]",
	})
	require.NoError(t, err)

	_, rendered, err := h.RenderTemplate(context.Background(), nil, RenderTemplateInput{
		Template: saved.ID,
		LeadID:   lead.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Olá João, sobre o consórcio de Vehicle", rendered.Text)
	assert.Contains(t, rendered.WhatsAppURL, "https://wa.me/5511999999999?text=")

	_, rendered, err = h.RenderTemplate(context.Background(), nil, RenderTemplateInput{
		Template: "Saudação",
		LeadID:   lead.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Olá João, sobre o consórcio de Vehicle", rendered.Text)

	_, _, err = h.RenderTemplate(context.Background(), nil, RenderTemplateInput{
		Template: "Inexistente",
		LeadID:   lead.ID,
	})
	assert.ErrorIs(t, err, crm.ErrTemplateNotFound)
}
