// ABOUTME: Data models for the lead CRM
// ABOUTME: Defines Lead, Stage, Interaction, Objection, MessageTemplate, and AppState
package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// ConsortiumType is the product category a lead is interested in.
type ConsortiumType string

const (
	TypeCar     ConsortiumType = "CAR"
	TypeHouse   ConsortiumType = "HOUSE"
	TypeService ConsortiumType = "SERVICE"
	TypeOther   ConsortiumType = "OTHER"
)

// Label returns the human-readable name for a consortium type.
// Unknown values fall back to the generic label.
func (t ConsortiumType) Label() string {
	switch t {
	case TypeCar:
		return "Vehicle"
	case TypeHouse:
		return "Real Estate"
	case TypeService:
		return "Service"
	default:
		return "Consortium"
	}
}

// LeadStatus constants. Status is informational only and never gates a
// stage transition.
const (
	StatusActive   = "active"
	StatusFollowUp = "follow-up"
	StatusPaused   = "paused"
)

// InteractionType constants.
const (
	InteractionCall       = "CALL"
	InteractionMessage    = "MESSAGE"
	InteractionSimulation = "SIMULATION"
	InteractionNote       = "NOTE"
)

// Interaction is one immutable journal entry of contact with a lead.
// Entries are prepended to a lead's history and never edited afterwards.
type Interaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Objection flags a canonical sales barrier as currently raised for a lead.
// Presence in the set means raised; there is no unchecked-but-present state.
type Objection struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

type Lead struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	WhatsApp     string         `json:"whatsapp"`
	Type         ConsortiumType `json:"type"`
	Value        float64        `json:"value"`
	Installment  float64        `json:"installment"`
	Goal         string         `json:"goal"`
	InterestDate time.Time      `json:"interestDate"` // next scheduled follow-up, not creation date
	StageID      string         `json:"stageId"`
	History      []Interaction  `json:"history"`
	Objections   []Objection    `json:"objections"`
	LastContact  time.Time      `json:"lastContactDate"`
	Status       string         `json:"status"`
}

// FirstName returns the first whitespace-delimited token of the lead's name.
func (l *Lead) FirstName() string {
	fields := strings.Fields(l.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// PhoneDigits strips everything but digits from the lead's WhatsApp number.
func (l *Lead) PhoneDigits() string {
	return DigitsOnly(l.WhatsApp)
}

// HasObjection reports whether an objection with the exact text is raised.
func (l *Lead) HasObjection(text string) bool {
	for _, o := range l.Objections {
		if o.Text == text {
			return true
		}
	}
	return false
}

// Stage is one ordered step of the sales funnel. Order is the order of the
// backing slice, not any field.
type Stage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MessageTemplate struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Background describes the app background customization.
type Background struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Customization carries display preferences. The engine only persists these;
// rendering is up to UI collaborators.
type Customization struct {
	PrimaryColor string     `json:"primaryColor"`
	FontFamily   string     `json:"fontFamily"`
	Background   Background `json:"background"`
}

// AppState is the aggregate root. All entities live in one state value that
// is serialized and restored as a unit; every mutation replaces the whole
// thing.
type AppState struct {
	Leads          []Lead            `json:"leads"`
	Stages         []Stage           `json:"stages"`
	Templates      []MessageTemplate `json:"templates"`
	ActiveTab      string            `json:"activeTab"`
	SelectedLeadID *string           `json:"selectedLeadId"`
	Customization  Customization     `json:"customization"`
}

// DefaultStages seeds the five-step funnel.
func DefaultStages() []Stage {
	return []Stage{
		{ID: uuid.NewString(), Name: "Lead Novo"},
		{ID: uuid.NewString(), Name: "Contato Realizado"},
		{ID: uuid.NewString(), Name: "Simulação Enviada"},
		{ID: uuid.NewString(), Name: "Aguardando Decisão"},
		{ID: uuid.NewString(), Name: "Venda Fechada"},
	}
}

// DefaultTemplates seeds the starter script library.
func DefaultTemplates() []MessageTemplate {
	return []MessageTemplate{
		{
			ID:      uuid.NewString(),
			Title:   "Abordagem Inicial",
			Content: "Olá [NOME], vi que você tem interesse em um consórcio de [TIPO]. Como posso te ajudar hoje?",
		},
		{
			ID:      uuid.NewString(),
			Title:   "Consórcio x Financiamento",
			Content: "A principal diferença é que no consórcio você não paga juros, apenas uma taxa de administração diluída, economizando até 50% do valor final.",
		},
		{
			ID:      uuid.NewString(),
			Title:   "Follow-up Pós-Simulação",
			Content: "Oi [NOME], conseguiu analisar a simulação que te enviei? Ficou alguma dúvida sobre as parcelas?",
		},
	}
}

// ObjectionCatalog is the fixed set of canonical objection phrases.
var ObjectionCatalog = []string{
	"Não é o momento",
	"Comparando opções",
	"Dúvidas sobre taxas",
	"Medo de contemplação",
}

// NewDefaultState builds the seeded state used on first run and after a reset.
func NewDefaultState() *AppState {
	return &AppState{
		Leads:     []Lead{},
		Stages:    DefaultStages(),
		Templates: DefaultTemplates(),
		ActiveTab: "funnel",
		Customization: Customization{
			PrimaryColor: "#0F4C75",
			FontFamily:   "Inter",
			Background: Background{
				Type:  "gradient",
				Value: "linear-gradient(135deg, #E2E8F0 0%, #F8FAFC 50%, #DBEAFE 100%)",
			},
		},
	}
}

// DigitsOnly strips all non-digit runes from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
