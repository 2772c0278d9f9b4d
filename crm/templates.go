// ABOUTME: Message template library and placeholder substitution
// ABOUTME: Renders scripts against a lead and builds WhatsApp links
package crm

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/proxvenda/models"
)

var (
	nomePlaceholder = regexp.MustCompile(`(?i)\[NOME\]`)
	tipoPlaceholder = regexp.MustCompile(`(?i)\[TIPO\]`)
)

// RenderTemplate substitutes recognized placeholders with lead-derived
// values: [NOME] becomes the lead's first name, [TIPO] the consortium type
// label. Matching is case-insensitive and replaces every occurrence;
// unrecognized placeholders pass through verbatim.
func RenderTemplate(content string, lead *models.Lead) string {
	// Literal replacement: lead data must never be expanded as $ groups
	out := nomePlaceholder.ReplaceAllLiteralString(content, lead.FirstName())
	out = tipoPlaceholder.ReplaceAllLiteralString(out, lead.Type.Label())
	return out
}

// WhatsAppURL builds a wa.me link for a Brazilian number, optionally with
// prefilled message text.
func WhatsAppURL(phone, text string) string {
	u := "https://wa.me/55" + models.DigitsOnly(phone)
	if text != "" {
		u += "?text=" + url.QueryEscape(text)
	}
	return u
}

// FindTemplate returns a pointer into the template library, or nil.
func FindTemplate(st *models.AppState, id string) *models.MessageTemplate {
	for i := range st.Templates {
		if st.Templates[i].ID == id {
			return &st.Templates[i]
		}
	}
	return nil
}

// FindTemplateByTitle matches a template by exact title.
func FindTemplateByTitle(st *models.AppState, title string) *models.MessageTemplate {
	for i := range st.Templates {
		if st.Templates[i].Title == title {
			return &st.Templates[i]
		}
	}
	return nil
}

// SaveTemplate adds a script to the head of the library. Both title and
// content must be non-empty to persist.
func SaveTemplate(st *models.AppState, title, content string) (*models.MessageTemplate, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrEmptyTemplate
	}
	tpl := models.MessageTemplate{ID: uuid.NewString(), Title: title, Content: content}
	st.Templates = append([]models.MessageTemplate{tpl}, st.Templates...)
	return &st.Templates[0], nil
}

// UpdateTemplate replaces the title and content of an existing template.
func UpdateTemplate(st *models.AppState, id, title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrEmptyTemplate
	}
	tpl := FindTemplate(st, id)
	if tpl == nil {
		return ErrTemplateNotFound
	}
	tpl.Title = title
	tpl.Content = content
	return nil
}

// DeleteTemplate removes a script from the library.
func DeleteTemplate(st *models.AppState, id string) error {
	for i := range st.Templates {
		if st.Templates[i].ID == id {
			st.Templates = append(st.Templates[:i], st.Templates[i+1:]...)
			return nil
		}
	}
	return ErrTemplateNotFound
}
