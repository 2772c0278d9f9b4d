// ABOUTME: Interaction journal and objection tracking
// ABOUTME: Append-only contact history plus toggleable objection flags per lead
package crm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/proxvenda/models"
	"github.com/oklog/ulid/v2"
)

// LogInteraction prepends an immutable journal entry to a lead's history and
// stamps the lead's last contact date with the identical timestamp. An empty
// description is rejected without touching state.
func LogInteraction(st *models.AppState, leadID, kind, description string, now time.Time) (*models.Interaction, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	lead := FindLead(st, leadID)
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	entry := models.Interaction{
		ID:          ulid.Make().String(),
		Type:        kind,
		Description: description,
		Date:        now,
	}

	// Most-recent-first is an invariant of the list, not a sort.
	lead.History = append([]models.Interaction{entry}, lead.History...)
	lead.LastContact = now

	return &lead.History[0], nil
}

// ToggleObjection flips a canonical objection phrase for a lead: raised
// objections are removed entirely, unraised ones are added checked. Applying
// it twice is a no-op; applying it once never is.
func ToggleObjection(st *models.AppState, leadID, text string) error {
	lead := FindLead(st, leadID)
	if lead == nil {
		return ErrLeadNotFound
	}

	for i := range lead.Objections {
		if lead.Objections[i].Text == text {
			lead.Objections = append(lead.Objections[:i], lead.Objections[i+1:]...)
			return nil
		}
	}

	lead.Objections = append(lead.Objections, models.Objection{
		ID:      uuid.NewString(),
		Text:    text,
		Checked: true,
	})
	return nil
}
