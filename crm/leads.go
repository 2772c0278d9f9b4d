// ABOUTME: Lead lifecycle operations
// ABOUTME: Handles creation, partial updates, lookup, and deletion of leads
package crm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/proxvenda/models"
)

// AddLead validates and inserts a new lead at the head of the list.
// Name and WhatsApp number are mandatory; everything else gets a default:
// first funnel stage, active status, follow-up date of today.
func AddLead(st *models.AppState, lead *models.Lead, now time.Time) error {
	if strings.TrimSpace(lead.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(lead.WhatsApp) == "" {
		return ErrPhoneRequired
	}

	lead.ID = uuid.NewString()
	if lead.Type == "" {
		lead.Type = models.TypeOther
	}
	if lead.Status == "" {
		lead.Status = models.StatusActive
	}
	if lead.StageID == "" {
		lead.StageID = st.Stages[0].ID
	} else if FindStage(st, lead.StageID) == nil {
		return ErrStageNotFound
	}
	if lead.InterestDate.IsZero() {
		lead.InterestDate = now
	}
	lead.LastContact = now
	if lead.History == nil {
		lead.History = []models.Interaction{}
	}
	if lead.Objections == nil {
		lead.Objections = []models.Objection{}
	}

	st.Leads = append([]models.Lead{*lead}, st.Leads...)
	return nil
}

// FindLead returns a pointer into the state's lead list, or nil when the id
// is unknown.
func FindLead(st *models.AppState, id string) *models.Lead {
	for i := range st.Leads {
		if st.Leads[i].ID == id {
			return &st.Leads[i]
		}
	}
	return nil
}

// LeadUpdate carries partial field updates. Nil fields are left untouched.
type LeadUpdate struct {
	Name         *string
	WhatsApp     *string
	Type         *models.ConsortiumType
	Value        *float64
	Installment  *float64
	Goal         *string
	InterestDate *time.Time
	Status       *string
}

// UpdateLead applies a partial update to an existing lead. An empty name or
// WhatsApp number is rejected the same way creation rejects it.
func UpdateLead(st *models.AppState, id string, upd LeadUpdate) error {
	lead := FindLead(st, id)
	if lead == nil {
		return ErrLeadNotFound
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return ErrNameRequired
		}
		lead.Name = *upd.Name
	}
	if upd.WhatsApp != nil {
		if strings.TrimSpace(*upd.WhatsApp) == "" {
			return ErrPhoneRequired
		}
		lead.WhatsApp = *upd.WhatsApp
	}
	if upd.Type != nil {
		lead.Type = *upd.Type
	}
	if upd.Value != nil && *upd.Value >= 0 {
		lead.Value = *upd.Value
	}
	if upd.Installment != nil && *upd.Installment >= 0 {
		lead.Installment = *upd.Installment
	}
	if upd.Goal != nil {
		lead.Goal = *upd.Goal
	}
	if upd.InterestDate != nil {
		lead.InterestDate = *upd.InterestDate
	}
	if upd.Status != nil {
		lead.Status = *upd.Status
	}

	return nil
}

// DeleteLead removes a lead permanently. There is no soft delete.
func DeleteLead(st *models.AppState, id string) error {
	for i := range st.Leads {
		if st.Leads[i].ID == id {
			st.Leads = append(st.Leads[:i], st.Leads[i+1:]...)
			if st.SelectedLeadID != nil && *st.SelectedLeadID == id {
				st.SelectedLeadID = nil
			}
			return nil
		}
	}
	return ErrLeadNotFound
}
