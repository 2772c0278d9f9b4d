// ABOUTME: Funnel stage operations
// ABOUTME: Stage CRUD, unconditional lead moves, and stage-grouped views
package crm

import (
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/proxvenda/models"
)

// FindStage returns a pointer into the state's stage list, or nil when the
// id is unknown.
func FindStage(st *models.AppState, id string) *models.Stage {
	for i := range st.Stages {
		if st.Stages[i].ID == id {
			return &st.Stages[i]
		}
	}
	return nil
}

// FindStageByName matches a stage by exact display name.
func FindStageByName(st *models.AppState, name string) *models.Stage {
	for i := range st.Stages {
		if st.Stages[i].Name == name {
			return &st.Stages[i]
		}
	}
	return nil
}

// AddStage appends a new stage to the end of the funnel.
func AddStage(st *models.AppState, name string) (*models.Stage, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	st.Stages = append(st.Stages, models.Stage{ID: uuid.NewString(), Name: name})
	return &st.Stages[len(st.Stages)-1], nil
}

// RemoveStage deletes a stage. The funnel keeps a floor of one stage, and
// removal never cascades: leads pointing at the removed stage keep their
// stageId and simply drop out of stage-grouped views.
func RemoveStage(st *models.AppState, id string) error {
	for i := range st.Stages {
		if st.Stages[i].ID == id {
			if len(st.Stages) <= 1 {
				return ErrLastStage
			}
			st.Stages = append(st.Stages[:i], st.Stages[i+1:]...)
			return nil
		}
	}
	return ErrStageNotFound
}

// MoveLead reassigns a lead to any existing stage. The funnel is ordered for
// display but unconstrained for transition, so no reachability check is made.
func MoveLead(st *models.AppState, leadID, stageID string) error {
	lead := FindLead(st, leadID)
	if lead == nil {
		return ErrLeadNotFound
	}
	if FindStage(st, stageID) == nil {
		return ErrStageNotFound
	}
	lead.StageID = stageID
	return nil
}

// LeadsByStage returns the leads currently in a stage, preserving lead-list
// order. A deleted or unknown stage id yields an empty group rather than an
// error.
func LeadsByStage(st *models.AppState, stageID string) []models.Lead {
	if FindStage(st, stageID) == nil {
		return nil
	}
	var group []models.Lead
	for _, l := range st.Leads {
		if l.StageID == stageID {
			group = append(group, l)
		}
	}
	return group
}
