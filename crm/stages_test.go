// ABOUTME: Tests for funnel stage operations
// ABOUTME: Validates the one-stage floor, dangling references, and moves
package crm

import (
	"testing"

	"github.com/harperreed/proxvenda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStageAppends(t *testing.T) {
	st := newTestState()

	stage, err := AddStage(st, "Pós-Venda")
	require.NoError(t, err)

	assert.Equal(t, "Pós-Venda", st.Stages[len(st.Stages)-1].Name)
	assert.NotEmpty(t, stage.ID)

	_, err = AddStage(st, "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestRemoveStageKeepsFloorOfOne(t *testing.T) {
	st := &models.AppState{Stages: []models.Stage{{ID: "only", Name: "Única"}}}

	err := RemoveStage(st, "only")

	assert.ErrorIs(t, err, ErrLastStage)
	assert.Len(t, st.Stages, 1)
}

func TestRemoveStageLeavesDanglingLeads(t *testing.T) {
	st := newTestState()
	lead := addTestLead(t, st, "Ana")
	doomed := st.Stages[0].ID
	require.NoError(t, MoveLead(st, lead.ID, doomed))

	require.NoError(t, RemoveStage(st, doomed))

	// No cascade: the lead keeps its now-dangling stage reference
	got := FindLead(st, lead.ID)
	assert.Equal(t, doomed, got.StageID)
	assert.Nil(t, FindStage(st, doomed))

	// Stage-grouped views simply stop showing it
	assert.Empty(t, LeadsByStage(st, doomed))
}

func TestRemoveStageUnknown(t *testing.T) {
	st := newTestState()
	assert.ErrorIs(t, RemoveStage(st, "missing"), ErrStageNotFound)

	// Unknown ids report not-found even when the funnel is at its floor
	single := &models.AppState{Stages: []models.Stage{{ID: "only", Name: "Única"}}}
	assert.ErrorIs(t, RemoveStage(single, "missing"), ErrStageNotFound)
}

func TestMoveLeadUnconditional(t *testing.T) {
	st := newTestState()
	lead := addTestLead(t, st, "Ana")
	closed := st.Stages[4].ID

	// Straight from first stage to last; no reachability constraint
	require.NoError(t, MoveLead(st, lead.ID, closed))
	assert.Equal(t, closed, FindLead(st, lead.ID).StageID)

	// And straight back
	require.NoError(t, MoveLead(st, lead.ID, st.Stages[0].ID))
	assert.Equal(t, st.Stages[0].ID, FindLead(st, lead.ID).StageID)
}

func TestMoveLeadValidation(t *testing.T) {
	st := newTestState()
	lead := addTestLead(t, st, "Ana")

	assert.ErrorIs(t, MoveLead(st, "missing", st.Stages[1].ID), ErrLeadNotFound)
	assert.ErrorIs(t, MoveLead(st, lead.ID, "missing"), ErrStageNotFound)
	assert.Equal(t, st.Stages[0].ID, FindLead(st, lead.ID).StageID)
}

func TestLeadsByStage(t *testing.T) {
	st := newTestState()
	first := addTestLead(t, st, "Primeiro")
	second := addTestLead(t, st, "Segundo")
	require.NoError(t, MoveLead(st, second.ID, st.Stages[1].ID))

	inFirst := LeadsByStage(st, st.Stages[0].ID)
	require.Len(t, inFirst, 1)
	assert.Equal(t, first.ID, inFirst[0].ID)

	assert.Empty(t, LeadsByStage(st, st.Stages[2].ID))
	assert.Empty(t, LeadsByStage(st, "missing"))
}

func TestFindStageByName(t *testing.T) {
	st := newTestState()
	assert.NotNil(t, FindStageByName(st, "Venda Fechada"))
	assert.Nil(t, FindStageByName(st, "venda fechada"))
}
