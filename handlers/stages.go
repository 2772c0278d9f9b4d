// ABOUTME: Funnel stage MCP tool handlers
// ABOUTME: Implements list_stages, add_stage, and remove_stage tools
package handlers

import (
	"context"
	"fmt"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/harperreed/proxvenda/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type StageHandlers struct {
	store *store.Store
}

func NewStageHandlers(s *store.Store) *StageHandlers {
	return &StageHandlers{store: s}
}

type StageOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Leads int    `json:"leads"`
}

type ListStagesInput struct{}

type ListStagesOutput struct {
	Stages []StageOutput `json:"stages"`
}

func (h *StageHandlers) ListStages(_ context.Context, request *mcp.CallToolRequest, input ListStagesInput) (*mcp.CallToolResult, ListStagesOutput, error) {
	st, err := h.store.Load()
	if err != nil {
		return nil, ListStagesOutput{}, fmt.Errorf("failed to load state: %w", err)
	}

	out := ListStagesOutput{Stages: make([]StageOutput, 0, len(st.Stages))}
	for _, stage := range st.Stages {
		out.Stages = append(out.Stages, StageOutput{
			ID:    stage.ID,
			Name:  stage.Name,
			Leads: len(crm.LeadsByStage(st, stage.ID)),
		})
	}

	return nil, out, nil
}

type AddStageInput struct {
	Name string `json:"name" jsonschema:"Stage name (required)"`
}

func (h *StageHandlers) AddStage(_ context.Context, request *mcp.CallToolRequest, input AddStageInput) (*mcp.CallToolResult, StageOutput, error) {
	var out StageOutput
	err := h.store.Mutate(func(st *models.AppState) error {
		stage, err := crm.AddStage(st, input.Name)
		if err != nil {
			return err
		}
		out = StageOutput{ID: stage.ID, Name: stage.Name}
		return nil
	})
	if err != nil {
		return nil, StageOutput{}, fmt.Errorf("failed to add stage: %w", err)
	}

	return nil, out, nil
}

type RemoveStageInput struct {
	ID string `json:"id" jsonschema:"Stage ID or stage name (required)"`
}

type RemoveStageOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *StageHandlers) RemoveStage(_ context.Context, request *mcp.CallToolRequest, input RemoveStageInput) (*mcp.CallToolResult, RemoveStageOutput, error) {
	if input.ID == "" {
		return nil, RemoveStageOutput{}, fmt.Errorf("id is required")
	}

	err := h.store.Mutate(func(st *models.AppState) error {
		id := input.ID
		if stage := crm.FindStageByName(st, input.ID); stage != nil {
			id = stage.ID
		}
		return crm.RemoveStage(st, id)
	})
	if err != nil {
		return nil, RemoveStageOutput{}, fmt.Errorf("failed to remove stage: %w", err)
	}

	return nil, RemoveStageOutput{
		Success: true,
		Message: fmt.Sprintf("Removed stage: %s", input.ID),
	}, nil
}
