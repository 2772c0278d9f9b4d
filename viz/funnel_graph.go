// ABOUTME: Funnel graph generation with graphviz
// ABOUTME: Renders the ordered sales funnel and its leads as DOT output
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
)

type GraphGenerator struct {
	state *models.AppState
}

func NewGraphGenerator(state *models.AppState) *GraphGenerator {
	return &GraphGenerator{state: state}
}

// GenerateFunnelGraph renders the stages in funnel order, linked left to
// right, each labeled with its lead count. With includeLeads, every lead
// hangs off its stage node.
func (g *GraphGenerator) GenerateFunnelGraph(includeLeads bool) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	var prev *cgraph.Node
	for _, stage := range g.state.Stages {
		leads := crm.LeadsByStage(g.state, stage.ID)

		node, err := graph.CreateNodeByName(stage.ID)
		if err != nil {
			return "", fmt.Errorf("failed to create stage node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n%d lead(s)", stage.Name, len(leads)))
		node.SetShape("box")

		if prev != nil {
			if _, err := graph.CreateEdgeByName("", prev, node); err != nil {
				return "", fmt.Errorf("failed to create funnel edge: %w", err)
			}
		}
		prev = node

		if includeLeads {
			for _, lead := range leads {
				leadNode, err := graph.CreateNodeByName(lead.ID)
				if err != nil {
					return "", fmt.Errorf("failed to create lead node: %w", err)
				}
				leadNode.SetLabel(fmt.Sprintf("%s\n%s", lead.Name, lead.Type.Label()))
				edge, err := graph.CreateEdgeByName("", node, leadNode)
				if err != nil {
					return "", fmt.Errorf("failed to create lead edge: %w", err)
				}
				edge.SetStyle("dotted")
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
