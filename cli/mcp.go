// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server for Claude Desktop integration
package cli

import (
	"context"
	"log"

	"github.com/harperreed/proxvenda/handlers"
	"github.com/harperreed/proxvenda/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(s *store.Store) error {
	log.Println("Starting ProxVenda MCP Server...")

	// Create handlers
	leadHandlers := handlers.NewLeadHandlers(s)
	scheduleHandlers := handlers.NewScheduleHandlers(s)
	journalHandlers := handlers.NewJournalHandlers(s)
	stageHandlers := handlers.NewStageHandlers(s)
	templateHandlers := handlers.NewTemplateHandlers(s)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "proxvenda",
		Version: "0.1.0",
	}, nil)

	// Register tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_lead",
		Description: "Add a new consortium lead to the CRM",
	}, leadHandlers.AddLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_leads",
		Description: "Search for leads by name or funnel stage",
	}, leadHandlers.FindLeads)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_lead",
		Description: "Update an existing lead's information",
	}, leadHandlers.UpdateLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_lead",
		Description: "Move a lead to another funnel stage",
	}, leadHandlers.MoveLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_lead",
		Description: "Delete a lead and all its history",
	}, leadHandlers.DeleteLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "today_agenda",
		Description: "Get the follow-up agenda split into late, today, and upcoming",
	}, scheduleHandlers.TodayAgenda)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delay_followup",
		Description: "Push a lead's follow-up date seven days out",
	}, scheduleHandlers.DelayFollowup)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_contact",
		Description: "Record an outbound contact and get the lead's WhatsApp link",
	}, scheduleHandlers.RecordContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_interaction",
		Description: "Log a call, message, simulation, or note against a lead",
	}, journalHandlers.LogInteraction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_objection",
		Description: "Raise or clear a sales objection on a lead",
	}, journalHandlers.ToggleObjection)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_stages",
		Description: "List the funnel stages in order with lead counts",
	}, stageHandlers.ListStages)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_stage",
		Description: "Append a new stage to the sales funnel",
	}, stageHandlers.AddStage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_stage",
		Description: "Remove a funnel stage (leads in it are kept)",
	}, stageHandlers.RemoveStage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the stored WhatsApp message templates",
	}, templateHandlers.ListTemplates)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_template",
		Description: "Save a WhatsApp message template with [NOME]/[TIPO] placeholders",
	}, templateHandlers.SaveTemplate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_template",
		Description: "Render a template for a lead and build a WhatsApp link",
	}, templateHandlers.RenderTemplate)

	// Run server on stdio
	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
