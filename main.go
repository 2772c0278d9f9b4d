// ABOUTME: Entry point for the ProxVenda CRM and MCP server
// ABOUTME: Routes to MCP server, CLI commands, TUI, or visualizations
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harperreed/proxvenda/cli"
	"github.com/harperreed/proxvenda/store"
	"github.com/joho/godotenv"
)

const version = "0.1.0"

func main() {
	// .env is optional; GEMINI_API_KEY may come from the environment
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	storePath := flag.String("store-path", "", "State store path (default: ~/.local/share/proxvenda/state)")
	initOnly := flag.Bool("init", false, "Initialize the store and exit")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("proxvenda version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	s, err := store.Open(getStorePath(*storePath))
	if err != nil {
		log.Fatalf("Failed to open state store: %v", err)
	}
	defer func() { _ = s.Close() }()

	if *initOnly {
		if _, err := s.Load(); err != nil {
			log.Fatalf("Failed to initialize store: %v", err)
		}
		log.Println("Store initialized successfully")
		os.Exit(0)
	}

	switch command {
	case "mcp":
		if err := cli.MCPCommand(s); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "tui":
		if err := cli.TUICommand(s, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "agenda":
		if err := cli.AgendaCommand(s, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "reset":
		if err := cli.ResetCommand(s, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		crmCommand := commandArgs[0]
		crmArgs := commandArgs[1:]

		switch crmCommand {
		// Lead commands
		case "add-lead":
			if err := cli.AddLeadCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list-leads":
			if err := cli.ListLeadsCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "show-lead":
			if err := cli.ShowLeadCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "update-lead":
			if err := cli.UpdateLeadCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete-lead":
			if err := cli.DeleteLeadCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "move-lead":
			if err := cli.MoveLeadCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Follow-up commands
		case "delay":
			if err := cli.DelayCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "contact":
			if err := cli.ContactCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "log":
			if err := cli.LogCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "objection":
			if err := cli.ObjectionCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Stage commands
		case "list-stages":
			if err := cli.ListStagesCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "add-stage":
			if err := cli.AddStageCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "remove-stage":
			if err := cli.RemoveStageCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// Template commands
		case "list-templates":
			if err := cli.ListTemplatesCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "save-template":
			if err := cli.SaveTemplateCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete-template":
			if err := cli.DeleteTemplateCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "render-template":
			if err := cli.RenderTemplateCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		// AI assistant commands
		case "suggest":
			if err := cli.SuggestCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "draft-template":
			if err := cli.DraftTemplateCommand(s, crmArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}

		default:
			fmt.Printf("Unknown crm command: %s\n\n", crmCommand)
			printUsage()
			os.Exit(1)
		}

	case "viz":
		if len(commandArgs) == 0 {
			fmt.Println("Error: viz requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		vizCommand := commandArgs[0]
		vizArgs := commandArgs[1:]

		switch vizCommand {
		case "dashboard":
			if err := cli.VizDashboardCommand(s, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "graph":
			if err := cli.VizGraphFunnelCommand(s, vizArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown viz command: %s\n\n", vizCommand)
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getStorePath(path string) string {
	if path != "" {
		return path
	}
	return store.DefaultPath()
}

func printUsage() {
	fmt.Printf(`proxvenda v%s - Personal consortium sales CRM

USAGE:
  proxvenda [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --store-path <path>    State store path (default: ~/.local/share/proxvenda/state)
  --init                 Initialize the store and exit

COMMANDS:
  mcp                    Start MCP server for Claude Desktop
  tui                    Interactive terminal interface
  agenda                 Daily follow-up triage
  crm                    Lead, stage, and template commands
  viz                    Dashboard and funnel graph
  reset                  Wipe all stored data

AGENDA:
  proxvenda agenda          Show late and due-today follow-ups
    --upcoming                Also list upcoming follow-ups

CRM COMMANDS:
  proxvenda crm add-lead    Add a new lead
    --name <name>             Lead name (required)
    --whatsapp <number>       WhatsApp number (required)
    --type <type>             CAR, HOUSE, SERVICE, OTHER
    --value <brl>             Target letter value
    --installment <brl>       Desired monthly installment
    --goal <text>             Free-text goal
    --interest-date <date>    Follow-up date YYYY-MM-DD (default today)

  proxvenda crm list-leads  List leads
    --query <text>            Search by name
    --stage <name>            Filter by stage
    --limit <n>               Max results (default: 50)

  proxvenda crm show-lead <id>            Show one lead in full
  proxvenda crm update-lead [flags] <id>  Update a lead (flags as in add-lead, plus --status)
  proxvenda crm delete-lead <id>          Delete a lead (--force skips prompt)
  proxvenda crm move-lead --stage <name> <id>  Move a lead to a stage

  proxvenda crm delay <id>                Push follow-up 7 days out
  proxvenda crm contact <id>              Record outreach, print WhatsApp link
    --template <title>                      Prefill from a template
    --text <text>                           Prefill literal text
  proxvenda crm log <id>                  Log a journal entry
    --type <type>                           CALL, MESSAGE, SIMULATION, NOTE
    --description <text>                    What happened (required)
  proxvenda crm objection [<id> <text>]   Toggle an objection, or list the catalog

  proxvenda crm list-stages               List funnel stages
  proxvenda crm add-stage --name <name>   Append a funnel stage
  proxvenda crm remove-stage <id|name>    Remove a stage (leads are kept)

  proxvenda crm list-templates            List message templates (--full for bodies)
  proxvenda crm save-template             Save a template
    --title <title>                         Template title (required)
    --content <text>                        Body, may use [NOME] and [TIPO]
  proxvenda crm delete-template <id|title>  Delete a template
  proxvenda crm render-template --lead <id> <id|title>  Render for a lead

  proxvenda crm suggest <id>              Ask Gemini for 3 outreach messages
  proxvenda crm draft-template <request>  Ask Gemini to draft and save a template

VIZ COMMANDS:
  proxvenda viz dashboard                 ASCII funnel and follow-up overview
  proxvenda viz graph                     Funnel graph in DOT format
    --output <file>                         Output file (default: stdout)
    --leads                                 Include individual leads

EXAMPLES:
  # Start MCP server for Claude Desktop
  proxvenda mcp

  # Add a lead
  proxvenda crm add-lead --name "João Pedro" --whatsapp "(11) 99999-9999" --type CAR --value 80000

  # Morning triage
  proxvenda agenda

  # Send the opening script
  proxvenda crm contact <id> --template "Abordagem Inicial"

`, version)
}
