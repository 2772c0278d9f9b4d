// ABOUTME: Lead CLI commands
// ABOUTME: Human-friendly commands for managing leads
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/harperreed/proxvenda/store"
)

// AddLeadCommand adds a new lead.
func AddLeadCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-lead", flag.ExitOnError)
	name := fs.String("name", "", "Lead name (required)")
	whatsapp := fs.String("whatsapp", "", "WhatsApp number with area code (required)")
	kind := fs.String("type", "", "Consortium type: CAR, HOUSE, SERVICE, OTHER")
	value := fs.Float64("value", 0, "Target letter value in BRL")
	installment := fs.Float64("installment", 0, "Desired monthly installment in BRL")
	goal := fs.String("goal", "", "Free-text goal or notes")
	interest := fs.String("interest-date", "", "Next follow-up date (YYYY-MM-DD, default today)")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if *whatsapp == "" {
		return fmt.Errorf("--whatsapp is required")
	}

	lead := &models.Lead{
		Name:        *name,
		WhatsApp:    *whatsapp,
		Type:        models.ConsortiumType(strings.ToUpper(*kind)),
		Value:       *value,
		Installment: *installment,
		Goal:        *goal,
	}
	if *interest != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *interest, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --interest-date (use YYYY-MM-DD): %w", err)
		}
		lead.InterestDate = parsed
	}

	err := s.Mutate(func(st *models.AppState) error {
		return crm.AddLead(st, lead, time.Now())
	})
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	fmt.Printf("✓ Lead created: %s (ID: %s)\n", lead.Name, lead.ID)
	fmt.Printf("  WhatsApp: %s\n", lead.WhatsApp)
	fmt.Printf("  Type: %s\n", lead.Type.Label())
	if lead.Value > 0 {
		fmt.Printf("  Value: R$ %.2f\n", lead.Value)
	}
	fmt.Printf("  Follow-up: %s\n", lead.InterestDate.Format("2006-01-02"))

	return nil
}

// ListLeadsCommand lists leads.
func ListLeadsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-leads", flag.ExitOnError)
	query := fs.String("query", "", "Search by name")
	stage := fs.String("stage", "", "Filter by stage name")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	var stageID string
	if *stage != "" {
		found := crm.FindStageByName(st, *stage)
		if found == nil {
			fmt.Println("No leads found")
			return nil
		}
		stageID = found.ID
	}

	q := strings.ToLower(*query)
	var leads []models.Lead
	for _, lead := range st.Leads {
		if stageID != "" && lead.StageID != stageID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(lead.Name), q) {
			continue
		}
		leads = append(leads, lead)
		if len(leads) >= *limit {
			break
		}
	}

	if len(leads) == 0 {
		fmt.Println("No leads found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTYPE\tSTAGE\tSTATUS\tFOLLOW-UP\tID")
	_, _ = fmt.Fprintln(w, "----\t----\t-----\t------\t---------\t--")

	for _, lead := range leads {
		stageName := "-"
		if found := crm.FindStage(st, lead.StageID); found != nil {
			stageName = found.Name
		}
		followup := "-"
		if !lead.InterestDate.IsZero() {
			followup = lead.InterestDate.Format("2006-01-02")
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			lead.Name, lead.Type.Label(), stageName, lead.Status, followup, lead.ID[:8])
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d lead(s)\n", len(leads))
	return nil
}

// ShowLeadCommand prints one lead in full, including journal and objections.
func ShowLeadCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("show-lead", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	lead := findLeadByPrefix(st, fs.Args()[0])
	if lead == nil {
		return fmt.Errorf("lead not found: %s", fs.Args()[0])
	}

	fmt.Printf("%s (ID: %s)\n", lead.Name, lead.ID)
	fmt.Printf("  WhatsApp: %s (%s)\n", lead.WhatsApp, crm.WhatsAppURL(lead.WhatsApp, ""))
	fmt.Printf("  Type: %s\n", lead.Type.Label())
	if lead.Value > 0 {
		fmt.Printf("  Value: R$ %.2f\n", lead.Value)
	}
	if lead.Installment > 0 {
		fmt.Printf("  Installment: R$ %.2f\n", lead.Installment)
	}
	if lead.Goal != "" {
		fmt.Printf("  Goal: %s\n", lead.Goal)
	}
	if stage := crm.FindStage(st, lead.StageID); stage != nil {
		fmt.Printf("  Stage: %s\n", stage.Name)
	}
	fmt.Printf("  Status: %s\n", lead.Status)
	if !lead.InterestDate.IsZero() {
		fmt.Printf("  Follow-up: %s\n", lead.InterestDate.Format("2006-01-02"))
	}
	if !lead.LastContact.IsZero() {
		fmt.Printf("  Last contact: %s (%d day(s) ago)\n",
			lead.LastContact.Format("2006-01-02"), crm.DaysSinceContact(lead, time.Now()))
	}

	if len(lead.Objections) > 0 {
		fmt.Println("\nOBJECTIONS:")
		for _, o := range lead.Objections {
			fmt.Printf("  ⚠ %s\n", o.Text)
		}
	}

	if len(lead.History) > 0 {
		fmt.Println("\nHISTORY:")
		for _, entry := range lead.History {
			fmt.Printf("  [%s] %s: %s\n",
				entry.Date.Format("2006-01-02 15:04"), entry.Type, entry.Description)
		}
	}

	return nil
}

// UpdateLeadCommand updates an existing lead.
func UpdateLeadCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-lead", flag.ExitOnError)
	name := fs.String("name", "", "Lead name")
	whatsapp := fs.String("whatsapp", "", "WhatsApp number")
	kind := fs.String("type", "", "Consortium type: CAR, HOUSE, SERVICE, OTHER")
	value := fs.Float64("value", -1, "Target letter value in BRL")
	installment := fs.Float64("installment", -1, "Desired monthly installment in BRL")
	goal := fs.String("goal", "", "Free-text goal or notes")
	status := fs.String("status", "", "Status: active, follow-up, paused")
	interest := fs.String("interest-date", "", "Next follow-up date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	// First positional arg is the lead ID
	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	upd := crm.LeadUpdate{}
	if *name != "" {
		upd.Name = name
	}
	if *whatsapp != "" {
		upd.WhatsApp = whatsapp
	}
	if *kind != "" {
		t := models.ConsortiumType(strings.ToUpper(*kind))
		upd.Type = &t
	}
	if *value >= 0 {
		upd.Value = value
	}
	if *installment >= 0 {
		upd.Installment = installment
	}
	if *goal != "" {
		upd.Goal = goal
	}
	if *status != "" {
		upd.Status = status
	}
	if *interest != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *interest, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --interest-date (use YYYY-MM-DD): %w", err)
		}
		upd.InterestDate = &parsed
	}

	var updated string
	err := s.Mutate(func(st *models.AppState) error {
		lead := findLeadByPrefix(st, fs.Args()[0])
		if lead == nil {
			return fmt.Errorf("lead not found: %s", fs.Args()[0])
		}
		if err := crm.UpdateLead(st, lead.ID, upd); err != nil {
			return err
		}
		updated = fmt.Sprintf("%s (ID: %s)", lead.Name, lead.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	fmt.Printf("✓ Lead updated: %s\n", updated)
	return nil
}

// DeleteLeadCommand deletes a lead after confirmation.
func DeleteLeadCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-lead", flag.ExitOnError)
	force := fs.Bool("force", false, "Skip confirmation prompt")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	var deleted string
	err := s.Mutate(func(st *models.AppState) error {
		lead := findLeadByPrefix(st, fs.Args()[0])
		if lead == nil {
			return fmt.Errorf("lead not found: %s", fs.Args()[0])
		}
		if !*force && !confirm(fmt.Sprintf("Delete lead %q and all its history?", lead.Name)) {
			return fmt.Errorf("aborted")
		}
		deleted = lead.Name
		return crm.DeleteLead(st, lead.ID)
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Lead deleted: %s\n", deleted)
	return nil
}

// MoveLeadCommand moves a lead to another funnel stage.
func MoveLeadCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("move-lead", flag.ExitOnError)
	stage := fs.String("stage", "", "Destination stage name or ID (required)")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}
	if *stage == "" {
		return fmt.Errorf("--stage is required")
	}

	var moved, stageName string
	err := s.Mutate(func(st *models.AppState) error {
		lead := findLeadByPrefix(st, fs.Args()[0])
		if lead == nil {
			return fmt.Errorf("lead not found: %s", fs.Args()[0])
		}
		stageID := *stage
		if found := crm.FindStageByName(st, *stage); found != nil {
			stageID = found.ID
			stageName = found.Name
		} else if found := crm.FindStage(st, *stage); found != nil {
			stageName = found.Name
		}
		moved = lead.Name
		return crm.MoveLead(st, lead.ID, stageID)
	})
	if err != nil {
		return fmt.Errorf("failed to move lead: %w", err)
	}

	fmt.Printf("✓ Lead %s moved to %s\n", moved, stageName)
	return nil
}

// findLeadByPrefix resolves a full or abbreviated lead ID, matching the
// shortened IDs printed by list-leads.
func findLeadByPrefix(st *models.AppState, id string) *models.Lead {
	if lead := crm.FindLead(st, id); lead != nil {
		return lead
	}
	if len(id) < 4 {
		return nil
	}
	var match *models.Lead
	for i := range st.Leads {
		if strings.HasPrefix(st.Leads[i].ID, id) {
			if match != nil {
				return nil // ambiguous prefix
			}
			match = &st.Leads[i]
		}
	}
	return match
}

// confirm prompts on stdin and accepts y/yes.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	var answer string
	_, _ = fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
