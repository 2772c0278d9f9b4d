// ABOUTME: Follow-up agenda CLI commands
// ABOUTME: Daily triage view, journal logging, objections, and rescheduling
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

// AgendaCommand shows the daily follow-up triage.
func AgendaCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("agenda", flag.ExitOnError)
	showUpcoming := fs.Bool("upcoming", false, "Also list upcoming follow-ups")
	_ = fs.Parse(args)

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	now := time.Now()
	buckets := crm.Triage(st.Leads, now)

	fmt.Println("FOLLOW-UP AGENDA")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("  🔴 Late: %d\n", len(buckets.Late))
	fmt.Printf("  🟡 Today: %d\n", len(buckets.Today))
	fmt.Printf("  🟢 Upcoming: %d\n", len(buckets.Upcoming))
	fmt.Printf("  Pending now: %d\n\n", buckets.Pending())

	printAgendaBucket("LATE", buckets.Late, now)
	printAgendaBucket("TODAY", buckets.Today, now)
	if *showUpcoming {
		printAgendaBucket("UPCOMING", buckets.Upcoming, now)
	}

	return nil
}

func printAgendaBucket(title string, leads []models.Lead, now time.Time) {
	if len(leads) == 0 {
		return
	}

	fmt.Println(title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTYPE\tFOLLOW-UP\tDAYS SINCE\tID")
	_, _ = fmt.Fprintln(w, "----\t----\t---------\t----------\t--")

	for i := range leads {
		lead := &leads[i]
		followup := "-"
		if !lead.InterestDate.IsZero() {
			followup = lead.InterestDate.Format("2006-01-02")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			lead.Name, lead.Type.Label(), followup,
			crm.DaysSinceContact(lead, now), lead.ID[:8])
	}
	_ = w.Flush()
	fmt.Println()
}

// DelayCommand pushes a lead's follow-up date a week out.
func DelayCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delay", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	var name string
	var next time.Time
	err := s.Mutate(func(st *models.AppState) error {
		lead := findLeadByPrefix(st, fs.Args()[0])
		if lead == nil {
			return fmt.Errorf("lead not found: %s", fs.Args()[0])
		}
		crm.AdvanceFollowup(lead, time.Now())
		name = lead.Name
		next = lead.InterestDate
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Follow-up for %s moved to %s\n", name, next.Format("2006-01-02"))
	return nil
}

// ContactCommand prints a WhatsApp link for a lead and records the outreach.
func ContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ExitOnError)
	template := fs.String("template", "", "Template title or ID to prefill the message")
	text := fs.String("text", "", "Literal message text to prefill")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}

	var link string
	err := s.Mutate(func(st *models.AppState) error {
		lead := findLeadByPrefix(st, fs.Args()[0])
		if lead == nil {
			return fmt.Errorf("lead not found: %s", fs.Args()[0])
		}

		message := *text
		if *template != "" {
			tpl := crm.FindTemplateByTitle(st, *template)
			if tpl == nil {
				tpl = crm.FindTemplate(st, *template)
			}
			if tpl == nil {
				return fmt.Errorf("template not found: %s", *template)
			}
			message = crm.RenderTemplate(tpl.Content, lead)
		}

		crm.RecordContact(lead, time.Now())
		link = crm.WhatsAppURL(lead.WhatsApp, message)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Contact recorded\n  %s\n", link)
	return nil
}

// LogCommand appends a journal entry to a lead.
func LogCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	kind := fs.String("type", models.InteractionNote, "Interaction type: CALL, MESSAGE, SIMULATION, NOTE")
	description := fs.String("description", "", "What happened (required)")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("lead ID is required")
	}
	if *description == "" {
		return fmt.Errorf("--description is required")
	}

	var name string
	err := s.Mutate(func(st *models.AppState) error {
		lead := findLeadByPrefix(st, fs.Args()[0])
		if lead == nil {
			return fmt.Errorf("lead not found: %s", fs.Args()[0])
		}
		name = lead.Name
		_, err := crm.LogInteraction(st, lead.ID, strings.ToUpper(*kind), *description, time.Now())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}

	fmt.Printf("✓ Interaction logged for %s\n", name)
	return nil
}

// ObjectionCommand toggles a canonical objection on a lead, or lists the
// catalog when called without arguments.
func ObjectionCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("objection", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		fmt.Println("OBJECTION CATALOG")
		for i, phrase := range models.ObjectionCatalog {
			fmt.Printf("  %d. %s\n", i+1, phrase)
		}
		return nil
	}
	if len(fs.Args()) < 2 {
		return fmt.Errorf("usage: objection <lead-id> <text>")
	}

	text := strings.Join(fs.Args()[1:], " ")
	var name string
	var active bool
	err := s.Mutate(func(st *models.AppState) error {
		lead := findLeadByPrefix(st, fs.Args()[0])
		if lead == nil {
			return fmt.Errorf("lead not found: %s", fs.Args()[0])
		}
		if err := crm.ToggleObjection(st, lead.ID, text); err != nil {
			return err
		}
		name = lead.Name
		active = lead.HasObjection(text)
		return nil
	})
	if err != nil {
		return err
	}

	if active {
		fmt.Printf("✓ Objection raised for %s: %s\n", name, text)
	} else {
		fmt.Printf("✓ Objection cleared for %s: %s\n", name, text)
	}
	return nil
}
