// ABOUTME: Message template CLI commands
// ABOUTME: Manages the script library and renders messages for leads
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/proxvenda/crm"
	"github.com/harperreed/proxvenda/models"
	"github.com/harperreed/proxvenda/store"
)

// ListTemplatesCommand lists the script library.
func ListTemplatesCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-templates", flag.ExitOnError)
	full := fs.Bool("full", false, "Print the full template body")
	_ = fs.Parse(args)

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if *full {
		for _, tpl := range st.Templates {
			fmt.Printf("%s (ID: %s)\n%s\n\n", tpl.Title, tpl.ID[:8], tpl.Content)
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TITLE\tPREVIEW\tID")
	_, _ = fmt.Fprintln(w, "-----\t-------\t--")

	for _, tpl := range st.Templates {
		preview := tpl.Content
		if len([]rune(preview)) > 48 {
			preview = string([]rune(preview)[:45]) + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", tpl.Title, preview, tpl.ID[:8])
	}
	_ = w.Flush()

	return nil
}

// SaveTemplateCommand adds a script to the library.
func SaveTemplateCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("save-template", flag.ExitOnError)
	title := fs.String("title", "", "Template title (required)")
	content := fs.String("content", "", "Template body, may use [NOME] and [TIPO] (required)")
	_ = fs.Parse(args)

	var id string
	err := s.Mutate(func(st *models.AppState) error {
		tpl, err := crm.SaveTemplate(st, *title, *content)
		if err != nil {
			return err
		}
		id = tpl.ID
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	fmt.Printf("✓ Template saved: %s (ID: %s)\n", *title, id)
	return nil
}

// DeleteTemplateCommand removes a script from the library.
func DeleteTemplateCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("delete-template", flag.ExitOnError)
	force := fs.Bool("force", false, "Skip confirmation prompt")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("template ID or title is required")
	}

	var removed string
	err := s.Mutate(func(st *models.AppState) error {
		arg := fs.Args()[0]
		tpl := crm.FindTemplateByTitle(st, arg)
		if tpl == nil {
			tpl = crm.FindTemplate(st, arg)
		}
		if tpl == nil {
			return crm.ErrTemplateNotFound
		}
		if !*force && !confirm(fmt.Sprintf("Delete template %q?", tpl.Title)) {
			return fmt.Errorf("aborted")
		}
		removed = tpl.Title
		return crm.DeleteTemplate(st, tpl.ID)
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Template deleted: %s\n", removed)
	return nil
}

// RenderTemplateCommand renders a script against a lead and prints the
// resulting message plus a ready-to-open WhatsApp link.
func RenderTemplateCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("render-template", flag.ExitOnError)
	lead := fs.String("lead", "", "Lead ID (required)")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("template ID or title is required")
	}
	if *lead == "" {
		return fmt.Errorf("--lead is required")
	}

	st, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	tpl := crm.FindTemplateByTitle(st, fs.Args()[0])
	if tpl == nil {
		tpl = crm.FindTemplate(st, fs.Args()[0])
	}
	if tpl == nil {
		return crm.ErrTemplateNotFound
	}
	target := findLeadByPrefix(st, *lead)
	if target == nil {
		return fmt.Errorf("lead not found: %s", *lead)
	}

	text := crm.RenderTemplate(tpl.Content, target)
	fmt.Println(text)
	fmt.Printf("\n%s\n", crm.WhatsAppURL(target.WhatsApp, text))

	return nil
}
